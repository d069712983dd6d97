package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"silvacollect/apperr"
	"silvacollect/entities"
	"silvacollect/pkg/auth/repository"
)

type usuarioRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UsuarioRepository { return &usuarioRepo{db} }

func (r *usuarioRepo) Get() (*entities.Usuario, error) {
	var u entities.Usuario
	if err := r.db.First(&u, entities.UsuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("usuario")
		}
		return nil, apperr.Storage("find usuario", err)
	}
	return &u, nil
}

func (r *usuarioRepo) Save(u *entities.Usuario) error {
	u.ID = entities.UsuarioID
	return apperr.Storage("save usuario", r.db.Save(u).Error)
}

package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"silvacollect/apperr"
	"silvacollect/entities"
	"silvacollect/pkg/ordem/repository"
)

type ordemRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrdemRepository { return &ordemRepo{db} }

func (r *ordemRepo) ReplaceAll(rows []entities.OrdemServico) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.OrdemServico{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	return apperr.Storage("replace ordens", err)
}

func (r *ordemRepo) List(tipo string) ([]entities.OrdemServico, error) {
	var out []entities.OrdemServico
	q := r.db.Order("id")
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, apperr.Storage("list ordens", err)
	}
	return out, nil
}

func (r *ordemRepo) FindByID(id uint) (*entities.OrdemServico, error) {
	var os entities.OrdemServico
	if err := r.db.First(&os, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ordem de serviço")
		}
		return nil, apperr.Storage("find ordem", err)
	}
	return &os, nil
}

func (r *ordemRepo) UpdateStatus(id uint, status string) error {
	err := r.db.Model(&entities.OrdemServico{}).
		Where("id = ?", id).
		Update("status", status).Error
	return apperr.Storage("update ordem status", err)
}

package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"silvacollect/apperr"
	"silvacollect/entities"
	"silvacollect/pkg/reference/repository"
)

type referenceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReferenceRepository { return &referenceRepo{db} }

// replaceAll swaps a collection's content in one transaction. Callers see
// either the old set or the new set, never a mix.
func replaceAll[T any](db *gorm.DB, rows []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var zero T
		if err := tx.Where("1 = 1").Delete(&zero).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *referenceRepo) ReplaceFazendas(rows []entities.Fazenda) error {
	return apperr.Storage("replace fazendas", replaceAll(r.db, rows))
}

func (r *referenceRepo) ReplaceFrotas(rows []entities.Frota) error {
	return apperr.Storage("replace frotas", replaceAll(r.db, rows))
}

func (r *referenceRepo) ReplaceColaboradores(rows []entities.Colaborador) error {
	return apperr.Storage("replace colaboradores", replaceAll(r.db, rows))
}

func (r *referenceRepo) ReplaceAtividades(rows []entities.Atividade) error {
	return apperr.Storage("replace atividades", replaceAll(r.db, rows))
}

func (r *referenceRepo) ReplaceInsumos(rows []entities.Insumo) error {
	return apperr.Storage("replace insumos", replaceAll(r.db, rows))
}

func (r *referenceRepo) ReplaceParadas(rows []entities.Parada) error {
	return apperr.Storage("replace paradas", replaceAll(r.db, rows))
}

func (r *referenceRepo) Fazendas() ([]entities.Fazenda, error) {
	var out []entities.Fazenda
	err := r.db.Order("fazenda, talhao").Find(&out).Error
	return out, apperr.Storage("list fazendas", err)
}

func (r *referenceRepo) Frotas() ([]entities.Frota, error) {
	var out []entities.Frota
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list frotas", err)
}

func (r *referenceRepo) Colaboradores() ([]entities.Colaborador, error) {
	var out []entities.Colaborador
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list colaboradores", err)
}

func (r *referenceRepo) Atividades() ([]entities.Atividade, error) {
	var out []entities.Atividade
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list atividades", err)
}

func (r *referenceRepo) AtividadeByNome(nome string) (*entities.Atividade, error) {
	var a entities.Atividade
	if err := r.db.Where("nome = ?", nome).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("atividade")
		}
		return nil, apperr.Storage("find atividade", err)
	}
	return &a, nil
}

func (r *referenceRepo) Insumos() ([]entities.Insumo, error) {
	var out []entities.Insumo
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list insumos", err)
}

func (r *referenceRepo) Viveiros() ([]entities.Viveiro, error) {
	var out []entities.Viveiro
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list viveiros", err)
}

func (r *referenceRepo) Clones() ([]entities.Clone, error) {
	var out []entities.Clone
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list clones", err)
}

func (r *referenceRepo) Paradas() ([]entities.Parada, error) {
	var out []entities.Parada
	err := r.db.Order("id").Find(&out).Error
	return out, apperr.Storage("list paradas", err)
}

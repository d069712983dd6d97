package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"silvacollect/apperr"
	"silvacollect/entities"
	"silvacollect/pkg/apontamento/repository"
)

type apontamentoRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ApontamentoRepository { return &apontamentoRepo{db} }

func (r *apontamentoRepo) Create(a *entities.Apontamento) error {
	return apperr.Storage("create apontamento", r.db.Create(a).Error)
}

func (r *apontamentoRepo) List(f repository.ListFilter) ([]entities.Apontamento, error) {
	var out []entities.Apontamento
	q := r.db.Order("data DESC, id DESC")
	if f.Data != "" {
		q = q.Where("data = ?", f.Data)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.SyncStatus != "" {
		q = q.Where("sync_status = ?", f.SyncStatus)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, apperr.Storage("list apontamentos", err)
	}
	return out, nil
}

func (r *apontamentoRepo) Pending() ([]entities.Apontamento, error) {
	var out []entities.Apontamento
	err := r.db.Where("sync_status = ?", entities.SyncPending).Order("id").Find(&out).Error
	if err != nil {
		return nil, apperr.Storage("list pending apontamentos", err)
	}
	return out, nil
}

func (r *apontamentoRepo) FindByID(id uint) (*entities.Apontamento, error) {
	var a entities.Apontamento
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("apontamento")
		}
		return nil, apperr.Storage("find apontamento", err)
	}
	return &a, nil
}

func (r *apontamentoRepo) MarkSynced(id uint, at time.Time) error {
	err := r.db.Model(&entities.Apontamento{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sync_status": entities.SyncSynced,
			"synced_at":   at,
		}).Error
	return apperr.Storage("mark apontamento synced", err)
}

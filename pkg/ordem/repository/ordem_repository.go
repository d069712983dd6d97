package repository

import "silvacollect/entities"

type OrdemRepository interface {
	// ReplaceAll swaps the whole collection on a cache pass.
	ReplaceAll(rows []entities.OrdemServico) error
	List(tipo string) ([]entities.OrdemServico, error)
	FindByID(id uint) (*entities.OrdemServico, error)
	// UpdateStatus is only called from the record-submission path.
	UpdateStatus(id uint, status string) error
}

package repository

import (
	"time"

	"silvacollect/entities"
)

// ListFilter narrows the local report listing. Zero values mean "all".
type ListFilter struct {
	Data       string
	Tipo       string
	SyncStatus string
}

type ApontamentoRepository interface {
	Create(a *entities.Apontamento) error
	List(f ListFilter) ([]entities.Apontamento, error)
	// Pending returns the records not yet acknowledged by the server.
	Pending() ([]entities.Apontamento, error)
	FindByID(id uint) (*entities.Apontamento, error)
	// MarkSynced records server acknowledgement. The at-most-once upload
	// contract hangs on this flag: a row flips to synced exactly when a POST
	// succeeded, and synced rows are excluded from every later scan.
	MarkSynced(id uint, at time.Time) error
}

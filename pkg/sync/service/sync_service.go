package service

import (
	"context"

	"silvacollect/entities"
)

// Result statuses shared by both sync operations.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
	StatusSkipped = "skipped" // device offline, nothing attempted
)

type CollectionError struct {
	Collection string `json:"collection"`
	Error      string `json:"error"`
}

// RefreshResult reports a reference-cache pass. Collections replaced before
// a failing one stay replaced; Errors lists what was left stale.
type RefreshResult struct {
	Status string            `json:"status"`
	Counts map[string]int    `json:"counts,omitempty"`
	Errors []CollectionError `json:"errors,omitempty"`
}

type UploadError struct {
	ApontamentoID uint   `json:"apontamento_id"`
	Error         string `json:"error"`
}

// UploadResult reports one drain of the pending queue. Failed records stay
// pending; the next invocation is the retry mechanism.
type UploadResult struct {
	Status  string        `json:"status"`
	Pending int           `json:"pending"`
	Synced  int           `json:"synced"`
	Failed  int           `json:"failed"`
	Errors  []UploadError `json:"errors,omitempty"`
}

// SyncService owns both directions of synchronization. Refresh and upload
// convert every lower-layer error into the returned report; they never fail
// out to the caller.
type SyncService interface {
	RefreshReferenceData(ctx context.Context) RefreshResult
	UploadPending(ctx context.Context) UploadResult
	SyncAll(ctx context.Context) (RefreshResult, UploadResult)

	// PushRecord uploads one stored record immediately, marking it synced on
	// success and firing the dependent stop-events POST best-effort. Used by
	// the submission path when the device is online.
	PushRecord(ctx context.Context, a *entities.Apontamento) error
}

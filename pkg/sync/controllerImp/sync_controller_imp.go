package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"silvacollect/pkg/sync/service"
)

type SyncCtrl struct{ svc service.SyncService }

func New(svc service.SyncService) *SyncCtrl { return &SyncCtrl{svc} }

// RefreshCache replaces the local reference collections with fresh server
// copies. Partial failures come back as 200 with status "partial" so the
// shell can keep working on whatever did refresh.
func (h *SyncCtrl) RefreshCache(c echo.Context) error {
	res := h.svc.RefreshReferenceData(c.Request().Context())
	return c.JSON(http.StatusOK, res)
}

func (h *SyncCtrl) UploadPending(c echo.Context) error {
	res := h.svc.UploadPending(c.Request().Context())
	return c.JSON(http.StatusOK, res)
}

func (h *SyncCtrl) SyncAll(c echo.Context) error {
	refresh, upload := h.svc.SyncAll(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{"cache": refresh, "apontamentos": upload})
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"silvacollect/apperr"
	"silvacollect/pkg/apontamento/repository"
	"silvacollect/pkg/apontamento/service"
	"silvacollect/pkg/gateway"
	"silvacollect/pkg/report"
)

type ApontamentoCtrl struct {
	svc service.ApontamentoService
	gw  gateway.API
}

func New(svc service.ApontamentoService, gw gateway.API) *ApontamentoCtrl {
	return &ApontamentoCtrl{svc: svc, gw: gw}
}

func (h *ApontamentoCtrl) Create(c echo.Context) error {
	var req service.NovoApontamento
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Submit(c.Request().Context(), req)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ApontamentoCtrl) List(c echo.Context) error {
	f := repository.ListFilter{
		Data:       c.QueryParam("data"),
		Tipo:       c.QueryParam("tipo"),
		SyncStatus: c.QueryParam("sync_status"),
	}
	rows, err := h.svc.List(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// Export streams the local report as an xlsx workbook.
func (h *ApontamentoCtrl) Export(c echo.Context) error {
	rows, err := h.svc.List(repository.ListFilter{Data: c.QueryParam("data"), Tipo: c.QueryParam("tipo")})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := report.BuildApontamentosWorkbook(rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="apontamentos.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	if err := f.Write(c.Response()); err != nil {
		return err
	}
	return nil
}

// Remotos is a live passthrough to the central API, for reviewing what the
// server already holds. It needs connectivity and does not touch the store.
func (h *ApontamentoCtrl) Remotos(c echo.Context) error {
	rows, err := h.gw.Apontamentos(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

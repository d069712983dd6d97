package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"silvacollect/pkg/reference/repository"
)

// ReferenceCtrl serves the cached dropdown collections straight from the
// local store, so the form keeps working with zero connectivity.
type ReferenceCtrl struct{ repo repository.ReferenceRepository }

func New(repo repository.ReferenceRepository) *ReferenceCtrl { return &ReferenceCtrl{repo} }

func (h *ReferenceCtrl) list(c echo.Context, rows any, err error) error {
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceCtrl) Fazendas(c echo.Context) error {
	rows, err := h.repo.Fazendas()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Frotas(c echo.Context) error {
	rows, err := h.repo.Frotas()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Colaboradores(c echo.Context) error {
	rows, err := h.repo.Colaboradores()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Atividades(c echo.Context) error {
	rows, err := h.repo.Atividades()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Insumos(c echo.Context) error {
	rows, err := h.repo.Insumos()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Viveiros(c echo.Context) error {
	rows, err := h.repo.Viveiros()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Clones(c echo.Context) error {
	rows, err := h.repo.Clones()
	return h.list(c, rows, err)
}

func (h *ReferenceCtrl) Paradas(c echo.Context) error {
	rows, err := h.repo.Paradas()
	return h.list(c, rows, err)
}

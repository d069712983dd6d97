package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"silvacollect/apperr"
	"silvacollect/pkg/ordem/repository"
)

type OrdemCtrl struct{ repo repository.OrdemRepository }

func New(repo repository.OrdemRepository) *OrdemCtrl { return &OrdemCtrl{repo} }

func (h *OrdemCtrl) List(c echo.Context) error {
	rows, err := h.repo.List(c.QueryParam("tipo"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *OrdemCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	o, err := h.repo.FindByID(uint(id))
	if err != nil {
		if apperr.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "ordem de serviço não encontrada"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, o)
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"silvacollect/pkg/weather/service"
)

type WeatherCtrl struct{ svc service.WeatherService }

func New(svc service.WeatherService) *WeatherCtrl { return &WeatherCtrl{svc} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	snap, err := h.svc.Current(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

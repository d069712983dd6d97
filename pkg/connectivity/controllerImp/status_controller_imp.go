package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"silvacollect/pkg/connectivity"
)

// StatusCtrl exposes the connectivity flag to the device shell. The shell
// reports its own online/offline transitions with POST.
type StatusCtrl struct{ monitor *connectivity.Monitor }

func New(monitor *connectivity.Monitor) *StatusCtrl { return &StatusCtrl{monitor} }

type statusReq struct {
	Online bool `json:"online"`
}

func (h *StatusCtrl) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"online": h.monitor.Online()})
}

func (h *StatusCtrl) Set(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	h.monitor.Set(req.Online)
	return c.JSON(http.StatusOK, map[string]bool{"online": h.monitor.Online()})
}

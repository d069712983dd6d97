package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"silvacollect/apperr"
	"silvacollect/entities"
	"silvacollect/pkg/auth/controller"
	"silvacollect/pkg/auth/repository"
)

type authCtrl struct{ repo repository.UsuarioRepository }

func New(repo repository.UsuarioRepository) controller.AuthController { return &authCtrl{repo} }

type loginReq struct {
	Nome string `json:"nome"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "nome é obrigatório"})
	}
	u := &entities.Usuario{ID: entities.UsuarioID, Nome: nome, Logado: true, UpdatedAt: time.Now()}
	if err := h.repo.Save(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *authCtrl) Logout(c echo.Context) error {
	u, err := h.repo.Get()
	if err != nil {
		if apperr.IsNotFound(err) {
			return c.JSON(http.StatusOK, map[string]bool{"logado": false})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	u.Logado = false
	u.UpdatedAt = time.Now()
	if err := h.repo.Save(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"logado": false})
}

func (h *authCtrl) Whoami(c echo.Context) error {
	u, err := h.repo.Get()
	if err != nil {
		if apperr.IsNotFound(err) {
			return c.JSON(http.StatusOK, map[string]any{"logado": false})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !u.Logado {
		return c.JSON(http.StatusOK, map[string]any{"logado": false})
	}
	return c.JSON(http.StatusOK, u)
}

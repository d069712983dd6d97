package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	authCtrl interface {
		Login(echo.Context) error
		Logout(echo.Context) error
		Whoami(echo.Context) error
	},
	statusCtrl interface {
		Get(echo.Context) error
		Set(echo.Context) error
	},
	syncCtrl interface {
		RefreshCache(echo.Context) error
		UploadPending(echo.Context) error
		SyncAll(echo.Context) error
	},
	refCtrl interface {
		Fazendas(echo.Context) error
		Frotas(echo.Context) error
		Colaboradores(echo.Context) error
		Atividades(echo.Context) error
		Insumos(echo.Context) error
		Viveiros(echo.Context) error
		Clones(echo.Context) error
		Paradas(echo.Context) error
	},
	ordemCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
	},
	aptCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Export(echo.Context) error
		Remotos(echo.Context) error
	},
	weatherCtrl interface{ Current(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/login", authCtrl.Login)
	e.POST("/logout", authCtrl.Logout)
	e.GET("/whoami", authCtrl.Whoami)
	e.GET("/health", healthCtrl.Health)

	e.GET("/status", statusCtrl.Get)
	e.POST("/status", statusCtrl.Set)

	e.POST("/sync/cache", syncCtrl.RefreshCache)
	e.POST("/sync/apontamentos", syncCtrl.UploadPending)
	e.POST("/sync", syncCtrl.SyncAll)

	// Dropdown collections, always served from the local store.
	e.GET("/fazendas", refCtrl.Fazendas)
	e.GET("/frotas", refCtrl.Frotas)
	e.GET("/colaboradores", refCtrl.Colaboradores)
	e.GET("/atividades", refCtrl.Atividades)
	e.GET("/insumos", refCtrl.Insumos)
	e.GET("/viveiros", refCtrl.Viveiros)
	e.GET("/clones", refCtrl.Clones)
	e.GET("/paradas", refCtrl.Paradas)

	e.GET("/ordens", ordemCtrl.List)
	e.GET("/ordens/:id", ordemCtrl.Get)

	e.POST("/apontamentos", aptCtrl.Create)
	e.GET("/apontamentos", aptCtrl.List)
	e.GET("/apontamentos/export", aptCtrl.Export)
	e.GET("/apontamentos/remotos", aptCtrl.Remotos)

	e.GET("/weather", weatherCtrl.Current)
	return e
}

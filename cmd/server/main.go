package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"silvacollect/config"
	"silvacollect/database"
	"silvacollect/pkg/connectivity"
	"silvacollect/pkg/gateway"
	"silvacollect/router"

	aptCtrlImp "silvacollect/pkg/apontamento/controllerImp"
	aptRepoImp "silvacollect/pkg/apontamento/repositoryImp"
	aptSvcImp "silvacollect/pkg/apontamento/serviceImp"

	authCtrlImp "silvacollect/pkg/auth/controllerImp"
	authRepoImp "silvacollect/pkg/auth/repositoryImp"

	connCtrlImp "silvacollect/pkg/connectivity/controllerImp"

	ordemCtrlImp "silvacollect/pkg/ordem/controllerImp"
	ordemRepoImp "silvacollect/pkg/ordem/repositoryImp"

	refCtrlImp "silvacollect/pkg/reference/controllerImp"
	refRepoImp "silvacollect/pkg/reference/repositoryImp"

	syncCtrlImp "silvacollect/pkg/sync/controllerImp"
	syncSvcImp "silvacollect/pkg/sync/serviceImp"

	weatherCtrlImp "silvacollect/pkg/weather/controllerImp"
	weatherSvcImp "silvacollect/pkg/weather/serviceImp"

	healthCtrlImp "silvacollect/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	logger := config.GetLogger()

	// 2) DB (embedded sqlite) + automigrate + local seeds
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Central API client and connectivity
	gw := gateway.New(cfg.APIBaseURL, cfg.APITimeout, logger)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	online := gw.Ping(pingCtx) == nil
	cancel()
	monitor := connectivity.New(online)
	monitor.Subscribe(func(on bool) {
		logger.WithField("online", on).Info("connectivity changed")
	})
	logger.WithField("online", online).Info("startup reachability probe")

	// 4) Repos
	aptRepo := aptRepoImp.New(db)
	ordRepo := ordemRepoImp.New(db)
	refRepo := refRepoImp.New(db)
	usrRepo := authRepoImp.New(db)

	// 5) Services
	syncSvc := syncSvcImp.New(gw, monitor, refRepo, ordRepo, aptRepo, usrRepo, logger)
	aptSvc := aptSvcImp.New(aptRepo, ordRepo, monitor, syncSvc, logger)
	weatherSvc := weatherSvcImp.New(db, weatherSvcImp.Options{
		Lat:      cfg.WeatherLat,
		Lon:      cfg.WeatherLon,
		City:     cfg.WeatherCity,
		State:    cfg.WeatherState,
		CacheTTL: cfg.WeatherCacheTTL,
		Timeout:  cfg.WeatherTimeout,
	}, logger)

	// Regained connectivity drains the backlog without waiting for the shell.
	monitor.Subscribe(func(on bool) {
		if !on {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			refresh, upload := syncSvc.SyncAll(ctx)
			logger.WithFields(map[string]any{
				"cache":  refresh.Status,
				"upload": upload.Status,
				"synced": upload.Synced,
			}).Info("auto sync after reconnect")
		}()
	})

	// 6) Controllers
	authCtrl := authCtrlImp.New(usrRepo)
	statusCtrl := connCtrlImp.New(monitor)
	syncCtrl := syncCtrlImp.New(syncSvc)
	refCtrl := refCtrlImp.New(refRepo)
	ordCtrl := ordemCtrlImp.New(ordRepo)
	aptCtrl := aptCtrlImp.New(aptSvc, gw)
	weatherCtrl := weatherCtrlImp.New(weatherSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, monitor)

	// 7) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/index.html"); err != nil {
		log.Printf("WARN: static/index.html not found: %v", err)
	}

	// 8) Router
	r := router.New(e, authCtrl, statusCtrl, syncCtrl, refCtrl, ordCtrl, aptCtrl, weatherCtrl, healthCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"silvacollect/entities"
	"silvacollect/pkg/connectivity"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	monitor *connectivity.Monitor
}

func NewHealthCtrl(db *gorm.DB, monitor *connectivity.Monitor) *HealthCtrl {
	return &HealthCtrl{db: db, monitor: monitor}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	// Pending count is informational. An offline device with a backlog is a
	// normal state, not an unhealthy one.
	var pending int64
	if dbOK {
		h.db.WithContext(ctx).Model(&entities.Apontamento{}).
			Where("sync_status = ?", entities.SyncPending).Count(&pending)
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"online":     h.monitor.Online(),
		"pending":    pending,
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}

package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/health/controller"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

var _ controller.HealthController = (*HealthCtrl)(nil)

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the store and reports whether the crops table is seeded.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	var crops int64
	switch {
	case h.db == nil:
		db = check{Err: "gorm db is nil"}
	default:
		sqlDB, err := h.db.DB()
		if err != nil {
			db = check{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = check{Err: "ping: " + err.Error()}
		} else if err := h.db.WithContext(ctx).Model(&entities.Crop{}).Count(&crops).Error; err != nil {
			db = check{Err: "count crops: " + err.Error()}
		}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]any{"database": db},
		"seeded":     crops > 0,
		"time":       time.Now().Format(time.RFC3339),
	})
}

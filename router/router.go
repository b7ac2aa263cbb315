package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func New(
	e *echo.Echo,
	cropCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
	},
	resourceCtrl interface{ List(echo.Context) error },
	marketCtrl interface{ List(echo.Context) error },
	envCtrl interface{ List(echo.Context) error },
	laborCtrl interface{ List(echo.Context) error },
	exportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	metrics http.Handler,
	staticDir string,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api")
	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:id", cropCtrl.Get)
	api.POST("/crops", cropCtrl.Create)

	api.GET("/crop-resources", resourceCtrl.List)
	api.GET("/market-trends", marketCtrl.List)
	api.GET("/environmental-logs", envCtrl.List)
	api.GET("/labor", laborCtrl.List)

	api.GET("/export.xlsx", exportCtrl.Export)

	if staticDir != "" {
		if fi, err := os.Stat(staticDir); err == nil && fi.IsDir() {
			// Client-side routes fall back to index.html; /api misses stay JSON 404s.
			e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
				Root:  staticDir,
				HTML5: true,
				Skipper: func(c echo.Context) bool {
					p := c.Request().URL.Path
					return strings.HasPrefix(p, "/api") || p == "/health" || p == "/metrics"
				},
			}))
		}
	}
	return e
}

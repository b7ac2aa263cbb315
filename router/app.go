package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/pkg/apierr"
	cropCtrlImp "github.com/navya9866/Smart-agriculture/pkg/crop/controllerImp"
	cropSvcImp "github.com/navya9866/Smart-agriculture/pkg/crop/serviceImp"
	envCtrlImp "github.com/navya9866/Smart-agriculture/pkg/environment/controllerImp"
	healthCtrlImp "github.com/navya9866/Smart-agriculture/pkg/health/controllerImp"
	laborCtrlImp "github.com/navya9866/Smart-agriculture/pkg/labor/controllerImp"
	marketCtrlImp "github.com/navya9866/Smart-agriculture/pkg/market/controllerImp"
	marketSvcImp "github.com/navya9866/Smart-agriculture/pkg/market/serviceImp"
	"github.com/navya9866/Smart-agriculture/pkg/metrics"
	"github.com/navya9866/Smart-agriculture/pkg/middleware"
	exportCtrlImp "github.com/navya9866/Smart-agriculture/pkg/report/controllerImp"
	resourceCtrlImp "github.com/navya9866/Smart-agriculture/pkg/resource/controllerImp"
	"github.com/navya9866/Smart-agriculture/pkg/store"
)

// BodyLimit caps request bodies; larger ones get 413.
const BodyLimit = "1M"

// Options carries the pieces NewApp does not build itself. Zero values
// disable the matching feature.
type Options struct {
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	StaticDir string
	// Extra middleware installed after recovery, e.g. Sentry.
	Middleware []echo.MiddlewareFunc
}

// NewApp builds the echo server over db with every route registered.
func NewApp(db *gorm.DB, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apierr.ErrorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit(BodyLimit))
	e.Use(opts.Middleware...)
	if opts.Logger != nil {
		e.Use(middleware.RequestLog(opts.Logger, "/metrics", "/health"))
	}

	stores := store.New(db)

	var cropRec cropSvcImp.Recorder
	var exportRec exportCtrlImp.Recorder
	var marketRec marketSvcImp.Recorder
	var mh http.Handler
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
		cropRec = opts.Metrics
		exportRec = opts.Metrics
		marketRec = opts.Metrics
		mh = opts.Metrics.Handler()
	}

	cropCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(stores.Crops, cropRec))
	resourceCtrl := resourceCtrlImp.New(stores.Resources)
	marketCtrl := marketCtrlImp.New(marketSvcImp.NewMarketService(stores.Markets, marketRec))
	envCtrl := envCtrlImp.New(stores.Environment)
	laborCtrl := laborCtrlImp.New(stores.Labor)
	exportCtrl := exportCtrlImp.New(stores, exportRec)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	return New(e, cropCtrl, resourceCtrl, marketCtrl, envCtrl, laborCtrl, exportCtrl, hCtrl, mh, opts.StaticDir)
}

package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	reg *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	CropsCreated   prometheus.Counter
	SeedRows       *prometheus.CounterVec
	ExportsCreated prometheus.Counter
	PricesImported prometheus.Counter
}

// New registers every collector on a fresh registry, plus the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		CropsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "crops_created_total",
			Help: "Total number of crops created through the API",
		}),
		SeedRows: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seed_rows_total",
				Help: "Rows inserted by the seed initializer",
			},
			[]string{"table"},
		),
		ExportsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "exports_created_total",
			Help: "Total number of workbook exports served",
		}),
		PricesImported: f.NewCounter(prometheus.CounterOpts{
			Name: "market_prices_imported_total",
			Help: "Market trend rows created by the price importer",
		}),
	}
}

// Middleware records request count and latency per route pattern.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else if !c.Response().Committed {
					status = http.StatusInternalServerError
				}
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Push sends the registry to a Prometheus Pushgateway under job. Short
// lived commands use it since nothing scrapes them.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(m.reg).PushContext(ctx)
}

func (m *Metrics) RecordCropCreated() { m.CropsCreated.Inc() }

func (m *Metrics) RecordSeedRows(table string, n int) {
	m.SeedRows.WithLabelValues(table).Add(float64(n))
}

func (m *Metrics) RecordExportCreated() { m.ExportsCreated.Inc() }

func (m *Metrics) RecordPricesImported(n int) { m.PricesImported.Add(float64(n)) }

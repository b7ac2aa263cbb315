package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/crops/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	for _, p := range []string{"/api/crops/1", "/api/crops/2", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/crops/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "500")))
}

func TestBusinessCounters(t *testing.T) {
	m := New()
	m.RecordCropCreated()
	m.RecordSeedRows("crops", 2)
	m.RecordSeedRows("crops", 1)
	m.RecordExportCreated()
	m.RecordPricesImported(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CropsCreated))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SeedRows.WithLabelValues("crops")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsCreated))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.PricesImported))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.RecordCropCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "crops_created_total 1"))
}

func TestPushSendsRegistry(t *testing.T) {
	var method, path, body string
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer gw.Close()

	m := New()
	m.RecordPricesImported(3)
	require.NoError(t, m.Push(context.Background(), gw.URL, "import_prices"))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/import_prices", path)
	assert.NotEmpty(t, body)
}

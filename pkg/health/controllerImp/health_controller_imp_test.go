package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navya9866/Smart-agriculture/database"
)

func call(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.Health(c))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthOK(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)

	code, body := call(t, NewHealthCtrl(db))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"ok": true}, body["status"])
	assert.Equal(t, false, body["seeded"])
}

func TestHealthNoDB(t *testing.T) {
	code, body := call(t, NewHealthCtrl(nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "gorm db is nil", checks["database"].(map[string]any)["err"])
}

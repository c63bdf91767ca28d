package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanglongqi/uniunit/internal/server"
	"github.com/wanglongqi/uniunit/pkg/quantity"
)

func newTestRouter() http.Handler {
	router := chi.NewRouter()
	server.SetupRoutes(router, server.NewHandlers(quantity.NewRegistry(), nil))
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return rec, payload
}

func TestHealth(t *testing.T) {
	rec, payload := doJSON(t, newTestRouter(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestPresets(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodGet, "/api/units/presets", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["presets"], 9)

	rec, payload = doJSON(t, router, http.MethodGet, "/api/units/presets/CGS", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CGS", payload["name"])
	units := payload["units"].(map[string]any)
	assert.Equal(t, "gram", units["kilogram"])

	rec, payload = doJSON(t, router, http.MethodGet, "/api/units/presets/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, payload["error"], "nope")
}

func TestConvert(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodPost, "/api/convert", map[string]any{
		"value": 100, "from_unit": "kg", "to_unit": "g",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 100000, payload["result"].(float64), 1e-6)

	rec, payload = doJSON(t, router, http.MethodPost, "/api/convert", map[string]any{
		"value": 1, "from_unit": "kg", "to_unit": "m",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["error"], "incompatible")
}

func TestUnitSystem(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodPost, "/api/unit-system", map[string]any{
		"value": "100 kg",
		"units": map[string]string{"kilogram": "gram", "meter": "millimeter", "second": "second"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 100000, payload["result"].(float64), 1e-6)
	assert.Equal(t, "gram", payload["unit"])
}

func TestQuickConvert(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodPost, "/api/quick-convert", map[string]any{
		"value": "100 kg", "from_system": "SI", "to_system": "CGS",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 100000, payload["result"].(float64), 1e-6)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/quick-convert", map[string]any{
		"value": "100 kg", "from_system": "SI", "to_system": "bogus",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnitInfo(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodPost, "/api/unit-info", map[string]any{
		"value": "1 Pa",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	base := payload["base_units"].(map[string]any)
	assert.Equal(t, float64(1), base["[mass]"])
	assert.Equal(t, float64(-2), base["[time]"])
	assert.Equal(t, false, payload["is_dimensionless"])

	// Negative magnitudes parse like any other quantity.
	rec, payload = doJSON(t, router, http.MethodPost, "/api/unit-info", map[string]any{
		"value": "-40 degC",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(-40), payload["magnitude"])
}

func TestUnits(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodGet, "/api/units", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	names := payload["units"].([]any)
	assert.Equal(t, float64(len(names)), payload["count"])
	assert.Contains(t, names, "kilogram")
	assert.Contains(t, names, "light_second")
}

func TestChineseUnits(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodGet, "/api/chinese-units", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	units := payload["chinese_units"].(map[string]any)
	assert.Equal(t, "kilogram", units["千克"])
	assert.Equal(t, "centimeter", units["厘米"])
}

func TestCompatibility(t *testing.T) {
	router := newTestRouter()

	rec, payload := doJSON(t, router, http.MethodGet, "/api/units/compatibility?a=kg&b=g", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["compatible"])

	rec, payload = doJSON(t, router, http.MethodGet, "/api/units/compatibility?a=kg&b=m", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, payload["compatible"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/units/compatibility?a=kg", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

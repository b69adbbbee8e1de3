package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/meteocalc/internal/domain"
	"github.com/couchcryptid/meteocalc/internal/observability"
	"github.com/couchcryptid/meteocalc/pkg/meteo"
)

func newTestApp(t *testing.T) (*observability.Metrics, func(path string) (*http.Response, []byte)) {
	t.Helper()
	metrics := observability.NewMetricsForTesting()
	app := NewApp(slog.New(slog.NewTextHandler(io.Discard, nil)), metrics)

	return metrics, func(path string) (*http.Response, []byte) {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		return resp, body
	}
}

func TestHealth(t *testing.T) {
	_, get := newTestApp(t)

	resp, body := get("/api/v1/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"meteocalc"}`, string(body))
}

func TestComfort_HeatIndex(t *testing.T) {
	fixed := time.Date(2024, 7, 3, 14, 25, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { domain.SetClock(nil) })

	metrics, get := newTestApp(t)
	resp, body := get("/api/v1/comfort?temperature_c=30&humidity_pct=70")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var report domain.ComfortReport
	require.NoError(t, json.Unmarshal(body, &report))

	assert.Empty(t, report.StationID)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, fixed, report.ProcessedAt)
	assert.InDelta(t, 86.0, report.Temperature.Fahrenheit, 1e-9)
	assert.InDelta(t, 303.15, report.Temperature.Kelvin, 1e-9)
	assert.Nil(t, report.Wind)
	assert.Nil(t, report.WindChillF)
	require.NotNil(t, report.HeatIndexF)
	assert.InDelta(t, 95.0684316, *report.HeatIndexF, 1e-6)
	assert.InDelta(t, 95.0684316, report.FeelsLikeF, 1e-6)
	assert.Equal(t, meteo.RegimeHeatIndex, report.Regime)

	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.APIRequests.WithLabelValues("/api/v1/comfort", "200")), 0)
}

func TestComfort_WindChill(t *testing.T) {
	_, get := newTestApp(t)

	resp, body := get("/api/v1/comfort?temperature_c=5&wind_speed_ms=10")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var report domain.ComfortReport
	require.NoError(t, json.Unmarshal(body, &report))

	require.NotNil(t, report.Wind)
	assert.InDelta(t, 10.0, report.Wind.MPS, 1e-9)
	require.NotNil(t, report.WindChillF)
	assert.InDelta(t, 31.26076007127057, *report.WindChillF, 1e-6)
	assert.Equal(t, meteo.RegimeWindChill, report.Regime)
	assert.Nil(t, report.DewPointC, "no humidity, no dew point")
}

func TestComfort_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"missing temperature", "/api/v1/comfort", "temperature_c is required"},
		{"non-numeric temperature", "/api/v1/comfort?temperature_c=warm", "temperature_c must be a number"},
		{"non-numeric humidity", "/api/v1/comfort?temperature_c=20&humidity_pct=high", "humidity_pct must be a number"},
		{"non-numeric wind", "/api/v1/comfort?temperature_c=20&wind_speed_ms=5kt", "wind_speed_ms must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, get := newTestApp(t)
			resp, body := get(tt.query)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var payload struct {
				Error   bool   `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.True(t, payload.Error)
			assert.Equal(t, tt.message, payload.Message)
			assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.APIRequests.WithLabelValues("/api/v1/comfort", "400")), 0)
		})
	}
}

func TestComfort_OutOfDomainHumidityPassesThrough(t *testing.T) {
	_, get := newTestApp(t)

	resp, body := get("/api/v1/comfort?temperature_c=20&humidity_pct=0.5")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var report domain.ComfortReport
	require.NoError(t, json.Unmarshal(body, &report))
	require.NotNil(t, report.DewPointC)
	assert.InDelta(t, 20.0, *report.DewPointC, 1e-9)
}

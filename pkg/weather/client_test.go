// pkg/weather/client_test.go

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveAlerts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alerts/active", r.URL.Path)
		assert.Equal(t, "TX", r.URL.Query().Get("area"))
		assert.Equal(t, "weather-app/test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/geo+json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"features": []map[string]any{
				{"properties": map[string]any{
					"event":    "Heat Advisory",
					"areaDesc": "Bexar, TX",
					"severity": "Minor",
					"status":   "Actual",
					"headline": "Heat Advisory until 8 PM",
				}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "weather-app/test", 5*time.Second)
	resp, err := c.ActiveAlerts(context.Background(), "TX")
	require.NoError(t, err)
	require.Len(t, resp.Features, 1)
	assert.Equal(t, "Heat Advisory", resp.Features[0].Properties.Event)
	assert.Equal(t, "Bexar, TX", resp.Features[0].Properties.AreaDesc)
}

func TestActiveAlerts_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, "", 5*time.Second)
	_, err := c.ActiveAlerts(context.Background(), "ZZ")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestActiveAlerts_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	c := New(server.URL, "", 5*time.Second)
	_, err := c.ActiveAlerts(context.Background(), "TX")
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se), "decode failure bukan StatusError")
}

func TestActiveAlerts_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // langsung ditutup agar connect gagal

	c := New(server.URL, "", 2*time.Second)
	_, err := c.ActiveAlerts(context.Background(), "TX")
	require.Error(t, err)
}

func TestPointMetadata_BuildsPathVerbatim(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"properties": map[string]any{"forecast": "https://example.test/gridpoints/ABC/1,2/forecast"},
		})
	}))
	defer server.Close()

	c := New(server.URL, "", 5*time.Second)
	resp, err := c.PointMetadata(context.Background(), "32.7767", "-96.7970")
	require.NoError(t, err)
	assert.Equal(t, "/points/32.7767,-96.7970", gotPath)
	assert.Equal(t, "https://example.test/gridpoints/ABC/1,2/forecast", resp.Properties.Forecast)
}

func TestForecast_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"properties": map[string]any{
				"periods": []map[string]any{
					{
						"name":            "Tonight",
						"temperature":     40,
						"temperatureUnit": "F",
						"windSpeed":       "5 mph",
						"windDirection":   "NW",
						"shortForecast":   "Clear",
					},
				},
			},
		})
	}))
	defer server.Close()

	c := New("https://unused.example", "", 5*time.Second)
	resp, err := c.Forecast(context.Background(), server.URL+"/gridpoints/FWD/80,100/forecast")
	require.NoError(t, err)
	require.Len(t, resp.Properties.Periods, 1)
	assert.Equal(t, "Tonight", resp.Properties.Periods[0].Name)
	assert.Equal(t, 40, resp.Properties.Periods[0].Temperature)
}

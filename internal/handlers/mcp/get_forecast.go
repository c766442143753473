// internal/handlers/mcp/get_forecast.go
// MCP Tool: get_forecast - forecast NWS untuk koordinat lat/lon

package mcp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"mcp-weather/pkg/weather"
)

const forecastFallback = "No forecast found or an error occurred."

// json.Number supaya body JSON boleh kirim angka ("latitude": 32.7)
// maupun string ("latitude": "32.7").
type forecastReq struct {
	Latitude  json.Number `json:"latitude,omitempty"`
	Longitude json.Number `json:"longitude,omitempty"`
}

func GetForecastHandler(w http.ResponseWriter, r *http.Request) {
	if weatherClient == nil {
		http.Error(w, "weather client not configured", http.StatusServiceUnavailable)
		return
	}
	forecastCalls.Add(1)

	q := r.URL.Query()

	// Terima latitude/longitude dan lat/lon (alias)
	lat := strings.TrimSpace(q.Get("latitude"))
	lon := strings.TrimSpace(q.Get("longitude"))
	if lat == "" {
		lat = strings.TrimSpace(q.Get("lat"))
	}
	if lon == "" {
		lon = strings.TrimSpace(q.Get("lon"))
	}

	if r.Method == http.MethodPost && lat == "" && lon == "" {
		var in forecastReq
		_ = json.NewDecoder(r.Body).Decode(&in)
		lat = strings.TrimSpace(in.Latitude.String())
		lon = strings.TrimSpace(in.Longitude.String())
	}

	ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
	defer cancel()

	// Step 1: /points -> URL grid forecast. Gagal di sini berarti
	// request kedua tidak pernah dikirim.
	pts, err := weatherClient.PointMetadata(ctx, lat, lon)
	if err != nil {
		log.Printf("[ERROR] get_forecast points lat=%q lon=%q: %v", lat, lon, err)
		writeReport(w, forecastFallback)
		return
	}

	// Step 2: ambil periode dari URL hasil lookup
	fc, err := weatherClient.Forecast(ctx, pts.Properties.Forecast)
	if err != nil {
		log.Printf("[ERROR] get_forecast grid url=%q: %v", pts.Properties.Forecast, err)
		writeReport(w, forecastFallback)
		return
	}

	writeReport(w, weather.FormatForecast(fc.Properties.Periods))
}

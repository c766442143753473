// internal/handlers/mcp/weather.go
// Injeksi client NWS dari app + counter invocation untuk /metrics

package mcp

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"mcp-weather/pkg/weather"
)

// inject dari app
var weatherClient *weather.Client

func SetWeatherClient(c *weather.Client) {
	weatherClient = c
}

var (
	alertsCalls   atomic.Int64
	forecastCalls atomic.Int64
)

// CallCounts untuk handler /metrics.
func CallCounts() map[string]int64 {
	return map[string]int64{
		"get_alerts":   alertsCalls.Load(),
		"get_forecast": forecastCalls.Load(),
	}
}

// ReposStatus untuk /debug/status.
func ReposStatus() map[string]any {
	st := map[string]any{
		"weather_client": weatherClient != nil,
	}
	if weatherClient != nil {
		st["nws_base_url"] = weatherClient.BaseURL()
	}
	return st
}

// toolReport: envelope balasan tool. Kegagalan upstream sudah dilipat
// ke teks report, jadi status selalu 200.
type toolReport struct {
	Report string `json:"report"`
}

func writeReport(w http.ResponseWriter, report string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toolReport{Report: report})
}

// internal/handlers/mcp/get_alerts.go
// MCP Tool: get_alerts - alert cuaca aktif per negara bagian US

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

// alertsFallback: satu-satunya pesan gagal yang dilihat caller.
// Detail error hanya masuk log; caller tidak bisa membedakan
// state tidak dikenal vs upstream down.
const alertsFallback = "No alerts found or an error occurred."

type alertsReq struct {
	State string `json:"state,omitempty"`
}

func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	if weatherClient == nil {
		http.Error(w, "weather client not configured", http.StatusServiceUnavailable)
		return
	}
	alertsCalls.Add(1)

	q := r.URL.Query()

	// Terima state dan area (alias)
	in := alertsReq{State: strings.TrimSpace(q.Get("state"))}
	if in.State == "" {
		in.State = strings.TrimSpace(q.Get("area"))
	}

	if r.Method == http.MethodPost && in.State == "" {
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.State = strings.TrimSpace(in.State)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	resp, err := weatherClient.ActiveAlerts(ctx, in.State)
	if err != nil {
		log.Printf("[ERROR] get_alerts state=%q: %v", in.State, err)
		writeReport(w, alertsFallback)
		return
	}

	writeReport(w, weather.FormatAlerts(resp.Features))
}

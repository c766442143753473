// internal/handlers/http/health_handler.go
// Handler sederhana untuk health check

package http

import (
	"encoding/json"
	"net/http"
	"os"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	service := os.Getenv("APP_NAME")
	if service == "" {
		service = "mcp-weather"
	}
	resp := map[string]any{
		"status":  "ok",
		"service": service,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

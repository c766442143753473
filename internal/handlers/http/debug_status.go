// internal/handlers/http/debug_status.go
package http

import (
	"encoding/json"
	"net/http"

	mcphandlers "mcp-weather/internal/handlers/mcp"
)

// StatusHandler melaporkan wiring runtime (client NWS, audit repo).
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	st := mcphandlers.ReposStatus()
	st["audit_repo"] = auditRepo != nil

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

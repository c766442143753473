// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"
	hh "mcp-weather/internal/handlers/http"
	mcphandlers "mcp-weather/internal/handlers/mcp"
	"mcp-weather/internal/middleware"
)

// RegisterRoutes menambahkan route HTTP biasa (non-MCP).
func RegisterRoutes(r *mux.Router) {
	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	r.HandleFunc("/login", hh.LoginHandler).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/debug/status", hh.StatusHandler).Methods(http.MethodGet)

	// --- /api prefix (supaya FE bisa pakai /api/...) ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth)
	api.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	api.HandleFunc("/login", hh.LoginHandler).Methods(http.MethodPost, http.MethodOptions)

	// Weather tools exposed via HTTP
	api.HandleFunc("/alerts", mcphandlers.GetAlertsHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	api.HandleFunc("/forecast", mcphandlers.GetForecastHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// Admin (JWT protected)
	adminJWT := r.PathPrefix("/admin").Subrouter()
	adminJWT.Use(middleware.AdminJWTAuth)
	adminJWT.HandleFunc("/audit", hh.AdminListAudit).Methods(http.MethodGet)
}

// internal/server/router.go
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mcphandlers "mcp-weather/internal/handlers/mcp"
	"mcp-weather/internal/mcp"
	"mcp-weather/internal/middleware"
)

// NewRouter menyusun router ringan untuk proses mcp-router
// (hanya surface tool, tanpa admin/login).
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Auth)

	// Healthcheck (biar gampang cek port/path)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/mcp", func(cr chi.Router) {
		cr.Post("/route", mcp.RouterHandler)
		cr.Get("/get_alerts", mcphandlers.GetAlertsHandler)
		cr.Post("/get_alerts", mcphandlers.GetAlertsHandler)
		cr.Get("/get_forecast", mcphandlers.GetForecastHandler)
		cr.Post("/get_forecast", mcphandlers.GetForecastHandler)
	})

	return r
}

// cmd/mcp-router/main.go
// Proses tool-server minimal: hanya registry + router MCP.

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"mcp-weather/internal/config"
	mcphandlers "mcp-weather/internal/handlers/mcp"
	"mcp-weather/internal/mcp"
	"mcp-weather/internal/server"
	"mcp-weather/pkg/weather"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	wc := weather.New(cfg.NWS.BaseURL, cfg.NWS.UserAgent,
		time.Duration(cfg.NWS.TimeoutSeconds)*time.Second)
	mcphandlers.SetWeatherClient(wc)

	mcp.Register("get_alerts", http.HandlerFunc(mcphandlers.GetAlertsHandler))
	mcp.Register("get_forecast", http.HandlerFunc(mcphandlers.GetForecastHandler))

	addr := ":" + cfg.MCPPort
	log.Printf("MCP Router listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.NewRouter()))
}

// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"
	"sort"

	mcphandlers "mcp-weather/internal/handlers/mcp"
)

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")

	counts := mcphandlers.CallCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "# HELP mcp_tool_calls_total number of tool invocations\n# TYPE mcp_tool_calls_total counter\n")
	for _, name := range names {
		fmt.Fprintf(w, "mcp_tool_calls_total{tool=%q} %d\n", name, counts[name])
	}
}

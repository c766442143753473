// internal/app/app.go
package app

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"

	"mcp-weather/internal/config"
	hh "mcp-weather/internal/handlers/http"
	mcphandlers "mcp-weather/internal/handlers/mcp"
	"mcp-weather/internal/mcp"
	mysqlrepo "mcp-weather/internal/repositories/mysql"
	"mcp-weather/internal/util"
	pkgdb "mcp-weather/pkg/db"
	"mcp-weather/pkg/weather"
)

// App menampung router utama
type App struct {
	Router *mux.Router
}

// New membuat instance App + registrasi semua routes (HTTP & MCP)
func New() *App {
	r := mux.NewRouter()
	cfg := config.Load()

	// === init client NWS ===
	wc := weather.New(cfg.NWS.BaseURL, cfg.NWS.UserAgent,
		time.Duration(cfg.NWS.TimeoutSeconds)*time.Second)
	mcphandlers.SetWeatherClient(wc)

	// === init DB (opsional, untuk audit trail) ===
	dsn := os.Getenv("DB_DSN")

	var (
		db  *sql.DB
		err error
	)

	switch {
	case dsn != "":
		db, err = sql.Open("mysql", dsn)
	case cfg.MySQL.Host != "":
		db, err = pkgdb.NewMySQL()
	default:
		log.Printf("[WARN] DB_DSN/MYSQL_HOST empty; audit trail disabled")
	}

	if err != nil {
		log.Printf("[WARN] open mysql failed: %v", err)
		db = nil
	}

	if db != nil {
		db.SetMaxOpenConns(cfg.MySQL.MaxOpen)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdle)
		db.SetConnMaxLifetime(30 * time.Minute)

		// retry ping agar tahan saat container DB baru up
		var pingErr error
		for i := 0; i < 10; i++ {
			pingErr = db.Ping()
			if pingErr == nil {
				break
			}
			log.Printf("[WARN] ping mysql failed (try %d): %v", i+1, pingErr)
			time.Sleep(3 * time.Second)
		}

		if pingErr != nil {
			log.Printf("[ERROR] mysql not ready after retries: %v", pingErr)
		} else {
			auditRepo := &mysqlrepo.AuditRepo{DB: db, Clock: util.RealClock{}}
			hh.SetAuditRepo(auditRepo)

			// catat tiap invocation lewat /mcp/route (best-effort)
			mcp.RegisterAuditSink(func(ctx context.Context, ev mcp.AuditEvent) {
				if recErr := auditRepo.Record(ctx, mysqlrepo.ToolInvocation{
					RequestID:  ev.RequestID,
					Tool:       ev.Tool,
					Question:   ev.Question,
					DecisionBy: ev.DecisionBy,
					Status:     ev.Status,
					DurationMS: ev.DurationMS,
				}); recErr != nil {
					log.Printf("[WARN] audit record: %v", recErr)
				}
			})
		}
	}

	// ---- HTTP routes (non-MCP) ----
	RegisterRoutes(r)

	// ---- MCP (Model Context Protocol) ----
	registerMCPTools()

	// Endpoint router MCP
	r.HandleFunc("/mcp/route", mcp.RouterHandler).Methods(http.MethodPost)

	// Endpoint HTTP langsung (memudahkan debug/manual curl)
	r.HandleFunc("/mcp/get_alerts", mcphandlers.GetAlertsHandler).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/mcp/get_forecast", mcphandlers.GetForecastHandler).Methods(http.MethodGet, http.MethodPost)

	return &App{Router: r}
}

// Run menjalankan server HTTP
func (a *App) Run(addr string) {
	log.Printf("server running on %s", addr)
	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// ----------------- MCP Wiring -----------------

// registerMCPTools mendaftarkan semua tool MCP ke registry.
func registerMCPTools() {
	mcp.Register("get_alerts", http.HandlerFunc(mcphandlers.GetAlertsHandler))
	mcp.Register("get_forecast", http.HandlerFunc(mcphandlers.GetForecastHandler))
}

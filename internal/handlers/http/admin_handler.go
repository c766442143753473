// internal/handlers/http/admin_handler.go
// Admin: listing audit trail invocation tool (JWT protected)

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	mysqlrepo "mcp-weather/internal/repositories/mysql"
	"mcp-weather/internal/util"
)

// inject dari app (nil jika MySQL tidak dikonfigurasi)
var auditRepo *mysqlrepo.AuditRepo

func SetAuditRepo(r *mysqlrepo.AuditRepo) {
	auditRepo = r
}

type invocationRow struct {
	ID         int64  `json:"id"`
	RequestID  string `json:"request_id,omitempty"`
	Tool       string `json:"tool"`
	Question   string `json:"question,omitempty"`
	DecisionBy string `json:"decision_by,omitempty"`
	Status     int    `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"` // RFC3339
}

func AdminListAudit(w http.ResponseWriter, r *http.Request) {
	if auditRepo == nil {
		http.Error(w, "audit repo not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	f := mysqlrepo.AuditFilter{Tool: strings.TrimSpace(q.Get("tool"))}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, util.BadInput("invalid limit").Error(), http.StatusBadRequest)
			return
		}
		f.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, util.BadInput("invalid offset").Error(), http.StatusBadRequest)
			return
		}
		f.Offset = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 6*time.Second)
	defer cancel()

	rows, err := auditRepo.ListRecent(ctx, f)
	if err != nil {
		var appErr util.AppError
		if errors.As(err, &appErr) {
			http.Error(w, appErr.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":   "db_error",
			"message": err.Error(),
		})
		return
	}

	out := make([]invocationRow, 0, len(rows))
	for _, inv := range rows {
		out = append(out, invocationRow{
			ID:         inv.ID,
			RequestID:  inv.RequestID,
			Tool:       inv.Tool,
			Question:   inv.Question,
			DecisionBy: inv.DecisionBy,
			Status:     inv.Status,
			DurationMS: inv.DurationMS,
			CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"invocations": out})
}

// repositories/mysql/audit_repo.go
// Repo audit trail pemanggilan tool MCP

package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"mcp-weather/internal/util"
)

// ==============================
// Model & Filter
// ==============================

type ToolInvocation struct {
	ID         int64
	RequestID  string
	Tool       string
	Question   string
	DecisionBy string // explicit|keyword|llm
	Status     int
	DurationMS int64
	CreatedAt  time.Time
}

type AuditFilter struct {
	Tool   string
	Limit  int
	Offset int
}

// ==============================
// Repo
// ==============================

type AuditRepo struct {
	DB    *sql.DB
	Clock util.Clock // nil -> RealClock
}

func (r *AuditRepo) now() time.Time {
	if r.Clock != nil {
		return r.Clock.Now()
	}
	return util.RealClock{}.Now()
}

// Record menyimpan satu invocation. Best-effort: caller boleh
// mengabaikan error, audit tidak boleh menggagalkan request.
func (r *AuditRepo) Record(ctx context.Context, inv ToolInvocation) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	const q = `
		INSERT INTO tool_invocations
			(request_id, tool, question, decision_by, status, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.DB.ExecContext(ctx, q,
		inv.RequestID, inv.Tool, inv.Question, inv.DecisionBy,
		inv.Status, inv.DurationMS, r.now())
	return err
}

// ListRecent mengambil invocation terbaru (urut created_at desc).
func (r *AuditRepo) ListRecent(ctx context.Context, f AuditFilter) ([]ToolInvocation, error) {
	if f.Limit < 0 || f.Offset < 0 {
		return nil, util.BadInput("limit/offset must not be negative")
	}
	if f.Limit == 0 || f.Limit > 500 {
		f.Limit = 50
	}

	ctx, cancel := withTimeout(ctx, 6*time.Second)
	defer cancel()

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, request_id, tool, question, decision_by, status, duration_ms, created_at
		FROM tool_invocations`)

	args := make([]any, 0, 3)
	if t := strings.TrimSpace(f.Tool); t != "" {
		sb.WriteString(" WHERE tool = ?")
		args = append(args, t)
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")
	args = append(args, f.Limit, f.Offset)

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ToolInvocation
	for rows.Next() {
		var inv ToolInvocation
		if err := rows.Scan(&inv.ID, &inv.RequestID, &inv.Tool, &inv.Question,
			&inv.DecisionBy, &inv.Status, &inv.DurationMS, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

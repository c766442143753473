// internal/mcp/router.go
// Router MCP: menerima request lalu memilih & mengeksekusi tool cuaca.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"mcp-weather/internal/mcp/llm"
)

// ====== Structured log payload ======

type mcpLog struct {
	At              string `json:"@t,omitempty"`         // RFC3339 timestamp
	Level           string `json:"level,omitempty"`      // info|warn|error
	Event           string `json:"event,omitempty"`      // mcp.route
	RequestID       string `json:"request_id,omitempty"` // X-Request-ID jika ada
	Question        string `json:"question,omitempty"`
	RequestTool     string `json:"request_tool,omitempty"`
	ChosenTool      string `json:"chosen_tool,omitempty"`
	DecisionBy      string `json:"decision_by,omitempty"` // explicit|keyword|llm
	CatalogCount    int    `json:"catalog_count,omitempty"`
	RegisteredCount int    `json:"registered_count,omitempty"`
	HasAPIKey       bool   `json:"has_api_key"`
	Status          int    `json:"status,omitempty"`
	DurationMS      int64  `json:"duration_ms,omitempty"`
	Error           string `json:"error,omitempty"`
}

func logJSON(l mcpLog) {
	l.At = time.Now().Format(time.RFC3339Nano)
	if l.Level == "" {
		l.Level = "info"
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}

// ====== Audit sink (opsional, diisi app saat MySQL siap) ======

type AuditEvent struct {
	RequestID  string
	Tool       string
	Question   string
	DecisionBy string
	Status     int
	DurationMS int64
}

var auditSink func(ctx context.Context, ev AuditEvent)

// RegisterAuditSink memasang pencatat invocation tool (best-effort).
func RegisterAuditSink(fn func(ctx context.Context, ev AuditEvent)) {
	auditSink = fn
}

// ====== Regex heuristik ======

// reCoords: pasangan "lat,lon" desimal dalam teks pertanyaan
var reCoords = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)`)

// reStateCode: kode negara bagian US dua huruf kapital berdiri sendiri
var reStateCode = regexp.MustCompile(`\b([A-Z]{2})\b`)

// ====== Router Handler ======

func RouterHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body error", http.StatusBadRequest)
		logJSON(mcpLog{
			Level:     "error",
			Event:     "mcp.route",
			RequestID: r.Header.Get("X-Request-ID"),
			Error:     fmt.Sprintf("read body: %v", err),
		})
		return
	}
	defer r.Body.Close()

	var req ToolRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		logJSON(mcpLog{
			Level:     "error",
			Event:     "mcp.route",
			RequestID: r.Header.Get("X-Request-ID"),
			Error:     fmt.Sprintf("unmarshal: %v", err),
		})
		return
	}

	// ===== Observability: catalog & registry =====
	defs, _ := LoadToolDefs()
	regNames := List()
	hasAPIKey := os.Getenv("OPENAI_API_KEY") != ""

	// 1) Explicit tool?
	tool := strings.TrimSpace(req.Tool)
	decision := "explicit"

	question := extractQuestion(req.Params)

	// 2) Keyword heuristik (deterministik, tanpa LLM)
	if tool == "" {
		decision = ""
		if t := keywordTool(question); t != "" {
			tool = t
			decision = "keyword"
		}
	}

	// 3) LLM chooser jika keyword tidak yakin
	if tool == "" && strings.TrimSpace(question) != "" {
		if chosen := chooseToolWithLLM(r.Context(), question); chosen != "" {
			tool = chosen
			decision = "llm"
		}
	}

	// 4) Tanpa tool terpilih tidak ada default yang aman
	//    (get_forecast butuh koordinat, get_alerts butuh state).
	if tool == "" {
		resp := ToolResponse{Success: false, Error: "no tool matched the request"}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)

		logJSON(mcpLog{
			Level:           "warn",
			Event:           "mcp.route",
			RequestID:       r.Header.Get("X-Request-ID"),
			Question:        question,
			RequestTool:     req.Tool,
			CatalogCount:    len(defs),
			RegisteredCount: len(regNames),
			HasAPIKey:       hasAPIKey,
			DurationMS:      time.Since(start).Milliseconds(),
			Error:           "no tool matched",
		})
		return
	}

	// 4.5) Enrich params: ekstrak state/koordinat dari question bila belum ada
	{
		var pm map[string]any
		switch p := req.Params.(type) {
		case map[string]any:
			pm = p
		case json.RawMessage:
			if len(p) > 0 {
				_ = json.Unmarshal(p, &pm)
			}
		default:
			// noop
		}
		if pm == nil {
			pm = map[string]any{}
		}

		enrichParams(tool, question, pm)
		req.Params = pm
	}

	// 5) Execute
	h, ok := Get(tool)
	if !ok {
		resp := ToolResponse{Success: false, Error: "tool not found: " + tool}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)

		logJSON(mcpLog{
			Level:           "warn",
			Event:           "mcp.route",
			RequestID:       r.Header.Get("X-Request-ID"),
			Question:        question,
			RequestTool:     req.Tool,
			ChosenTool:      tool,
			DecisionBy:      decision,
			CatalogCount:    len(defs),
			RegisteredCount: len(regNames),
			HasAPIKey:       hasAPIKey,
			DurationMS:      time.Since(start).Milliseconds(),
			Error:           "tool not found",
		})
		return
	}

	// Forward: handler menerima hanya Params JSON (tanpa envelope)
	forward := raw
	if req.Params != nil {
		if buf, err := json.Marshal(req.Params); err == nil {
			forward = buf
		}
	}
	r2 := r.Clone(r.Context())
	r2.Body = io.NopCloser(bytes.NewReader(forward))
	r2.Header.Set("Content-Type", "application/json") // ensure JSON

	// Eksekusi via recorder supaya status bisa diaudit, lalu salin ke writer asli
	rr := newMemRecorder()
	h.ServeHTTP(rr, r2)

	for k, vals := range rr.header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(rr.status)
	_, _ = w.Write(rr.buf)

	if auditSink != nil {
		actx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		auditSink(actx, AuditEvent{
			RequestID:  r.Header.Get("X-Request-ID"),
			Tool:       tool,
			Question:   question,
			DecisionBy: decision,
			Status:     rr.status,
			DurationMS: time.Since(start).Milliseconds(),
		})
		cancel()
	}

	logJSON(mcpLog{
		Event:           "mcp.route",
		RequestID:       r.Header.Get("X-Request-ID"),
		Question:        question,
		RequestTool:     req.Tool,
		ChosenTool:      tool,
		DecisionBy:      decision,
		CatalogCount:    len(defs),
		RegisteredCount: len(regNames),
		HasAPIKey:       hasAPIKey,
		Status:          rr.status,
		DurationMS:      time.Since(start).Milliseconds(),
	})
}

// ---- mini response recorder (in-memory) ----

type memRecorder struct {
	buf    []byte
	status int
	header http.Header
}

func newMemRecorder() *memRecorder {
	return &memRecorder{header: http.Header{}, status: http.StatusOK}
}
func (m *memRecorder) Header() http.Header { return m.header }
func (m *memRecorder) Write(b []byte) (int, error) {
	m.buf = append(m.buf, b...)
	return len(b), nil
}
func (m *memRecorder) WriteHeader(code int) { m.status = code }

// ====== Keyword chooser ======

// keywordTool memetakan pertanyaan ke tool lewat kata kunci sederhana.
func keywordTool(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return ""
	}

	switch {
	case strings.Contains(q, "alert") || strings.Contains(q, "warning") ||
		strings.Contains(q, "advisory") || strings.Contains(q, "watch"):
		return "get_alerts"

	case strings.Contains(q, "forecast") || strings.Contains(q, "temperature"):
		return "get_forecast"

	// "weather" + koordinat eksplisit -> forecast
	case strings.Contains(q, "weather") && reCoords.MatchString(q):
		return "get_forecast"
	}
	return ""
}

// enrichParams menambahkan param yang bisa diekstrak dari pertanyaan.
// Param yang sudah dikirim caller tidak ditimpa.
func enrichParams(tool, question string, pm map[string]any) {
	switch tool {
	case "get_alerts":
		if _, ok := pm["state"]; !ok {
			// pakai question asli (bukan lower-case) agar kode state terdeteksi
			if m := reStateCode.FindStringSubmatch(question); m != nil {
				pm["state"] = m[1]
			}
		}
	case "get_forecast":
		_, hasLat := pm["latitude"]
		_, hasLon := pm["longitude"]
		if !hasLat || !hasLon {
			if m := reCoords.FindStringSubmatch(question); m != nil {
				pm["latitude"] = m[1]
				pm["longitude"] = m[2]
			}
		}
	}
}

// ====== LLM chooser helpers ======

func extractQuestion(params interface{}) string {
	if params == nil {
		return ""
	}
	if m, ok := params.(map[string]interface{}); ok {
		if q, ok := m["question"].(string); ok {
			return q
		}
	}
	if raw, ok := params.(json.RawMessage); ok && len(raw) > 0 {
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err == nil {
			if q, ok := m["question"].(string); ok {
				return q
			}
		}
	}
	return ""
}

func chooseToolWithLLM(ctx context.Context, question string) string {
	defs, err := LoadToolDefs()
	if err != nil || len(defs) == 0 {
		return ""
	}

	// Filter hanya tool yang terdaftar di registry runtime
	regNames := map[string]struct{}{}
	for _, name := range List() {
		regNames[strings.ToLower(name)] = struct{}{}
	}
	var filtered []ToolDef
	for _, d := range defs {
		if _, ok := regNames[strings.ToLower(d.Name)]; ok {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		return ""
	}

	client, err := llm.NewFromEnv()
	if err != nil {
		return ""
	}

	system := llmSystemPrompt()
	user := buildChooserUserPrompt(question, filtered)

	// Timeout singkat agar responsif
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 4*time.Second)
		defer cancel()
	}

	out, err := client.Answer(ctx, system, user)
	if err != nil {
		return ""
	}

	out = sanitizeToolToken(strings.TrimSpace(out))
	for _, d := range filtered {
		if strings.EqualFold(out, d.Name) {
			return d.Name
		}
	}
	return ""
}

func llmSystemPrompt() string {
	return `You are a router agent for a weather service.
- Pick exactly ONE tool name from the list.
- Reply with the tool name only (e.g. get_forecast).
- If the question mentions alerts, warnings or advisories, prefer get_alerts.`
}

func buildChooserUserPrompt(question string, defs []ToolDef) string {
	var b strings.Builder
	b.WriteString("User question:\n")
	b.WriteString(question)
	b.WriteString("\n\nAvailable tools:\n")
	for i, d := range defs {
		desc := strings.TrimSpace(d.Description)
		if len(desc) > 300 {
			desc = desc[:300] + "…"
		}
		b.WriteString(fmt.Sprintf("%d) %s - %s\n", i+1, d.Name, desc))
	}
	b.WriteString("\nReply with the tool name only.")
	return b.String()
}

var nonWord = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

func sanitizeToolToken(s string) string {
	s = strings.TrimSpace(s)
	s = nonWord.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// internal/mcp/router_test.go

package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKeywordTool(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"Any weather alerts for TX?", "get_alerts"},
		{"is there a tornado warning near dallas", "get_alerts"},
		{"heat advisory in effect?", "get_alerts"},
		{"what's the forecast for tonight", "get_forecast"},
		{"temperature tomorrow morning", "get_forecast"},
		{"weather at 32.77,-96.79", "get_forecast"},
		{"how are you", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := keywordTool(c.question); got != c.want {
			t.Errorf("keywordTool(%q) = %q, want %q", c.question, got, c.want)
		}
	}
}

func TestEnrichParams(t *testing.T) {
	pm := map[string]any{"question": "Any alerts for TX right now?"}
	enrichParams("get_alerts", "Any alerts for TX right now?", pm)
	if pm["state"] != "TX" {
		t.Fatalf("expected state=TX, got %v", pm["state"])
	}

	// param dari caller tidak ditimpa
	pm = map[string]any{"state": "CA"}
	enrichParams("get_alerts", "alerts for TX", pm)
	if pm["state"] != "CA" {
		t.Fatalf("caller param overwritten: %v", pm["state"])
	}

	pm = map[string]any{"question": "forecast at 32.7767, -96.7970 please"}
	enrichParams("get_forecast", "forecast at 32.7767, -96.7970 please", pm)
	if pm["latitude"] != "32.7767" || pm["longitude"] != "-96.7970" {
		t.Fatalf("expected coords extracted, got lat=%v lon=%v", pm["latitude"], pm["longitude"])
	}
}

// Pastikan /mcp/route meneruskan params ke handler tool terdaftar.
func TestRouterHandler_ExplicitTool(t *testing.T) {
	var gotBody map[string]any
	RegisterFunc("echo_demo", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	body, _ := json.Marshal(map[string]any{
		"tool":   "echo_demo",
		"params": map[string]any{"msg": "hi"},
	})
	req := httptest.NewRequest(http.MethodPost, "/mcp/route", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	RouterHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", rec.Code, rec.Body.String())
	}
	if gotBody["msg"] != "hi" {
		t.Fatalf("handler did not receive forwarded params: %v", gotBody)
	}
}

// Keyword routing: question menyebut "alerts" -> get_alerts,
// state dari question masuk ke params.
func TestRouterHandler_KeywordRouting(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	var gotBody map[string]any
	RegisterFunc("get_alerts", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	body, _ := json.Marshal(map[string]any{
		"params": map[string]any{"question": "Any weather alerts for TX?"},
	})
	req := httptest.NewRequest(http.MethodPost, "/mcp/route", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	RouterHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", rec.Code, rec.Body.String())
	}
	if gotBody["state"] != "TX" {
		t.Fatalf("expected enriched state=TX, got %v", gotBody["state"])
	}
}

// Tool tidak dikenal -> envelope ToolResponse error, bukan HTTP error.
func TestRouterHandler_UnknownTool(t *testing.T) {
	body, _ := json.Marshal(map[string]any{"tool": "does_not_exist"})
	req := httptest.NewRequest(http.MethodPost, "/mcp/route", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	RouterHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 envelope, got %d", rec.Code)
	}
	var resp ToolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false for unknown tool")
	}
}

// Tanpa tool dan tanpa pertanyaan yang cocok -> tidak ada default.
func TestRouterHandler_NoToolMatched(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	body, _ := json.Marshal(map[string]any{
		"params": map[string]any{"question": "tell me a joke"},
	})
	req := httptest.NewRequest(http.MethodPost, "/mcp/route", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	RouterHandler(rec, req)

	var resp ToolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("expected error envelope, got %+v", resp)
	}
}

func TestRouterHandler_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp/route", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()

	RouterHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid json, got %d", rec.Code)
	}
}

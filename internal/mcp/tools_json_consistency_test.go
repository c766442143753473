// internal/mcp/tools_json_consistency_test.go

package mcp_test

import (
	"testing"

	apppkg "mcp-weather/internal/app"
	"mcp-weather/internal/mcp"
)

// Pastikan semua tool di mcp-tools.json SUDAH diregister.
// (Boleh ada tool terdaftar yang tidak tercantum di JSON; fokusnya
// file JSON tidak menyebut tool yang belum ada.)
func TestToolsJsonOnlyContainsRegisteredTools(t *testing.T) {
	// registrasi lewat wiring app
	_ = apppkg.New()

	defs, err := mcp.LoadToolDefs()
	if err != nil {
		t.Fatalf("LoadToolDefs error: %v", err)
	}
	if len(defs) == 0 {
		t.Fatalf("no tools found in mcp-tools.json")
	}

	reg := map[string]struct{}{}
	for _, name := range mcp.List() {
		reg[name] = struct{}{}
	}

	for _, d := range defs {
		if _, ok := reg[d.Name]; !ok {
			t.Fatalf("tool %q exists in mcp-tools.json but NOT registered in MCP registry", d.Name)
		}
	}
}

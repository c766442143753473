// mcp/protocol.go
// Definisi struktur dasar MCP protocol

package mcp

// ToolRequest: envelope request ke /mcp/route.
// Params diteruskan apa adanya ke handler tool terpilih.
type ToolRequest struct {
	Tool   string      `json:"tool"`
	Params interface{} `json:"params"`
}

// ToolResponse dipakai router saat tool tidak bisa dieksekusi.
// Handler tool sukses menulis payload-nya sendiri.
type ToolResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTsfixMCPServer creates a new MCP server with all tsfix tools
// registered. The projectPath is the root directory of the project whose
// build log is inspected.
func NewTsfixMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"tsfix",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}

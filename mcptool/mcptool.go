// Package mcptool exposes the workspace bridge over the Model Context
// Protocol. Each tool wraps one [notedown.Client] operation together with
// the markdown converter, so protocol clients exchange markdown while the
// API exchanges blocks.
//
// Domain failures (bad identifiers, API rejections) are reported as IsError
// tool results rather than Go errors so the calling model can self-correct.
package mcptool

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/notedown"
)

// New creates an MCP server with all workspace tools registered.
func New(client notedown.Client, version string) *server.MCPServer {
	s := server.NewMCPServer("notedown", version,
		server.WithToolCapabilities(false),
	)
	s.AddTool(searchTool(), searchHandler(client))
	s.AddTool(readPageTool(), readPageHandler(client))
	s.AddTool(createPageTool(), createPageHandler(client))
	s.AddTool(appendPageTool(), appendPageHandler(client))
	return s
}

package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gitlab-tools/mr-creator/internal/cmdutil"
	"github.com/gitlab-tools/mr-creator/internal/mcp/tools"
)

// NewServer creates and configures the MCP server with the merge request tools.
func NewServer(f *cmdutil.Factory) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gitlab-mr-creator",
		Version: f.Version,
	}, nil)

	tools.RegisterMergeRequestTools(server, f)

	return server
}

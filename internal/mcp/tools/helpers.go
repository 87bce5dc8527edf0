package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// plainResult wraps a plain string in a CallToolResult.
func plainResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

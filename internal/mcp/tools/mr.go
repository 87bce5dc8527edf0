package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gitlab-tools/mr-creator/internal/cmdutil"
	"github.com/gitlab-tools/mr-creator/internal/workflow"
)

// RegisterMergeRequestTools registers all merge request tools on the server.
func RegisterMergeRequestTools(server *mcp.Server, f *cmdutil.Factory) {
	registerCreateMergeRequest(server, f)
}

func registerCreateMergeRequest(server *mcp.Server, f *cmdutil.Factory) {
	type Input struct {
		Title       string `json:"title"                 jsonschema:"the title of the merge request"`
		Description string `json:"description,omitempty" jsonschema:"the description/body of the merge request"`
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_merge_request",
		Description: "Push the current branch and create a GitLab merge request for it",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in Input) (*mcp.CallToolResult, any, error) {
		// Failures come back as text, not as protocol errors: the calling
		// agent expects a message for either outcome.
		wf, err := f.Workflow()
		if err != nil {
			return plainResult("Error: " + err.Error()), nil, nil
		}
		result := wf.Run(ctx, workflow.Request{Title: in.Title, Description: in.Description})
		return plainResult(result.Message), nil, nil
	})
}

package cmd

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gitlab-tools/mr-creator/internal/cmdutil"
	mrmcp "github.com/gitlab-tools/mr-creator/internal/mcp"
)

// NewServeCmd creates the serve command.
func NewServeCmd(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Start a Model Context Protocol server over stdio, exposing the
create_merge_request tool to AI assistants such as Claude and any other
MCP-compatible client.

Configuration comes from GITLAB_USERNAME, PROJECT_DIR and TARGET_BRANCH
(environment or .env). The glab CLI must already be authenticated.`,
		Example: `  $ GITLAB_USERNAME=alice PROJECT_DIR=/work/app mr-creator serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}
			// Fail fast on bad configuration instead of on the first tool call.
			if err := cfg.Validate(); err != nil {
				return err
			}

			server := mrmcp.NewServer(f)
			fmt.Fprintln(f.IOStreams.ErrOut, "gitlab-mr-creator MCP server running on stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

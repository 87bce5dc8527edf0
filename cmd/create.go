package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitlab-tools/mr-creator/internal/cmdutil"
	"github.com/gitlab-tools/mr-creator/internal/workflow"
)

// NewCreateCmd creates the create command, which runs the merge request
// workflow directly without an MCP client.
func NewCreateCmd(f *cmdutil.Factory) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Push the current branch and create a merge request",
		Example: `  $ mr-creator create --title "Fix user login bug" \
      --description "Resolves issue with OAuth flow"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := f.Workflow()
			if err != nil {
				return err
			}

			result := wf.Run(cmd.Context(), workflow.Request{
				Title:       title,
				Description: description,
			})
			fmt.Fprintln(f.IOStreams.Out, result.Message)
			if !result.Success {
				return errors.New("merge request was not created")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "title of the merge request")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description of the merge request")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

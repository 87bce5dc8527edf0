package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitlab-tools/mr-creator/internal/cmdutil"
)

// NewRootCmd creates the root command for mr-creator.
func NewRootCmd(version string) *cobra.Command {
	f := cmdutil.NewFactory()
	f.Version = version

	cmd := &cobra.Command{
		Use:   "mr-creator <command> [flags]",
		Short: "GitLab merge request creator",
		Long: `Push the current branch and open a GitLab merge request against the
configured target branch, either directly from the command line or as an
MCP tool for AI assistants.`,
		Example: `  $ mr-creator create --title "Fix user login bug"
  $ mr-creator serve
  $ mr-creator doctor`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
	}
	cmd.SetVersionTemplate("mr-creator version {{.Version}}\n")

	cmd.AddCommand(NewServeCmd(f))
	cmd.AddCommand(NewCreateCmd(f))
	cmd.AddCommand(NewDoctorCmd(f))

	return cmd
}

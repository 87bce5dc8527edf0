package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/gitlab-tools/mr-creator/internal/cmdutil"
	"github.com/gitlab-tools/mr-creator/internal/git"
	"github.com/gitlab-tools/mr-creator/internal/run"
)

// NewDoctorCmd creates the doctor command, which checks that the
// configuration and the external CLIs are usable before the first tool call.
func NewDoctorCmd(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and required tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := f.IOStreams.Out
			pass, fail := "ok  ", "FAIL"
			if f.IOStreams.IsTerminal() {
				pass, fail = "✓", "✗"
			}

			problems := 0
			for _, bin := range []string{"git", "glab"} {
				path, err := exec.LookPath(bin)
				if err != nil {
					fmt.Fprintf(out, "%s %s not found on PATH\n", fail, bin)
					problems++
					continue
				}
				fmt.Fprintf(out, "%s %s (%s)\n", pass, bin, path)
			}

			cfg, err := f.Config()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(out, "%s configuration: %v\n", fail, err)
				problems++
			} else {
				fmt.Fprintf(out, "%s configuration (assignee %s, target %s)\n", pass, cfg.Username, cfg.TargetBranch)

				g := git.NewClient(cfg.ProjectDir, cfg.Remote, run.ExecRunner{})
				if ok, err := g.IsInsideWorkTree(cmd.Context()); err != nil || !ok {
					fmt.Fprintf(out, "%s %s is not a git working copy\n", fail, cfg.ProjectDir)
					problems++
				} else {
					fmt.Fprintf(out, "%s %s is a git working copy\n", pass, cfg.ProjectDir)
				}
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			fmt.Fprintln(out, "All checks passed.")
			return nil
		},
	}
}

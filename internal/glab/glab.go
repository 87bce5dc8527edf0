// Package glab invokes the GitLab CLI to create merge requests. The glab
// binary is assumed to be installed and already authenticated.
package glab

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitlab-tools/mr-creator/internal/run"
)

// CreateOptions are the parameters for a merge request.
type CreateOptions struct {
	Title        string
	Description  string
	SourceBranch string
	TargetBranch string
	Assignee     string
	// RemoveSourceBranch asks GitLab to delete the source branch on merge.
	RemoveSourceBranch bool
}

// MergeRequestCreationError carries glab's diagnostic output from a rejected
// merge request.
type MergeRequestCreationError struct {
	Output string
	Err    error
}

func (e *MergeRequestCreationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("creating merge request: %s", e.Output)
	}
	return fmt.Sprintf("creating merge request: %v", e.Err)
}

func (e *MergeRequestCreationError) Unwrap() error { return e.Err }

// Client runs glab commands in a single repository directory.
type Client struct {
	dir    string
	runner run.Runner
}

// NewClient creates a Client for the working copy at dir.
func NewClient(dir string, runner run.Runner) *Client {
	return &Client{dir: dir, runner: runner}
}

// CreateMergeRequest opens a merge request and returns glab's output, which
// includes the new merge request's URL. The description is passed through as
// an opaque string; multi-line and markdown content is not reformatted.
func (c *Client) CreateMergeRequest(ctx context.Context, opts CreateOptions) (string, error) {
	args := []string{
		"mr", "create",
		"--title", opts.Title,
		"--description", opts.Description,
		"--source-branch", opts.SourceBranch,
		"--target-branch", opts.TargetBranch,
		"--assignee", opts.Assignee,
	}
	if opts.RemoveSourceBranch {
		args = append(args, "--remove-source-branch")
	}
	// Skip glab's interactive confirmation.
	args = append(args, "--yes")

	stdout, stderr, err := c.runner.Run(ctx, c.dir, "glab", args...)
	if err != nil {
		return "", &MergeRequestCreationError{Output: strings.TrimSpace(stderr), Err: err}
	}
	return strings.TrimSpace(stdout), nil
}

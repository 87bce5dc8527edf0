// Package git invokes the git CLI against a fixed working copy.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitlab-tools/mr-creator/internal/run"
)

// BranchResolutionError reports that the current branch could not be
// determined, either because git failed or because HEAD is detached.
type BranchResolutionError struct {
	Output string
	Err    error
}

func (e *BranchResolutionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("could not determine current branch: %s", e.Output)
	}
	if e.Err != nil {
		return fmt.Sprintf("could not determine current branch: %v", e.Err)
	}
	return "could not determine current branch"
}

func (e *BranchResolutionError) Unwrap() error { return e.Err }

// PushError carries git's diagnostic output from a failed push.
type PushError struct {
	Branch string
	Output string
	Err    error
}

func (e *PushError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("pushing branch %s: %s", e.Branch, e.Output)
	}
	return fmt.Sprintf("pushing branch %s: %v", e.Branch, e.Err)
}

func (e *PushError) Unwrap() error { return e.Err }

// Client runs git commands in a single repository directory.
type Client struct {
	dir    string
	remote string
	runner run.Runner
}

// NewClient creates a Client for the working copy at dir, pushing to remote.
func NewClient(dir, remote string, runner run.Runner) *Client {
	return &Client{dir: dir, remote: remote, runner: runner}
}

// CurrentBranch returns the currently checked-out branch name.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	stdout, stderr, err := c.runner.Run(ctx, c.dir, "git", "branch", "--show-current")
	if err != nil {
		return "", &BranchResolutionError{Output: strings.TrimSpace(stderr), Err: err}
	}
	branch := strings.TrimSpace(stdout)
	if branch == "" {
		// Detached HEAD prints nothing.
		return "", &BranchResolutionError{}
	}
	return branch, nil
}

// Push publishes branch to the configured remote, establishing the upstream
// tracking reference if absent. Safe to repeat on an already-tracked branch.
func (c *Client) Push(ctx context.Context, branch string) error {
	_, stderr, err := c.runner.Run(ctx, c.dir, "git", "push", "-u", c.remote, branch)
	if err != nil {
		return &PushError{Branch: branch, Output: strings.TrimSpace(stderr), Err: err}
	}
	return nil
}

// IsInsideWorkTree reports whether the client's directory is part of a git
// working copy.
func (c *Client) IsInsideWorkTree(ctx context.Context) (bool, error) {
	stdout, _, err := c.runner.Run(ctx, c.dir, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(stdout) == "true", nil
}

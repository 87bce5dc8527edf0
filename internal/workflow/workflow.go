// Package workflow orchestrates branch publication and merge request
// creation as a single operation.
package workflow

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gitlab-tools/mr-creator/internal/config"
	"github.com/gitlab-tools/mr-creator/internal/glab"
)

// Request is the caller's input for one merge request.
type Request struct {
	Title       string
	Description string
}

// Result is the outcome of one workflow run. Failures are reported here as
// text rather than as Go errors, since the tool-call boundary expects a
// message for either outcome.
type Result struct {
	Success bool
	Message string
}

// InvalidInputError reports caller input rejected before any collaborator
// is invoked.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

// GitClient is the version-control collaborator. *git.Client satisfies it.
type GitClient interface {
	CurrentBranch(ctx context.Context) (string, error)
	Push(ctx context.Context, branch string) error
}

// MergeRequestCreator is the GitLab CLI collaborator. *glab.Client satisfies it.
type MergeRequestCreator interface {
	CreateMergeRequest(ctx context.Context, opts glab.CreateOptions) (string, error)
}

// Workflow pushes the current branch and opens a merge request against the
// configured target branch.
type Workflow struct {
	cfg *config.Config
	git GitClient
	mrs MergeRequestCreator
	log *zap.Logger
}

// New creates a Workflow. A nil logger disables diagnostics.
func New(cfg *config.Config, git GitClient, mrs MergeRequestCreator, log *zap.Logger) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{cfg: cfg, git: git, mrs: mrs, log: log}
}

// Run resolves the current branch, pushes it with upstream tracking, and
// creates the merge request. The three steps are sequential; a failed step
// short-circuits the rest. Not transactional: a branch pushed before a
// failed creation stays pushed, and re-running repeats the push as a no-op.
func (w *Workflow) Run(ctx context.Context, req Request) Result {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return w.failure(&InvalidInputError{Reason: "title must not be empty"})
	}

	branch, err := w.git.CurrentBranch(ctx)
	if err != nil {
		return w.failure(err)
	}
	w.log.Debug("resolved current branch", zap.String("branch", branch))

	if err := w.git.Push(ctx, branch); err != nil {
		return w.failure(err)
	}
	w.log.Info("pushed branch", zap.String("branch", branch), zap.String("remote", w.cfg.Remote))

	output, err := w.mrs.CreateMergeRequest(ctx, glab.CreateOptions{
		Title:              title,
		Description:        req.Description,
		SourceBranch:       branch,
		TargetBranch:       w.cfg.TargetBranch,
		Assignee:           w.cfg.Username,
		RemoveSourceBranch: true,
	})
	if err != nil {
		return w.failure(err)
	}
	w.log.Info("created merge request",
		zap.String("source", branch),
		zap.String("target", w.cfg.TargetBranch),
		zap.String("assignee", w.cfg.Username),
	)

	message := "Successfully created merge request!"
	if output != "" {
		message += "\n\n" + output
	}
	return Result{Success: true, Message: message}
}

func (w *Workflow) failure(err error) Result {
	w.log.Error("merge request workflow failed", zap.Error(err))
	return Result{Message: "Error: " + err.Error()}
}

package glab

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stdout string
	stderr string
	err    error

	dirs  []string
	calls [][]string
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	r.dirs = append(r.dirs, dir)
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.stdout, r.stderr, r.err
}

func TestCreateMergeRequest(t *testing.T) {
	runner := &fakeRunner{stdout: "!42 https://gitlab.com/acme/app/-/merge_requests/42\n"}
	client := NewClient("/work/app", runner)

	output, err := client.CreateMergeRequest(context.Background(), CreateOptions{
		Title:              "Fix user login bug",
		Description:        "Resolves issue with OAuth flow",
		SourceBranch:       "feature/oauth-fix",
		TargetBranch:       "staging",
		Assignee:           "alice",
		RemoveSourceBranch: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "!42 https://gitlab.com/acme/app/-/merge_requests/42", output)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"glab", "mr", "create",
		"--title", "Fix user login bug",
		"--description", "Resolves issue with OAuth flow",
		"--source-branch", "feature/oauth-fix",
		"--target-branch", "staging",
		"--assignee", "alice",
		"--remove-source-branch",
		"--yes",
	}, runner.calls[0])
	assert.Equal(t, "/work/app", runner.dirs[0])
}

func TestCreateMergeRequestEmptyDescription(t *testing.T) {
	// The description flag is always passed, mirroring the tool's contract
	// of forwarding the value as an opaque string.
	runner := &fakeRunner{}
	client := NewClient("/work/app", runner)

	_, err := client.CreateMergeRequest(context.Background(), CreateOptions{
		Title:        "Quick fix",
		SourceBranch: "hotfix",
		TargetBranch: "staging",
		Assignee:     "alice",
	})

	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "--description")
	assert.NotContains(t, runner.calls[0], "--remove-source-branch")
}

func TestCreateMergeRequestFailure(t *testing.T) {
	runner := &fakeRunner{
		stderr: "merge request already exists for this source branch",
		err:    errors.New("exit status 1"),
	}
	client := NewClient("/work/app", runner)

	_, err := client.CreateMergeRequest(context.Background(), CreateOptions{
		Title:        "Fix user login bug",
		SourceBranch: "feature/oauth-fix",
		TargetBranch: "staging",
		Assignee:     "alice",
	})

	var createErr *MergeRequestCreationError
	require.True(t, errors.As(err, &createErr))
	assert.Equal(t, "merge request already exists for this source branch", createErr.Output)
	assert.Contains(t, err.Error(), "already exists")
}

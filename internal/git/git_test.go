package git

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

func TestCurrentBranch(t *testing.T) {
	runner := &fakeRunner{stdout: "feature/oauth-fix\n"}
	client := NewClient("/work/app", "origin", runner)

	branch, err := client.CurrentBranch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "feature/oauth-fix", branch)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"git", "branch", "--show-current"}, runner.calls[0])
	assert.Equal(t, "/work/app", runner.dirs[0])
}

func TestCurrentBranchDetachedHead(t *testing.T) {
	// git prints nothing for a detached HEAD.
	runner := &fakeRunner{stdout: "\n"}
	client := NewClient("/work/app", "origin", runner)

	_, err := client.CurrentBranch(context.Background())

	var resErr *BranchResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Contains(t, err.Error(), "could not determine current branch")
}

func TestCurrentBranchGitFailure(t *testing.T) {
	runner := &fakeRunner{
		stderr: "fatal: not a git repository",
		err:    errors.New("exit status 128"),
	}
	client := NewClient("/work/app", "origin", runner)

	_, err := client.CurrentBranch(context.Background())

	var resErr *BranchResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Contains(t, err.Error(), "fatal: not a git repository")
}

func TestPush(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClient("/work/app", "upstream", runner)

	err := client.Push(context.Background(), "feature/oauth-fix")

	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"git", "push", "-u", "upstream", "feature/oauth-fix"}, runner.calls[0])
}

func TestPushFailure(t *testing.T) {
	runner := &fakeRunner{
		stderr: "error: failed to push some refs",
		err:    errors.New("exit status 1"),
	}
	client := NewClient("/work/app", "origin", runner)

	err := client.Push(context.Background(), "feature/oauth-fix")

	var pushErr *PushError
	require.True(t, errors.As(err, &pushErr))
	assert.Equal(t, "feature/oauth-fix", pushErr.Branch)
	assert.Equal(t, "error: failed to push some refs", pushErr.Output)
	assert.Contains(t, err.Error(), "failed to push some refs")
}

func TestIsInsideWorkTree(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeRunner
		want   bool
		hasErr bool
	}{
		{name: "inside", runner: &fakeRunner{stdout: "true\n"}, want: true},
		{name: "outside", runner: &fakeRunner{stdout: "false\n"}, want: false},
		{name: "git failure", runner: &fakeRunner{err: errors.New("exit status 128")}, hasErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("/work/app", "origin", tt.runner)
			ok, err := client.IsInsideWorkTree(context.Background())
			if tt.hasErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

// Package run executes external commands with separated output capture.
package run

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes an external command in a directory and returns its
// stdout and stderr. Implementations substitute fakes in tests so no
// real subprocesses are spawned.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	return out.String(), errOut.String(), err
}

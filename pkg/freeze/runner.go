package freeze

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner is an interface for executing external commands, allowing
// packaging runs to be stubbed in tests.
type CommandRunner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner is the default command runner that uses the real system.
type ExecRunner struct{}

// LookPath finds the path to an executable.
func (r *ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command in the given working directory and returns its
// captured stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

package viewer

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// ExecRunner runs programs with os/exec, buffering both output streams
// in full.
type ExecRunner struct {
	// Env, when non-nil, replaces the child's environment.
	Env []string
}

// Run starts name with args and waits for it to exit.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	// exit status is not inspected
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

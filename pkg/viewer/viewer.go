// Package viewer shows a window of a source file around a line by running
// bat and copying its output through.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grepview/grepview/pkg/types"
)

// Program is the external pretty printer, looked up on PATH.
const Program = "bat"

var (
	// ErrStart is returned when the viewer process could not be started.
	ErrStart = errors.New("starting viewer")
	// ErrWrite is returned when captured viewer output could not be written.
	ErrWrite = errors.New("writing viewer output")
)

// Output holds everything a viewer process wrote.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Runner runs an external program to completion and captures its output.
// A program that starts and exits with a non-zero status is not an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// Viewer invokes Program for a location and forwards its output.
type Viewer struct {
	runner Runner
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(v *Viewer) {
		v.runner = r
	}
}

// WithOutput sets where captured stdout and stderr are written.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(v *Viewer) {
		v.stdout = stdout
		v.stderr = stderr
	}
}

// New creates a Viewer that runs Program through ExecRunner and writes to
// the process's standard streams unless overridden.
func New(opts ...Option) *Viewer {
	v := &Viewer{
		runner: ExecRunner{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Invoke shows the window around loc.Line. It blocks until the viewer exits,
// then writes its stdout and stderr verbatim to the configured writers.
func (v *Viewer) Invoke(ctx context.Context, loc types.Location) error {
	args := Args(loc.Path, types.NewWindow(loc.Line))

	out, err := v.runner.Run(ctx, Program, args...)
	if err != nil {
		return fmt.Errorf("%w %s for %s: %w", ErrStart, Program, loc, err)
	}

	if _, err := v.stdout.Write(out.Stdout); err != nil {
		return fmt.Errorf("%w to stdout: %w", ErrWrite, err)
	}
	if _, err := v.stderr.Write(out.Stderr); err != nil {
		return fmt.Errorf("%w to stderr: %w", ErrWrite, err)
	}
	return nil
}

// Args builds the bat command line for path and w. The path is always last.
func Args(path string, w types.Window) []string {
	return []string{
		"--style=numbers",
		"--color=always",
		"--pager=never",
		fmt.Sprintf("--line-range=%d:%d", w.First, w.Last),
		fmt.Sprintf("--highlight-line=%d", w.Highlight),
		path,
	}
}

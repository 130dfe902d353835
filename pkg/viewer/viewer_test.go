package viewer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/grepview/grepview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and returns canned output.
type fakeRunner struct {
	calls []call
	out   Output
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Output, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.out, f.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestArgs(t *testing.T) {
	args := Args("foo.go", types.NewWindow(100))
	assert.Equal(t, []string{
		"--style=numbers",
		"--color=always",
		"--pager=never",
		"--line-range=87:126",
		"--highlight-line=100",
		"foo.go",
	}, args)
}

func TestArgs_ClampedWindow(t *testing.T) {
	args := Args(`c:\foo`, types.NewWindow(5))
	assert.Contains(t, args, "--line-range=1:40")
	assert.Contains(t, args, "--highlight-line=5")
	assert.Equal(t, `c:\foo`, args[len(args)-1])
}

func TestInvoke(t *testing.T) {
	runner := &fakeRunner{out: Output{
		Stdout: []byte("\x1b[38;5;231m  87 package main\x1b[0m\n"),
		Stderr: []byte("[bat warning]: something\n"),
	}}
	var stdout, stderr bytes.Buffer
	v := New(WithRunner(runner), WithOutput(&stdout, &stderr))

	err := v.Invoke(context.Background(), types.Location{Path: "main.go", Line: 100})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, Program, runner.calls[0].name)
	assert.Equal(t, Args("main.go", types.NewWindow(100)), runner.calls[0].args)

	// written through byte for byte, each to its own stream
	assert.Equal(t, runner.out.Stdout, stdout.Bytes())
	assert.Equal(t, runner.out.Stderr, stderr.Bytes())
}

func TestInvoke_StartFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("executable file not found in $PATH")}
	var stdout, stderr bytes.Buffer
	v := New(WithRunner(runner), WithOutput(&stdout, &stderr))

	err := v.Invoke(context.Background(), types.Location{Path: "main.go", Line: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStart)
	assert.Contains(t, err.Error(), "main.go:1")
	assert.Empty(t, stdout.Bytes())
	assert.Empty(t, stderr.Bytes())
}

func TestInvoke_WriteFailure(t *testing.T) {
	runner := &fakeRunner{out: Output{Stdout: []byte("x"), Stderr: []byte("y")}}

	t.Run("stdout", func(t *testing.T) {
		var stderr bytes.Buffer
		v := New(WithRunner(runner), WithOutput(failingWriter{}, &stderr))
		err := v.Invoke(context.Background(), types.Location{Path: "a", Line: 1})
		assert.ErrorIs(t, err, ErrWrite)
		assert.Empty(t, stderr.Bytes())
	})

	t.Run("stderr", func(t *testing.T) {
		var stdout bytes.Buffer
		v := New(WithRunner(runner), WithOutput(&stdout, failingWriter{}))
		err := v.Invoke(context.Background(), types.Location{Path: "a", Line: 1})
		assert.ErrorIs(t, err, ErrWrite)
		assert.Equal(t, "x", stdout.String())
	})
}

func TestNew_Defaults(t *testing.T) {
	v := New()
	assert.IsType(t, ExecRunner{}, v.runner)
	assert.NotNil(t, v.stdout)
	assert.NotNil(t, v.stderr)
}

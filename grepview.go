// Package grepview turns grep and ag result lines into highlighted previews.
//
// Each line of the form path:line:column:content is parsed and the file is
// shown through bat with a 40 line window around the reported line.
//
// # Basic Usage
//
//	n, err := grepview.Show(ctx, []string{
//	    "main.go:42:7:\tfmt.Println(x)",
//	    `c:\src\util.go:10:1: func helper() {`,
//	})
//
// Lines that do not look like grep output are skipped. The first viewer
// failure stops processing and is returned.
//
// # Parsing Only
//
//	loc, ok := grepview.Parse("main.go:42:7: fmt.Println(x)")
//	if ok {
//	    fmt.Println(loc.Path, loc.Line)
//	}
package grepview

import (
	"context"

	"github.com/grepview/grepview/pkg/grepline"
	"github.com/grepview/grepview/pkg/types"
	"github.com/grepview/grepview/pkg/viewer"
)

// Re-export commonly used types for convenience.
type (
	// Location is a parsed path and line number.
	Location = types.Location

	// Window is the line range shown around a location.
	Window = types.Window

	// Option configures the viewer used by Show.
	Option = viewer.Option
)

// Re-exported viewer options and errors.
var (
	WithRunner = viewer.WithRunner
	WithOutput = viewer.WithOutput

	ErrStart = viewer.ErrStart
	ErrWrite = viewer.ErrWrite
)

// Parse extracts the path and line number from a grep result line.
func Parse(raw string) (Location, bool) {
	return grepline.Parse(raw)
}

// NewWindow computes the display window around line.
func NewWindow(line uint) Window {
	return types.NewWindow(line)
}

// Show previews every parseable line in order, one viewer run at a time.
// It returns the number of lines shown and stops at the first viewer error.
func Show(ctx context.Context, lines []string, opts ...Option) (int, error) {
	v := viewer.New(opts...)

	shown := 0
	for _, raw := range lines {
		loc, ok := grepline.Parse(raw)
		if !ok {
			continue
		}
		if err := v.Invoke(ctx, loc); err != nil {
			return shown, err
		}
		shown++
	}
	return shown, nil
}

package types

import "fmt"

// Location is a file path and the 1-based line a grep result points at.
// Path is never empty for a Location produced by the parser.
type Location struct {
	Path string `json:"path" yaml:"path"`
	Line uint   `json:"line" yaml:"line"`
}

// String renders the location in path:line form.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

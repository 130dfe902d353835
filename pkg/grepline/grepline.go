// Package grepline recovers file locations from grep and ag style result
// lines of the form path:line:column:content.
//
// The path and the content may both contain colons. Content is always
// dropped, so only the path side needs care: a single-letter first fragment
// followed by a fragment starting with a backslash is read as a drive
// prefix (c:\src\main.go) and keeps its colon.
package grepline

import (
	"strconv"
	"strings"

	"github.com/grepview/grepview/pkg/types"
)

const (
	separator      = ":"
	driveSeparator = '\\'

	// path, line, column and at least one content fragment
	minFragments = 4
)

// Result pairs a raw argument with what Parse made of it.
type Result struct {
	Raw      string          `json:"raw" yaml:"raw"`
	Location *types.Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// OK reports whether the raw line parsed.
func (r Result) OK() bool {
	return r.Location != nil
}

// Parse extracts the path and line number from raw. The second return value
// is false when raw does not have enough fields, its line field is not a
// non-negative decimal number, or the path comes out empty.
func Parse(raw string) (types.Location, bool) {
	fragments := strings.Split(raw, separator)
	if len(fragments) < minFragments {
		return types.Location{}, false
	}

	// content, then the column, come off the end
	fragments = fragments[:len(fragments)-ContentFragments(fragments)]
	fragments = fragments[:len(fragments)-1]

	line, ok := parseLine(fragments[len(fragments)-1])
	if !ok {
		return types.Location{}, false
	}
	fragments = fragments[:len(fragments)-1]

	path := strings.Join(fragments, separator)
	if path == "" {
		return types.Location{}, false
	}

	return types.Location{Path: path, Line: line}, true
}

// ParseAll parses every argument in order. Lines that fail to parse are kept
// with a nil Location.
func ParseAll(args []string) []Result {
	results := make([]Result, 0, len(args))
	for _, raw := range args {
		r := Result{Raw: raw}
		if loc, ok := Parse(raw); ok {
			r.Location = &loc
		}
		results = append(results, r)
	}
	return results
}

// ContentFragments returns how many trailing fragments hold the matched text.
// fragments must have at least four entries.
func ContentFragments(fragments []string) int {
	if HasDrivePrefix(fragments) {
		return len(fragments) - 4
	}
	return len(fragments) - 3
}

// HasDrivePrefix reports whether the first two fragments form a drive
// qualified path such as c:\foo.
func HasDrivePrefix(fragments []string) bool {
	if len(fragments) < 2 {
		return false
	}
	return len(fragments[0]) == 1 &&
		len(fragments[1]) > 0 && fragments[1][0] == driveSeparator
}

func parseLine(field string) (uint, bool) {
	// unsigned parsers conventionally accept an explicit plus sign
	n, err := strconv.ParseUint(strings.TrimPrefix(field, "+"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

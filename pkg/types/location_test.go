package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	loc := Location{Path: "pkg/foo.go", Line: 42}
	assert.Equal(t, "pkg/foo.go", loc.Path)
	assert.Equal(t, uint(42), loc.Line)
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{name: "plain path", loc: Location{Path: "foo", Line: 10}, want: "foo:10"},
		{name: "drive letter path", loc: Location{Path: `c:\foo`, Line: 10}, want: `c:\foo:10`},
		{name: "line zero", loc: Location{Path: "foo", Line: 0}, want: "foo:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}
}

package types

import "math"

// WindowSize is the number of lines shown around a match.
const WindowSize uint = 40

// Window is the inclusive line range handed to the viewer and the line
// highlighted inside it.
type Window struct {
	First     uint `json:"first" yaml:"first"`
	Last      uint `json:"last" yaml:"last"`
	Highlight uint `json:"highlight" yaml:"highlight"`
}

// NewWindow computes the display window for center. The highlighted line sits
// a third of the way down the window. First never drops below line 1 and
// Last saturates at the largest representable line.
func NewWindow(center uint) Window {
	lead := WindowSize / 3

	first := uint(1)
	if center > lead {
		first = center - lead
	}

	last := uint(math.MaxUint)
	if first <= math.MaxUint-(WindowSize-1) {
		last = first + WindowSize - 1
	}

	return Window{First: first, Last: last, Highlight: center}
}

// Len returns the number of lines covered by the window.
func (w Window) Len() uint {
	return w.Last - w.First + 1
}

// Package gallery models the image-gallery modal of a project page.
//
// A State is a value: every transition returns a new State and leaves the
// receiver untouched. The server renders one State per request, derived from
// the "image" query parameter, and links each control to the URL of the State
// it would transition to.
package gallery

import (
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/circular"
)

// QueryParam is the query parameter carrying the open image index.
const QueryParam = "image"

// State is either Closed or Open(index) over a gallery of n images.
type State struct {
	n     int
	open  bool
	index int
}

// New returns the Closed state for a gallery of n images.
func New(n int) State {
	if n < 0 {
		n = 0
	}
	return State{n: n}
}

// Parse derives the state from a raw query value. Anything that is not a valid
// index into the gallery yields Closed.
func Parse(n int, raw string) State {
	s := New(n)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return s
	}
	return s.Select(i)
}

// Select opens the modal on image i. Out-of-range indexes leave the state as is.
func (s State) Select(i int) State {
	if i < 0 || i >= s.n {
		return s
	}
	s.open = true
	s.index = i
	return s
}

// Close closes the modal.
func (s State) Close() State {
	s.open = false
	s.index = 0
	return s
}

// Next advances to the following image, wrapping after the last one.
func (s State) Next() State {
	if !s.open {
		return s
	}
	s.index = circular.Next(s.index, s.n)
	return s
}

// Prev moves to the preceding image, wrapping before the first one.
func (s State) Prev() State {
	if !s.open {
		return s
	}
	s.index = circular.Prev(s.index, s.n)
	return s
}

func (s State) IsOpen() bool { return s.open }

// Index returns the open image index, or false when Closed.
func (s State) Index() (int, bool) {
	if !s.open {
		return 0, false
	}
	return s.index, true
}

func (s State) Len() int { return s.n }

// Selectable reports whether any image can be opened at all.
func (s State) Selectable() bool { return s.n > 0 }

// ShowNavigation reports whether previous/next controls are rendered.
// A single image has nothing to navigate to.
func (s State) ShowNavigation() bool { return s.n > 1 }

// Query returns the query value that reproduces s, or "" for Closed.
func (s State) Query() string {
	if !s.open {
		return ""
	}
	return strconv.Itoa(s.index)
}

func (s State) String() string {
	if !s.open {
		return "Closed"
	}
	return "Open(" + strconv.Itoa(s.index) + ")"
}

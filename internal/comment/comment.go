// Package comment derives decorative underline comments from a selection.
package comment

import (
	"strings"
	"unicode/utf8"
)

// Decorator is the character repeated after the comment style.
const Decorator = "="

// SpaceIndex is the result of searching a selection for its first space.
type SpaceIndex struct {
	index int
	found bool
}

// Found returns a SpaceIndex for a space at rune index i.
func Found(i int) SpaceIndex {
	return SpaceIndex{index: i, found: true}
}

// NotFound returns a SpaceIndex for a selection without spaces.
func NotFound() SpaceIndex {
	return SpaceIndex{}
}

// Found reports whether a space was found.
func (s SpaceIndex) Found() bool {
	return s.found
}

// Offset returns the rune index of the space, or -1 when there is none.
func (s SpaceIndex) Offset() int {
	if !s.found {
		return -1
	}
	return s.index
}

// FindSpace locates the first space character in selection.
func FindSpace(selection string) SpaceIndex {
	i := strings.IndexByte(selection, ' ')
	if i < 0 {
		return NotFound()
	}
	return Found(utf8.RuneCountInString(selection[:i]))
}

// Options holds the values derived from a selection.
type Options struct {
	// CharsToDelete is the rune index of the first space, -1 if none.
	CharsToDelete int
	// Style is the leading token of the selection, e.g. "//" or "#".
	Style string
}

// DeriveOptions computes the comment options for selection.
// A selection without a space yields an empty style and CharsToDelete -1.
func DeriveOptions(selection string) Options {
	idx := FindSpace(selection)
	if !idx.Found() {
		return Options{CharsToDelete: idx.Offset()}
	}
	return Options{
		CharsToDelete: idx.Offset(),
		Style:         selection[:strings.IndexByte(selection, ' ')],
	}
}

// DecoratorLength returns the number of decorator characters for selection.
// It is never negative.
func DecoratorLength(selection string, opts Options) int {
	n := utf8.RuneCountInString(selection) - 1 - opts.CharsToDelete
	if n < 0 {
		return 0
	}
	return n
}

// Generate builds the decorative comment for selection.
//
//	Generate("// hello world") == "// ==========="
func Generate(selection string) string {
	opts := DeriveOptions(selection)
	return opts.Style + " " + strings.Repeat(Decorator, DecoratorLength(selection, opts))
}

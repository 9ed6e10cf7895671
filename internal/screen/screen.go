// Package screen defines display geometry values shared by the parser core,
// the record catalog, and the settings layer.
package screen

import "fmt"

// Source records where a Size came from.
type Source int

const (
	// SourceDefault marks a size inherited from the file-level display size.
	SourceDefault Source = iota
	// SourceWindow marks a size taken from a record's window keyword.
	SourceWindow
)

// Size describes a display area. OriginRow/OriginCol are zero for
// file-level sizes and carry the window start position for window sizes.
type Size struct {
	Rows   int
	Cols   int
	Label  string
	Origin Origin
	Source Source
}

// Origin is a 1-based screen position.
type Origin struct {
	Row int
	Col int
}

// Standard display geometries. DS3 is the implicit default when a source
// file declares no display size of its own.
var (
	DS3 = Size{Rows: 24, Cols: 80, Label: "*DS3"}
	DS4 = Size{Rows: 27, Cols: 132, Label: "*DS4"}
)

// String renders the size for logs and the outline view, e.g. "24x80 *DS3"
// or "7x40 @5,10" for a window.
func (s Size) String() string {
	out := fmt.Sprintf("%dx%d", s.Rows, s.Cols)
	if s.Label != "" {
		out += " " + s.Label
	}
	if s.Source == SourceWindow {
		out += fmt.Sprintf(" @%d,%d", s.Origin.Row, s.Origin.Col)
	}
	return out
}

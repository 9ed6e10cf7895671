package dds

import (
	"fmt"

	"github.com/vk/dspfmodel/internal/catalog"
	"github.com/vk/dspfmodel/internal/screen"
)

// Kind discriminates the element variants produced by classification.
type Kind int

const (
	KindFile Kind = iota
	KindRecord
	KindField
	KindConstant
	KindAttribute
)

// String implements fmt.Stringer for log output and the outline view.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindRecord:
		return "record"
	case KindField:
		return "field"
	case KindConstant:
		return "constant"
	case KindAttribute:
		return "attribute"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Element is the closed set of parsed source elements. Consumers dispatch
// by type switch over *File, *Record, *Field, *Constant and *Attribute.
type Element interface {
	Kind() Kind
	// LineIndex is the element's first physical source line.
	LineIndex() int
}

// Indicator is one conditioning indicator decoded from a line's indicator
// area: a number in 1..99, optionally negated.
type Indicator struct {
	Number  int
	Negated bool
}

// String renders the indicator the way the source spells it, e.g. "01" or
// "N02".
func (in Indicator) String() string {
	if in.Negated {
		return fmt.Sprintf("N%02d", in.Number)
	}
	return fmt.Sprintf("%02d", in.Number)
}

// Attribute is one merged keyword text plus the indicators conditioning
// it. Attributes never survive into the final element list on their own;
// the parent linker folds each one into exactly one owner.
type Attribute struct {
	Text       string
	Indicators []Indicator
	// Line/LastLine span the physical lines the keyword text was merged
	// from. LastLine equals Line when no continuation was involved.
	Line     int
	LastLine int
}

func (*Attribute) Kind() Kind       { return KindAttribute }
func (a *Attribute) LineIndex() int { return a.Line }

// File is the root sentinel. It is always element zero of a parsed model
// and owns the file-level keywords (display size, function keys, ...).
type File struct {
	Attributes []Attribute
}

func (*File) Kind() Kind     { return KindFile }
func (*File) LineIndex() int { return 0 }

// Record is a named group of fields and constants displayed together.
type Record struct {
	Name       string
	Attributes []Attribute
	StartLine  int
	// EndLine is assigned only after the full document walk; until then it
	// is zero.
	EndLine int
	Size    screen.Size
}

func (*Record) Kind() Kind       { return KindRecord }
func (r *Record) LineIndex() int { return r.StartLine }

// Field is a named, typed, positioned element within a record. Row and Col
// are 1-based; zero means the position is absent, which is always the case
// for hidden fields. Decimals is -1 when the decimals column is blank.
type Field struct {
	Name       string
	Type       byte
	Length     int
	Decimals   int
	Usage      byte
	Row        int
	Col        int
	Hidden     bool
	Referenced bool
	Record     string
	Line       int
	Attributes []Attribute
	Indicators []Indicator
}

func (*Field) Kind() Kind       { return KindField }
func (f *Field) LineIndex() int { return f.Line }

// Constant is a positioned literal. Text keeps the quotes and is the
// continuation-merged form when the literal spans physical lines.
type Constant struct {
	Text       string
	Row        int
	Col        int
	Record     string
	Line       int
	LastLine   int
	Attributes []Attribute
	Indicators []Indicator
}

func (*Constant) Kind() Kind       { return KindConstant }
func (c *Constant) LineIndex() int { return c.Line }

// Model is the complete result of one parse: the ordered element list
// (File sentinel first, attribute elements already folded away), the
// flattened record catalog, and the resolved display sizes.
type Model struct {
	Elements    []Element
	Catalog     *catalog.Catalog
	DefaultSize screen.Size
	// AltSize is the secondary display size when the file declares two
	// geometries, nil otherwise.
	AltSize *screen.Size
	// Lines is the physical line count of the parsed text.
	Lines int
}

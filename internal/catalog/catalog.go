// Package catalog holds the flattened per-record mirror of a parsed
// display-file model. Editing and navigation tooling reads this catalog to
// look up a record's fields, constants and keyword strings by name without
// walking the element tree.
//
// A Catalog is a per-parse value: every parse builds a fresh one and the
// caller swaps its stored catalog atomically. Nothing here is shared
// between parses.
package catalog

import "github.com/vk/dspfmodel/internal/screen"

// FieldInfo is the flattened view of one named field inside a record.
type FieldInfo struct {
	Name       string
	Row        int
	Col        int
	Length     int
	Attributes []string
	Indicators []string
}

// ConstantInfo is the flattened view of one positioned literal inside a
// record. Text keeps the surrounding quotes and any continuation-merged
// content verbatim.
type ConstantInfo struct {
	Text       string
	Row        int
	Col        int
	Attributes []string
	Indicators []string
}

// Entry mirrors one record definition.
type Entry struct {
	RecordName string
	Attributes []string
	Fields     []FieldInfo
	Constants  []ConstantInfo
	StartLine  int
	EndLine    int
	Size       screen.Size
}

// Catalog is an ordered, name-indexed set of record entries.
type Catalog struct {
	entries []*Entry
	byName  map[string]*Entry
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]*Entry)}
}

// Add seeds an entry for a record name. A duplicate name is not an error:
// the first entry wins and is returned unchanged, so callers can mirror the
// "first occurrence wins" rule without checking beforehand.
func (c *Catalog) Add(name string, startLine int) *Entry {
	if e, ok := c.byName[name]; ok {
		return e
	}
	e := &Entry{RecordName: name, StartLine: startLine}
	c.entries = append(c.entries, e)
	c.byName[name] = e
	return e
}

// Record looks an entry up by record name.
func (c *Catalog) Record(name string) (*Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Records returns all entries in insertion (source) order. The returned
// slice is shared with the catalog and must not be reordered by callers.
func (c *Catalog) Records() []*Entry {
	return c.entries
}

// Len reports the number of record entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// AddField appends a flattened field unless the name is already taken
// within the entry. Reports whether the field was added.
func (e *Entry) AddField(f FieldInfo) bool {
	for _, have := range e.Fields {
		if have.Name == f.Name {
			return false
		}
	}
	e.Fields = append(e.Fields, f)
	return true
}

// AddConstant appends a flattened constant unless the same text is already
// present within the entry. Reports whether the constant was added.
func (e *Entry) AddConstant(ci ConstantInfo) bool {
	for _, have := range e.Constants {
		if have.Text == ci.Text {
			return false
		}
	}
	e.Constants = append(e.Constants, ci)
	return true
}

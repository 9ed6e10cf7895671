package dds

import (
	"strings"

	"github.com/vk/dspfmodel/internal/catalog"
	"github.com/vk/dspfmodel/internal/screen"
)

// Parse builds the structural model for a complete document text using the
// standard 24x80 default display size. See ParseWithDefault.
func Parse(text string) *Model {
	return ParseWithDefault(text, screen.DS3)
}

// ParseWithDefault builds the structural model for a complete document
// text. Every call is a full reparse from nothing; the function holds no
// state between calls and two calls over the same text produce equal
// models.
//
// The fallback size applies when the file declares no display size
// keyword of its own.
func ParseWithDefault(text string, fallback screen.Size) *Model {
	raw := strings.Split(text, "\n")
	lines := make([]line, len(raw))
	for i, r := range raw {
		lines[i] = newLine(r)
	}

	elements := walk(lines)
	cat := catalog.New()

	linkAttributes(elements)
	linkOwners(elements, cat)
	elements = dropAttributes(elements)
	model := &Model{
		Elements: elements,
		Catalog:  cat,
		Lines:    len(lines),
	}
	model.DefaultSize, model.AltSize = fileSize(elements, fallback)
	applySizes(elements, cat, model.DefaultSize)
	assignEndLines(elements, cat, len(lines))
	return model
}

// walk drives the classifier across all lines, advancing the cursor past
// each element's consumed span so multi-line constants and keyword lists
// are visited exactly once. The element list always begins with the File
// sentinel.
func walk(lines []line) []Element {
	elements := []Element{&File{}}
	i := 0
	for i < len(lines) {
		elem, last := classify(lines, i)
		if elem != nil {
			elements = append(elements, elem)
		}
		i = last + 1
	}
	return elements
}

// Package dds parses fixed-column display-file source into an in-memory
// structural model: a file root, record definitions, their fields and
// constants, and the keyword attributes conditioning them.
//
// Parse is a pure function over the complete document text. It never
// returns an error: unrecognized lines yield no element, truncated lines
// degrade to empty column slices, and malformed keyword text is stored
// verbatim for downstream consumers to interpret. A single bad line can
// only cost that line's element, never the rest of the document.
package dds

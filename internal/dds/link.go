package dds

import "github.com/vk/dspfmodel/internal/catalog"

// linkAttributes is the first linking pass: each attribute element is
// folded into the nearest preceding element that can own keywords (field,
// constant, record or the file root) with a strictly smaller line index.
// An attribute with no eligible owner is dropped silently.
func linkAttributes(elements []Element) {
	for idx, e := range elements {
		attr, ok := e.(*Attribute)
		if !ok {
			continue
		}
		for j := idx - 1; j >= 0; j-- {
			owner := elements[j]
			if owner.Kind() == KindAttribute || owner.LineIndex() >= attr.Line {
				continue
			}
			switch o := owner.(type) {
			case *File:
				o.Attributes = append(o.Attributes, *attr)
			case *Record:
				o.Attributes = append(o.Attributes, *attr)
			case *Field:
				o.Attributes = append(o.Attributes, *attr)
			case *Constant:
				o.Attributes = append(o.Attributes, *attr)
			}
			break
		}
	}
}

// linkOwners is the second linking pass: every field and constant is
// attached to the nearest preceding record, and a flattened mirror is
// appended to that record's catalog entry. Hidden fields keep their
// owning record but never enter the catalog. Duplicate names within a
// record are dropped silently, first occurrence wins.
func linkOwners(elements []Element, cat *catalog.Catalog) {
	for _, e := range elements {
		if rec, ok := e.(*Record); ok {
			entry := cat.Add(rec.Name, rec.StartLine)
			// A later record reusing the name keeps the first entry intact.
			if entry.StartLine == rec.StartLine {
				entry.Attributes = attributeStrings(rec.Attributes)
			}
		}
	}

	for idx, e := range elements {
		switch el := e.(type) {
		case *Field:
			rec := precedingRecord(elements, idx, el.Line)
			if rec == nil {
				continue
			}
			el.Record = rec.Name
			if el.Hidden {
				continue
			}
			if entry, ok := cat.Record(rec.Name); ok {
				entry.AddField(catalog.FieldInfo{
					Name:       el.Name,
					Row:        el.Row,
					Col:        el.Col,
					Length:     el.Length,
					Attributes: attributeStrings(el.Attributes),
					Indicators: indicatorStrings(el.Indicators),
				})
			}
		case *Constant:
			rec := precedingRecord(elements, idx, el.Line)
			if rec == nil {
				continue
			}
			el.Record = rec.Name
			if entry, ok := cat.Record(rec.Name); ok {
				entry.AddConstant(catalog.ConstantInfo{
					Text:       el.Text,
					Row:        el.Row,
					Col:        el.Col,
					Attributes: attributeStrings(el.Attributes),
					Indicators: indicatorStrings(el.Indicators),
				})
			}
		}
	}
}

// precedingRecord scans backwards from idx for the nearest record that
// starts before the given line. Nil means the element precedes all
// records and stays unowned.
func precedingRecord(elements []Element, idx, lineIdx int) *Record {
	for j := idx - 1; j >= 0; j-- {
		if rec, ok := elements[j].(*Record); ok && rec.StartLine < lineIdx {
			return rec
		}
	}
	return nil
}

// dropAttributes filters attribute elements out of the final list; their
// text lives on only inside the owners collected by linkAttributes.
func dropAttributes(elements []Element) []Element {
	out := elements[:0]
	for _, e := range elements {
		if e.Kind() != KindAttribute {
			out = append(out, e)
		}
	}
	return out
}

// assignEndLines computes each record's last source line: one before the
// next record, or the end of the document for the final record. Taken in
// line order the start/end pairs cover the tail of the document without
// gaps or overlaps.
func assignEndLines(elements []Element, cat *catalog.Catalog, totalLines int) {
	var records []*Record
	for _, e := range elements {
		if rec, ok := e.(*Record); ok {
			records = append(records, rec)
		}
	}
	for i, rec := range records {
		if i+1 < len(records) {
			rec.EndLine = records[i+1].StartLine - 1
		} else {
			rec.EndLine = totalLines - 1
		}
		if entry, ok := cat.Record(rec.Name); ok && entry.StartLine == rec.StartLine {
			entry.EndLine = rec.EndLine
		}
	}
}

// attributeStrings flattens attribute values for the catalog mirror.
func attributeStrings(attrs []Attribute) []string {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.Text
	}
	return out
}

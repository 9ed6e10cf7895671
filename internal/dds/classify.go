package dds

import "strings"

// classify builds at most one element from the logical line starting at
// index i. The variants are tested in priority order: comment, record,
// field, constant, bare attribute. It returns the element (nil when the
// line yields none) and the index of the last physical line consumed, so
// the walker can skip continuation lines in one step.
func classify(lines []line, i int) (Element, int) {
	l := lines[i]

	if l.isComment() {
		return nil, i
	}

	if l.isRecord() {
		return classifyRecord(lines, i)
	}

	if l.name() != "" {
		return classifyField(lines, i)
	}

	if l.rowDigits() != "" && l.colDigits() != "" {
		return classifyConstant(lines, i)
	}

	// Bare attribute line: keyword text with no name and no position.
	// Indicators on the line condition the keyword itself.
	text, last := mergeKeyword(lines, i)
	if text == "" {
		// Blank filler, not an error.
		return nil, i
	}
	return &Attribute{
		Text:       text,
		Indicators: decodeIndicators(l.indicatorArea()),
		Line:       i,
		LastLine:   last,
	}, last
}

// classifyRecord builds a record element. Record-level keywords never
// take the line's indicators.
func classifyRecord(lines []line, i int) (Element, int) {
	l := lines[i]
	rec := &Record{
		Name:      l.name(),
		StartLine: i,
	}
	text, last := mergeKeyword(lines, i)
	if text != "" {
		rec.Attributes = append(rec.Attributes, Attribute{Text: text, Line: i, LastLine: last})
	}
	return rec, last
}

// classifyField builds a field element from a line with a non-empty name
// region. A hidden usage drops the screen position.
func classifyField(lines []line, i int) (Element, int) {
	l := lines[i]
	f := &Field{
		Name:       l.name(),
		Type:       l.typeChar(),
		Length:     number(l.lengthDigits(), 0),
		Decimals:   number(l.decimalDigits(), -1),
		Usage:      l.usageChar(),
		Row:        number(l.rowDigits(), 0),
		Col:        number(l.colDigits(), 0),
		Referenced: l.isReference(),
		Line:       i,
		Indicators: decodeIndicators(l.indicatorArea()),
	}
	if f.Usage == 'H' {
		f.Hidden = true
		f.Row, f.Col = 0, 0
	}
	text, last := mergeKeyword(lines, i)
	if text != "" {
		f.Attributes = append(f.Attributes, Attribute{Text: text, Line: i, LastLine: last})
	}
	return f, last
}

// classifyConstant merges the literal across its continuation lines, then
// keeps consuming following bare attribute lines as the constant's own
// keywords. The collection stops at the first line that starts any other
// element, so a neighboring field or constant is never swallowed.
func classifyConstant(lines []line, i int) (Element, int) {
	l := lines[i]
	text, last := mergeConstant(lines, i)
	c := &Constant{
		Text:       text,
		Row:        number(l.rowDigits(), 0),
		Col:        number(l.colDigits(), 0),
		Line:       i,
		LastLine:   last,
		Indicators: decodeIndicators(l.indicatorArea()),
	}

	for next := last + 1; next < len(lines); {
		if !isBareAttributeLine(lines[next]) {
			break
		}
		kw, kwLast := mergeKeyword(lines, next)
		c.Attributes = append(c.Attributes, Attribute{
			Text:       kw,
			Indicators: decodeIndicators(lines[next].indicatorArea()),
			Line:       next,
			LastLine:   kwLast,
		})
		last = kwLast
		next = kwLast + 1
	}
	c.LastLine = last
	return c, last
}

// isBareAttributeLine reports whether the line holds keyword text only:
// no comment marker, no record flag, no name, no position.
func isBareAttributeLine(l line) bool {
	if l.isComment() || l.isRecord() || l.name() != "" {
		return false
	}
	if l.rowDigits() != "" || l.colDigits() != "" {
		return false
	}
	return strings.TrimSpace(l.keywordArea()) != ""
}

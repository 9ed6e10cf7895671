package dds

import "strings"

// mergeConstant stitches a literal that spans physical lines. The buffer
// seeds from the current line's constant area; while the current line
// carries the trailing continuation marker, the marker (the buffer's last
// character) is dropped and the next line's constant area is appended.
// Returns the trimmed text and the index of the last line consumed.
func mergeConstant(lines []line, start int) (string, int) {
	i := start
	buf := lines[i].constantArea()
	for lines[i].continues() && i+1 < len(lines) {
		if len(buf) > 0 {
			buf = buf[:len(buf)-1]
		}
		i++
		buf += lines[i].constantArea()
	}
	return strings.TrimSpace(buf), i
}

// mergeKeyword stitches keyword-area text across lines. Unlike the
// constant variant the marker here is the last non-blank character of the
// keyword area itself: while the trimmed slice ends in '-', that marker is
// stripped and the next line's keyword area appended. Returns the trimmed
// text and the index of the last line consumed.
func mergeKeyword(lines []line, start int) (string, int) {
	i := start
	buf := lines[i].keywordArea()
	for {
		t := strings.TrimRight(buf, " ")
		if !strings.HasSuffix(t, "-") || i+1 >= len(lines) {
			break
		}
		buf = t[:len(t)-1]
		i++
		buf += lines[i].keywordArea()
	}
	return strings.TrimSpace(buf), i
}

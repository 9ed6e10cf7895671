package dds

import (
	"strconv"
	"strings"
)

// seqWidth is the leading sequence-number area of every raw source line.
// All column offsets below apply after this prefix is stripped, so offset
// 0 is the form-type character.
const seqWidth = 5

// Fixed column contract of one stripped line. The row and column slices
// overlap; that layout is inherited from the observed source format and is
// preserved verbatim rather than corrected.
const (
	commentEnd     = 2  // [0:2] == "A*" marks a comment line
	indicatorFrom  = 2  // [2:11] three 3-character indicator slots
	indicatorTo    = 11 //
	recordFlagAt   = 11 // 'R' marks a record definition line
	nameFrom       = 13 // [13:23] name region, blank padded
	nameTo         = 23 //
	refFlagAt      = 23 // 'R' marks a referenced field
	lengthFrom     = 27 // [27:29] field length digits
	lengthTo       = 29 //
	typeAt         = 29 // data type character
	decimalsFrom   = 30 // [30:32] decimal position digits
	decimalsTo     = 32 //
	usageAt        = 32 // usage character, 'H' hides the field
	rowFrom        = 34 // [34:37] row digits
	rowTo          = 37 //
	colFrom        = 36 // [36:39] column digits
	colTo          = 39 //
	keywordFrom    = 39 // [39:75] keyword area
	keywordTo      = 75 //
	constFrom      = 39 // [39:80] constant literal area
	constTo        = 80 //
	continuationAt = 79 // '-' continues the literal on the next line
)

// line is one physical source line with the sequence-number area already
// stripped. Every accessor degrades to an empty string (or blank byte) on
// short lines instead of failing.
type line string

// newLine strips the sequence prefix off a raw source line.
func newLine(raw string) line {
	if len(raw) <= seqWidth {
		return ""
	}
	return line(raw[seqWidth:])
}

// slice returns [from:to) clamped to the line length.
func (l line) slice(from, to int) string {
	s := string(l)
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// at returns the byte at offset i, or a blank when the line is shorter.
func (l line) at(i int) byte {
	if i >= len(l) {
		return ' '
	}
	return l[i]
}

func (l line) isComment() bool {
	return l.slice(0, commentEnd) == "A*"
}

func (l line) isRecord() bool {
	return l.at(recordFlagAt) == 'R'
}

func (l line) indicatorArea() string {
	return l.slice(indicatorFrom, indicatorTo)
}

func (l line) name() string {
	return strings.TrimSpace(l.slice(nameFrom, nameTo))
}

func (l line) isReference() bool {
	return l.at(refFlagAt) == 'R'
}

func (l line) lengthDigits() string {
	return strings.TrimSpace(l.slice(lengthFrom, lengthTo))
}

func (l line) typeChar() byte {
	return l.at(typeAt)
}

func (l line) decimalDigits() string {
	return strings.TrimSpace(l.slice(decimalsFrom, decimalsTo))
}

func (l line) usageChar() byte {
	return l.at(usageAt)
}

func (l line) rowDigits() string {
	return strings.TrimSpace(l.slice(rowFrom, rowTo))
}

func (l line) colDigits() string {
	return strings.TrimSpace(l.slice(colFrom, colTo))
}

func (l line) keywordArea() string {
	return l.slice(keywordFrom, keywordTo)
}

func (l line) constantArea() string {
	return l.slice(constFrom, constTo)
}

func (l line) continues() bool {
	return l.at(continuationAt) == '-'
}

// number parses column digits as a positive value. Empty input means the
// column is absent and yields the given fallback, never zero by accident.
func number(digits string, absent int) int {
	if digits == "" {
		return absent
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return absent
	}
	return n
}

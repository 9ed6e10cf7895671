// Package render turns a parsed display-file model into CLI output: an
// indented text outline of the structure, or a JSON document of the same
// data for tooling.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/dspfmodel/internal/dds"
)

// Outline writes the structure outline for one source document. Records
// show their line ranges and effective sizes, fields their type, length,
// position and indicators, constants their merged literal text. Keyword
// strings are nested under their owners.
func Outline(w io.Writer, name string, m *dds.Model) error {
	if _, err := fmt.Fprintf(w, "FILE %s  (%s)\n", name, m.DefaultSize); err != nil {
		return err
	}
	if m.AltSize != nil {
		if _, err := fmt.Fprintf(w, "  secondary size %s\n", m.AltSize); err != nil {
			return err
		}
	}

	for _, e := range m.Elements {
		switch el := e.(type) {
		case *dds.File:
			for _, a := range el.Attributes {
				if err := writeAttr(w, 1, a); err != nil {
					return err
				}
			}
		case *dds.Record:
			if _, err := fmt.Fprintf(w, "  R %-10s  lines %d..%d  %s\n",
				el.Name, el.StartLine, el.EndLine, el.Size); err != nil {
				return err
			}
			for _, a := range el.Attributes {
				if err := writeAttr(w, 2, a); err != nil {
					return err
				}
			}
		case *dds.Field:
			if _, err := fmt.Fprintf(w, "    F %-10s %s\n", el.Name, fieldSummary(el)); err != nil {
				return err
			}
			for _, a := range el.Attributes {
				if err := writeAttr(w, 3, a); err != nil {
					return err
				}
			}
		case *dds.Constant:
			if _, err := fmt.Fprintf(w, "    C %s%s\n", el.Text, position(el.Row, el.Col)); err != nil {
				return err
			}
			for _, a := range el.Attributes {
				if err := writeAttr(w, 3, a); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeAttr(w io.Writer, depth int, a dds.Attribute) error {
	pad := strings.Repeat("  ", depth)
	if len(a.Indicators) > 0 {
		_, err := fmt.Fprintf(w, "%s%s %s\n", pad, indicatorList(a.Indicators), a.Text)
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s\n", pad, a.Text)
	return err
}

func fieldSummary(f *dds.Field) string {
	var b strings.Builder
	if f.Type != ' ' && f.Type != 0 {
		fmt.Fprintf(&b, "%c", f.Type)
	}
	if f.Length > 0 {
		fmt.Fprintf(&b, "%d", f.Length)
		if f.Decimals >= 0 {
			fmt.Fprintf(&b, ",%d", f.Decimals)
		}
	}
	if f.Hidden {
		b.WriteString(" hidden")
	} else {
		b.WriteString(position(f.Row, f.Col))
	}
	if f.Referenced {
		b.WriteString(" ref")
	}
	if len(f.Indicators) > 0 {
		b.WriteString(" ")
		b.WriteString(indicatorList(f.Indicators))
	}
	return strings.TrimSpace(b.String())
}

func position(row, col int) string {
	if row == 0 && col == 0 {
		return ""
	}
	return fmt.Sprintf(" @%d,%d", row, col)
}

func indicatorList(inds []dds.Indicator) string {
	parts := make([]string, len(inds))
	for i, in := range inds {
		parts[i] = in.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

package dds

import (
	"regexp"
	"strconv"

	"github.com/vk/dspfmodel/internal/catalog"
	"github.com/vk/dspfmodel/internal/screen"
)

var (
	dspsizRE = regexp.MustCompile(`DSPSIZ\(([^)]*)\)`)
	// One display geometry: rows, cols, optional *label. DSPSIZ may carry
	// one or two of these back to back.
	sizeTripletRE = regexp.MustCompile(`(\d+)\s+(\d+)(?:\s+(\*\S+))?`)
	windowRE      = regexp.MustCompile(`WINDOW\((\d+)\s+(\d+)\s+(\d+)\s+(\d+)\)`)
)

// fileSize resolves the file-level display size from the root's merged
// keywords. Without a DSPSIZ keyword the fallback applies unchanged. A
// second geometry in the keyword becomes the secondary size.
func fileSize(elements []Element, fallback screen.Size) (screen.Size, *screen.Size) {
	file, ok := elements[0].(*File)
	if !ok {
		return fallback, nil
	}
	for _, attr := range file.Attributes {
		m := dspsizRE.FindStringSubmatch(attr.Text)
		if m == nil {
			continue
		}
		triplets := sizeTripletRE.FindAllStringSubmatch(m[1], 2)
		if len(triplets) == 0 {
			continue
		}
		def := sizeFromTriplet(triplets[0])
		if len(triplets) > 1 {
			alt := sizeFromTriplet(triplets[1])
			return def, &alt
		}
		return def, nil
	}
	return fallback, nil
}

// applySizes gives every record its effective size: the window bounds with
// the window start as origin when a WINDOW keyword is present, otherwise
// the file default unchanged. The result is mirrored into the catalog.
func applySizes(elements []Element, cat *catalog.Catalog, def screen.Size) {
	for _, e := range elements {
		rec, ok := e.(*Record)
		if !ok {
			continue
		}
		rec.Size = recordSize(rec, def)
		if entry, ok := cat.Record(rec.Name); ok && entry.StartLine == rec.StartLine {
			entry.Size = rec.Size
		}
	}
}

func recordSize(rec *Record, def screen.Size) screen.Size {
	for _, attr := range rec.Attributes {
		m := windowRE.FindStringSubmatch(attr.Text)
		if m == nil {
			continue
		}
		return screen.Size{
			Rows:   atoi(m[3]),
			Cols:   atoi(m[4]),
			Origin: screen.Origin{Row: atoi(m[1]), Col: atoi(m[2])},
			Source: screen.SourceWindow,
		}
	}
	return def
}

func sizeFromTriplet(m []string) screen.Size {
	return screen.Size{
		Rows:   atoi(m[1]),
		Cols:   atoi(m[2]),
		Label:  m[3],
		Source: screen.SourceDefault,
	}
}

// atoi is safe here: every argument already matched \d+.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

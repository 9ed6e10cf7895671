package dds

import (
	"sort"
	"strconv"
	"strings"
)

// indicatorSlots is the number of conditioning slots per line; each slot is
// a sign character followed by a two-digit number.
const (
	indicatorSlots    = 3
	indicatorSlotSize = 3
)

// decodeIndicators decodes the 9-character indicator area into at most
// three indicators. A slot with a blank number is skipped, a slot whose
// number falls outside 1..99 is likewise skipped. The result is sorted
// ascending by number; duplicates are not validated.
func decodeIndicators(area string) []Indicator {
	var out []Indicator
	for slot := 0; slot < indicatorSlots; slot++ {
		from := slot * indicatorSlotSize
		win := area[min(from, len(area)):min(from+indicatorSlotSize, len(area))]
		for len(win) < indicatorSlotSize {
			win += " "
		}
		digits := strings.TrimSpace(win[1:indicatorSlotSize])
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || n > 99 {
			continue
		}
		out = append(out, Indicator{Number: n, Negated: win[0] == 'N'})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// indicatorStrings flattens indicators for the catalog mirror.
func indicatorStrings(inds []Indicator) []string {
	if len(inds) == 0 {
		return nil
	}
	out := make([]string, len(inds))
	for i, in := range inds {
		out[i] = in.String()
	}
	return out
}

package schedule

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// FormatHours renders fractional hours as a compact clock reading,
// e.g. 9.833 -> "9:50am".
func FormatHours(hours float64) string {
	h := int(hours) % 12
	if h == 0 {
		h = 12
	}
	m := int(math.Round((hours - math.Floor(hours)) * 60))
	suffix := "am"
	if hours >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", h, m, suffix)
}

// Format renders the schedule as a Monday-through-Friday listing, one line per
// meeting, sorted by start time within each day.
func (s Schedule) Format() string {
	var b strings.Builder
	for day := Monday; day <= Friday; day++ {
		var today []TimeBlock
		for _, blk := range s {
			if blk.Weekday == day {
				today = append(today, blk)
			}
		}
		sort.SliceStable(today, func(i, j int) bool {
			return today[i].Start < today[j].Start
		})

		fmt.Fprintf(&b, "%s:\n", day)
		if len(today) == 0 {
			b.WriteString("  (no classes)\n")
			continue
		}
		for _, blk := range today {
			fmt.Fprintf(&b, "  %s - %s  %s", FormatHours(blk.Start), FormatHours(blk.End), blk.CourseName)
			if blk.Location != "" {
				fmt.Fprintf(&b, " (%s)", blk.Location)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

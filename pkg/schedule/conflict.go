package schedule

import "time"

// DatesOverlap reports whether two inclusive date ranges share at least one
// day: either endpoint of b falls inside a, or a sits entirely inside b.
// Identical ranges overlap.
func DatesOverlap(a, b DateRange) bool {
	if within(b.Start, a) || within(b.End, a) {
		return true
	}
	return a.Start.After(b.Start) && a.End.Before(b.End)
}

func within(t time.Time, r DateRange) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// disjointDates reports whether two time blocks provably never meet in the
// same part of the term. Missing section metadata means disjointness cannot
// be proven, so the blocks are treated as concurrent.
func disjointDates(a, b TimeBlock) bool {
	if a.Info == nil || b.Info == nil || a.Info.Dates == nil || b.Info.Dates == nil {
		return false
	}
	return !DatesOverlap(*a.Info.Dates, *b.Info.Dates)
}

// HasConflict scans the week at six-minute resolution and reports whether two
// different courses ever occupy the same instant. Blocks of the same course
// at one instant count once, so a section with overlapping meeting entries is
// not a self-conflict. An overlap is excused when every pair of co-occupying
// sections has disjoint term date ranges: those sections are never in session
// at the same time of year.
func (s Schedule) HasConflict() bool {
	for day := Monday; day <= Friday; day++ {
		var today []TimeBlock
		for _, b := range s {
			if b.Weekday == day {
				today = append(today, b)
			}
		}
		if len(today) < 2 {
			continue
		}

		for step := 0; step < 240; step++ {
			t := float64(step) / 10

			var occupied []TimeBlock
			seen := make(map[string]bool)
			for _, b := range today {
				if b.Start < t && t < b.End && !seen[b.CourseName] {
					seen[b.CourseName] = true
					occupied = append(occupied, b)
				}
			}

			if len(occupied) > 1 && !allDatesDisjoint(occupied) {
				return true
			}
		}
	}
	return false
}

func allDatesDisjoint(blocks []TimeBlock) bool {
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if !disjointDates(blocks[i], blocks[j]) {
				return false
			}
		}
	}
	return true
}

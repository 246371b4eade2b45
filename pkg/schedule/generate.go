package schedule

// Generate enumerates every combination of one section variant per selected
// course and returns them as flattened schedules. Courses that are not
// selected, have empty time text, or parse to zero variants contribute no
// choices and are skipped. With allowConflicts false, combinations where two
// courses occupy the same instant (and cannot be excused by disjoint term
// dates) are filtered out.
//
// Enumeration is an odometer over the per-course variant indices: the first
// course's index varies fastest, so the output order is deterministic for a
// given input. Zero eligible courses yield exactly one empty schedule.
func Generate(courses []*Course, allowConflicts bool) []Schedule {
	var variantLists [][]SectionVariant
	for _, c := range courses {
		if !c.Selected || c.Times == "" {
			continue
		}
		variants := Parse(c)
		if len(variants) == 0 {
			continue
		}
		variantLists = append(variantLists, variants)
	}

	state := make([]int, len(variantLists))
	var combos []Schedule
	for {
		var s Schedule
		for i, variants := range variantLists {
			s = append(s, variants[state[i]].Blocks...)
		}
		combos = append(combos, s)

		incremented := false
		for i := range state {
			if state[i] < len(variantLists[i])-1 {
				state[i]++
				incremented = true
				break
			}
			state[i] = 0
		}
		if !incremented {
			break
		}
	}

	if allowConflicts {
		return combos
	}

	var valid []Schedule
	for _, s := range combos {
		if !s.HasConflict() {
			valid = append(valid, s)
		}
	}
	return valid
}

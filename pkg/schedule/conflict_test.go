package schedule

import (
	"testing"
	"time"
)

func dr(startMonth, startDay, endMonth, endDay int) DateRange {
	return DateRange{
		Start: time.Date(2017, time.Month(startMonth), startDay, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2017, time.Month(endMonth), endDay, 0, 0, 0, 0, time.UTC),
	}
}

func TestDatesOverlap(t *testing.T) {
	cases := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"identical", dr(1, 1, 3, 1), dr(1, 1, 3, 1), true},
		{"partial overlap", dr(1, 1, 3, 1), dr(2, 1, 4, 1), true},
		{"b inside a", dr(1, 1, 6, 1), dr(2, 1, 3, 1), true},
		{"a inside b", dr(2, 1, 3, 1), dr(1, 1, 6, 1), true},
		{"shared endpoint", dr(1, 1, 3, 1), dr(3, 1, 5, 1), true},
		{"disjoint", dr(1, 1, 3, 1), dr(4, 1, 6, 1), false},
	}

	for _, c := range cases {
		if got := DatesOverlap(c.a, c.b); got != c.want {
			t.Errorf("%s: DatesOverlap = %v, want %v", c.name, got, c.want)
		}
		// The relation must be symmetric.
		if got := DatesOverlap(c.b, c.a); got != c.want {
			t.Errorf("%s (reversed): DatesOverlap = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestHasConflictDetectsOverlap(t *testing.T) {
	s := Schedule{
		{Weekday: Monday, Start: 9.0, End: 10.0, CourseName: "A"},
		{Weekday: Monday, Start: 9.5, End: 10.5, CourseName: "B"},
	}
	if !s.HasConflict() {
		t.Errorf("expected overlapping courses to conflict")
	}
}

func TestHasConflictBackToBackIsFine(t *testing.T) {
	s := Schedule{
		{Weekday: Monday, Start: 9.0, End: 10.0, CourseName: "A"},
		{Weekday: Monday, Start: 10.0, End: 11.0, CourseName: "B"},
	}
	if s.HasConflict() {
		t.Errorf("back-to-back classes must not conflict")
	}
}

func TestHasConflictDifferentDays(t *testing.T) {
	s := Schedule{
		{Weekday: Monday, Start: 9.0, End: 10.0, CourseName: "A"},
		{Weekday: Tuesday, Start: 9.0, End: 10.0, CourseName: "B"},
	}
	if s.HasConflict() {
		t.Errorf("classes on different days must not conflict")
	}
}

// Two blocks of the same course at the same instant count as one course, not
// a self-conflict. Sections with several overlapping meeting entries rely on
// this.
func TestHasConflictSameCourseDedup(t *testing.T) {
	s := Schedule{
		{Weekday: Monday, Start: 9.0, End: 10.0, CourseName: "A"},
		{Weekday: Monday, Start: 9.0, End: 11.0, CourseName: "A"},
	}
	if s.HasConflict() {
		t.Errorf("a course must not conflict with itself")
	}
}

func TestHasConflictExcusedByDisjointDates(t *testing.T) {
	spring := dr(1, 1, 3, 1)
	summer := dr(4, 1, 6, 1)
	s := Schedule{
		{Weekday: Monday, Start: 9.0, End: 10.0, CourseName: "A", Info: &SectionInfo{Dates: &spring}},
		{Weekday: Monday, Start: 9.5, End: 10.5, CourseName: "B", Info: &SectionInfo{Dates: &summer}},
	}
	if s.HasConflict() {
		t.Errorf("sections with disjoint term dates never meet concurrently; overlap should be excused")
	}
}

// Without section metadata, disjointness cannot be proven, so the overlap
// stays a conflict.
func TestHasConflictMissingDatesIsConservative(t *testing.T) {
	spring := dr(1, 1, 3, 1)
	s := Schedule{
		{Weekday: Monday, Start: 9.0, End: 10.0, CourseName: "A", Info: &SectionInfo{Dates: &spring}},
		{Weekday: Monday, Start: 9.5, End: 10.5, CourseName: "B"},
	}
	if !s.HasConflict() {
		t.Errorf("missing section dates must be treated as overlapping")
	}
}

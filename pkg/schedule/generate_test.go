package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateProductCount(t *testing.T) {
	courses := []*Course{
		{
			Name:     "A",
			Selected: true,
			Times:    "Sec 1: M 9:00-10:00AM;X\nSec 2: M 10:00-11:00AM;X",
		},
		{
			Name:     "B",
			Selected: true,
			Times:    "Sec 1: T 9:00-10:00AM;Y\nSec 2: T 10:00-11:00AM;Y\nSec 3: T 11:00-12:00AM;Y",
		},
	}

	schedules := Generate(courses, true)
	if len(schedules) != 6 {
		t.Fatalf("expected 2*3 = 6 schedules with conflicts allowed, got %d", len(schedules))
	}

	// The first course's section index varies fastest (odometer order).
	wantFirst := []string{"Sec 1", "Sec 2", "Sec 1", "Sec 2", "Sec 1", "Sec 2"}
	for i, s := range schedules {
		if s[0].Section != wantFirst[i] {
			t.Errorf("schedule %d: expected first course section %q, got %q", i, wantFirst[i], s[0].Section)
		}
	}
	wantSecond := []string{"Sec 1", "Sec 1", "Sec 2", "Sec 2", "Sec 3", "Sec 3"}
	for i, s := range schedules {
		if s[1].Section != wantSecond[i] {
			t.Errorf("schedule %d: expected second course section %q, got %q", i, wantSecond[i], s[1].Section)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	courses := []*Course{
		{Name: "A", Selected: true, Times: "1: MWF 9:00-9:50AM;X\n2: MWF 10:00-10:50AM;X"},
		{Name: "B", Selected: true, Times: "1: TR 1:15-2:30PM;Y\n2: TR 2:45-4:00PM;Y"},
	}

	first := Generate(courses, false)
	second := Generate(courses, false)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output for identical input")
	}
}

func TestGenerateFiltersConflicts(t *testing.T) {
	courses := []*Course{
		{Name: "A", Selected: true, Times: "MW 9:00-10:00AM;X"},
		{Name: "B", Selected: true, Times: "MW 9:30-10:30AM;Y"},
	}

	schedules := Generate(courses, false)
	if len(schedules) != 0 {
		t.Fatalf("expected the only combination to be rejected, got %d schedules", len(schedules))
	}

	allowed := Generate(courses, true)
	if len(allowed) != 1 {
		t.Fatalf("expected 1 schedule with conflicts allowed, got %d", len(allowed))
	}
}

func TestGenerateExcusesDisjointTermDates(t *testing.T) {
	janMar := &DateRange{
		Start: time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	aprJun := &DateRange{
		Start: time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	courses := []*Course{
		{
			Name:     "A",
			Selected: true,
			Times:    "PHYS024 HM-01 SP2017: MW 9:00-10:00AM;X",
			Sections: map[int]*SectionInfo{1: {Dates: janMar}},
		},
		{
			Name:     "B",
			Selected: true,
			Times:    "PHYS051 HM-01 SP2017: MW 9:30-10:30AM;Y",
			Sections: map[int]*SectionInfo{1: {Dates: aprJun}},
		},
	}

	schedules := Generate(courses, false)
	if len(schedules) != 1 {
		t.Fatalf("expected the clock overlap to be excused by disjoint dates, got %d schedules", len(schedules))
	}
}

// Zero eligible courses degenerate to a single empty schedule: the odometer's
// base case, not an error.
func TestGenerateNoCourses(t *testing.T) {
	schedules := Generate(nil, false)
	if len(schedules) != 1 {
		t.Fatalf("expected one empty schedule for zero courses, got %d", len(schedules))
	}
	if len(schedules[0]) != 0 {
		t.Errorf("expected the schedule to have no blocks, got %d", len(schedules[0]))
	}
}

func TestGenerateSkipsUnselectedAndEmpty(t *testing.T) {
	courses := []*Course{
		{Name: "A", Selected: true, Times: "MWF 9:00-9:50AM;X"},
		{Name: "B", Selected: false, Times: "MWF 9:00-9:50AM;Y"},
		{Name: "C", Selected: true, Times: ""},
	}

	schedules := Generate(courses, false)
	if len(schedules) != 1 {
		t.Fatalf("expected 1 schedule, got %d", len(schedules))
	}
	for _, b := range schedules[0] {
		if b.CourseName != "A" {
			t.Errorf("unexpected course in schedule: %q", b.CourseName)
		}
	}
}

// A course whose time text never parses contributes no choices rather than
// zeroing out the whole product.
func TestGenerateDropsUnparseableCourse(t *testing.T) {
	courses := []*Course{
		{Name: "A", Selected: true, Times: "MWF 9:00-9:50AM;X"},
		{Name: "B", Selected: true, Times: "TBA"},
	}

	schedules := Generate(courses, false)
	if len(schedules) != 1 {
		t.Fatalf("expected the unparseable course to be dropped, got %d schedules", len(schedules))
	}
}

func TestTotalCredits(t *testing.T) {
	three := 3.0
	one := 1.0
	courses := []*Course{
		{Name: "A", Selected: true, Number: "CSCI070 HM", Credits: &three},
		{Name: "B", Selected: true, Number: "ECON104 PO", Credits: &one},
		{Name: "C", Selected: false, Number: "PHYS024 HM", Credits: &three},
	}

	total, ok := TotalCredits(courses)
	if !ok {
		t.Fatalf("expected credit data to be complete")
	}
	// Off-campus credits count triple.
	if !almostEqual(total, 6.0) {
		t.Errorf("expected 3 + 1*3 = 6 credits, got %v", total)
	}

	courses = append(courses, &Course{Name: "D", Selected: true})
	if _, ok := TotalCredits(courses); ok {
		t.Errorf("expected missing credit data to be reported")
	}
}

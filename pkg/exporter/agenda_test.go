package exporter

import (
	"testing"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"
)

func TestExpandAgenda(t *testing.T) {
	info := springTerm()
	s := schedule.Schedule{
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "Shanahan 1234", CourseName: "Intro CS", Info: info},
		{Weekday: schedule.Wednesday, Start: 9.0, End: 10.0, Location: "Shanahan 1234", CourseName: "Intro CS", Info: info},
	}

	from := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2017, 1, 10, 23, 59, 59, 0, time.UTC)

	occurrences, err := ExpandAgenda(s, from, to)
	if err != nil {
		t.Fatalf("ExpandAgenda failed: %v", err)
	}

	// Mondays Jan 2 and 9, Wednesday Jan 4.
	wantDays := []int{2, 4, 9}
	if len(occurrences) != len(wantDays) {
		t.Fatalf("expected %d occurrences, got %d: %+v", len(wantDays), len(occurrences), occurrences)
	}
	for i, occ := range occurrences {
		if occ.Start.Day() != wantDays[i] {
			t.Errorf("occurrence %d: expected Jan %d, got %v", i, wantDays[i], occ.Start)
		}
		if occ.Start.Hour() != 9 || occ.End.Hour() != 10 {
			t.Errorf("occurrence %d: expected 9am-10am, got %v-%v", i, occ.Start, occ.End)
		}
		if occ.CourseName != "Intro CS" || occ.Location != "Shanahan 1234" {
			t.Errorf("occurrence %d: unexpected metadata: %+v", i, occ)
		}
	}
}

func TestExpandAgendaInterleavesCourses(t *testing.T) {
	info := springTerm()
	s := schedule.Schedule{
		{Weekday: schedule.Monday, Start: 13.0, End: 14.0, Location: "Y", CourseName: "Afternoon", Info: info},
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "X", CourseName: "Morning", Info: info},
	}

	from := time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2017, 1, 2, 23, 59, 59, 0, time.UTC)

	occurrences, err := ExpandAgenda(s, from, to)
	if err != nil {
		t.Fatalf("ExpandAgenda failed: %v", err)
	}

	if len(occurrences) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occurrences))
	}
	if occurrences[0].CourseName != "Morning" || occurrences[1].CourseName != "Afternoon" {
		t.Errorf("expected chronological order across courses, got %q then %q",
			occurrences[0].CourseName, occurrences[1].CourseName)
	}
}

func TestExpandAgendaRespectsTermEnd(t *testing.T) {
	info := springTerm()
	s := schedule.Schedule{
		// Mar 1 2017 is a Wednesday, so the final meeting lands on the
		// inclusive end date itself.
		{Weekday: schedule.Wednesday, Start: 9.0, End: 10.0, Location: "X", CourseName: "A", Info: info},
	}

	from := time.Date(2017, 2, 27, 0, 0, 0, 0, time.UTC)
	to := time.Date(2017, 3, 31, 0, 0, 0, 0, time.UTC)

	occurrences, err := ExpandAgenda(s, from, to)
	if err != nil {
		t.Fatalf("ExpandAgenda failed: %v", err)
	}

	if len(occurrences) != 1 {
		t.Fatalf("expected exactly the final meeting, got %d", len(occurrences))
	}
	if occurrences[0].Start.Month() != time.March || occurrences[0].Start.Day() != 1 {
		t.Errorf("expected the Mar 1 meeting, got %v", occurrences[0].Start)
	}
}

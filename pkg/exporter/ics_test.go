package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"
)

// Jan 2 2017 is a Monday; Mar 1 2017 is a Wednesday.
func springTerm() *schedule.SectionInfo {
	return &schedule.SectionInfo{
		Dates: &schedule.DateRange{
			Start: time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestGenerateICSWeeklyEvent(t *testing.T) {
	info := springTerm()
	s := schedule.Schedule{
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "Shanahan 1234", CourseName: "Intro CS", Info: info},
		{Weekday: schedule.Wednesday, Start: 9.0, End: 10.0, Location: "Shanahan 1234", CourseName: "Intro CS", Info: info},
	}

	var buf bytes.Buffer
	if err := GenerateICS(s, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	if count := strings.Count(output, "BEGIN:VEVENT"); count != 1 {
		t.Fatalf("expected the MO/WE blocks to merge into 1 event, got %d:\n%s", count, output)
	}
	if !strings.Contains(output, "BEGIN:VCALENDAR") || !strings.Contains(output, "END:VCALENDAR") {
		t.Errorf("missing calendar envelope:\n%s", output)
	}
	if !strings.Contains(output, "PRODID:-//HMC Scheduler//EN") {
		t.Errorf("missing product id:\n%s", output)
	}
	if !strings.Contains(output, "DTSTART:20170102T090000") {
		t.Errorf("expected first occurrence on Monday Jan 2 at 9am:\n%s", output)
	}
	if !strings.Contains(output, "DTEND:20170102T100000") {
		t.Errorf("expected event to end at 10am:\n%s", output)
	}
	if !strings.Contains(output, "FREQ=WEEKLY;BYDAY=MO,WE;UNTIL=20170301T000000") {
		t.Errorf("expected weekly MO,WE recurrence until Mar 1:\n%s", output)
	}
	if !strings.Contains(output, "SUMMARY:Intro CS") {
		t.Errorf("expected course summary:\n%s", output)
	}
	if !strings.Contains(output, "LOCATION:Shanahan 1234") {
		t.Errorf("expected room location:\n%s", output)
	}
}

func TestGenerateICSStartDateRollsForward(t *testing.T) {
	// Term starts on a Monday but the class only meets Thursdays.
	info := springTerm()
	s := schedule.Schedule{
		{Weekday: schedule.Thursday, Start: 13.25, End: 14.5, Location: "Library", CourseName: "Seminar", Info: info},
	}

	var buf bytes.Buffer
	if err := GenerateICS(s, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	// Jan 5 2017 is the first Thursday on or after Jan 2.
	if !strings.Contains(output, "DTSTART:20170105T131500") {
		t.Errorf("expected first occurrence to roll forward to Thursday Jan 5:\n%s", output)
	}
}

func TestGenerateICSEscapesText(t *testing.T) {
	info := springTerm()
	s := schedule.Schedule{
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "Parsons 1285, The Aviation Room", CourseName: "Reading, Writing", Info: info},
	}

	var buf bytes.Buffer
	if err := GenerateICS(s, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "LOCATION:Parsons 1285\\, The Aviation Room") {
		t.Errorf("expected commas in the location to be escaped:\n%s", output)
	}
	if !strings.Contains(output, "SUMMARY:Reading\\, Writing") {
		t.Errorf("expected commas in the summary to be escaped:\n%s", output)
	}
}

func TestGenerateICSSkipsSectionsWithoutDates(t *testing.T) {
	s := schedule.Schedule{
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "X", CourseName: "Undated"},
	}

	var buf bytes.Buffer
	if err := GenerateICS(s, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("expected no events for a section without term dates:\n%s", buf.String())
	}
}

func TestGenerateICSEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateICS(schedule.Schedule{}, &buf); err != nil {
		t.Fatalf("GenerateICS failed on empty schedule: %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VCALENDAR") {
		t.Errorf("expected a bare calendar envelope:\n%s", buf.String())
	}
}

func TestGroupBlocksMergesDuplicates(t *testing.T) {
	info := springTerm()
	s := schedule.Schedule{
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "X", CourseName: "A", Info: info},
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "X", CourseName: "A", Info: info},
		{Weekday: schedule.Friday, Start: 9.0, End: 10.0, Location: "X", CourseName: "A", Info: info},
		{Weekday: schedule.Monday, Start: 9.0, End: 10.0, Location: "Y", CourseName: "A", Info: info},
	}

	groups := groupBlocks(s)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups (different rooms), got %d", len(groups))
	}
	if !groups[0].days[schedule.Monday] || !groups[0].days[schedule.Friday] {
		t.Errorf("expected the first group to cover Monday and Friday")
	}
	if groups[1].location != "Y" {
		t.Errorf("expected groups in first-appearance order, got %q first", groups[1].location)
	}
}

package exporter

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	ics "github.com/arran4/golang-ical"
)

// icalTimeLayout is the compact local date-time format used for DTSTART,
// DTEND, and the UNTIL clause of recurrence rules.
const icalTimeLayout = "20060102T150405"

// eventGroup collects the time blocks that describe one recurring weekly
// meeting: same course, same room, same wall-clock times.
type eventGroup struct {
	courseName string
	location   string
	from, to   float64
	days       [5]bool
	info       *schedule.SectionInfo
}

// groupBlocks buckets a schedule's blocks by (course, location, start, end) in
// first-appearance order. Duplicate entries of the same meeting collapse into
// one group; the group's weekday set is the union of its blocks' weekdays.
func groupBlocks(s schedule.Schedule) []*eventGroup {
	byKey := make(map[string]*eventGroup)
	var order []*eventGroup

	for _, b := range s {
		key := fmt.Sprintf("%s|%s|%g|%g", b.CourseName, b.Location, b.Start, b.End)
		g, ok := byKey[key]
		if !ok {
			g = &eventGroup{
				courseName: b.CourseName,
				location:   b.Location,
				from:       b.Start,
				to:         b.End,
				info:       b.Info,
			}
			byKey[key] = g
			order = append(order, g)
		}
		g.days[b.Weekday] = true
	}

	return order
}

// GenerateICS writes the schedule as an iCalendar document of weekly recurring
// events, one per distinct course meeting. Meetings whose sections carry no
// term dates are skipped: without a start date there is nothing to anchor the
// recurrence to.
func GenerateICS(s schedule.Schedule, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HMC Scheduler//EN")

	now := time.Now()

	for i, g := range groupBlocks(s) {
		if g.info == nil || g.info.Dates == nil {
			continue
		}

		first, ok := firstMeetingDay(g.info.Dates.Start, g.days)
		if !ok {
			continue
		}

		start := atClock(first, g.from)
		end := atClock(first, g.to) // no overnight classes

		event := cal.AddEvent(fmt.Sprintf("%s-%d-%d", start.Format(icalTimeLayout), now.UnixMilli(), i))
		event.SetDtStampTime(now)
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icalTimeLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icalTimeLayout))
		event.SetProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s",
			strings.Join(dayCodes(g.days), ","), g.info.Dates.End.Format(icalTimeLayout)))
		event.SetProperty(ics.ComponentPropertyLocation, escapeText(g.location))
		event.SetProperty(ics.ComponentPropertySummary, escapeText(g.courseName))
	}

	return cal.SerializeTo(w)
}

// firstMeetingDay finds the first calendar day on or after the section's start
// date that falls on one of the meeting weekdays. A weekly pattern always
// lands within six days of the start.
func firstMeetingDay(start time.Time, days [5]bool) (time.Time, bool) {
	for offset := 0; offset <= 6; offset++ {
		d := start.AddDate(0, 0, offset)
		if wd, ok := schedule.FromTime(d.Weekday()); ok && days[wd] {
			return d, true
		}
	}
	return time.Time{}, false
}

// atClock places fractional hours onto a calendar day.
func atClock(day time.Time, hours float64) time.Time {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

func dayCodes(days [5]bool) []string {
	var codes []string
	for d := schedule.Monday; d <= schedule.Friday; d++ {
		if days[d] {
			codes = append(codes, d.Code())
		}
	}
	return codes
}

// escapeText escapes commas for iCalendar TEXT values and strips embedded
// newlines, which hand-edited room descriptions occasionally contain.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, ",", "\\,")
}

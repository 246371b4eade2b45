package exporter

import (
	"fmt"
	"sort"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/teambition/rrule-go"
)

// Occurrence is one concrete, dated meeting of a scheduled course.
type Occurrence struct {
	CourseName string
	Location   string
	Start      time.Time
	End        time.Time
}

var rruleWeekdays = [...]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}

// ExpandAgenda rolls a schedule's weekly meetings out into concrete dated
// occurrences within [from, to], sorted chronologically. Meetings without
// recorded term dates are skipped, matching the ICS exporter.
func ExpandAgenda(s schedule.Schedule, from, to time.Time) ([]Occurrence, error) {
	var out []Occurrence

	for _, g := range groupBlocks(s) {
		if g.info == nil || g.info.Dates == nil {
			continue
		}

		first, ok := firstMeetingDay(g.info.Dates.Start, g.days)
		if !ok {
			continue
		}

		start := atClock(first, g.from)
		duration := atClock(first, g.to).Sub(start)

		// The recorded end date is inclusive, so the recurrence runs to the
		// end of that day.
		until := g.info.Dates.End.AddDate(0, 0, 1).Add(-time.Second)

		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   start,
			Until:     until,
			Byweekday: byWeekday(g.days),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence for %s: %w", g.courseName, err)
		}

		for _, occ := range r.Between(from, to, true) {
			out = append(out, Occurrence{
				CourseName: g.courseName,
				Location:   g.location,
				Start:      occ,
				End:        occ.Add(duration),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func byWeekday(days [5]bool) []rrule.Weekday {
	var wd []rrule.Weekday
	for d := schedule.Monday; d <= schedule.Friday; d++ {
		if days[d] {
			wd = append(wd, rruleWeekdays[d])
		}
	}
	return wd
}

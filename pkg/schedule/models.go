package schedule

import (
	"strings"
	"time"
)

// weekdayLetters maps the portal's single-letter day codes to weekdays by
// index: M, T, W, R (Thursday), F. The portal has no weekend meetings.
const weekdayLetters = "MTWRF"

// Weekday is a meeting day, Monday through Friday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
var weekdayCodes = [...]string{"MO", "TU", "WE", "TH", "FR"}

func (d Weekday) String() string {
	if d < Monday || d > Friday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// Code returns the two-letter iCalendar code for the weekday (MO, TU, ...).
func (d Weekday) Code() string {
	return weekdayCodes[d]
}

// FromTime converts a time.Weekday into a schedule weekday. The second return
// value is false for Saturday and Sunday.
func FromTime(wd time.Weekday) (Weekday, bool) {
	if wd < time.Monday || wd > time.Friday {
		return 0, false
	}
	return Weekday(wd - time.Monday), true
}

// DateRange is an inclusive span of calendar dates during which a section is
// in session.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SectionInfo is the structured metadata the catalog records for one section.
// Every field is optional in the source data; absent values stay nil/empty and
// downstream logic degrades accordingly (notably conflict checking, which
// assumes overlap when Dates is nil).
type SectionInfo struct {
	Instructors []string   `json:"instructors,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	Enrollment  *int       `json:"enrollment,omitempty"`
	Dates       *DateRange `json:"dates,omitempty"`
}

// Course is one course the student is considering. Times holds the free-text
// meeting description, one section per line, in the canonical
// "LABEL: MWF 09:00AM-09:50AM; Location" convention. Sections maps a section
// number (parsed from the line label) to its catalog metadata, when known.
type Course struct {
	Name     string               `json:"name"`
	Times    string               `json:"times"`
	Selected bool                 `json:"selected"`
	Number   string               `json:"number,omitempty"`
	Credits  *float64             `json:"credits,omitempty"`
	Sections map[int]*SectionInfo `json:"sections,omitempty"`
}

// TimeBlock is a single weekday meeting of one section: where a course sits on
// the weekly grid. Start and End are fractional hours since midnight
// (9.5 = 9:30am). Info points back at the owning section's catalog metadata
// and is nil when the section could not be resolved.
type TimeBlock struct {
	Weekday    Weekday      `json:"weekday"`
	Start      float64      `json:"from"`
	End        float64      `json:"to"`
	Location   string       `json:"loc"`
	CourseName string       `json:"course"`
	Section    string       `json:"section,omitempty"`
	Info       *SectionInfo `json:"info,omitempty"`
}

// SectionVariant is one parsed alternative meeting pattern for a course,
// derived from one line of its time text.
type SectionVariant struct {
	Label  string
	Info   *SectionInfo
	Blocks []TimeBlock
}

// Schedule is one concrete assignment of a section variant per selected
// course, flattened into the variant's time blocks in course order.
type Schedule []TimeBlock

// TotalCredits sums the credit values of the selected courses. Catalog numbers
// without the HM campus code count triple, since the other Claremont colleges
// record credits in third-units. The second return value is false when any
// selected course is missing credit data.
func TotalCredits(courses []*Course) (float64, bool) {
	var total float64
	for _, c := range courses {
		if !c.Selected {
			continue
		}
		if c.Credits == nil || c.Number == "" {
			return 0, false
		}
		if strings.Contains(c.Number, "HM") {
			total += *c.Credits
		} else {
			total += *c.Credits * 3
		}
	}
	return total, true
}

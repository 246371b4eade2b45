package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Load reads a catalog JSON file previously downloaded from the portal API.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return &cat, nil
}

// FindCourse looks a record up by its exact catalog number.
func (c *Catalog) FindCourse(number string) (CourseRecord, bool) {
	for _, rec := range c.Data {
		if rec.CourseNumber == number {
			return rec, true
		}
	}
	return CourseRecord{}, false
}

// BuildCourse converts a catalog record into a course whose time text follows
// the canonical section-per-line convention the schedule parser reads:
//
//	CSCI070 HM-01 SP2017 (Evans): MWF 09:00AM-09:50AM; Shanahan 1234
//
// term selects which calendar session supplies the section's effective dates;
// an empty term takes the first session. Sections without any scheduled
// meetings are omitted.
func BuildCourse(rec CourseRecord, term string) *schedule.Course {
	course := &schedule.Course{
		Name:     DisplayTitle(rec.CourseTitle),
		Number:   rec.CourseNumber,
		Credits:  rec.CreditValue,
		Sections: make(map[int]*schedule.SectionInfo),
	}

	var lines []string
	for _, sec := range rec.CourseSections {
		var meetings []string
		for _, m := range sec.CourseSectionSchedule {
			days := strings.ReplaceAll(m.ClassMeetingDays, "-", "")
			if days == "" {
				continue
			}
			meetings = append(meetings, fmt.Sprintf("%s %s-%s; %s",
				days, toAmPmTime(m.ClassBeginningTime), toAmPmTime(m.ClassEndingTime), m.InstructionSiteName))
		}
		if len(meetings) == 0 {
			continue
		}

		label := fmt.Sprintf("%s (%s)", sec.ExternalID, instructorName(sec.SectionInstructor))
		lines = append(lines, label+": "+strings.Join(meetings, ", "))

		if n, ok := schedule.SectionNumber(sec.ExternalID); ok {
			course.Sections[n] = sectionInfo(sec, term)
		}
	}

	course.Times = strings.Join(lines, "\n")
	return course
}

// instructorName picks the display name for a section label: the first
// instructor's last name, their first name failing that, "Unknown" otherwise.
func instructorName(instructors []InstructorRecord) string {
	if len(instructors) == 0 {
		return "Unknown"
	}
	in := instructors[0]
	if in.LastName != "" {
		return in.LastName
	}
	if in.FirstName != "" {
		return in.FirstName
	}
	return "Unknown"
}

// fullNames renders every instructor as "Last, First" with graceful handling
// of missing parts.
func fullNames(instructors []InstructorRecord) []string {
	var names []string
	for _, in := range instructors {
		switch {
		case in.LastName != "" && in.FirstName != "":
			names = append(names, in.LastName+", "+in.FirstName)
		case in.LastName != "":
			names = append(names, in.LastName)
		case in.FirstName != "":
			names = append(names, in.FirstName)
		}
	}
	return names
}

func sectionInfo(sec SectionRecord, term string) *schedule.SectionInfo {
	info := &schedule.SectionInfo{
		Instructors: fullNames(sec.SectionInstructor),
		Capacity:    sec.Capacity,
		Enrollment:  sec.CurrentEnrollment,
	}

	if sess, ok := sessionFor(sec, term); ok {
		start, err1 := time.Parse("2006-01-02", sess.BeginDate)
		end, err2 := time.Parse("2006-01-02", sess.EndDate)
		if err1 == nil && err2 == nil {
			info.Dates = &schedule.DateRange{Start: start, End: end}
		}
	}
	return info
}

// sessionFor picks the calendar session matching the term designator. An
// empty designator matches the first session on record.
func sessionFor(sec SectionRecord, term string) (CalendarSessionRecord, bool) {
	for _, sess := range sec.CalendarSessions {
		if term == "" || sess.Designator == term {
			return sess, true
		}
	}
	return CalendarSessionRecord{}, false
}

// toAmPmTime converts the API's military "hhmm" strings ("800", "1415") into
// the "hh:mmAM" form the time-text convention uses. Values that do not look
// like clock times pass through untouched; the schedule parser will drop them.
func toAmPmTime(military string) string {
	if len(military) == 3 {
		military = "0" + military
	}
	if len(military) != 4 {
		return military
	}

	hours, err := strconv.Atoi(military[:2])
	if err != nil {
		return military
	}
	minutes := military[2:]

	suffix := "AM"
	if hours > 12 {
		hours -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%s%s", hours, minutes, suffix)
}

var titleCaser = cases.Title(language.English)

// DisplayTitle tames the portal's ALL-CAPS course titles. Mixed-case titles
// are kept as-is; they were entered by a human.
func DisplayTitle(title string) string {
	if title != strings.ToUpper(title) {
		return title
	}
	return titleCaser.String(strings.ToLower(title))
}

package catalog

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/PuerkitoBio/goquery"
)

// PortalSection is one row of the portal's class schedule table.
type PortalSection struct {
	SectionID   string
	Title       string
	Instructors []string
	Enrollment  int
	Capacity    int
	Status      string
	Schedules   []string
	Credits     float64
	StartDate   string
	EndDate     string
}

// ParsePortalTable reads a saved portal schedule page and extracts its class
// rows. The table layout is fixed: checkbox, section id, title, instructor
// list, "enrolled/capacity", status, schedule string list, credits, start
// date, end date. Rows that do not fit the layout are skipped.
func ParsePortalTable(r io.Reader) ([]PortalSection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var sections []PortalSection

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 10 {
			return
		}

		sec := PortalSection{
			SectionID:   strings.TrimSpace(cells.Eq(1).Text()),
			Title:       strings.TrimSpace(cells.Eq(2).Text()),
			Instructors: listItems(cells.Eq(3)),
			Status:      strings.TrimSpace(cells.Eq(5).Text()),
			Schedules:   listItems(cells.Eq(6)),
			StartDate:   strings.TrimSpace(cells.Eq(8).Text()),
			EndDate:     strings.TrimSpace(cells.Eq(9).Text()),
		}
		if sec.SectionID == "" {
			return
		}

		enrollment := strings.SplitN(strings.TrimSpace(cells.Eq(4).Text()), "/", 2)
		if len(enrollment) == 2 {
			sec.Enrollment, _ = strconv.Atoi(strings.TrimSpace(enrollment[0]))
			sec.Capacity, _ = strconv.Atoi(strings.TrimSpace(enrollment[1]))
		}
		sec.Credits, _ = strconv.ParseFloat(strings.TrimSpace(cells.Eq(7).Text()), 64)

		sections = append(sections, sec)
	})

	return sections, nil
}

func listItems(cell *goquery.Selection) []string {
	var items []string
	cell.Find("li").Each(func(i int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	if len(items) == 0 {
		if text := strings.TrimSpace(cell.Text()); text != "" {
			items = append(items, text)
		}
	}
	return items
}

// CoursesFromPortal merges portal rows belonging to the same course into one
// course each, with one time-text line per section row. Rows keep their table
// order; a course's number is its section id with the section digits dropped
// ("CSCI070 HM-01" -> "CSCI070 HM").
func CoursesFromPortal(rows []PortalSection) []*schedule.Course {
	byID := make(map[string]*schedule.Course)
	var order []*schedule.Course

	for _, row := range rows {
		if len(row.Schedules) == 0 {
			continue
		}

		id := courseID(row.SectionID)
		course, ok := byID[id]
		if !ok {
			course = &schedule.Course{
				Name:     DisplayTitle(row.Title),
				Number:   id,
				Sections: make(map[int]*schedule.SectionInfo),
			}
			credits := row.Credits
			course.Credits = &credits
			byID[id] = course
			order = append(order, course)
		}

		label := row.SectionID
		if names := lastNames(row.Instructors); len(names) > 0 {
			label += " (" + strings.Join(names, ", ") + ")"
		}

		var lines []string
		if course.Times != "" {
			lines = append(lines, course.Times)
		}
		lines = append(lines, label+": "+strings.Join(row.Schedules, ", "))
		course.Times = strings.Join(lines, "\n")

		if n, ok := schedule.SectionNumber(row.SectionID); ok {
			course.Sections[n] = portalSectionInfo(row)
		}
	}

	return order
}

func portalSectionInfo(row PortalSection) *schedule.SectionInfo {
	enrollment := row.Enrollment
	capacity := row.Capacity
	info := &schedule.SectionInfo{
		Instructors: row.Instructors,
		Enrollment:  &enrollment,
		Capacity:    &capacity,
	}
	start, ok1 := parsePortalDate(row.StartDate)
	end, ok2 := parsePortalDate(row.EndDate)
	if ok1 && ok2 {
		info.Dates = &schedule.DateRange{Start: start, End: end}
	}
	return info
}

// parsePortalDate accepts the portal's "1/17/2017" form as well as ISO dates.
func parsePortalDate(s string) (time.Time, bool) {
	for _, layout := range []string{"1/2/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// lastNames trims portal "Last, First" names down to last names for compact
// section labels.
func lastNames(names []string) []string {
	var out []string
	for _, name := range names {
		out = append(out, strings.TrimSpace(strings.SplitN(name, ",", 2)[0]))
	}
	return out
}

// courseID strips the section digits from a section id, keeping the catalog
// number and campus.
func courseID(sectionID string) string {
	if i := strings.IndexByte(sectionID, '-'); i >= 0 {
		return sectionID[:i]
	}
	return sectionID
}

package schedule

import (
	"strconv"
	"strings"
)

// Parse splits a course's free-text meeting times into section variants, one
// per non-empty line. A line consists of an optional "LABEL: " prefix followed
// by one or more comma-separated meeting patterns like
// "MWF 09:00AM-09:50AM; Shanahan 1234". Lines that contain no recognizable
// meeting pattern are dropped silently; that is the tolerated-data contract
// for hand-edited time text.
func Parse(c *Course) []SectionVariant {
	var variants []SectionVariant
	for _, line := range strings.Split(c.Times, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		label, rest := splitLabel(line)

		var blocks []TimeBlock
		var info *SectionInfo
		if n, ok := SectionNumber(label); ok {
			info = c.Sections[n]
		}

		for _, m := range scanMeetings(rest) {
			from := timeToHours(m.startHour, m.startMin, m.startPM)
			to := timeToHours(m.endHour, m.endMin, m.endPM)
			for _, day := range m.days {
				blocks = append(blocks, TimeBlock{
					Weekday:    day,
					Start:      from,
					End:        to,
					Location:   m.location,
					CourseName: c.Name,
					Section:    label,
					Info:       info,
				})
			}
		}

		if len(blocks) == 0 {
			continue
		}
		variants = append(variants, SectionVariant{Label: label, Info: info, Blocks: blocks})
	}
	return variants
}

// splitLabel peels the section label off a time-text line. The label is
// everything before the first ": "; a line without one has an empty label.
func splitLabel(line string) (label, rest string) {
	if i := strings.Index(line, ": "); i >= 0 {
		return line[:i], line[i+2:]
	}
	return "", line
}

// SectionNumber extracts the integer section index from a section label such
// as "CSCI070 HM-01 SP2017 (Evans)": the digits immediately following the
// campus dash. The second return value is false when the label carries no
// parseable section number.
func SectionNumber(label string) (int, bool) {
	i := strings.IndexByte(label, '-')
	if i < 0 {
		return 0, false
	}
	j := i + 1
	for j < len(label) && label[j] >= '0' && label[j] <= '9' {
		j++
	}
	if j == i+1 {
		return 0, false
	}
	n, err := strconv.Atoi(label[i+1 : j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// timeToHours converts a clock reading to fractional hours since midnight.
// Noon is special-cased: 12:xxPM stays in the 12 o'clock hour.
func timeToHours(h, m int, pm bool) float64 {
	hours := float64(h) + float64(m)/60
	if pm && h != 12 {
		hours += 12
	}
	return hours
}

// meeting is one parsed "<days> <start>-<end>;<location>" pattern.
type meeting struct {
	days               []Weekday
	startHour, endHour int
	startMin, endMin   int
	startPM, endPM     bool
	location           string
}

// scanMeetings walks a line of time text and extracts every meeting pattern.
// Meetings are delimited by commas, but locations may themselves contain
// commas, so a comma only terminates a location when it is followed by the
// start of another weekday-time pattern.
func scanMeetings(s string) []meeting {
	var meetings []meeting
	pos := 0
	for pos < len(s) {
		m, next, ok := scanMeeting(s, pos)
		if !ok {
			pos++
			continue
		}
		meetings = append(meetings, m)
		pos = next
	}
	return meetings
}

// scanMeeting attempts to read one full meeting pattern starting exactly at
// position i. On success it returns the meeting and the position just past
// its location text.
func scanMeeting(s string, i int) (meeting, int, bool) {
	var m meeting

	days, i, ok := scanDays(s, i)
	if !ok {
		return m, 0, false
	}
	if i >= len(s) || s[i] != ' ' {
		return m, 0, false
	}
	i++

	m.days = days
	var startPM, endPM *bool

	m.startHour, m.startMin, startPM, i, ok = scanClock(s, i)
	if !ok {
		return m, 0, false
	}
	i = skipSpaces(s, i)
	if i >= len(s) || s[i] != '-' {
		return m, 0, false
	}
	i++
	if i < len(s) && s[i] == ' ' {
		i++
	}
	m.endHour, m.endMin, endPM, i, ok = scanClock(s, i)
	if !ok {
		return m, 0, false
	}
	i = skipSpaces(s, i)
	if i >= len(s) || s[i] != ';' {
		return m, 0, false
	}
	i++

	// AM/PM stated on one side of the dash carries over to the other. When
	// neither side states it, both default to AM: hand-entered morning times
	// commonly omit the suffix, and the portal always writes it out.
	m.startPM = resolveMeridiem(startPM, endPM)
	m.endPM = resolveMeridiem(endPM, startPM)

	end := locationEnd(s, i)
	m.location = strings.TrimSpace(s[i:end])
	return m, end, true
}

// scanDays reads a run of weekday letters (MTWRF). Each letter becomes one
// weekday; repeated letters are kept as-is.
func scanDays(s string, i int) ([]Weekday, int, bool) {
	var days []Weekday
	for i < len(s) {
		idx := strings.IndexByte(weekdayLetters, s[i])
		if idx < 0 {
			break
		}
		days = append(days, Weekday(idx))
		i++
	}
	if len(days) == 0 {
		return nil, 0, false
	}
	return days, i, true
}

// scanClock reads "h:mm" or "hh:mm" with an optional AM/PM suffix, allowing
// spaces before the suffix. The returned *bool is nil when no suffix was
// present.
func scanClock(s string, i int) (hour, min int, pm *bool, next int, ok bool) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if n := i - start; n < 1 || n > 2 {
		return 0, 0, nil, 0, false
	}
	hour, _ = strconv.Atoi(s[start:i])

	if i >= len(s) || s[i] != ':' {
		return 0, 0, nil, 0, false
	}
	i++

	if i+2 > len(s) || !isDigit(s[i]) || !isDigit(s[i+1]) {
		return 0, 0, nil, 0, false
	}
	min, _ = strconv.Atoi(s[i : i+2])
	i += 2

	j := i
	for j < len(s) && s[j] == ' ' {
		j++
	}
	if j+2 <= len(s) {
		suffix := strings.ToUpper(s[j : j+2])
		if suffix == "AM" || suffix == "PM" {
			isPM := suffix == "PM"
			pm = &isPM
			i = j + 2
		}
	}

	return hour, min, pm, i, true
}

func resolveMeridiem(own, other *bool) bool {
	if own != nil {
		return *own
	}
	if other != nil {
		return *other
	}
	return false
}

// locationEnd finds where a location ends: either at the end of the line or at
// a ", " that introduces the next weekday-time pattern. Commas inside the
// location itself do not terminate it.
func locationEnd(s string, i int) int {
	for j := i; j < len(s); j++ {
		if s[j] != ',' {
			continue
		}
		if j+1 < len(s) && s[j+1] == ' ' && startsMeeting(s, j+2) {
			return j
		}
	}
	return len(s)
}

// startsMeeting reports whether a weekday run followed by a clock time begins
// at position i.
func startsMeeting(s string, i int) bool {
	_, next, ok := scanDays(s, i)
	if !ok {
		return false
	}
	if next >= len(s) || s[next] != ' ' {
		return false
	}
	next++
	return next < len(s) && isDigit(s[next])
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

package catalog

// Catalog mirrors the course catalog API payload saved as courses.json. Every
// field beyond the course title and section list is optional in practice;
// optional scalars are pointers so absence is distinguishable from zero.
type Catalog struct {
	Data []CourseRecord `json:"data"`
}

// CourseRecord is one catalog course with all of its offered sections.
type CourseRecord struct {
	CourseTitle    string          `json:"courseTitle"`
	CourseNumber   string          `json:"courseNumber"`
	Description    string          `json:"description,omitempty"`
	CreditValue    *float64        `json:"creditValue,omitempty"`
	CourseSections []SectionRecord `json:"courseSections"`
}

// SectionRecord is one offered section. ExternalID looks like
// "CSCI070 HM-01 SP2017": catalog number, campus, section number, term.
type SectionRecord struct {
	ExternalID            string                  `json:"externalId"`
	Capacity              *int                    `json:"capacity,omitempty"`
	CurrentEnrollment     *int                    `json:"currentEnrollment,omitempty"`
	SectionInstructor     []InstructorRecord      `json:"sectionInstructor,omitempty"`
	CourseSectionSchedule []MeetingRecord         `json:"courseSectionSchedule,omitempty"`
	CalendarSessions      []CalendarSessionRecord `json:"calendarSessions,omitempty"`
}

// InstructorRecord may carry either name part alone.
type InstructorRecord struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// MeetingRecord is one weekly meeting pattern of a section. Days use the
// portal's dash-padded letters ("MW---" or "M-W-F"); times are military
// "hhmm" strings.
type MeetingRecord struct {
	ClassMeetingDays    string `json:"classMeetingDays"`
	ClassBeginningTime  string `json:"classBeginningTime"`
	ClassEndingTime     string `json:"classEndingTime"`
	InstructionSiteName string `json:"instructionSiteName"`
}

// CalendarSessionRecord ties a section to a term and its effective dates.
type CalendarSessionRecord struct {
	Designator string `json:"designator"`
	BeginDate  string `json:"beginDate"`
	EndDate    string `json:"endDate"`
}

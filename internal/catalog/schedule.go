package catalog

// Holiday is a named holiday or break within a semester.
type Holiday struct {
	Name string
	Date string
}

// Semester holds the important dates for one academic term. Dates are
// formatted MM/DD/YYYY; ranges use "start - end".
type Semester struct {
	Name               string
	SemesterStart      string
	SemesterEnd        string
	RegistrationStart  string
	RegistrationEnd    string
	AddDropDeadline    string
	WithdrawalDeadline string
	Holidays           []Holiday
	StudyDays          string
	FinalExams         string
}

// AcademicCalendar maps semester names to their dates.
var AcademicCalendar = map[string]Semester{
	"Fall 2025": {
		Name:               "Fall 2025",
		SemesterStart:      "09/01/2025",
		SemesterEnd:        "12/15/2025",
		RegistrationStart:  "07/15/2025",
		RegistrationEnd:    "08/20/2025",
		AddDropDeadline:    "09/15/2025",
		WithdrawalDeadline: "10/30/2025",
		Holidays: []Holiday{
			{Name: "Labor Day", Date: "09/07/2025"},
			{Name: "Fall Break", Date: "10/12/2025 - 10/13/2025"},
			{Name: "Thanksgiving Break", Date: "11/25/2025 - 11/29/2025"},
		},
		StudyDays:  "12/16/2025 - 12/17/2025",
		FinalExams: "12/18/2025 - 12/22/2025",
	},
	"Spring 2026": {
		Name:               "Spring 2026",
		SemesterStart:      "01/15/2026",
		SemesterEnd:        "05/05/2026",
		RegistrationStart:  "11/15/2025",
		RegistrationEnd:    "12/20/2025",
		AddDropDeadline:    "01/29/2026",
		WithdrawalDeadline: "03/15/2026",
		Holidays: []Holiday{
			{Name: "Martin Luther King Jr. Day", Date: "01/18/2026"},
			{Name: "Spring Break", Date: "03/08/2026 - 03/14/2026"},
		},
		StudyDays:  "05/06/2026 - 05/07/2026",
		FinalExams: "05/08/2026 - 05/12/2026",
	},
	"Summer 2026": {
		Name:               "Summer 2026",
		SemesterStart:      "06/01/2026",
		SemesterEnd:        "08/15/2026",
		RegistrationStart:  "04/01/2026",
		RegistrationEnd:    "05/15/2026",
		AddDropDeadline:    "06/10/2026",
		WithdrawalDeadline: "07/15/2026",
		Holidays: []Holiday{
			{Name: "Independence Day", Date: "07/04/2026"},
		},
		StudyDays:  "08/16/2026",
		FinalExams: "08/17/2026 - 08/18/2026",
	},
}

// SemesterNames lists semesters in chronological order.
var SemesterNames = []string{"Fall 2025", "Spring 2026", "Summer 2026"}

// UniversityPolicies maps policy keys to their full text.
var UniversityPolicies = map[string]string{
	"add_drop": "Students may add or drop courses without penalty during the first two weeks of the semester. " +
		"After the add/drop deadline, students cannot add courses but may withdraw with a 'W' grade.",

	"withdrawal": "Course withdrawal is allowed until the withdrawal deadline. A grade of 'W' will appear on the transcript. " +
		"After the withdrawal deadline, students will receive the grade earned in the course.",

	"graduation": "Students must submit a graduation application at least one semester before their intended " +
		"graduation date. All degree requirements must be completed by the end of the final semester.",

	"enrollment": "Full-time enrollment requires at least 12 credit hours per semester for undergraduates and " +
		"9 credit hours for graduate students. International students must maintain full-time enrollment.",

	"attendance": "Regular attendance is expected in all courses. Students who miss more than 25% of class sessions " +
		"may be administratively withdrawn at the instructor's discretion.",

	"incomplete": "An 'Incomplete' grade may be assigned when a student cannot complete coursework due to " +
		"circumstances beyond their control. Remaining work must be completed within one semester.",
}

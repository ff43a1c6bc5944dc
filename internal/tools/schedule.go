package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campushq/unidesk/internal/catalog"
)

func registerScheduleTools(r *Registry) {
	r.MustRegister("get_semester_dates",
		funcDef("get_semester_dates",
			"Get the important dates for a semester: start, end, registration, deadlines, holidays",
			objectSchema([]string{"semester"}, map[string]string{
				"semester": "The semester, e.g. 'Fall 2025' or just 'fall'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Semester string `json:"semester"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid get_semester_dates arguments: %w", err)
			}
			return semesterDates(in.Semester)
		})

	r.MustRegister("describe_drop_policy",
		funcDef("describe_drop_policy",
			"Explain the add/drop and withdrawal policies, with the deadlines for a semester",
			objectSchema(nil, map[string]string{
				"semester": "Optional semester to include concrete deadlines for",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Semester string `json:"semester"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid describe_drop_policy arguments: %w", err)
			}
			return dropPolicy(in.Semester), nil
		})

	r.MustRegister("check_enrollment_status",
		funcDef("check_enrollment_status",
			"Explain full-time enrollment requirements for a student type",
			objectSchema(nil, map[string]string{
				"student_type": "Optional: 'undergraduate', 'graduate', or 'international'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				StudentType string `json:"student_type"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid check_enrollment_status arguments: %w", err)
			}
			return enrollmentStatus(in.StudentType), nil
		})

	r.MustRegister("get_exam_schedule",
		funcDef("get_exam_schedule",
			"Get the study days and final exam period for a semester",
			objectSchema([]string{"semester"}, map[string]string{
				"semester": "The semester, e.g. 'Spring 2026'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Semester string `json:"semester"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid get_exam_schedule arguments: %w", err)
			}
			return examSchedule(in.Semester)
		})
}

// findSemester matches a query against the calendar by exact name first,
// then by substring in either direction.
func findSemester(query string) (catalog.Semester, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog.Semester{}, false
	}
	for _, name := range catalog.SemesterNames {
		if strings.ToLower(name) == q {
			return catalog.AcademicCalendar[name], true
		}
	}
	for _, name := range catalog.SemesterNames {
		lower := strings.ToLower(name)
		if strings.Contains(lower, q) || strings.Contains(q, lower) {
			return catalog.AcademicCalendar[name], true
		}
	}
	return catalog.Semester{}, false
}

func unknownSemester(query string) string {
	return fmt.Sprintf("I don't have calendar data for %q. Available semesters: %s.",
		query, strings.Join(catalog.SemesterNames, ", "))
}

func semesterDates(query string) (string, error) {
	sem, ok := findSemester(query)
	if !ok {
		return unknownSemester(query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", sem.Name)
	fmt.Fprintf(&b, "Semester: %s - %s\n", sem.SemesterStart, sem.SemesterEnd)
	fmt.Fprintf(&b, "Registration: %s - %s\n", sem.RegistrationStart, sem.RegistrationEnd)
	fmt.Fprintf(&b, "Add/drop deadline: %s\n", sem.AddDropDeadline)
	fmt.Fprintf(&b, "Withdrawal deadline: %s\n", sem.WithdrawalDeadline)
	if len(sem.Holidays) > 0 {
		b.WriteString("Holidays:\n")
		for _, h := range sem.Holidays {
			fmt.Fprintf(&b, "- %s: %s\n", h.Name, h.Date)
		}
	}
	fmt.Fprintf(&b, "Study days: %s\n", sem.StudyDays)
	fmt.Fprintf(&b, "Final exams: %s", sem.FinalExams)
	return b.String(), nil
}

func dropPolicy(semester string) string {
	var b strings.Builder
	b.WriteString(catalog.UniversityPolicies["add_drop"])
	b.WriteString("\n\n")
	b.WriteString(catalog.UniversityPolicies["withdrawal"])
	if sem, ok := findSemester(semester); ok {
		fmt.Fprintf(&b, "\n\nFor %s: add/drop deadline is %s, withdrawal deadline is %s.",
			sem.Name, sem.AddDropDeadline, sem.WithdrawalDeadline)
	}
	return b.String()
}

func enrollmentStatus(studentType string) string {
	policy := catalog.UniversityPolicies["enrollment"]
	switch strings.ToLower(strings.TrimSpace(studentType)) {
	case "undergraduate":
		return "Undergraduates need at least 12 credit hours per semester for full-time status.\n\n" + policy
	case "graduate":
		return "Graduate students need at least 9 credit hours per semester for full-time status.\n\n" + policy
	case "international":
		return "International students must maintain full-time enrollment every semester.\n\n" + policy
	}
	return policy
}

func examSchedule(query string) (string, error) {
	sem, ok := findSemester(query)
	if !ok {
		return unknownSemester(query), nil
	}
	return fmt.Sprintf("%s exam period:\nStudy days: %s\nFinal exams: %s",
		sem.Name, sem.StudyDays, sem.FinalExams), nil
}

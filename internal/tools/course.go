package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campushq/unidesk/internal/catalog"
	"github.com/campushq/unidesk/internal/resolver"
)

const defaultRecommendationCount = 3

func registerCourseTools(r *Registry, res *resolver.Resolver) {
	r.MustRegister("recommend_courses",
		funcDef("recommend_courses",
			"Recommend courses based on a student's stated interest or career goal",
			objectSchema([]string{"interest"}, map[string]string{
				"interest": "The student's interest, e.g. 'data science' or 'biology'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Interest string `json:"interest"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid recommend_courses arguments: %w", err)
			}
			return recommendCourses(ctx, res, in.Interest)
		})

	r.MustRegister("get_course_info",
		funcDef("get_course_info",
			"Get detailed information about a specific course by code or name",
			objectSchema([]string{"course"}, map[string]string{
				"course": "Course code (e.g. 'CS101') or course name",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Course string `json:"course"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid get_course_info arguments: %w", err)
			}
			return courseInfo(ctx, res, in.Course)
		})

	r.MustRegister("check_course_prerequisites",
		funcDef("check_course_prerequisites",
			"List the prerequisites for a course",
			objectSchema([]string{"course"}, map[string]string{
				"course": "Course code, e.g. 'CS201'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Course string `json:"course"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid check_course_prerequisites arguments: %w", err)
			}
			return coursePrerequisites(ctx, res, in.Course)
		})

	r.MustRegister("compare_course_paths",
		funcDef("compare_course_paths",
			"Compare the recommended courses for two career paths",
			objectSchema([]string{"first", "second"}, map[string]string{
				"first":  "The first career path, e.g. 'data science'",
				"second": "The second career path, e.g. 'finance'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				First  string `json:"first"`
				Second string `json:"second"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid compare_course_paths arguments: %w", err)
			}
			return compareCoursePaths(ctx, res, in.First, in.Second)
		})
}

func recommendCourses(ctx context.Context, res *resolver.Resolver, interest string) (string, error) {
	resolution, err := res.ResolveCourses(ctx, interest, defaultRecommendationCount)
	if err != nil {
		return "", fmt.Errorf("course resolution failed: %w", err)
	}
	if resolution.Unresolved() {
		return fmt.Sprintf("I couldn't find courses matching %q. Popular areas include: %s.",
			interest, strings.Join(res.KnownCareerPaths(), ", ")), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your interest in %s, I recommend the following courses:\n", interest)
	for _, item := range resolution.Items {
		course, ok := catalog.Courses[item.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%d credits, %s)", course.Code, course.Title, course.Credits, course.Difficulty)
		if resolution.Tier == resolver.TierSemantic {
			fmt.Fprintf(&b, " [match: %.2f]", item.Score)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func courseInfo(ctx context.Context, res *resolver.Resolver, query string) (string, error) {
	course, ok := findCourse(query)
	if !ok {
		// Fall back to semantic resolution for descriptive queries.
		resolution, err := res.ResolveCourses(ctx, query, 1)
		if err != nil {
			return "", fmt.Errorf("course resolution failed: %w", err)
		}
		if resolution.Unresolved() || len(resolution.Items) == 0 {
			return fmt.Sprintf("I couldn't find a course matching %q in the catalog.", query), nil
		}
		course, ok = catalog.Courses[resolution.Items[0].ID]
		if !ok {
			return fmt.Sprintf("I couldn't find a course matching %q in the catalog.", query), nil
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", course.Code, course.Title)
	fmt.Fprintf(&b, "Description: %s\n", course.Description)
	fmt.Fprintf(&b, "Credits: %d\n", course.Credits)
	fmt.Fprintf(&b, "Difficulty: %s\n", course.Difficulty)
	if len(course.Prerequisites) > 0 {
		fmt.Fprintf(&b, "Prerequisites: %s\n", strings.Join(course.Prerequisites, ", "))
	} else {
		b.WriteString("Prerequisites: none\n")
	}
	fmt.Fprintf(&b, "Topics: %s", strings.Join(course.Topics, ", "))
	return b.String(), nil
}

func coursePrerequisites(ctx context.Context, res *resolver.Resolver, query string) (string, error) {
	course, ok := findCourse(query)
	if !ok {
		resolution, err := res.ResolveCourses(ctx, query, 1)
		if err != nil {
			return "", fmt.Errorf("course resolution failed: %w", err)
		}
		if resolution.Unresolved() || len(resolution.Items) == 0 {
			return fmt.Sprintf("I couldn't find a course matching %q in the catalog.", query), nil
		}
		course, ok = catalog.Courses[resolution.Items[0].ID]
		if !ok {
			return fmt.Sprintf("I couldn't find a course matching %q in the catalog.", query), nil
		}
	}
	if len(course.Prerequisites) == 0 {
		return fmt.Sprintf("%s (%s) has no prerequisites. It is open to all students.", course.Code, course.Title), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) requires:\n", course.Code, course.Title)
	for _, code := range course.Prerequisites {
		if prereq, ok := catalog.Courses[code]; ok {
			fmt.Fprintf(&b, "- %s: %s\n", prereq.Code, prereq.Title)
		} else {
			fmt.Fprintf(&b, "- %s\n", code)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func compareCoursePaths(ctx context.Context, res *resolver.Resolver, first, second string) (string, error) {
	firstRes, err := res.ResolveCourses(ctx, first, 0)
	if err != nil {
		return "", fmt.Errorf("course resolution failed: %w", err)
	}
	secondRes, err := res.ResolveCourses(ctx, second, 0)
	if err != nil {
		return "", fmt.Errorf("course resolution failed: %w", err)
	}
	if firstRes.Unresolved() || secondRes.Unresolved() {
		return fmt.Sprintf("I can only compare known career paths. Available paths: %s.",
			strings.Join(res.KnownCareerPaths(), ", ")), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Comparing %s and %s:\n\n", first, second)
	writePathSection(&b, first, firstRes.Items)
	b.WriteString("\n")
	writePathSection(&b, second, secondRes.Items)

	shared := sharedCodes(firstRes.Items, secondRes.Items)
	if len(shared) > 0 {
		fmt.Fprintf(&b, "\nCourses shared by both paths: %s", strings.Join(shared, ", "))
	} else {
		b.WriteString("\nThe two paths share no courses.")
	}
	return b.String(), nil
}

func writePathSection(b *strings.Builder, label string, items []resolver.Item) {
	fmt.Fprintf(b, "%s:\n", label)
	for _, item := range items {
		if course, ok := catalog.Courses[item.ID]; ok {
			fmt.Fprintf(b, "- %s: %s (%d credits)\n", course.Code, course.Title, course.Credits)
		}
	}
}

func sharedCodes(a, b []resolver.Item) []string {
	inA := make(map[string]bool, len(a))
	for _, item := range a {
		inA[item.ID] = true
	}
	var shared []string
	for _, item := range b {
		if inA[item.ID] {
			shared = append(shared, item.ID)
		}
	}
	return shared
}

// findCourse looks up a course by code or by title substring.
func findCourse(query string) (catalog.Course, bool) {
	code := strings.ToUpper(strings.TrimSpace(query))
	if course, ok := catalog.Courses[code]; ok {
		return course, true
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog.Course{}, false
	}
	for _, c := range catalog.CourseCodes {
		course := catalog.Courses[c]
		if strings.Contains(strings.ToLower(course.Title), q) {
			return course, true
		}
	}
	return catalog.Course{}, false
}

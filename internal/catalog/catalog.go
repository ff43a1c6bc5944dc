// Package catalog holds the static reference data for the support center:
// the course catalog, career paths, campus locations, university traditions,
// the academic calendar, and university policies. Loaded once, never mutated.
package catalog

// Course is one entry in the course catalog.
type Course struct {
	Code          string
	Title         string
	Description   string
	Credits       int
	Prerequisites []string
	Difficulty    string
	Topics        []string
}

// EmbeddingText returns the text representation used for semantic indexing.
func (c Course) EmbeddingText() string {
	return c.Title + ". " + c.Description + ". Topics: " + joinComma(c.Topics)
}

// Courses is the course catalog keyed by course code.
var Courses = map[string]Course{
	"CS101": {
		Code: "CS101", Title: "Introduction to Computer Science",
		Description: "Fundamentals of programming, algorithms, and computer systems",
		Credits:     3, Prerequisites: nil, Difficulty: "Beginner",
		Topics: []string{"programming", "algorithms", "computer systems"},
	},
	"CS201": {
		Code: "CS201", Title: "Data Structures",
		Description: "Implementation and analysis of fundamental data structures",
		Credits:     4, Prerequisites: []string{"CS101"}, Difficulty: "Intermediate",
		Topics: []string{"data structures", "algorithms", "efficiency"},
	},
	"DS200": {
		Code: "DS200", Title: "Introduction to Data Science",
		Description: "Foundations of data analysis, statistics, and machine learning",
		Credits:     3, Prerequisites: []string{"CS101", "MATH150"}, Difficulty: "Intermediate",
		Topics: []string{"data analysis", "statistics", "machine learning"},
	},
	"MATH150": {
		Code: "MATH150", Title: "Calculus I",
		Description: "Limits, derivatives, and integrals of single-variable functions",
		Credits:     4, Prerequisites: nil, Difficulty: "Intermediate",
		Topics: []string{"calculus", "mathematics", "functions"},
	},
	"MATH250": {
		Code: "MATH250", Title: "Linear Algebra",
		Description: "Vector spaces, matrices, and linear transformations",
		Credits:     3, Prerequisites: []string{"MATH150"}, Difficulty: "Intermediate",
		Topics: []string{"linear algebra", "matrices", "mathematics"},
	},
	"ENG101": {
		Code: "ENG101", Title: "Academic Writing",
		Description: "Principles of effective academic writing and communication",
		Credits:     3, Prerequisites: nil, Difficulty: "Beginner",
		Topics: []string{"writing", "communication", "research"},
	},
	"BIO101": {
		Code: "BIO101", Title: "Introduction to Biology",
		Description: "Fundamentals of biological systems and processes",
		Credits:     4, Prerequisites: nil, Difficulty: "Beginner",
		Topics: []string{"biology", "life sciences", "cells"},
	},
	"PSYCH101": {
		Code: "PSYCH101", Title: "Introduction to Psychology",
		Description: "Survey of basic principles in psychology and behavior",
		Credits:     3, Prerequisites: nil, Difficulty: "Beginner",
		Topics: []string{"psychology", "behavior", "mental processes"},
	},
	"AI400": {
		Code: "AI400", Title: "Advanced Machine Learning",
		Description: "Advanced techniques in machine learning and artificial intelligence",
		Credits:     4, Prerequisites: []string{"CS201", "DS200", "MATH250"}, Difficulty: "Advanced",
		Topics: []string{"machine learning", "artificial intelligence", "neural networks"},
	},
	"CS300": {
		Code: "CS300", Title: "Database Systems",
		Description: "Design and implementation of database management systems",
		Credits:     3, Prerequisites: []string{"CS201"}, Difficulty: "Intermediate",
		Topics: []string{"databases", "SQL", "data modeling"},
	},
	"FIN201": {
		Code: "FIN201", Title: "Introduction to Finance",
		Description: "Principles of financial management, investment analysis, and capital markets",
		Credits:     3, Prerequisites: []string{"MATH150"}, Difficulty: "Intermediate",
		Topics: []string{"finance", "investment", "capital markets"},
	},
	"FIN301": {
		Code: "FIN301", Title: "Corporate Finance",
		Description: "Analysis of financial decision-making within the firm and its impact on shareholders",
		Credits:     3, Prerequisites: []string{"FIN201"}, Difficulty: "Advanced",
		Topics: []string{"finance", "corporate strategy", "valuation"},
	},
	"BUS101": {
		Code: "BUS101", Title: "Introduction to Business",
		Description: "Overview of business principles, management, marketing, and economics",
		Credits:     3, Prerequisites: nil, Difficulty: "Beginner",
		Topics: []string{"business", "management", "marketing"},
	},
	"BUS220": {
		Code: "BUS220", Title: "Business Analytics",
		Description: "Application of data analysis techniques to business decision-making",
		Credits:     3, Prerequisites: []string{"BUS101", "MATH150"}, Difficulty: "Intermediate",
		Topics: []string{"business", "analytics", "decision-making"},
	},
	"ECON101": {
		Code: "ECON101", Title: "Principles of Economics",
		Description: "Introduction to micro and macroeconomic principles and policies",
		Credits:     3, Prerequisites: nil, Difficulty: "Beginner",
		Topics: []string{"economics", "markets", "policy"},
	},
}

// CourseCodes lists the catalog in a fixed order. Map iteration in Go is
// randomized; resolver tie-breaks and embedding builds need a stable order.
var CourseCodes = []string{
	"CS101", "CS201", "DS200", "MATH150", "MATH250", "ENG101", "BIO101",
	"PSYCH101", "AI400", "CS300", "FIN201", "FIN301", "BUS101", "BUS220",
	"ECON101",
}

// CareerPaths maps a career path to its recommended courses, in order.
var CareerPaths = map[string][]string{
	"data science":         {"CS101", "MATH150", "DS200", "MATH250", "AI400"},
	"software engineering": {"CS101", "CS201", "MATH150", "CS300"},
	"research":             {"CS101", "MATH150", "MATH250", "BIO101", "ENG101"},
	"business analytics":   {"BUS220", "CS101", "DS200", "MATH150", "BUS101"},
	"psychology":           {"PSYCH101", "BIO101", "ENG101", "DS200"},
	"finance":              {"FIN201", "FIN301", "ECON101", "MATH150", "BUS101"},
	"business":             {"BUS101", "ECON101", "ENG101", "BUS220"},
	"economics":            {"ECON101", "MATH150", "DS200", "FIN201"},
}

// CareerPathNames lists career paths in a fixed order.
var CareerPathNames = []string{
	"data science", "software engineering", "research", "business analytics",
	"psychology", "finance", "business", "economics",
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

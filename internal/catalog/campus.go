package catalog

// Place is a campus location or university tradition with poetic themes.
type Place struct {
	Name        string
	Description string
	Themes      []string
}

// EmbeddingText returns the text representation used for semantic indexing.
func (p Place) EmbeddingText() string {
	return p.Name + ": " + p.Description + ". Themes: " + joinComma(p.Themes)
}

// CampusLocations maps location names to their poetic descriptions.
var CampusLocations = map[string]Place{
	"library": {
		Name: "library", Description: "Vast halls of knowledge with towering shelves and quiet study nooks",
		Themes: []string{"knowledge", "silence", "focus", "books", "learning", "discovery"},
	},
	"quad": {
		Name: "quad", Description: "Open grassy area surrounded by academic buildings and pathways",
		Themes: []string{"nature", "community", "relaxation", "seasons", "gathering", "sunshine"},
	},
	"student center": {
		Name: "student center", Description: "Buzzing hub of activity with lounges, food, and meeting spaces",
		Themes: []string{"community", "energy", "friendship", "food", "activity", "conversation"},
	},
	"cafeteria": {
		Name: "cafeteria", Description: "Lively space filled with aromas, conversations, and diverse cuisines",
		Themes: []string{"food", "community", "diversity", "energy", "sustenance", "gathering"},
	},
	"dormitory": {
		Name: "dormitory", Description: "Homely buildings where students build community and memories",
		Themes: []string{"home", "friendship", "growth", "late nights", "community", "memories"},
	},
	"lecture hall": {
		Name: "lecture hall", Description: "Tiered seating facing a podium where knowledge is shared",
		Themes: []string{"learning", "wisdom", "attention", "enlightenment", "notes", "questions"},
	},
	"laboratory": {
		Name: "laboratory", Description: "Room filled with equipment where discovery and experimentation happen",
		Themes: []string{"discovery", "curiosity", "science", "exploration", "precision", "breakthrough"},
	},
	"sports field": {
		Name: "sports field", Description: "Open area where athletic achievement and team spirit flourish",
		Themes: []string{"competition", "teamwork", "strength", "victory", "determination", "fitness"},
	},
	"art studio": {
		Name: "art studio", Description: "Creative space filled with colors, textures, and artistic expression",
		Themes: []string{"creativity", "expression", "beauty", "inspiration", "color", "perspective"},
	},
	"campus garden": {
		Name: "campus garden", Description: "Tranquil green space with seasonal blooms and quiet contemplation spots",
		Themes: []string{"nature", "peace", "growth", "beauty", "seasons", "reflection"},
	},
}

// CampusLocationNames lists locations in a fixed order.
var CampusLocationNames = []string{
	"library", "quad", "student center", "cafeteria", "dormitory",
	"lecture hall", "laboratory", "sports field", "art studio", "campus garden",
}

// UniversityTraditions maps tradition names to their descriptions.
var UniversityTraditions = map[string]Place{
	"freshman orientation": {
		Name: "freshman orientation", Description: "Week-long introduction to university life for new students",
		Themes: []string{"beginnings", "community", "excitement", "nervousness", "potential"},
	},
	"graduation ceremony": {
		Name: "graduation ceremony", Description: "Formal celebration of academic achievement and transition",
		Themes: []string{"accomplishment", "endings", "beginnings", "pride", "transition"},
	},
	"homecoming": {
		Name: "homecoming", Description: "Annual celebration welcoming alumni back to campus",
		Themes: []string{"tradition", "community", "celebration", "nostalgia", "school spirit"},
	},
	"final exams": {
		Name: "final exams", Description: "Intensive period of academic assessment and late-night studying",
		Themes: []string{"stress", "determination", "knowledge", "caffeine", "focus"},
	},
	"spring break": {
		Name: "spring break", Description: "Week-long pause in academic calendar for rest and rejuvenation",
		Themes: []string{"freedom", "relaxation", "adventure", "escape", "sunshine"},
	},
	"campus concert": {
		Name: "campus concert", Description: "Musical performances that bring the campus community together",
		Themes: []string{"music", "unity", "expression", "energy", "memory-making"},
	},
	"midnight breakfast": {
		Name: "midnight breakfast", Description: "Late-night meal served by faculty during finals week",
		Themes: []string{"comfort", "support", "community", "stress relief", "unexpected joy"},
	},
	"research symposium": {
		Name: "research symposium", Description: "Event where students present original research and discoveries",
		Themes: []string{"discovery", "achievement", "knowledge", "presentation", "pride"},
	},
}

// UniversityTraditionNames lists traditions in a fixed order.
var UniversityTraditionNames = []string{
	"freshman orientation", "graduation ceremony", "homecoming", "final exams",
	"spring break", "campus concert", "midnight breakfast", "research symposium",
}

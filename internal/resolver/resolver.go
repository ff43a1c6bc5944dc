// Package resolver turns free-text queries into catalog entries. Resolution
// walks three tiers in order: exact key match, partial (substring) key
// match, then embedding similarity. The first tier that produces a
// non-empty result wins; nothing falls through to a lower tier after that.
package resolver

import (
	"context"
	"sort"
	"strings"

	"github.com/campushq/unidesk/internal/catalog"
	"github.com/campushq/unidesk/internal/semantic"
)

// Tier labels the confidence level that produced a match.
type Tier string

const (
	TierExact    Tier = "exact"
	TierPartial  Tier = "partial"
	TierSemantic Tier = "semantic"
	TierNone     Tier = "none"
)

// Collection names owned by the resolver.
const (
	CollectionCourses    = "courses"
	CollectionLocations  = "campus_locations"
	CollectionTraditions = "university_traditions"
)

// Similarity thresholds per domain.
const (
	courseThreshold = 0.3
	campusThreshold = 0.4
)

// Item is one resolved catalog entry. Score is set only for the semantic
// tier; the exact and partial tiers carry no numeric confidence.
type Item struct {
	ID    string
	Score float64
}

// Resolution is the outcome of resolving one query.
type Resolution struct {
	Tier  Tier
	Key   string // matched category key, exact/partial tiers only
	Items []Item
}

// Unresolved reports whether no tier produced a result.
func (r Resolution) Unresolved() bool {
	return r.Tier == TierNone
}

// Resolver resolves queries against the course and campus catalogs.
type Resolver struct {
	indices *semantic.Registry
}

// New creates a resolver backed by the given index registry.
func New(indices *semantic.Registry) *Resolver {
	return &Resolver{indices: indices}
}

func normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// ResolveCourses resolves a student interest to at most count course codes.
func (r *Resolver) ResolveCourses(ctx context.Context, interest string, count int) (Resolution, error) {
	q := normalize(interest)

	// Exact career-path match
	if codes, ok := catalog.CareerPaths[q]; ok {
		return Resolution{Tier: TierExact, Key: q, Items: capCodes(codes, count)}, nil
	}

	// Partial career-path match, in collection iteration order
	for _, path := range catalog.CareerPathNames {
		if strings.Contains(q, path) || strings.Contains(path, q) {
			return Resolution{Tier: TierPartial, Key: path, Items: capCodes(catalog.CareerPaths[path], count)}, nil
		}
	}

	// Semantic match over the course collection
	ix, err := r.indices.Collection(ctx, CollectionCourses, courseItems)
	if err != nil {
		return Resolution{Tier: TierNone}, err
	}
	hits, err := ix.Search(ctx, q, count, courseThreshold)
	if err != nil {
		return Resolution{Tier: TierNone}, err
	}
	if len(hits) == 0 {
		return Resolution{Tier: TierNone}, nil
	}

	items := make([]Item, 0, len(hits))
	for _, h := range hits {
		items = append(items, Item{ID: h.Item.ID, Score: h.Score})
	}
	return Resolution{Tier: TierSemantic, Items: items}, nil
}

// ResolveCampus resolves a topic to at most count campus locations or
// university traditions.
func (r *Resolver) ResolveCampus(ctx context.Context, topic string, count int) (Resolution, error) {
	q := normalize(topic)

	// Exact name match, locations before traditions
	for _, name := range campusKeys() {
		if q == name {
			return Resolution{Tier: TierExact, Key: name, Items: []Item{{ID: name}}}, nil
		}
	}

	// Partial name match
	for _, name := range campusKeys() {
		if strings.Contains(q, name) || strings.Contains(name, q) {
			return Resolution{Tier: TierPartial, Key: name, Items: []Item{{ID: name}}}, nil
		}
	}

	// Semantic match across both campus collections, merged by score
	var merged []Item
	for _, coll := range []struct {
		name   string
		loader func() []semantic.Item
	}{
		{CollectionLocations, locationItems},
		{CollectionTraditions, traditionItems},
	} {
		ix, err := r.indices.Collection(ctx, coll.name, coll.loader)
		if err != nil {
			return Resolution{Tier: TierNone}, err
		}
		hits, err := ix.Search(ctx, q, count, campusThreshold)
		if err != nil {
			return Resolution{Tier: TierNone}, err
		}
		for _, h := range hits {
			merged = append(merged, Item{ID: h.Item.ID, Score: h.Score})
		}
	}
	if len(merged) == 0 {
		return Resolution{Tier: TierNone}, nil
	}
	sort.SliceStable(merged, func(a, b int) bool { return merged[a].Score > merged[b].Score })
	if len(merged) > count {
		merged = merged[:count]
	}
	return Resolution{Tier: TierSemantic, Items: merged}, nil
}

// KnownCareerPaths returns the career-path names used in "no match"
// suggestions.
func (r *Resolver) KnownCareerPaths() []string {
	return catalog.CareerPathNames
}

func capCodes(codes []string, count int) []Item {
	if count > 0 && len(codes) > count {
		codes = codes[:count]
	}
	items := make([]Item, 0, len(codes))
	for _, c := range codes {
		items = append(items, Item{ID: c})
	}
	return items
}

func campusKeys() []string {
	keys := make([]string, 0, len(catalog.CampusLocationNames)+len(catalog.UniversityTraditionNames))
	keys = append(keys, catalog.CampusLocationNames...)
	keys = append(keys, catalog.UniversityTraditionNames...)
	return keys
}

func courseItems() []semantic.Item {
	items := make([]semantic.Item, 0, len(catalog.CourseCodes))
	for _, code := range catalog.CourseCodes {
		items = append(items, semantic.Item{ID: code, Text: catalog.Courses[code].EmbeddingText()})
	}
	return items
}

func locationItems() []semantic.Item {
	items := make([]semantic.Item, 0, len(catalog.CampusLocationNames))
	for _, name := range catalog.CampusLocationNames {
		items = append(items, semantic.Item{ID: name, Text: catalog.CampusLocations[name].EmbeddingText()})
	}
	return items
}

func traditionItems() []semantic.Item {
	items := make([]semantic.Item, 0, len(catalog.UniversityTraditionNames))
	for _, name := range catalog.UniversityTraditionNames {
		items = append(items, semantic.Item{ID: name, Text: catalog.UniversityTraditions[name].EmbeddingText()})
	}
	return items
}

package resolver

import (
	"context"
	"reflect"
	"testing"

	"github.com/campushq/unidesk/internal/adapter/embedding"
	"github.com/campushq/unidesk/internal/semantic"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return New(semantic.NewRegistry(t.TempDir(), embedding.NewMockEmbedder()))
}

func TestResolveCoursesExactTier(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	res, err := r.ResolveCourses(ctx, "data science", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if res.Tier != TierExact {
		t.Fatalf("expected exact tier, got %s", res.Tier)
	}
	if res.Key != "data science" {
		t.Fatalf("expected key data science, got %s", res.Key)
	}
	got := make([]string, 0, len(res.Items))
	for _, it := range res.Items {
		got = append(got, it.ID)
	}
	if !reflect.DeepEqual(got, []string{"CS101", "MATH150", "DS200"}) {
		t.Fatalf("unexpected courses: %v", got)
	}
	// Exact tier carries no similarity scores
	for _, it := range res.Items {
		if it.Score != 0 {
			t.Fatalf("exact tier must not carry semantic scores: %+v", it)
		}
	}
}

func TestResolveCoursesExactIsCaseFolded(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	res, err := r.ResolveCourses(ctx, "  Data Science ", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if res.Tier != TierExact {
		t.Fatalf("expected exact tier, got %s", res.Tier)
	}
}

func TestResolveCoursesPartialTier(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	res, err := r.ResolveCourses(ctx, "software", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if res.Tier != TierPartial {
		t.Fatalf("expected partial tier, got %s", res.Tier)
	}
	if res.Key != "software engineering" {
		t.Fatalf("expected key software engineering, got %s", res.Key)
	}
	if len(res.Items) != 3 {
		t.Fatalf("expected results capped at 3, got %d", len(res.Items))
	}
}

func TestResolveCoursesSemanticTier(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	res, err := r.ResolveCourses(ctx, "biology", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if res.Tier != TierSemantic {
		t.Fatalf("expected semantic tier, got %s", res.Tier)
	}
	found := false
	for _, it := range res.Items {
		if it.ID == "BIO101" {
			found = true
			if it.Score < 0.3 {
				t.Fatalf("expected BIO101 score >= 0.3, got %f", it.Score)
			}
		}
	}
	if !found {
		t.Fatalf("expected BIO101 in results: %+v", res.Items)
	}
}

// zeroEmbedder maps every text to the zero vector, so no semantic match can
// clear any threshold.
type zeroEmbedder struct{}

func (zeroEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return make([]float64, 8), nil
}

func TestResolveCoursesUnresolved(t *testing.T) {
	ctx := context.Background()
	r := New(semantic.NewRegistry(t.TempDir(), zeroEmbedder{}))

	res, err := r.ResolveCourses(ctx, "quantum basket weaving", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if !res.Unresolved() {
		t.Fatalf("expected unresolved, got tier %s with %d items", res.Tier, len(res.Items))
	}
}

func TestResolverIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	first, err := r.ResolveCourses(ctx, "biology", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	second, err := r.ResolveCourses(ctx, "biology", 3)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolver not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExactTierNeverFallsThrough(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	res, err := r.ResolveCourses(ctx, "data science", 10)
	if err != nil {
		t.Fatalf("ResolveCourses failed: %v", err)
	}
	if res.Tier != TierExact {
		t.Fatalf("expected exact tier, got %s", res.Tier)
	}
	// The full mapped list, never semantic additions beyond it
	if len(res.Items) != 5 {
		t.Fatalf("expected the 5 mapped courses, got %d", len(res.Items))
	}
}

func TestResolveCampusExactAndSemantic(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver(t)

	res, err := r.ResolveCampus(ctx, "library", 1)
	if err != nil {
		t.Fatalf("ResolveCampus failed: %v", err)
	}
	if res.Tier != TierExact || res.Key != "library" {
		t.Fatalf("expected exact library match, got %+v", res)
	}

	// "books" appears only in the library themes
	res, err = r.ResolveCampus(ctx, "quiet books knowledge shelves", 1)
	if err != nil {
		t.Fatalf("ResolveCampus failed: %v", err)
	}
	if res.Tier != TierSemantic {
		t.Fatalf("expected semantic tier, got %s", res.Tier)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "library" {
		t.Fatalf("expected library, got %+v", res.Items)
	}
}

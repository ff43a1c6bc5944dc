package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/campushq/unidesk/internal/catalog"
	"github.com/campushq/unidesk/internal/resolver"
)

const defaultInspirationCount = 3

func registerPoetTools(r *Registry, res *resolver.Resolver) {
	r.MustRegister("get_poetry_inspiration",
		funcDef("get_poetry_inspiration",
			"Find campus locations and traditions matching a theme, with poetic imagery",
			objectSchema([]string{"topic"}, map[string]string{
				"topic": "The theme to find inspiration for, e.g. 'quiet study' or 'homecoming'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Topic string `json:"topic"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid get_poetry_inspiration arguments: %w", err)
			}
			return poetryInspiration(ctx, res, in.Topic)
		})

	r.MustRegister("generate_haiku",
		funcDef("generate_haiku",
			"Compose a haiku about a campus location or tradition",
			objectSchema([]string{"theme"}, map[string]string{
				"theme": "The subject of the haiku, e.g. 'library' or 'graduation'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Theme string `json:"theme"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid generate_haiku arguments: %w", err)
			}
			return generateHaiku(ctx, res, in.Theme)
		})

	r.MustRegister("describe_campus_tradition",
		funcDef("describe_campus_tradition",
			"Describe a university tradition and its themes",
			objectSchema([]string{"tradition"}, map[string]string{
				"tradition": "The tradition name, e.g. 'homecoming' or 'midnight breakfast'",
			})),
		func(ctx context.Context, args json.RawMessage) (string, error) {
			var in struct {
				Tradition string `json:"tradition"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return "", fmt.Errorf("invalid describe_campus_tradition arguments: %w", err)
			}
			return describeTradition(in.Tradition), nil
		})
}

func poetryInspiration(ctx context.Context, res *resolver.Resolver, topic string) (string, error) {
	resolution, err := res.ResolveCampus(ctx, topic, defaultInspirationCount)
	if err != nil {
		return "", fmt.Errorf("campus resolution failed: %w", err)
	}
	if resolution.Unresolved() {
		return fmt.Sprintf("Nothing on campus matches %q. Try a place like %s, or a tradition like %s.",
			topic,
			strings.Join(catalog.CampusLocationNames[:3], ", "),
			strings.Join(catalog.UniversityTraditionNames[:3], ", ")), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inspiration for %s:\n", topic)
	for _, item := range resolution.Items {
		place, ok := lookupPlace(item.ID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (themes: %s)", place.Name, place.Description, strings.Join(place.Themes, ", "))
		if resolution.Tier == resolver.TierSemantic {
			fmt.Fprintf(&b, " [match: %.2f]", item.Score)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// Haiku line templates. Placeholders take the subject name and two of its
// themes; selection hashes the subject so the same theme always yields the
// same poem.
var haikuTemplates = [][3]string{
	{"%s at dawn", "soft light finds %s waiting", "%s fills the air"},
	{"within the %s", "whispers of %s linger", "%s takes root here"},
	{"old %s stands still", "%s drifts through open doors", "students find %s"},
	{"the %s in spring", "%s blooms where footsteps gather", "quiet %s stays"},
}

func generateHaiku(ctx context.Context, res *resolver.Resolver, theme string) (string, error) {
	resolution, err := res.ResolveCampus(ctx, theme, 1)
	if err != nil {
		return "", fmt.Errorf("campus resolution failed: %w", err)
	}

	// Default imagery when the theme matches nothing on campus.
	name := strings.TrimSpace(theme)
	themes := []string{"wonder", "learning"}
	if !resolution.Unresolved() && len(resolution.Items) > 0 {
		if place, ok := lookupPlace(resolution.Items[0].ID); ok {
			name = place.Name
			if len(place.Themes) >= 2 {
				themes = place.Themes[:2]
			} else if len(place.Themes) == 1 {
				themes = []string{place.Themes[0], place.Themes[0]}
			}
		}
	}
	if name == "" {
		name = "campus"
	}

	h := fnv.New32a()
	h.Write([]byte(name))
	tpl := haikuTemplates[int(h.Sum32())%len(haikuTemplates)]

	return fmt.Sprintf(tpl[0]+"\n"+tpl[1]+"\n"+tpl[2], name, themes[0], themes[1]), nil
}

func describeTradition(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, name := range catalog.UniversityTraditionNames {
		if q == name {
			return formatTradition(catalog.UniversityTraditions[name])
		}
	}
	for _, name := range catalog.UniversityTraditionNames {
		if q != "" && (strings.Contains(q, name) || strings.Contains(name, q)) {
			return formatTradition(catalog.UniversityTraditions[name])
		}
	}
	return fmt.Sprintf("I don't know a tradition called %q. Our traditions: %s.",
		query, strings.Join(catalog.UniversityTraditionNames, ", "))
}

func formatTradition(t catalog.Place) string {
	return fmt.Sprintf("%s: %s. Its themes are %s.", t.Name, t.Description, strings.Join(t.Themes, ", "))
}

func lookupPlace(name string) (catalog.Place, bool) {
	if place, ok := catalog.CampusLocations[name]; ok {
		return place, true
	}
	if place, ok := catalog.UniversityTraditions[name]; ok {
		return place, true
	}
	return catalog.Place{}, false
}

package policy

import (
	"context"
	"testing"

	"github.com/campushq/unidesk/internal/agent"
	"github.com/campushq/unidesk/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewDefault(context.Background())
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return engine
}

func TestToolPermissionsMatchAgentDefinitions(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	for _, def := range agent.All() {
		for _, tool := range def.Tools {
			ok, err := engine.AllowTool(ctx, def.ID, tool)
			if err != nil {
				t.Fatalf("AllowTool(%s, %s): %v", def.ID, tool, err)
			}
			if !ok {
				t.Errorf("%s should be allowed to run %s", def.ID, tool)
			}
		}
	}
}

func TestForeignToolIsDenied(t *testing.T) {
	engine := newTestEngine(t)
	ok, err := engine.AllowTool(context.Background(), domain.AgentCampusPoet, "recommend_courses")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("the poet must not run course tools")
	}
}

func TestTriageHasNoToolGrants(t *testing.T) {
	engine := newTestEngine(t)
	ok, err := engine.AllowTool(context.Background(), domain.AgentTriage, "recommend_courses")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("triage has no tool grants")
	}
}

func TestHandoffPermissionsMatchAgentDefinitions(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	for _, def := range agent.All() {
		for _, other := range agent.All() {
			want := agent.CanHandOff(def.ID, other.ID)
			got, err := engine.AllowHandoff(ctx, def.ID, other.ID)
			if err != nil {
				t.Fatalf("AllowHandoff(%s, %s): %v", def.ID, other.ID, err)
			}
			if got != want {
				t.Errorf("AllowHandoff(%s, %s) = %v, want %v", def.ID, other.ID, got, want)
			}
		}
	}
}

func TestUnknownAgentIsDenied(t *testing.T) {
	engine := newTestEngine(t)
	ok, err := engine.AllowTool(context.Background(), domain.AgentID("intruder"), "recommend_courses")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unknown agents must be denied")
	}
}

func TestCustomPolicyOverride(t *testing.T) {
	engine, err := NewEngine(context.Background(), `
package conversation_policy

import rego.v1

default decision := "deny"

decision := "allow" if {
	input.action == "tool"
	input.tool_name == "generate_haiku"
}
`)
	if err != nil {
		t.Fatalf("failed to build custom engine: %v", err)
	}

	ok, err := engine.AllowTool(context.Background(), domain.AgentCampusPoet, "generate_haiku")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("custom policy should allow generate_haiku")
	}
	ok, err = engine.AllowTool(context.Background(), domain.AgentCampusPoet, "get_poetry_inspiration")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("custom policy should deny everything else")
	}
}

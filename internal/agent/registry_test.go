package agent

import (
	"strings"
	"testing"

	"github.com/campushq/unidesk/internal/domain"
)

func TestGetUnknownFallsBackToTriage(t *testing.T) {
	def := Get(domain.AgentID("nonexistent"))
	if def.ID != domain.AgentTriage {
		t.Fatalf("expected triage fallback, got %s", def.ID)
	}
	if Get("") != def {
		t.Fatalf("empty id should also fall back to triage")
	}
}

func TestAllAgentsDefined(t *testing.T) {
	defs := All()
	if len(defs) != 4 {
		t.Fatalf("expected 4 agents, got %d", len(defs))
	}
	for _, def := range defs {
		if def.Instructions == "" {
			t.Errorf("agent %s has no instructions", def.ID)
		}
		if def.Name != def.ID.DisplayName() {
			t.Errorf("agent %s name mismatch: %s", def.ID, def.Name)
		}
	}
}

func TestTriageHasNoTools(t *testing.T) {
	if tools := Get(domain.AgentTriage).Tools; len(tools) != 0 {
		t.Fatalf("triage should have no tools, got %v", tools)
	}
}

func TestSpecialistToolSets(t *testing.T) {
	cases := map[domain.AgentID][]string{
		domain.AgentCourseAdvisor:       {"recommend_courses", "get_course_info", "check_course_prerequisites", "compare_course_paths"},
		domain.AgentSchedulingAssistant: {"get_semester_dates", "describe_drop_policy", "check_enrollment_status", "get_exam_schedule"},
		domain.AgentCampusPoet:          {"get_poetry_inspiration", "generate_haiku", "describe_campus_tradition"},
	}
	for id, want := range cases {
		got := Get(id).Tools
		if len(got) != len(want) {
			t.Errorf("%s: expected %d tools, got %d", id, len(want), len(got))
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: tool %d = %s, want %s", id, i, got[i], want[i])
			}
		}
	}
}

func TestHandoffTargetsExcludeSelf(t *testing.T) {
	for _, def := range All() {
		for _, target := range def.HandoffTargets {
			if target == def.ID {
				t.Errorf("agent %s lists itself as a handoff target", def.ID)
			}
			if !target.Valid() {
				t.Errorf("agent %s has invalid handoff target %s", def.ID, target)
			}
		}
	}
}

func TestCanHandOff(t *testing.T) {
	if !CanHandOff(domain.AgentTriage, domain.AgentCampusPoet) {
		t.Error("triage should be able to hand off to the poet")
	}
	if CanHandOff(domain.AgentCourseAdvisor, domain.AgentCourseAdvisor) {
		t.Error("an agent must not hand off to itself")
	}
	if CanHandOff(domain.AgentCourseAdvisor, domain.AgentTriage) {
		t.Error("specialists do not hand back to triage")
	}
}

func TestInstructionsMentionHandoffTokens(t *testing.T) {
	for _, def := range All() {
		for _, target := range def.HandoffTargets {
			var token string
			switch target {
			case domain.AgentCourseAdvisor:
				token = "call_course_advisor_agent()"
			case domain.AgentSchedulingAssistant:
				token = "call_scheduling_assistant_agent()"
			case domain.AgentCampusPoet:
				token = "call_university_poet_agent()"
			}
			if !strings.Contains(def.Instructions, token) {
				t.Errorf("agent %s instructions never mention %s", def.ID, token)
			}
		}
	}
}

// Package agent holds the static definitions of the four conversational
// agents: their system prompts, tool sets, and allowed handoff targets.
package agent

import "github.com/campushq/unidesk/internal/domain"

var definitions = map[domain.AgentID]*domain.AgentDefinition{
	domain.AgentTriage: {
		ID:           domain.AgentTriage,
		Name:         domain.AgentTriage.DisplayName(),
		Instructions: triageInstructions,
		Tools:        nil,
		HandoffTargets: []domain.AgentID{
			domain.AgentCourseAdvisor,
			domain.AgentSchedulingAssistant,
			domain.AgentCampusPoet,
		},
	},
	domain.AgentCourseAdvisor: {
		ID:           domain.AgentCourseAdvisor,
		Name:         domain.AgentCourseAdvisor.DisplayName(),
		Instructions: courseAdvisorInstructions,
		Tools: []string{
			"recommend_courses",
			"get_course_info",
			"check_course_prerequisites",
			"compare_course_paths",
		},
		HandoffTargets: []domain.AgentID{
			domain.AgentSchedulingAssistant,
			domain.AgentCampusPoet,
		},
	},
	domain.AgentSchedulingAssistant: {
		ID:           domain.AgentSchedulingAssistant,
		Name:         domain.AgentSchedulingAssistant.DisplayName(),
		Instructions: schedulingAssistantInstructions,
		Tools: []string{
			"get_semester_dates",
			"describe_drop_policy",
			"check_enrollment_status",
			"get_exam_schedule",
		},
		HandoffTargets: []domain.AgentID{
			domain.AgentCourseAdvisor,
			domain.AgentCampusPoet,
		},
	},
	domain.AgentCampusPoet: {
		ID:           domain.AgentCampusPoet,
		Name:         domain.AgentCampusPoet.DisplayName(),
		Instructions: campusPoetInstructions,
		Tools: []string{
			"get_poetry_inspiration",
			"generate_haiku",
			"describe_campus_tradition",
		},
		HandoffTargets: []domain.AgentID{
			domain.AgentCourseAdvisor,
			domain.AgentSchedulingAssistant,
		},
	},
}

// Get returns the definition for the given agent id. Unknown or empty ids
// fall back to the triage agent so a session with a stale pointer still
// lands somewhere useful.
func Get(id domain.AgentID) *domain.AgentDefinition {
	if def, ok := definitions[id]; ok {
		return def
	}
	return definitions[domain.AgentTriage]
}

// All returns every agent definition in a stable order.
func All() []*domain.AgentDefinition {
	return []*domain.AgentDefinition{
		definitions[domain.AgentTriage],
		definitions[domain.AgentCourseAdvisor],
		definitions[domain.AgentSchedulingAssistant],
		definitions[domain.AgentCampusPoet],
	}
}

// CanHandOff reports whether from may transfer a conversation to target.
func CanHandOff(from, target domain.AgentID) bool {
	for _, t := range Get(from).HandoffTargets {
		if t == target {
			return true
		}
	}
	return false
}

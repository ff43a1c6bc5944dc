package domain

// AgentID identifies one of the fixed set of conversational agents.
type AgentID string

const (
	AgentTriage              AgentID = "triage"
	AgentCourseAdvisor       AgentID = "course-advisor"
	AgentSchedulingAssistant AgentID = "scheduling-assistant"
	AgentCampusPoet          AgentID = "campus-poet"
)

// DisplayName returns the user-facing name for an agent.
func (id AgentID) DisplayName() string {
	switch id {
	case AgentCourseAdvisor:
		return "Course Advisor Agent"
	case AgentSchedulingAssistant:
		return "Scheduling Assistant Agent"
	case AgentCampusPoet:
		return "University Poet Agent"
	case AgentTriage:
		return "Triage Agent"
	}
	return "Agent"
}

// Valid reports whether id is one of the known agent ids.
func (id AgentID) Valid() bool {
	switch id {
	case AgentTriage, AgentCourseAdvisor, AgentSchedulingAssistant, AgentCampusPoet:
		return true
	}
	return false
}

// AgentDefinition is the immutable configuration for one agent: its system
// prompt, the tools it may invoke, and the agents it may hand off to.
type AgentDefinition struct {
	ID             AgentID
	Name           string
	Instructions   string
	Tools          []string
	HandoffTargets []AgentID
}

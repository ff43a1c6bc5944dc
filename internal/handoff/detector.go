// Package handoff detects transfer requests embedded in assistant replies.
//
// Agents signal a transfer by emitting an exact function-call token such as
// call_course_advisor_agent() in their reply text. Detection scans every
// assistant message for those tokens; within the first message that
// contains any token, the token at the lowest byte index wins. Loose
// phrasing for the poet is accepted only when no exact token appears
// anywhere in the batch.
package handoff

import (
	"strings"

	"github.com/campushq/unidesk/internal/domain"
)

// Exact handoff tokens. A bare token match is enough, the trailing
// parentheses in prompts are cosmetic.
const (
	TokenCourseAdvisor       = "call_course_advisor_agent"
	TokenCampusPoet          = "call_university_poet_agent"
	TokenSchedulingAssistant = "call_scheduling_assistant_agent"
)

var exactTokens = []struct {
	token  string
	target domain.AgentID
}{
	{TokenCourseAdvisor, domain.AgentCourseAdvisor},
	{TokenCampusPoet, domain.AgentCampusPoet},
	{TokenSchedulingAssistant, domain.AgentSchedulingAssistant},
}

// Loose fallback phrasing that some models produce instead of the poet
// token. Matched case-insensitively.
var poetPhrases = []string{
	"transfer to university poet",
	"transfer to poet",
	"university poet agent",
	"culture agent",
}

// Detect scans assistant message contents, in order, for a handoff signal.
// It returns the target agent and true when a transfer away from current is
// requested. A detected target equal to current is reported as no transfer.
func Detect(contents []string, current domain.AgentID) (domain.AgentID, bool) {
	for _, content := range contents {
		if target, ok := firstToken(content); ok {
			if target == current {
				return "", false
			}
			return target, true
		}
	}
	for _, content := range contents {
		lower := strings.ToLower(content)
		for _, phrase := range poetPhrases {
			if strings.Contains(lower, phrase) {
				if current == domain.AgentCampusPoet {
					return "", false
				}
				return domain.AgentCampusPoet, true
			}
		}
	}
	return "", false
}

// firstToken returns the exact token occurring earliest in content.
func firstToken(content string) (domain.AgentID, bool) {
	best := -1
	var target domain.AgentID
	for _, e := range exactTokens {
		idx := strings.Index(content, e.token)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			target = e.target
		}
	}
	return target, best >= 0
}

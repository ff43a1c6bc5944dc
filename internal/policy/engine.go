// Package policy evaluates which tool calls and handoffs an agent is
// permitted to make. The permission matrix lives in a Rego policy so
// deployments can swap it without recompiling.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"

	"github.com/campushq/unidesk/internal/domain"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.conversation_policy.decision"),
		rego.Module("conversation_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}
	return &Engine{query: query}, nil
}

// NewDefault creates an engine loaded with the builtin policy.
func NewDefault(ctx context.Context) (*Engine, error) {
	return NewEngine(ctx, DefaultPolicy)
}

// Evaluate runs the policy against an input document and returns the
// decision string. An input no rule matches is denied.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return "deny", nil
	}
	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return "deny", nil
}

// AllowTool reports whether agent may execute the named tool.
func (e *Engine) AllowTool(ctx context.Context, agent domain.AgentID, toolName string) (bool, error) {
	decision, err := e.Evaluate(ctx, map[string]interface{}{
		"action":    "tool",
		"agent":     string(agent),
		"tool_name": toolName,
	})
	if err != nil {
		return false, err
	}
	return decision == "allow", nil
}

// AllowHandoff reports whether from may transfer a conversation to target.
func (e *Engine) AllowHandoff(ctx context.Context, from, target domain.AgentID) (bool, error) {
	decision, err := e.Evaluate(ctx, map[string]interface{}{
		"action": "handoff",
		"agent":  string(from),
		"target": string(target),
	})
	if err != nil {
		return false, err
	}
	return decision == "allow", nil
}

// DefaultPolicy is the builtin permission matrix: each agent may run only
// its own tools and hand off only to its declared targets.
const DefaultPolicy = `
package conversation_policy

import rego.v1

agent_tools := {
	"course-advisor": {
		"recommend_courses",
		"get_course_info",
		"check_course_prerequisites",
		"compare_course_paths",
	},
	"scheduling-assistant": {
		"get_semester_dates",
		"describe_drop_policy",
		"check_enrollment_status",
		"get_exam_schedule",
	},
	"campus-poet": {
		"get_poetry_inspiration",
		"generate_haiku",
		"describe_campus_tradition",
	},
}

handoff_targets := {
	"triage": {"course-advisor", "scheduling-assistant", "campus-poet"},
	"course-advisor": {"scheduling-assistant", "campus-poet"},
	"scheduling-assistant": {"course-advisor", "campus-poet"},
	"campus-poet": {"course-advisor", "scheduling-assistant"},
}

default decision := "deny"

decision := "allow" if {
	input.action == "tool"
	input.tool_name in agent_tools[input.agent]
}

decision := "allow" if {
	input.action == "handoff"
	input.target in handoff_targets[input.agent]
}
`

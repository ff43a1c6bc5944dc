package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/unidesk/internal/adapter/embedding"
	"github.com/campushq/unidesk/internal/adapter/llm"
	"github.com/campushq/unidesk/internal/config"
	"github.com/campushq/unidesk/internal/domain"
	"github.com/campushq/unidesk/internal/policy"
	"github.com/campushq/unidesk/internal/resolver"
	"github.com/campushq/unidesk/internal/semantic"
	"github.com/campushq/unidesk/internal/store"
	"github.com/campushq/unidesk/internal/tools"
)

// oracleStep is one scripted oracle reply, or a failure.
type oracleStep struct {
	content   string
	toolCalls []llm.ToolCall
	err       error
}

// scriptedOracle replays a fixed sequence of steps and records every
// request it receives.
type scriptedOracle struct {
	steps    []oracleStep
	requests []*llm.ChatCompletionRequest
}

func (o *scriptedOracle) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	o.requests = append(o.requests, req)
	if len(o.steps) == 0 {
		return nil, errors.New("scripted oracle exhausted")
	}
	step := o.steps[0]
	o.steps = o.steps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return &llm.ChatCompletionResponse{
		Choices: []llm.Choice{
			{Message: &llm.ChatMessage{Role: "assistant", Content: step.content, ToolCalls: step.toolCalls}},
		},
	}, nil
}

func newTestService(t *testing.T, steps ...oracleStep) (*Service, *scriptedOracle, store.Store) {
	t.Helper()
	st, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	engine, err := policy.NewDefault(context.Background())
	require.NoError(t, err)

	indices := semantic.NewRegistry(t.TempDir(), embedding.NewMockEmbedder())
	registry := tools.NewRegistry(resolver.New(indices))

	oracle := &scriptedOracle{steps: steps}
	cfg := &config.Config{LLMModel: "test-model", HistoryLimit: 50}
	return New(cfg, st, oracle, registry, engine), oracle, st
}

func startSessionAs(t *testing.T, st store.Store, agentID domain.AgentID) string {
	t.Helper()
	session, err := st.GetOrCreateSession(context.Background(), "")
	require.NoError(t, err)
	if agentID != domain.AgentTriage {
		require.NoError(t, st.SetCurrentAgent(context.Background(), session.SessionID, agentID))
	}
	return session.SessionID
}

func toolCall(id, name, args string) llm.ToolCall {
	return llm.ToolCall{
		ID:   id,
		Type: "function",
		Function: llm.ToolCallFunction{Name: name, Arguments: args},
	}
}

func TestGreetingStaysWithTriage(t *testing.T) {
	svc, oracle, st := newTestService(t,
		oracleStep{content: "Hello! How can I help you today?"},
	)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{Query: "hello"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.SessionID, "sess_"))
	assert.Equal(t, "Triage Agent", resp.Agent)
	assert.Equal(t, "Hello! How can I help you today?", resp.Response)
	require.Len(t, resp.Responses, 1)
	assert.Equal(t, "Triage Agent", resp.Responses[0].Agent)
	assert.Len(t, oracle.requests, 1)

	session, err := st.GetSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentTriage, session.CurrentAgent)
}

func TestHandoffTokenTransfersSession(t *testing.T) {
	svc, oracle, st := newTestService(t,
		oracleStep{content: "Dates and deadlines are handled by our scheduler.\nI'll transfer you now.\ncall_scheduling_assistant_agent()"},
		oracleStep{content: "The Fall 2025 add/drop deadline is 09/15/2025."},
	)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{Query: "When is the add/drop deadline?"})
	require.NoError(t, err)

	assert.Equal(t, "Scheduling Assistant Agent", resp.Agent)
	assert.Equal(t, "The Fall 2025 add/drop deadline is 09/15/2025.", resp.Response)

	session, err := st.GetSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentSchedulingAssistant, session.CurrentAgent)

	// triage reply, transfer notification, target reply
	require.Len(t, resp.Responses, 3)
	assert.Equal(t, "I'll transfer you to the Scheduling Assistant Agent.", resp.Responses[1].Content)
	assert.Equal(t, "Triage Agent", resp.Responses[1].Agent)
	assert.Equal(t, "Scheduling Assistant Agent", resp.Responses[2].Agent)

	// The target agent is invoked with a minimal context, not the history.
	require.Len(t, oracle.requests, 2)
	second := oracle.requests[1]
	require.Len(t, second.Messages, 2)
	assert.Equal(t, "system", second.Messages[0].Role)
	assert.Contains(t, second.Messages[0].Content, "Scheduling Assistant Agent")
	assert.Equal(t, "When is the add/drop deadline?", second.Messages[1].Content)
}

func TestToolCallLoopSurfacesToolResult(t *testing.T) {
	svc, oracle, st := newTestService(t,
		oracleStep{toolCalls: []llm.ToolCall{toolCall("tc_1", "recommend_courses", `{"interest":"data science"}`)}},
		oracleStep{content: "Those three courses are the standard start for data science."},
	)
	sessionID := startSessionAs(t, st, domain.AgentCourseAdvisor)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{
		Query: "What should I take for data science?", SessionID: sessionID,
	})
	require.NoError(t, err)

	// The tool result is the primary response.
	assert.Contains(t, resp.Response, "CS101")
	assert.Contains(t, resp.Response, "DS200")
	assert.Equal(t, "Course Advisor Agent", resp.Agent)

	// Second oracle request carries the tool result back to the model.
	require.Len(t, oracle.requests, 2)
	last := oracle.requests[1].Messages[len(oracle.requests[1].Messages)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "tc_1", last.ToolCallID)
	assert.Contains(t, last.Content, "CS101")

	// The tool invocation is persisted with its name and arguments.
	var toolMsg *domain.Message
	for i := range resp.Messages {
		if resp.Messages[i].Role == domain.RoleToolResult {
			toolMsg = &resp.Messages[i]
		}
	}
	require.NotNil(t, toolMsg)
	assert.Equal(t, "recommend_courses", toolMsg.ToolCall.Name)
	assert.Equal(t, domain.AgentCourseAdvisor, toolMsg.AgentID)
}

func TestForeignToolCallIsDeniedByPolicy(t *testing.T) {
	svc, _, st := newTestService(t,
		oracleStep{toolCalls: []llm.ToolCall{toolCall("tc_1", "generate_haiku", `{"theme":"library"}`)}},
		oracleStep{content: "Understood."},
	)
	sessionID := startSessionAs(t, st, domain.AgentCourseAdvisor)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{
		Query: "Write me a haiku", SessionID: sessionID,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "not available to this agent")
}

func TestOracleFailureDegradesToApology(t *testing.T) {
	svc, _, st := newTestService(t,
		oracleStep{err: errors.New("connection refused")},
	)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{Query: "hello"})
	require.NoError(t, err, "oracle failures must not surface as errors")

	assert.Equal(t, apologyMessage, resp.Response)
	assert.Equal(t, "Triage Agent", resp.Agent)
	require.NotEmpty(t, resp.Messages)
	assert.Equal(t, apologyMessage, resp.Messages[len(resp.Messages)-1].Content)

	session, err := st.GetSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentTriage, session.CurrentAgent)
}

func TestFailedTransferLeavesPointerOnLastGoodAgent(t *testing.T) {
	svc, _, st := newTestService(t,
		oracleStep{content: "I'll transfer you now.\ncall_university_poet_agent()"},
		oracleStep{err: errors.New("timeout")},
	)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{Query: "Tell me about homecoming"})
	require.NoError(t, err)
	assert.Equal(t, apologyMessage, resp.Response)
	assert.Equal(t, "Triage Agent", resp.Agent)

	session, err := st.GetSession(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentTriage, session.CurrentAgent)
}

func TestHandoffToCurrentAgentIsIgnored(t *testing.T) {
	svc, oracle, st := newTestService(t,
		oracleStep{content: "call_course_advisor_agent()"},
	)
	sessionID := startSessionAs(t, st, domain.AgentCourseAdvisor)

	resp, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{
		Query: "more courses please", SessionID: sessionID,
	})
	require.NoError(t, err)

	assert.Len(t, oracle.requests, 1)
	assert.Equal(t, "Course Advisor Agent", resp.Agent)

	session, err := st.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentCourseAdvisor, session.CurrentAgent)
}

func TestSecondTurnCarriesHistory(t *testing.T) {
	svc, oracle, _ := newTestService(t,
		oracleStep{content: "Hi there!"},
		oracleStep{content: "You said hello a moment ago."},
	)

	first, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{Query: "hello"})
	require.NoError(t, err)
	_, err = svc.ProcessQuery(context.Background(), &domain.ChatRequest{
		Query: "what did I just say?", SessionID: first.SessionID,
	})
	require.NoError(t, err)

	require.Len(t, oracle.requests, 2)
	second := oracle.requests[1].Messages
	// system + first user turn + first reply + second user turn
	require.Len(t, second, 4)
	assert.Equal(t, "hello", second[1].Content)
	assert.Equal(t, "Hi there!", second[2].Content)
	assert.Equal(t, "what did I just say?", second[3].Content)
}

func TestToolBudgetIsBounded(t *testing.T) {
	// The oracle requests a tool on every round; the loop must stop on its
	// own instead of spinning forever.
	steps := make([]oracleStep, 0, maxToolRounds+2)
	for i := 0; i < maxToolRounds+2; i++ {
		steps = append(steps, oracleStep{
			toolCalls: []llm.ToolCall{toolCall("tc", "describe_campus_tradition", `{"tradition":"homecoming"}`)},
		})
	}
	svc, oracle, st := newTestService(t, steps...)
	sessionID := startSessionAs(t, st, domain.AgentCampusPoet)

	_, err := svc.ProcessQuery(context.Background(), &domain.ChatRequest{
		Query: "tell me about homecoming", SessionID: sessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, maxToolRounds+1, len(oracle.requests))
}

func TestClearSessionNotFoundPassthrough(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.ClearSession(context.Background(), "sess_missing")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionMessagesUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.SessionMessages(context.Background(), "sess_missing")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

// Package service implements the conversation orchestrator: one synchronous
// turn at a time, it invokes the current agent through the completion
// oracle, runs any structured tool calls, detects handoff directives in the
// reply text, and persists the net effect. The only durable state across
// turns is the transcript and the session's current-agent pointer.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/campushq/unidesk/internal/adapter/llm"
	"github.com/campushq/unidesk/internal/agent"
	"github.com/campushq/unidesk/internal/config"
	"github.com/campushq/unidesk/internal/domain"
	"github.com/campushq/unidesk/internal/handoff"
	"github.com/campushq/unidesk/internal/policy"
	"github.com/campushq/unidesk/internal/store"
	"github.com/campushq/unidesk/internal/tools"
)

// maxToolRounds bounds the tool-execution loop per agent invocation. A model
// stuck requesting tools forever degrades to whatever text it produced.
const maxToolRounds = 5

const apologyMessage = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

const greetingMessage = "Hello! Welcome to the University Support Center. " +
	"You can ask about courses and majors, campus life and traditions, or schedules and deadlines."

// Service orchestrates conversation turns.
type Service struct {
	cfg    *config.Config
	store  store.Store
	oracle llm.Client
	tools  *tools.Registry
	policy *policy.Engine
}

// New creates a conversation service.
func New(cfg *config.Config, st store.Store, oracle llm.Client, registry *tools.Registry, engine *policy.Engine) *Service {
	return &Service{cfg: cfg, store: st, oracle: oracle, tools: registry, policy: engine}
}

// invocation collects everything one agent produced during a single pass:
// assistant texts, tool results, and the combined attributed response list.
type invocation struct {
	assistantTexts []string
	toolResults    []string
	responses      []domain.AgentResponse
}

// ProcessQuery runs one conversation turn. Oracle failures do not surface as
// errors; they degrade to a single apology message with the current agent
// unchanged. Returned errors are persistence failures only.
func (s *Service) ProcessQuery(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	session, err := s.store.GetOrCreateSession(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if err := s.store.TouchSession(ctx, session.SessionID); err != nil {
		log.Printf("WARN: failed to touch session %s: %v", session.SessionID, err)
	}

	if err := s.appendMessage(ctx, &domain.Message{
		SessionID: session.SessionID,
		Role:      domain.RoleUser,
		Content:   req.Query,
	}); err != nil {
		return nil, err
	}

	history, err := s.history(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	current := session.CurrentAgent
	def := agent.Get(current)

	inv, err := s.invokeAgent(ctx, session.SessionID, def, s.withHistory(def, history))
	if err != nil {
		return s.degraded(ctx, session.SessionID, current, err)
	}

	responses := inv.responses
	final := inv

	if target, ok := handoff.Detect(inv.assistantTexts, current); ok {
		allowed, perr := s.policy.AllowHandoff(ctx, current, target)
		if perr != nil {
			log.Printf("WARN: handoff policy check failed for %s -> %s: %v", current, target, perr)
		}
		if allowed {
			notification := fmt.Sprintf("I'll transfer you to the %s.", target.DisplayName())
			if err := s.appendMessage(ctx, &domain.Message{
				SessionID: session.SessionID,
				Role:      domain.RoleAssistant,
				Content:   notification,
				AgentID:   current,
			}); err != nil {
				return nil, err
			}
			responses = append(responses, domain.AgentResponse{Content: notification, Agent: current.DisplayName()})

			// The target agent starts from a minimal context: its own
			// framing plus the original query, not the full history.
			targetDef := agent.Get(target)
			targetInv, err := s.invokeAgent(ctx, session.SessionID, targetDef, []llm.ChatMessage{
				{Role: "system", Content: targetDef.Instructions},
				{Role: "user", Content: req.Query},
			})
			if err != nil {
				// The transfer never happened: the pointer stays on the
				// last agent that successfully answered.
				return s.degraded(ctx, session.SessionID, current, err)
			}
			if err := s.store.SetCurrentAgent(ctx, session.SessionID, target); err != nil {
				return nil, fmt.Errorf("failed to persist current agent: %w", err)
			}
			current = target
			responses = append(responses, targetInv.responses...)
			final = targetInv
		} else {
			log.Printf("WARN: handoff %s -> %s denied by policy", session.CurrentAgent, target)
		}
	}

	transcript, err := s.store.ListMessages(ctx, session.SessionID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return &domain.ChatResponse{
		SessionID: session.SessionID,
		Response:  primaryResponse(final),
		Responses: responses,
		Agent:     current.DisplayName(),
		Messages:  transcript,
	}, nil
}

// ClearSession wipes a session's transcript and resets it to triage.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.store.ClearSession(ctx, sessionID)
}

// SessionMessages returns the full transcript for a session.
func (s *Service) SessionMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, store.ErrSessionNotFound
	}
	return s.store.ListMessages(ctx, sessionID, 0)
}

// invokeAgent runs the oracle for one agent, executing structured tool calls
// until the model stops requesting them or the round budget runs out. All
// output is persisted as it is produced.
func (s *Service) invokeAgent(ctx context.Context, sessionID string, def *domain.AgentDefinition, wire []llm.ChatMessage) (*invocation, error) {
	inv := &invocation{}
	schemas := s.tools.Schemas(def.Tools)

	for round := 0; round <= maxToolRounds; round++ {
		req := &llm.ChatCompletionRequest{
			Model:    s.cfg.LLMModel,
			Messages: wire,
		}
		if len(schemas) > 0 {
			req.Tools = schemas
		}

		resp, err := s.oracle.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("oracle call failed for %s: %w", def.ID, err)
		}
		if len(resp.Choices) == 0 {
			break
		}
		msg := resp.Choices[0].Message
		if msg == nil {
			break
		}

		if msg.Content != "" {
			if err := s.appendMessage(ctx, &domain.Message{
				SessionID: sessionID,
				Role:      domain.RoleAssistant,
				Content:   msg.Content,
				AgentID:   def.ID,
			}); err != nil {
				return nil, err
			}
			inv.assistantTexts = append(inv.assistantTexts, msg.Content)
			inv.responses = append(inv.responses, domain.AgentResponse{Content: msg.Content, Agent: def.ID.DisplayName()})
		}

		if len(msg.ToolCalls) == 0 {
			break
		}
		if round == maxToolRounds {
			log.Printf("WARN: agent %s exhausted its tool budget in session %s", def.ID, sessionID)
			break
		}

		wire = append(wire, *msg)
		for _, tc := range msg.ToolCalls {
			result := s.runTool(ctx, sessionID, def, tc)
			inv.toolResults = append(inv.toolResults, result)
			inv.responses = append(inv.responses, domain.AgentResponse{Content: result, Agent: def.ID.DisplayName()})
			wire = append(wire, llm.ChatMessage{
				Role:       "tool",
				Content:    result,
				Name:       tc.Function.Name,
				ToolCallID: tc.ID,
			})
		}
	}
	return inv, nil
}

// runTool executes one policy-gated tool call and persists its result. Tool
// failures are not turn failures: the error text goes back to the model.
func (s *Service) runTool(ctx context.Context, sessionID string, def *domain.AgentDefinition, tc llm.ToolCall) string {
	name := tc.Function.Name
	args := json.RawMessage(tc.Function.Arguments)

	var result string
	allowed, err := s.policy.AllowTool(ctx, def.ID, name)
	switch {
	case err != nil:
		log.Printf("ERROR: tool policy check failed for %s/%s: %v", def.ID, name, err)
		result = fmt.Sprintf("The %s tool is unavailable right now.", name)
	case !allowed:
		log.Printf("WARN: agent %s denied tool %s by policy", def.ID, name)
		result = fmt.Sprintf("The %s tool is not available to this agent.", name)
	default:
		out, err := s.tools.Execute(ctx, name, args)
		if err != nil {
			log.Printf("ERROR: tool %s failed for %s: %v", name, def.ID, err)
			result = fmt.Sprintf("The %s tool failed: %v", name, err)
		} else {
			result = out
		}
	}

	if err := s.appendMessage(ctx, &domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleToolResult,
		Content:   result,
		ToolCall:  &domain.ToolInvocation{Name: name, Arguments: args},
		AgentID:   def.ID,
	}); err != nil {
		log.Printf("ERROR: failed to persist tool result for %s: %v", sessionID, err)
	}
	return result
}

// degraded converts an oracle failure into a normal response: one apology
// message, current agent untouched.
func (s *Service) degraded(ctx context.Context, sessionID string, current domain.AgentID, cause error) (*domain.ChatResponse, error) {
	log.Printf("ERROR: degrading turn for session %s: %v", sessionID, cause)

	if err := s.appendMessage(ctx, &domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   apologyMessage,
		AgentID:   current,
	}); err != nil {
		return nil, err
	}

	transcript, err := s.store.ListMessages(ctx, sessionID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return &domain.ChatResponse{
		SessionID: sessionID,
		Response:  apologyMessage,
		Responses: []domain.AgentResponse{{Content: apologyMessage, Agent: current.DisplayName()}},
		Agent:     current.DisplayName(),
		Messages:  transcript,
	}, nil
}

// withHistory builds the wire conversation for an agent: its system prompt
// followed by the user and assistant turns of the transcript window. Tool
// results from previous turns are not replayed; their substance already
// lives in the assistant texts that followed them.
func (s *Service) withHistory(def *domain.AgentDefinition, history []domain.Message) []llm.ChatMessage {
	wire := make([]llm.ChatMessage, 0, len(history)+1)
	wire = append(wire, llm.ChatMessage{Role: "system", Content: def.Instructions})
	for _, msg := range history {
		switch msg.Role {
		case domain.RoleUser, domain.RoleAssistant:
			if msg.Content != "" {
				wire = append(wire, llm.ChatMessage{Role: string(msg.Role), Content: msg.Content})
			}
		}
	}
	return wire
}

// history returns the most recent window of the transcript.
func (s *Service) history(ctx context.Context, sessionID string) ([]domain.Message, error) {
	msgs, err := s.store.ListMessages(ctx, sessionID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if limit := s.cfg.HistoryLimit; limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (s *Service) appendMessage(ctx context.Context, msg *domain.Message) error {
	msg.MessageID = "msg_" + uuid.New().String()
	msg.CreatedAt = time.Now().UTC()
	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// primaryResponse picks the single text surfaced as the turn's answer: the
// first tool result if any, then the first assistant text, then a greeting.
func primaryResponse(inv *invocation) string {
	for _, r := range inv.toolResults {
		if r != "" {
			return r
		}
	}
	for _, t := range inv.assistantTexts {
		if t != "" {
			return t
		}
	}
	return greetingMessage
}

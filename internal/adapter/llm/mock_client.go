package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockClient is an offline implementation of Client. It routes by keyword:
// triage-style requests about a recognizable domain produce the matching
// handoff line, everything else gets a canned reply. Useful for local runs
// and demos without an API key.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Client.
var _ Client = (*MockClient)(nil)

// CreateChatCompletion returns a deterministic response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	content := m.generateResponse(req)

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index:        0,
				Message:      &ChatMessage{Role: "assistant", Content: content},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{
			PromptTokens:     estimateTokens(req),
			CompletionTokens: len(content) / 4,
			TotalTokens:      estimateTokens(req) + len(content)/4,
		},
	}, nil
}

func (m *MockClient) generateResponse(req *ChatCompletionRequest) string {
	var system, lastUser string
	for _, msg := range req.Messages {
		if msg.Role == "system" && system == "" {
			system = msg.Content
		}
	}
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUser = req.Messages[i].Content
			break
		}
	}

	query := strings.ToLower(lastUser)
	isTriage := strings.Contains(system, "Triage Agent")

	switch {
	case query == "" || strings.HasPrefix(query, "hello") || strings.HasPrefix(query, "hi"):
		return "Hello! Welcome to the University Support Center. You can ask about courses, campus life, or scheduling."
	case isTriage && containsAny(query, "course", "prerequisite", "major", "degree"):
		return "Our Course Advisor Agent can help with that.\nI'll transfer you now.\ncall_course_advisor_agent()"
	case isTriage && containsAny(query, "deadline", "calendar", "exam", "registration", "semester"):
		return "Our Scheduling Assistant Agent handles dates and deadlines.\nI'll transfer you now.\ncall_scheduling_assistant_agent()"
	case isTriage && containsAny(query, "tradition", "campus life", "culture", "poem", "haiku"):
		return "Our University Poet Agent knows campus culture best.\nI'll transfer you now.\ncall_university_poet_agent()"
	default:
		return fmt.Sprintf("[MOCK] Received your message: %q.", truncate(lastUser, 100))
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

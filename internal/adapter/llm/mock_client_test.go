package llm

import (
	"context"
	"strings"
	"testing"
)

func triageRequest(query string) *ChatCompletionRequest {
	return &ChatCompletionRequest{
		Model: "test-model",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are the Triage Agent at the University Support Center."},
			{Role: "user", Content: query},
		},
	}
}

func TestMockEmitsHandoffTokens(t *testing.T) {
	m := NewMockClient()
	cases := map[string]string{
		"Which courses should I take?":    "call_course_advisor_agent()",
		"When is the exam period?":        "call_scheduling_assistant_agent()",
		"Tell me about campus traditions": "call_university_poet_agent()",
	}
	for query, token := range cases {
		resp, err := m.CreateChatCompletion(context.Background(), triageRequest(query))
		if err != nil {
			t.Fatalf("%q: %v", query, err)
		}
		content := resp.Choices[0].Message.Content
		if !strings.Contains(content, token) {
			t.Errorf("%q: expected token %s, got %q", query, token, content)
		}
		if !strings.Contains(content, "I'll transfer you now.") {
			t.Errorf("%q: expected the transfer line, got %q", query, content)
		}
	}
}

func TestMockGreetsWithoutTransfer(t *testing.T) {
	m := NewMockClient()
	resp, err := m.CreateChatCompletion(context.Background(), triageRequest("hello"))
	if err != nil {
		t.Fatal(err)
	}
	content := resp.Choices[0].Message.Content
	if strings.Contains(content, "call_") {
		t.Fatalf("a greeting must not hand off: %q", content)
	}
}

func TestMockNonTriageDoesNotRoute(t *testing.T) {
	m := NewMockClient()
	resp, err := m.CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model: "test-model",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are the Course Advisor Agent at the University Support Center."},
			{Role: "user", Content: "Which courses should I take?"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(resp.Choices[0].Message.Content, "call_") {
		t.Fatalf("only triage routes by keyword: %q", resp.Choices[0].Message.Content)
	}
}

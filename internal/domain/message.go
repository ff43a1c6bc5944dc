package domain

import (
	"encoding/json"
	"time"
)

// Role is the role of a message author.
type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleSystem     Role = "system"
	RoleToolResult Role = "tool"
)

// ToolInvocation describes a structured tool call attached to a message.
type ToolInvocation struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Message is a single entry in a session transcript. Content may be empty
// only when ToolCall is set. AgentID is set only on assistant messages.
type Message struct {
	MessageID string          `json:"message_id"`
	SessionID string          `json:"session_id"`
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	ToolCall  *ToolInvocation `json:"tool_call,omitempty"`
	AgentID   AgentID         `json:"agent_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

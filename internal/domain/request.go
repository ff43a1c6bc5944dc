package domain

// ChatRequest is the body of a chat turn request.
type ChatRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
}

// AgentResponse is one assistant or tool response with agent attribution.
type AgentResponse struct {
	Content string `json:"content"`
	Agent   string `json:"agent"`
}

// ChatResponse is the full result of one chat turn.
type ChatResponse struct {
	SessionID string          `json:"session_id"`
	Response  string          `json:"response"`
	Responses []AgentResponse `json:"responses"`
	Agent     string          `json:"agent"`
	Messages  []Message       `json:"messages"`
}

// ClearRequest is the body of a clear-session request.
type ClearRequest struct {
	SessionID string `json:"session_id"`
}

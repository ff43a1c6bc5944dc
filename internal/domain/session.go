// Package domain defines the core domain models for the support center.
package domain

import "time"

// Session represents a conversation session. CurrentAgent is the only piece
// of cross-request orchestration state; it must survive between turns.
type Session struct {
	SessionID    string    `json:"session_id"`
	CurrentAgent AgentID   `json:"current_agent"`
	CreatedAt    time.Time `json:"created_at"`
	LastActive   time.Time `json:"last_active"`
}

// Package store defines the persistence interface and implementations.
package store

import (
	"context"
	"errors"

	"github.com/campushq/unidesk/internal/domain"
)

// ErrSessionNotFound is returned by operations that require an existing session.
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for conversation persistence.
type Store interface {
	// Session operations
	GetOrCreateSession(ctx context.Context, sessionID string) (*domain.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	TouchSession(ctx context.Context, sessionID string) error
	SetCurrentAgent(ctx context.Context, sessionID string, agentID domain.AgentID) error

	// Message operations
	AppendMessage(ctx context.Context, message *domain.Message) error
	ListMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error)

	// ClearSession deletes all messages and resets the current agent to
	// triage. Returns ErrSessionNotFound for an unknown session id.
	ClearSession(ctx context.Context, sessionID string) error

	// Lifecycle
	Close() error
}

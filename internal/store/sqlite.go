package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/campushq/unidesk/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			current_agent TEXT NOT NULL DEFAULT 'triage',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_active DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			message_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			tool_name TEXT,
			tool_args TEXT,
			agent_id TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetSession retrieves a session by ID. Returns (nil, nil) when not found.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, current_agent, created_at, last_active FROM sessions WHERE session_id = ?`,
		sessionID).Scan(&session.SessionID, &session.CurrentAgent, &session.CreatedAt, &session.LastActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetOrCreateSession gets an existing session or creates a new one with the
// triage agent as the current agent. An empty sessionID creates a session
// under a fresh id.
func (s *SQLiteStore) GetOrCreateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID != "" {
		session, err := s.GetSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	}

	if sessionID == "" {
		sessionID = "sess_" + uuid.New().String()
	}

	now := time.Now().UTC()
	session := &domain.Session{
		SessionID:    sessionID,
		CurrentAgent: domain.AgentTriage,
		CreatedAt:    now,
		LastActive:   now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, current_agent, created_at, last_active) VALUES (?, ?, ?, ?)`,
		session.SessionID, string(session.CurrentAgent), session.CreatedAt, session.LastActive)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// TouchSession updates the session's last-active time.
func (s *SQLiteStore) TouchSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET last_active = ? WHERE session_id = ?`,
		time.Now().UTC(), sessionID)
	return err
}

// SetCurrentAgent persists the session's current-agent pointer.
func (s *SQLiteStore) SetCurrentAgent(ctx context.Context, sessionID string, agentID domain.AgentID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET current_agent = ? WHERE session_id = ?`,
		string(agentID), sessionID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// AppendMessage appends a message to a session transcript.
func (s *SQLiteStore) AppendMessage(ctx context.Context, message *domain.Message) error {
	var toolName, toolArgs sql.NullString
	if message.ToolCall != nil {
		toolName = sql.NullString{String: message.ToolCall.Name, Valid: true}
		if len(message.ToolCall.Arguments) > 0 {
			toolArgs = sql.NullString{String: string(message.ToolCall.Arguments), Valid: true}
		}
	}
	var agentID sql.NullString
	if message.AgentID != "" {
		agentID = sql.NullString{String: string(message.AgentID), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, session_id, role, content, tool_name, tool_args, agent_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		message.MessageID, message.SessionID, string(message.Role), message.Content,
		toolName, toolArgs, agentID, message.CreatedAt)
	return err
}

// ListMessages returns a session's messages ordered oldest first. A limit of
// zero returns the full transcript.
func (s *SQLiteStore) ListMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	query := `SELECT message_id, session_id, role, content, tool_name, tool_args, agent_id, created_at
		FROM messages WHERE session_id = ? ORDER BY created_at, rowid`
	args := []interface{}{sessionID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var toolName, toolArgs, agentID sql.NullString
		if err := rows.Scan(&msg.MessageID, &msg.SessionID, &msg.Role, &msg.Content,
			&toolName, &toolArgs, &agentID, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if toolName.Valid {
			msg.ToolCall = &domain.ToolInvocation{Name: toolName.String}
			if toolArgs.Valid {
				msg.ToolCall.Arguments = json.RawMessage(toolArgs.String)
			}
		}
		if agentID.Valid {
			msg.AgentID = domain.AgentID(agentID.String)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// ClearSession deletes all messages for a session and resets the current
// agent to triage.
func (s *SQLiteStore) ClearSession(ctx context.Context, sessionID string) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE sessions SET current_agent = ? WHERE session_id = ?`,
		string(domain.AgentTriage), sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-interviewer/internal/types"
)

// Session is one persisted interview: the partial resume record, the section
// state, the accumulated context, and the chat transcript, all stored as
// JSONB so the schema survives record-shape evolution.
type Session struct {
	ID        uuid.UUID                  `json:"id"`
	UserID    uuid.UUID                  `json:"user_id"`
	Mode      string                     `json:"mode"` // "assisted" or "guided"
	Status    string                     `json:"status"`
	Record    types.Record               `json:"record"`
	State     *types.SectionState        `json:"state"`
	Context   *types.ConversationContext `json:"context,omitempty"`
	History   []types.Message            `json:"history"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// CreateSession inserts a fresh session for a user.
func (db *DB) CreateSession(ctx context.Context, userID uuid.UUID, mode string, s *Session) (*Session, error) {
	recordJSON, stateJSON, contextJSON, historyJSON, err := marshalSessionBlobs(s)
	if err != nil {
		return nil, err
	}

	stored := *s
	stored.UserID = userID
	stored.Mode = mode
	stored.Status = SessionActive
	err = db.pool.QueryRow(ctx,
		`INSERT INTO interview_sessions (user_id, mode, status, record, state, context, history)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		userID, mode, SessionActive, recordJSON, stateJSON, contextJSON, historyJSON,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &stored, nil
}

// GetSession loads one session owned by the given user.
func (db *DB) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	var s Session
	var recordJSON, stateJSON, contextJSON, historyJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, mode, status, record, state, context, history, created_at, updated_at
		 FROM interview_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	).Scan(&s.ID, &s.UserID, &s.Mode, &s.Status,
		&recordJSON, &stateJSON, &contextJSON, &historyJSON,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := unmarshalSessionBlobs(&s, recordJSON, stateJSON, contextJSON, historyJSON); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSession persists the session's mutable parts after a turn.
func (db *DB) UpdateSession(ctx context.Context, s *Session) error {
	recordJSON, stateJSON, contextJSON, historyJSON, err := marshalSessionBlobs(s)
	if err != nil {
		return err
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE interview_sessions
		 SET status = $1, record = $2, state = $3, context = $4, history = $5, updated_at = NOW()
		 WHERE id = $6 AND user_id = $7`,
		s.Status, recordJSON, stateJSON, contextJSON, historyJSON, s.ID, s.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SessionSummary is a lightweight view for listings.
type SessionSummary struct {
	ID        uuid.UUID `json:"id"`
	Mode      string    `json:"mode"`
	Status    string    `json:"status"`
	Section   string    `json:"section"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListSessions returns the user's sessions, newest first.
func (db *DB) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, mode, status, COALESCE(state->>'section', ''), created_at, updated_at
		 FROM interview_sessions WHERE user_id = $1
		 ORDER BY updated_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.Mode, &s.Status, &s.Section, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// DeleteSession removes a session owned by the user.
func (db *DB) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM interview_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSessionBlobs(s *Session) (recordJSON, stateJSON, contextJSON, historyJSON []byte, err error) {
	if recordJSON, err = json.Marshal(s.Record); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	if stateJSON, err = json.Marshal(s.State); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	if contextJSON, err = json.Marshal(s.Context); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal context: %w", err)
	}
	if s.History == nil {
		s.History = []types.Message{}
	}
	if historyJSON, err = json.Marshal(s.History); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return recordJSON, stateJSON, contextJSON, historyJSON, nil
}

func unmarshalSessionBlobs(s *Session, recordJSON, stateJSON, contextJSON, historyJSON []byte) error {
	if len(recordJSON) > 0 {
		if err := json.Unmarshal(recordJSON, &s.Record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
	}
	if len(stateJSON) > 0 && string(stateJSON) != "null" {
		s.State = &types.SectionState{}
		if err := json.Unmarshal(stateJSON, s.State); err != nil {
			return fmt.Errorf("failed to unmarshal state: %w", err)
		}
	}
	if len(contextJSON) > 0 && string(contextJSON) != "null" {
		s.Context = &types.ConversationContext{}
		if err := json.Unmarshal(contextJSON, s.Context); err != nil {
			return fmt.Errorf("failed to unmarshal context: %w", err)
		}
	}
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &s.History); err != nil {
			return fmt.Errorf("failed to unmarshal history: %w", err)
		}
	}
	return nil
}

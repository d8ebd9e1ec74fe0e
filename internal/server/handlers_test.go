package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/db"
	"github.com/jonathan/resume-interviewer/internal/dialog"
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/server/middleware"
	"github.com/jonathan/resume-interviewer/internal/types"
)

func requestWithUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey(), userID))
}

type stubCompleter struct {
	reply string
}

func (c *stubCompleter) Complete(_ context.Context, _ string, _ []types.Message) (*types.Completion, error) {
	return &types.Completion{Text: c.reply}, nil
}

func TestGuidedTurn(t *testing.T) {
	s := &Server{}

	guided := dialog.NewGuidedState()
	start := dialog.StartGuided(guided)
	require.Equal(t, "language", start.QuestionID)

	session := &db.Session{
		Mode:    "guided",
		Record:  guided.Record,
		State:   guided.Section,
		Context: types.NewConversationContext(),
	}
	session.State.QuestionID = start.QuestionID

	resp, err := s.guidedTurn(session, "English")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AssistantMessage)
	assert.False(t, resp.IsComplete)
	assert.Equal(t, "English", session.Record["language"])
	assert.Equal(t, "intro-welcome", session.State.QuestionID)
}

func TestAssistedTurn(t *testing.T) {
	s := &Server{orchestrator: dialog.New(&stubCompleter{
		reply: "Nice to meet you! What is your email address?",
	})}

	state := types.NewSectionState()
	state.EnterSection(sections.Personal)
	session := &db.Session{
		Mode:    "assisted",
		Record:  types.NewRecord(),
		State:   state,
		Context: types.NewConversationContext(),
		History: []types.Message{
			{Role: types.RoleAssistant, Content: "What is your full name?"},
		},
	}

	req := httptest.NewRequest("POST", "/sessions/x/turns", nil)
	resp, err := s.assistedTurn(req, session, "Ada Lovelace")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AssistantMessage)
	require.NotNil(t, resp.State)
	assert.False(t, resp.IsComplete)

	// The fallback extractor stores the name answer on the record.
	info, _ := resp.Record["personalInfo"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", info["fullName"])
}

func TestSessionScope(t *testing.T) {
	s := &Server{}
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sessions/"+sessionID.String(), nil)
		req = requestWithUser(req, userID)
		req.SetPathValue("id", sessionID.String())

		rec := httptest.NewRecorder()
		gotUser, gotSession, ok := s.sessionScope(rec, req)
		require.True(t, ok)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, sessionID, gotSession)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sessions/"+sessionID.String(), nil)
		req.SetPathValue("id", sessionID.String())

		rec := httptest.NewRecorder()
		_, _, ok := s.sessionScope(rec, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad session id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/sessions/not-a-uuid", nil)
		req = requestWithUser(req, userID)
		req.SetPathValue("id", "not-a-uuid")

		rec := httptest.NewRecorder()
		_, _, ok := s.sessionScope(rec, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionError_NotFound(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	s.sessionError(rec, db.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "session not found")
}

func TestHandleHealth(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestWithCORS_Preflight(t *testing.T) {
	s := &Server{}
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestExtractClientID(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.1:54321"
	assert.Equal(t, "192.0.2.1", s.extractClientID(req))

	req.RemoteAddr = "192.0.2.1"
	assert.Equal(t, "192.0.2.1", s.extractClientID(req))
}

package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-interviewer/internal/db"
	"github.com/jonathan/resume-interviewer/internal/dialog"
	"github.com/jonathan/resume-interviewer/internal/server/middleware"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// assistedGreeting opens an AI-mode interview.
const assistedGreeting = "Hi! I'm here to help you build your resume, one question at a time. Which language would you like to use for your resume?"

// CreateSessionRequest starts a new interview.
type CreateSessionRequest struct {
	Mode string `json:"mode"` // "assisted" (default) or "guided"
}

// SessionResponse is the API view of a stored session.
type SessionResponse struct {
	ID         uuid.UUID           `json:"id"`
	Mode       string              `json:"mode"`
	Status     string              `json:"status"`
	Record     types.Record        `json:"record"`
	State      *types.SectionState `json:"state"`
	History    []types.Message     `json:"history"`
	NextPrompt string              `json:"nextPrompt,omitempty"`
}

// handleCreateSession starts a new interview session for the caller.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateSessionRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	mode := req.Mode
	if mode == "" {
		mode = "assisted"
	}
	if mode != "assisted" && mode != "guided" {
		s.errorResponse(w, http.StatusBadRequest, "mode must be \"assisted\" or \"guided\"")
		return
	}

	session := &db.Session{
		Record:  types.NewRecord(),
		State:   types.NewSectionState(),
		Context: types.NewConversationContext(),
	}

	prompt := assistedGreeting
	if mode == "guided" {
		guided := dialog.NewGuidedState()
		turn := dialog.StartGuided(guided)
		session.Record = guided.Record
		session.State = guided.Section
		session.State.QuestionID = turn.QuestionID
		prompt = turn.Prompt
	}
	session.History = []types.Message{{Role: types.RoleAssistant, Content: prompt}}

	stored, err := s.db.CreateSession(r.Context(), userID, mode, session)
	if err != nil {
		log.Printf("create session: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse(stored, prompt))
}

// handleGetSession returns one of the caller's sessions.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := s.sessionScope(w, r)
	if !ok {
		return
	}

	session, err := s.db.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(session, ""))
}

// handleListSessions lists the caller's sessions.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessions, err := s.db.ListSessions(r.Context(), userID, 0)
	if err != nil {
		log.Printf("list sessions: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []db.SessionSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"sessions": sessions})
}

// handleDeleteSession removes one of the caller's sessions.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := s.sessionScope(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteSession(r.Context(), userID, sessionID); err != nil {
		s.sessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TurnRequest is one user message in an interview.
type TurnRequest struct {
	Message string `json:"message"`
}

// TurnResponse is the processed turn.
type TurnResponse struct {
	AssistantMessage string              `json:"assistantMessage"`
	Record           types.Record        `json:"record"`
	State            *types.SectionState `json:"state"`
	IsComplete       bool                `json:"isComplete"`
	Usage            types.Usage         `json:"usage,omitempty"`
}

// handleTurn advances an interview by one user message.
func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := s.sessionScope(w, r)
	if !ok {
		return
	}

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	session, err := s.db.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	if session.Status == db.SessionCompleted {
		s.errorResponse(w, http.StatusConflict, "session is already completed")
		return
	}

	var resp TurnResponse
	switch session.Mode {
	case "guided":
		resp, err = s.guidedTurn(session, req.Message)
	default:
		resp, err = s.assistedTurn(r, session, req.Message)
	}
	if err != nil {
		log.Printf("process turn: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to process turn")
		return
	}

	session.History = append(session.History,
		types.Message{Role: types.RoleUser, Content: req.Message},
		types.Message{Role: types.RoleAssistant, Content: resp.AssistantMessage},
	)
	if resp.IsComplete {
		session.Status = db.SessionCompleted
	}

	if err := s.db.UpdateSession(r.Context(), session); err != nil {
		log.Printf("update session: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) assistedTurn(r *http.Request, session *db.Session, message string) (TurnResponse, error) {
	outcome, err := s.orchestrator.ProcessTurn(r.Context(), dialog.TurnInput{
		History:     session.History,
		Record:      session.Record,
		State:       session.State,
		Context:     session.Context,
		UserMessage: message,
	})
	if err != nil {
		return TurnResponse{}, err
	}

	session.Record = outcome.Record
	session.State = outcome.State
	return TurnResponse{
		AssistantMessage: outcome.Result.AssistantMessage,
		Record:           outcome.Record,
		State:            outcome.State,
		IsComplete:       outcome.Result.IsComplete,
		Usage:            outcome.Result.Usage,
	}, nil
}

func (s *Server) guidedTurn(session *db.Session, message string) (TurnResponse, error) {
	guided := &dialog.GuidedState{
		Record:     session.Record,
		Section:    session.State,
		QuestionID: session.State.QuestionID,
	}
	turn, err := dialog.AnswerGuided(guided, message)
	if err != nil {
		return TurnResponse{}, err
	}

	session.Record = guided.Record
	session.State = guided.Section
	session.State.QuestionID = guided.QuestionID
	return TurnResponse{
		AssistantMessage: turn.Prompt,
		Record:           guided.Record,
		State:            guided.Section,
		IsComplete:       turn.IsComplete,
	}, nil
}

// sessionScope resolves the caller's user ID and the session path parameter.
func (s *Server) sessionScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, sessionID, true
}

func (s *Server) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return
	}
	log.Printf("session store: %v", err)
	s.errorResponse(w, http.StatusInternalServerError, "internal error")
}

func sessionResponse(session *db.Session, nextPrompt string) SessionResponse {
	return SessionResponse{
		ID:         session.ID,
		Mode:       session.Mode,
		Status:     session.Status,
		Record:     session.Record,
		State:      session.State,
		History:    session.History,
		NextPrompt: nextPrompt,
	}
}

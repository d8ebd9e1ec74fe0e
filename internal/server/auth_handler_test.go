package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/types"
)

func newTestAuthHandler(store *fakeUserStore) *AuthHandler {
	return NewAuthHandler(testUserService(store), testJWTService())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler := newTestAuthHandler(newFakeUserStore())

	rec := postJSON(t, handler.Register, "/auth/register",
		`{"name": "Ada Lovelace", "email": "ada@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	// The token must validate against the same service.
	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_Register_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing name", `{"email": "ada@example.com", "password": "password123"}`},
		{"invalid email", `{"name": "Ada", "email": "not-an-email", "password": "password123"}`},
		{"short password", `{"name": "Ada", "email": "ada@example.com", "password": "short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler(newFakeUserStore())
			rec := postJSON(t, handler.Register, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := newTestAuthHandler(newFakeUserStore())
	body := `{"name": "Ada", "email": "ada@example.com", "password": "password123"}`

	rec := postJSON(t, handler.Register, "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	store := newFakeUserStore()
	handler := newTestAuthHandler(store)

	rec := postJSON(t, handler.Register, "/auth/register",
		`{"name": "Ada", "email": "ada@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, "/auth/login",
		`{"email": "ada@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	store := newFakeUserStore()
	handler := newTestAuthHandler(store)

	rec := postJSON(t, handler.Register, "/auth/register",
		`{"name": "Ada", "email": "ada@example.com", "password": "password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, "/auth/login",
		`{"email": "ada@example.com", "password": "wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, handler.Login, "/auth/login",
		`{"email": "nobody@example.com", "password": "password123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{&ErrInvalidCredentials{}, http.StatusUnauthorized},
		{&ErrUserNotFound{}, http.StatusNotFound},
		{&ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "%T", tt.err)
	}
}

package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateUserRequest represents the request to create a new user with password
// authentication.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user profile for API responses (avoids import cycle with
// the db package).
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and an
// authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ReviewIssue is one soft validation finding surfaced during the review
// section. Issues are hints for a clarification prompt, never hard failures.
type ReviewIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// reviewablePersonalInfo mirrors the personalInfo branch of a record for
// format validation at review time.
type reviewablePersonalInfo struct {
	Email string `validate:"omitempty,email"`
}

// ReviewRecord runs format checks over the collected personal info and
// returns human-readable findings.
func ReviewRecord(record Record) []ReviewIssue {
	var issues []ReviewIssue

	info, _ := record["personalInfo"].(map[string]any)
	email, _ := info["email"].(string)

	validate := validator.New()
	if err := validate.Struct(&reviewablePersonalInfo{Email: email}); err != nil {
		issues = append(issues, ReviewIssue{
			Field:   "personalInfo.email",
			Message: "The email address doesn't look valid. Would you like to correct it?",
		})
	}

	if name, _ := info["fullName"].(string); name == "" {
		issues = append(issues, ReviewIssue{
			Field:   "personalInfo.fullName",
			Message: "I don't have your name yet. What name should appear on the resume?",
		})
	}

	return issues
}

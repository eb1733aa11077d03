package domain

import "errors"

// Sentinel errors returned by services and repositories. The API layer maps
// each to a deterministic HTTP status in its central error handler.
var (
	// Validation failures (HTTP 400).
	ErrMissingCredentials = errors.New("username and password are required")
	ErrTitleRequired      = errors.New("task title is required")
	ErrTitleBlank         = errors.New("title cannot be empty")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")

	// ErrUserExists signals a duplicate username at registration (HTTP 400).
	ErrUserExists = errors.New("username already exists")

	// ErrUserNotFound and ErrInvalidCredentials are both surfaced to the
	// caller as a generic invalid-credentials message so login responses do
	// not reveal which usernames exist.
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, malformed, badly signed, and expired
	// bearer tokens (HTTP 401).
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTaskNotFound is returned when a task does not exist or belongs to a
	// different user. The two cases are deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")
)

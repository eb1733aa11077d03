package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskflow/task-management-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing credentials", domain.ErrMissingCredentials, http.StatusBadRequest, "username and password are required"},
		{"duplicate username", domain.ErrUserExists, http.StatusBadRequest, "username already exists"},
		{"title required", domain.ErrTitleRequired, http.StatusBadRequest, "task title is required"},
		{"blank title", domain.ErrTitleBlank, http.StatusBadRequest, "title cannot be empty"},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest, "invalid status"},
		{"invalid priority", domain.ErrInvalidPriority, http.StatusBadRequest, "invalid priority"},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("code = %d, want %d", code, tc.code)
			}
			if resp.Message != tc.message {
				t.Fatalf("message = %q, want %q", resp.Message, tc.message)
			}
			if resp.Error != "" {
				t.Fatalf("non-500 response should not carry error detail: %q", resp.Error)
			}
		})
	}
}

func TestErrorHandler_LoginErrorsDoNotLeakExistence(t *testing.T) {
	// user-not-found and wrong-password must be indistinguishable
	codeA, respA := renderError(t, domain.ErrUserNotFound)
	codeB, respB := renderError(t, domain.ErrInvalidCredentials)

	if codeA != http.StatusBadRequest || codeB != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", codeA, codeB)
	}
	if respA.Message != respB.Message {
		t.Fatalf("messages differ: %q vs %q", respA.Message, respB.Message)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, resp := renderError(t, errors.New("connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if resp.Message != "server error" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Error != "connection refused" {
		t.Fatalf("expected underlying detail on 500, got %q", resp.Error)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", code)
	}
	if resp.Message != "missing authorization header" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestErrorHandler_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("find task"), domain.ErrTaskNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("wrapped domain error not unwrapped: code = %d", code)
	}
}

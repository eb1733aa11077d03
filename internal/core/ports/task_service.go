package ports

import (
	"context"

	"github.com/taskflow/task-management-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. Status and
// Priority are optional; empty strings take the enumerated defaults.
// UserID always comes from the authenticated caller, never from the payload.
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Status      string
	Priority    string
}

// UpdateTaskInput carries a partial update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	UserID      string
	TaskID      string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}

// ListTasksInput carries the pagination parameters for the list endpoint.
// Page and Limit are already coerced to integers by the transport layer;
// values < 1 fall back to the defaults.
type ListTasksInput struct {
	UserID string
	Page   int
	Limit  int
}

// ListTasksResult is returned by List.
type ListTasksResult struct {
	Tasks       []*domain.Task `json:"tasks"`
	TotalTasks  int64          `json:"totalTasks"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// TaskService defines the use-case operations for tasks. Every operation is
// scoped to the acting user id produced by a prior VerifyToken.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) (*ListTasksResult, error)
	Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

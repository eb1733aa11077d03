package ports

import (
	"context"

	"github.com/taskflow/task-management-api/internal/core/domain"
)

// ListTasksFilter carries the query parameters for listing tasks.
// UserID is always enforced by the service layer (ownership scoping).
type ListTasksFilter struct {
	UserID string
	Page   int // 1-based
	Limit  int // max rows per page (capped at 100 by the service)
}

// TaskUpdate carries the mutable task fields for a partial update. Nil
// pointers mean "leave unchanged". Ownership (UserID) is not updatable.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
}

// TaskRepository defines persistence operations for tasks. UpdateWhere and
// DeleteWhere must be single atomic conditioned writes matching both the task
// id and the owning user id; a miss on either condition reports
// domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	// List returns a page of the user's tasks ordered by creation time
	// descending, together with the total count of matching tasks.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, int64, error)
	UpdateWhere(ctx context.Context, taskID, userID string, update TaskUpdate) (*domain.Task, error)
	DeleteWhere(ctx context.Context, taskID, userID string) error
}

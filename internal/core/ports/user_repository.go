package ports

import (
	"context"

	"github.com/taskflow/task-management-api/internal/core/domain"
)

// UserRepository defines the persistence port for user accounts. Username
// uniqueness is enforced by the store (unique index), not by a read-then-write
// sequence, so concurrent registrations cannot race.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

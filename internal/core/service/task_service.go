package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/task-management-api/internal/core/domain"
	"github.com/taskflow/task-management-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListCache abstracts the Redis-backed page cache for list results. A nil
// cache disables caching entirely.
type ListCache interface {
	Get(ctx context.Context, userID string, page, limit int) (*ports.ListTasksResult, bool)
	Set(ctx context.Context, userID string, page, limit int, result *ports.ListTasksResult)
	Invalidate(ctx context.Context, userID string)
}

// TaskService implements the task use-cases: validation, enum defaulting,
// ownership scoping, and pagination.
type TaskService struct {
	repo   ports.TaskRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, cache ListCache, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cache: cache, logger: logger}
}

// Create validates input, applies enum defaults for omitted fields, and
// persists a new task owned by the authenticated caller.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}

	status := domain.DefaultStatus
	if input.Status != "" {
		status = domain.TaskStatus(input.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	priority := domain.DefaultPriority
	if input.Priority != "" {
		priority = domain.TaskPriority(input.Priority)
		if !priority.Valid() {
			return nil, domain.ErrInvalidPriority
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		UserID:      input.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create task")
		return nil, err
	}

	s.invalidate(ctx, input.UserID)
	s.logger.Info().Str("task_id", created.ID).Str("user_id", input.UserID).Msg("task created")
	return created, nil
}

// List returns one page of the caller's tasks, most recent first, together
// with pagination metadata. Out-of-range page and limit values fall back to
// the defaults; limit is capped at maxLimit.
func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, input.UserID, page, limit); ok {
			return cached, nil
		}
	}

	tasks, total, err := s.repo.List(ctx, ports.ListTasksFilter{
		UserID: input.UserID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to list tasks")
		return nil, err
	}

	result := &ports.ListTasksResult{
		Tasks:       tasks,
		TotalTasks:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}

	if s.cache != nil {
		s.cache.Set(ctx, input.UserID, page, limit, result)
	}
	return result, nil
}

// Update applies a partial update to a task the caller owns. The write is a
// single conditioned operation on (task id, user id); a task owned by someone
// else is indistinguishable from a missing one.
func (s *TaskService) Update(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	update := ports.TaskUpdate{Description: input.Description}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleBlank
		}
		update.Title = &title
	}

	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		update.Status = &status
	}

	if input.Priority != nil {
		priority := domain.TaskPriority(*input.Priority)
		if !priority.Valid() {
			return nil, domain.ErrInvalidPriority
		}
		update.Priority = &priority
	}

	task, err := s.repo.UpdateWhere(ctx, input.TaskID, input.UserID, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, input.UserID)
	s.logger.Info().Str("task_id", task.ID).Str("user_id", input.UserID).Msg("task updated")
	return task, nil
}

// Delete permanently removes a task the caller owns.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.DeleteWhere(ctx, taskID, userID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	s.logger.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task deleted")
	return nil
}

func (s *TaskService) invalidate(ctx context.Context, userID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}

var _ ports.TaskService = (*TaskService)(nil)

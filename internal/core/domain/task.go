package domain

import "time"

// TaskStatus represents the workflow state of a task. Transitions are
// free-form: the owner may set any status at any time.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// DefaultStatus is applied when a create request omits the status field.
const DefaultStatus = StatusPending

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// DefaultPriority is applied when a create request omits the priority field.
const DefaultPriority = PriorityMedium

// Statuses and Priorities are the single source of truth for the enumerated
// values accepted anywhere in the system (validator tags, services, tests).
var (
	Statuses   = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
	Priorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
)

// Valid reports whether s is one of the enumerated statuses.
func (s TaskStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether p is one of the enumerated priorities.
func (p TaskPriority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Task is the core aggregate. UserID is set from the authenticated caller at
// creation and never reassigned by updates.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	UserID      string       `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

package handler

// createTaskRequest is the payload for POST /api/tasks. Status and priority
// are optional; omitted values take the enumerated defaults (pending/medium).
// Any user or owner field in the payload is ignored; ownership always comes
// from the bearer token.
type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,task_status"`
	Priority    string `json:"priority"    validate:"omitempty,task_priority"`
}

// updateTaskRequest is the payload for PUT /api/tasks/:id. Every field is
// optional; nil means "leave unchanged". A supplied title must be non-blank
// after trimming, which the service checks.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"   validate:"omitempty,task_status"`
	Priority    *string `json:"priority" validate:"omitempty,task_priority"`
}

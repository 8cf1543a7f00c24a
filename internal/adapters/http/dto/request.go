package dto

import (
	"github.com/jsamuelsen11/go-draft-service/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustPositive = "must be positive"
)

// OpenTodoDraftRequest is the JSON body of POST /api/v1/drafts/todos.
// Without todo_id the draft edits a new todo.
type OpenTodoDraftRequest struct {
	TodoID *int64 `json:"todo_id,omitempty"`
}

// Validate checks that a given todo_id is positive.
func (r *OpenTodoDraftRequest) Validate() error {
	if r.TodoID != nil && *r.TodoID <= 0 {
		return domain.NewFieldError("todo_id", msgMustPositive)
	}
	return nil
}

// OpenProjectDraftRequest is the JSON body of POST /api/v1/drafts/projects.
// Without project_id the draft edits a new project.
type OpenProjectDraftRequest struct {
	ProjectID *int64 `json:"project_id,omitempty"`
}

// Validate checks that a given project_id is positive.
func (r *OpenProjectDraftRequest) Validate() error {
	if r.ProjectID != nil && *r.ProjectID <= 0 {
		return domain.NewFieldError("project_id", msgMustPositive)
	}
	return nil
}

// UpdateDraftRequest is the JSON body of PATCH /api/v1/drafts/{id}. Values
// are checked by the draft, so only the shape is validated here.
type UpdateDraftRequest struct {
	Changes map[string]any `json:"changes"`
}

// Validate checks that at least one change is present.
func (r *UpdateDraftRequest) Validate() error {
	if len(r.Changes) == 0 {
		return domain.NewFieldError("changes", msgRequired)
	}
	return nil
}

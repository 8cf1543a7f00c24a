// Package todo translates between the downstream TODO API's todo resources
// and domain todos.
package todo

// TodoDTO matches the downstream Todo schema.
type TodoDTO struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	Category        string `json:"category"`
	ProgressPercent int64  `json:"progress_percent"`
	GroupID         *int64 `json:"group_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// TodoWriteDTO is the body of both POST and PUT. A draft commit always
// writes the whole todo, so nothing is optional: a null group_id takes the
// todo out of its group.
type TodoWriteDTO struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	Category        string `json:"category"`
	ProgressPercent int64  `json:"progress_percent"`
	GroupID         *int64 `json:"group_id"`
}

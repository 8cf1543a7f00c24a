// Package project translates between the downstream TODO API's group
// resources and domain projects.
package project

// GroupDTO matches the downstream Group schema.
type GroupDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateGroupRequestDTO matches the downstream CreateGroupRequest schema.
type CreateGroupRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateGroupRequestDTO matches the downstream UpdateGroupRequest schema.
// A nil field is left unchanged downstream.
type UpdateGroupRequestDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

package todo

import (
	"time"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/todo"
)

// ToDomainTodo converts a downstream TodoDTO to a domain Todo. GroupID maps
// to ProjectID; unparseable timestamps become the zero time.
func ToDomainTodo(dto *TodoDTO) todo.Todo {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return todo.Todo{
		ID:              dto.ID,
		Title:           dto.Title,
		Description:     dto.Description,
		Status:          todo.Status(dto.Status),
		Category:        todo.Category(dto.Category),
		ProgressPercent: int(dto.ProgressPercent),
		ProjectID:       dto.GroupID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// ToWriteRequest converts a committed todo draft to the body of a create or
// replace request.
func ToWriteRequest(t *todo.Todo) TodoWriteDTO {
	return TodoWriteDTO{
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status.String(),
		Category:        t.Category.String(),
		ProgressPercent: int64(t.ProgressPercent),
		GroupID:         t.ProjectID,
	}
}

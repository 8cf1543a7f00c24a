package ports

import (
	"context"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/project"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/todo"
)

// TodoStore is the persistence port behind draft commits. The ACL adapter
// implements it against the downstream TODO API, where projects are called
// "groups".
//
// Errors are domain errors: domain.ErrNotFound for a missing entity, a
// *domain.ValidationError when the downstream rejects specific fields,
// domain.ErrConflict for concurrent modification and domain.ErrUnavailable
// when the downstream is failing.
type TodoStore interface {
	// GetTodo loads the todo a draft starts from.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo persists a new todo and returns it with its assigned ID.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateTodo replaces every editable field of todo id.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// GetProject loads the project a draft starts from.
	GetProject(ctx context.Context, id int64) (*project.Project, error)

	// CreateProject persists a new project and returns it with its assigned ID.
	CreateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// UpdateProject replaces every editable field of project id.
	UpdateProject(ctx context.Context, id int64, p *project.Project) (*project.Project, error)
}

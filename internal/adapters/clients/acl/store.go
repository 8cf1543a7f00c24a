package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	aclproject "github.com/jsamuelsen11/go-draft-service/internal/adapters/clients/acl/project"
	acltodo "github.com/jsamuelsen11/go-draft-service/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/project"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-draft-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

// TodoStore is the outbound adapter for the downstream TODO API. Drafts load
// their starting state through it and commits persist through it.
//
// Projects are "groups" downstream. Failures are mapped to domain errors by
// [TranslateHTTPError]; circuit breaking, rate limiting, retries and tracing
// come from the underlying [httpclient.Client].
type TodoStore struct {
	req *Requester
}

// NewTodoStore creates a TodoStore that sends requests through client, whose
// BaseURL points at the downstream API root.
func NewTodoStore(client *httpclient.Client, logger *slog.Logger) *TodoStore {
	return &TodoStore{req: NewRequester(client, logger)}
}

// GetTodo fetches GET /api/v1/todos/{id}.
func (s *TodoStore) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	if err := s.req.Do(ctx, http.MethodGet, todoPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	t := acltodo.ToDomainTodo(&dto)
	return &t, nil
}

// CreateTodo sends POST /api/v1/todos.
func (s *TodoStore) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	err := s.req.Do(ctx, http.MethodPost, "/api/v1/todos", http.StatusCreated, acltodo.ToWriteRequest(t), &dto)
	if err != nil {
		return nil, err
	}
	created := acltodo.ToDomainTodo(&dto)
	return &created, nil
}

// UpdateTodo sends PUT /api/v1/todos/{id} with every field set. A nil
// ProjectID removes the todo from its group.
func (s *TodoStore) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	err := s.req.Do(ctx, http.MethodPut, todoPath(id), http.StatusOK, acltodo.ToWriteRequest(t), &dto)
	if err != nil {
		return nil, err
	}
	updated := acltodo.ToDomainTodo(&dto)
	return &updated, nil
}

// GetProject fetches GET /api/v1/groups/{id}.
func (s *TodoStore) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	var dto aclproject.GroupDTO
	if err := s.req.Do(ctx, http.MethodGet, groupPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	p := aclproject.ToDomainProject(dto)
	return &p, nil
}

// CreateProject sends POST /api/v1/groups.
func (s *TodoStore) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	var dto aclproject.GroupDTO
	err := s.req.Do(ctx, http.MethodPost, "/api/v1/groups", http.StatusCreated, aclproject.ToCreateGroupRequest(p), &dto)
	if err != nil {
		return nil, err
	}
	created := aclproject.ToDomainProject(dto)
	return &created, nil
}

// UpdateProject sends PUT /api/v1/groups/{id} with every field set.
func (s *TodoStore) UpdateProject(ctx context.Context, id int64, p *project.Project) (*project.Project, error) {
	var dto aclproject.GroupDTO
	err := s.req.Do(ctx, http.MethodPut, groupPath(id), http.StatusOK, aclproject.ToUpdateGroupRequest(p), &dto)
	if err != nil {
		return nil, err
	}
	updated := aclproject.ToDomainProject(dto)
	return &updated, nil
}

func todoPath(id int64) string  { return fmt.Sprintf("/api/v1/todos/%d", id) }
func groupPath(id int64) string { return fmt.Sprintf("/api/v1/groups/%d", id) }

package ports

import (
	"context"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
)

// DraftService is the service port the HTTP handlers drive. A draft is an
// in-memory editable copy of a todo or project that tracks property changes,
// validation errors and whether it can be committed.
//
// Every method that takes a draft ID returns domain.ErrNotFound for an
// unknown, discarded or expired draft.
type DraftService interface {
	// OpenTodo starts a draft from the stored todo id.
	OpenTodo(ctx context.Context, id int64) (*draft.Snapshot, error)

	// NewTodo starts a draft for a todo that does not exist yet.
	NewTodo(ctx context.Context) (*draft.Snapshot, error)

	// OpenProject starts a draft from the stored project id.
	OpenProject(ctx context.Context, id int64) (*draft.Snapshot, error)

	// NewProject starts a draft for a project that does not exist yet.
	NewProject(ctx context.Context) (*draft.Snapshot, error)

	// Get returns the current state of a draft.
	Get(ctx context.Context, id string) (*draft.Snapshot, error)

	// Update assigns property values. Unknown properties and values of the
	// wrong type fail with domain.ErrValidation before anything is applied.
	// Values that break a business rule are accepted and reported through
	// the snapshot's errors.
	Update(ctx context.Context, id string, changes map[string]any) (*draft.Snapshot, error)

	// Errors returns the messages for one property. The empty property or
	// draft.EntityKey selects errors about the whole entity.
	Errors(ctx context.Context, id, property string) ([]string, error)

	// Commit validates the draft and, when it has no errors, persists it.
	Commit(ctx context.Context, id string) (*draft.CommitResult, error)

	// Discard drops a draft and closes its watchers.
	Discard(ctx context.Context, id string) error

	// Watch streams change events for a draft until ctx is done, the
	// returned stop func is called, or the draft goes away.
	Watch(ctx context.Context, id string) (<-chan draft.Event, func(), error)
}

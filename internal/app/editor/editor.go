// Package editor holds the editable view models behind drafts. Each editor
// embeds a viewmodel.Entity, validates a property as it is set, revalidates
// the whole entity on commit and persists through ports.TodoStore.
package editor

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/viewmodel"
)

// MsgConflict is recorded against the whole entity when the stored copy
// changed underneath a commit.
const MsgConflict = "was changed by someone else since it was opened"

// MsgRejected is recorded against the whole entity when the store rejected
// a commit without saying why.
const MsgRejected = "was rejected by the store"

// Editor is the view model a draft wraps. The viewmodel.Entity methods
// (notifications, errors, commit state) come from the embedded entity.
type Editor interface {
	Kind() draft.Kind

	// EntityID is the stored entity's ID, or zero before the first commit.
	EntityID() int64

	// Values returns the current property values keyed by property name.
	Values() map[string]any

	// Apply converts and assigns changes. Every key and value is checked
	// before the first assignment; on failure nothing is assigned and the
	// error is a *domain.ValidationError. Assignments run in key order.
	Apply(changes map[string]any) error

	// Commit validates and persists the entity. A rejection, whether by the
	// local rules or by the store, is reported as (false, nil) with the
	// reasons in the error set.
	Commit(ctx context.Context) (bool, error)

	SubscribePropertyChanged(fn func(viewmodel.PropertyName)) viewmodel.Subscription
	SubscribeErrorsChanged(fn func(viewmodel.PropertyName)) viewmodel.Subscription
	CommitCommand() viewmodel.Command

	Errors(name viewmodel.PropertyName) []string
	AllErrors() map[viewmodel.PropertyName][]string
	HasErrors() bool
	ErrorCount() int
	Committed() bool
	CanCommit() bool
	Changed() []viewmodel.PropertyName
}

// errRejected is returned by commit hooks when the store refused the entity
// and the reasons were recorded as errors.
var errRejected = errors.New("rejected by store")

// commit runs e's commit and folds a store rejection into (false, nil).
func commit(ctx context.Context, e *viewmodel.Entity) (bool, error) {
	ok, err := e.Commit(ctx)
	if errors.Is(err, errRejected) {
		return false, nil
	}
	return ok, err
}

// recordViolations replaces e's error set with v. Domain rules never
// produce an empty message.
func recordViolations(e *viewmodel.Entity, v domain.Violations) error {
	return e.ReplaceErrors(toErrorSet(v))
}

// recordStoreError turns a store rejection into entity errors and returns
// errRejected. Errors that are not rejections are returned unchanged.
func recordStoreError(e *viewmodel.Entity, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		set := toErrorSet(verr.Fields)
		if len(set) == 0 {
			set[viewmodel.WholeEntity] = []string{MsgRejected}
		}
		if rerr := e.ReplaceErrors(set); rerr != nil {
			return rerr
		}
		return errRejected
	case errors.Is(err, domain.ErrConflict):
		if rerr := e.SetError(viewmodel.WholeEntity, MsgConflict); rerr != nil {
			return rerr
		}
		return errRejected
	default:
		return err
	}
}

// toErrorSet converts field messages to an error set. The empty field is
// the whole entity. Empty messages are dropped, and a field left with none
// is omitted.
func toErrorSet(fields map[string][]string) map[viewmodel.PropertyName][]string {
	set := make(map[viewmodel.PropertyName][]string, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		msgs := slices.DeleteFunc(slices.Clone(fields[field]), func(m string) bool { return m == "" })
		if len(msgs) > 0 {
			set[viewmodel.PropertyName(field)] = msgs
		}
	}
	return set
}

// setViolations records the messages for one property.
func setViolations(e *viewmodel.Entity, name viewmodel.PropertyName, msgs []string) {
	// Rule functions never return an empty message, so SetErrors cannot fail.
	_ = e.SetErrors(name, msgs)
}

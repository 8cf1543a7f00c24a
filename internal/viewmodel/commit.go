package viewmodel

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// CommittedProperty is the property raised when the committed flag changes.
// Notifications for it never mark the entity dirty.
const CommittedProperty PropertyName = "Committed"

// Hook is a caller-supplied step of a commit. The validate hook is expected
// to populate the ErrorTracker; the commit hook applies the pending edits.
type Hook func(ctx context.Context) error

// Command is the contract a UI or transport layer binds a commit control to.
type Command interface {
	// CanExecute reports whether executing would have an effect.
	CanExecute() bool

	// Execute attempts the commit.
	Execute(ctx context.Context) error

	// SubscribeCanExecuteChanged registers fn to be called whenever
	// CanExecute may have changed.
	SubscribeCanExecuteChanged(fn func()) Subscription

	// UnsubscribeCanExecuteChanged removes a listener.
	UnsubscribeCanExecuteChanged(s Subscription)
}

// Compile-time check that CommitTracker implements Command.
var _ Command = (*CommitTracker)(nil)

// CommitTracker tracks the committed/dirty state of an entity and gates
// Commit behind validation. It starts committed; any property change other
// than CommittedProperty makes it dirty.
type CommitTracker struct {
	notifier *Notifier
	errors   *ErrorTracker

	committed bool
	changed   []PropertyName

	validate    Hook
	onCommitted Hook

	canExecute observers[func()]
	logger     *slog.Logger
}

// NewCommitTracker wires a tracker to the given notifier and error tracker.
// Nil hooks are treated as no-ops and a nil logger discards output.
func NewCommitTracker(n *Notifier, e *ErrorTracker, validate, onCommitted Hook, logger *slog.Logger) *CommitTracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	t := &CommitTracker{
		notifier:    n,
		errors:      e,
		committed:   true,
		validate:    validate,
		onCommitted: onCommitted,
		logger:      logger,
	}

	e.SubscribeErrorsChanged(func(PropertyName) { t.raiseCanExecuteChanged() })
	n.Subscribe(t.propertyChanged)

	return t
}

func (t *CommitTracker) propertyChanged(name PropertyName) {
	if name == CommittedProperty {
		return
	}
	if !slices.Contains(t.changed, name) {
		t.changed = append(t.changed, name)
	}
	if t.committed {
		t.SetCommitted(false)
	}
}

// Committed reports whether there are no edits since the last commit.
func (t *CommitTracker) Committed() bool {
	return t.committed
}

// SetCommitted sets the committed flag. A change republishes CanExecute and
// raises CommittedProperty. Marking the entity committed forgets the list of
// changed properties.
func (t *CommitTracker) SetCommitted(v bool) {
	if v {
		t.changed = nil
	}
	if t.committed == v {
		return
	}
	t.committed = v
	t.raiseCanExecuteChanged()
	t.notifier.RaisePropertyChanged(CommittedProperty)
}

// Changed returns the properties changed since the last commit, in the
// order they first changed.
func (t *CommitTracker) Changed() []PropertyName {
	return slices.Clone(t.changed)
}

// CanCommit reports whether the entity is dirty and free of errors.
func (t *CommitTracker) CanCommit() bool {
	return !t.committed && !t.errors.HasErrors()
}

// Commit runs the validate hook, then, if no errors are recorded, the
// commit hook, and finally marks the entity committed. It reports whether
// the commit happened. Errors from either hook are returned as-is (wrapped)
// and leave the committed flag untouched; recorded validation errors are
// not Go errors and produce (false, nil).
func (t *CommitTracker) Commit(ctx context.Context) (bool, error) {
	if t.validate != nil {
		if err := t.validate(ctx); err != nil {
			return false, fmt.Errorf("validating: %w", err)
		}
	}

	if t.errors.HasErrors() {
		t.logger.DebugContext(ctx, "commit rejected",
			slog.String("operation", "CommitTracker.Commit"),
			slog.Int("error_count", t.errors.Count()),
		)
		return false, nil
	}

	if t.onCommitted != nil {
		if err := t.onCommitted(ctx); err != nil {
			return false, fmt.Errorf("committing: %w", err)
		}
	}

	t.SetCommitted(true)
	return true, nil
}

// CanExecute implements Command.
func (t *CommitTracker) CanExecute() bool {
	return t.CanCommit()
}

// Execute implements Command by calling Commit.
func (t *CommitTracker) Execute(ctx context.Context) error {
	_, err := t.Commit(ctx)
	return err
}

// SubscribeCanExecuteChanged implements Command.
func (t *CommitTracker) SubscribeCanExecuteChanged(fn func()) Subscription {
	if fn == nil {
		return 0
	}
	return t.canExecute.add(fn)
}

// UnsubscribeCanExecuteChanged implements Command.
func (t *CommitTracker) UnsubscribeCanExecuteChanged(s Subscription) {
	t.canExecute.remove(s)
}

func (t *CommitTracker) raiseCanExecuteChanged() {
	t.canExecute.each(func(fn func()) { fn() })
}

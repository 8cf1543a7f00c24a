package viewmodel

import (
	"context"
	"log/slog"
)

// Option configures an Entity.
type Option func(*options)

type options struct {
	validate    Hook
	onCommitted Hook
	logger      *slog.Logger
}

// WithValidator sets the hook Commit runs before checking for errors. It
// should record every outstanding validation message on the entity.
func WithValidator(h Hook) Option {
	return func(o *options) {
		o.validate = h
	}
}

// WithCommitHook sets the hook Commit runs once validation passes.
func WithCommitHook(h Hook) Option {
	return func(o *options) {
		o.onCommitted = h
	}
}

// WithLogger sets the logger used for commit diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Entity is the base of an editable view model: property-changed
// notifications, per-property validation errors and a gated commit.
// Create it with New; the zero value is not usable.
type Entity struct {
	notifier Notifier
	errors   ErrorTracker
	commit   *CommitTracker
}

// New creates an Entity in the committed state with no errors.
func New(opts ...Option) *Entity {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	e := &Entity{}
	e.commit = NewCommitTracker(&e.notifier, &e.errors, o.validate, o.onCommitted, o.logger)
	return e
}

// SetProperty assigns value to *field and raises name if the value changed.
// It reports whether a change happened.
func SetProperty[T comparable](e *Entity, field *T, value T, name PropertyName) bool {
	if *field == value {
		return false
	}
	*field = value
	e.RaisePropertyChanged(name)
	return true
}

// --- property notifications ---

// SubscribePropertyChanged registers a property-changed listener.
func (e *Entity) SubscribePropertyChanged(fn func(PropertyName)) Subscription {
	return e.notifier.Subscribe(fn)
}

// UnsubscribePropertyChanged removes a property-changed listener.
func (e *Entity) UnsubscribePropertyChanged(s Subscription) {
	e.notifier.Unsubscribe(s)
}

// RaisePropertyChanged notifies listeners that the named properties changed.
func (e *Entity) RaisePropertyChanged(names ...PropertyName) {
	e.notifier.RaisePropertyChanged(names...)
}

// --- validation errors ---

// SubscribeErrorsChanged registers an errors-changed listener.
func (e *Entity) SubscribeErrorsChanged(fn func(PropertyName)) Subscription {
	return e.errors.SubscribeErrorsChanged(fn)
}

// UnsubscribeErrorsChanged removes an errors-changed listener.
func (e *Entity) UnsubscribeErrorsChanged(s Subscription) {
	e.errors.UnsubscribeErrorsChanged(s)
}

// SetErrors replaces the messages for name. See ErrorTracker.SetErrors.
func (e *Entity) SetErrors(name PropertyName, msgs []string) error {
	return e.errors.SetErrors(name, msgs)
}

// SetError records a single message for name.
func (e *Entity) SetError(name PropertyName, msg string) error {
	return e.errors.SetError(name, msg)
}

// ClearErrors removes the messages for name.
func (e *Entity) ClearErrors(name PropertyName) {
	e.errors.ClearErrors(name)
}

// ReplaceErrors makes set the complete error state.
func (e *Entity) ReplaceErrors(set map[PropertyName][]string) error {
	return e.errors.ReplaceAll(set)
}

// Errors returns the messages for name, or nil.
func (e *Entity) Errors(name PropertyName) []string {
	return e.errors.Errors(name)
}

// AllErrors returns a copy of the whole error set.
func (e *Entity) AllErrors() map[PropertyName][]string {
	return e.errors.All()
}

// HasErrors reports whether any property has messages.
func (e *Entity) HasErrors() bool {
	return e.errors.HasErrors()
}

// ErrorCount returns the total number of recorded messages.
func (e *Entity) ErrorCount() int {
	return e.errors.Count()
}

// --- commit state ---

// Committed reports whether there are no edits since the last commit.
func (e *Entity) Committed() bool {
	return e.commit.Committed()
}

// SetCommitted overrides the committed flag.
func (e *Entity) SetCommitted(v bool) {
	e.commit.SetCommitted(v)
}

// Changed returns the properties edited since the last commit.
func (e *Entity) Changed() []PropertyName {
	return e.commit.Changed()
}

// CanCommit reports whether the entity is dirty and free of errors.
func (e *Entity) CanCommit() bool {
	return e.commit.CanCommit()
}

// Commit validates and, if no errors remain, applies pending edits.
func (e *Entity) Commit(ctx context.Context) (bool, error) {
	return e.commit.Commit(ctx)
}

// CommitCommand returns the bindable commit command.
func (e *Entity) CommitCommand() Command {
	return e.commit
}

package viewmodel

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidArgument is returned when an error list handed to the
// ErrorTracker contains an empty message.
var ErrInvalidArgument = errors.New("viewmodel: invalid argument")

// ErrorTracker maps property names to ordered validation messages. A
// property present in the set always has at least one message; clearing
// the last message removes the property. The zero value is ready to use.
type ErrorTracker struct {
	errs      map[PropertyName][]string
	listeners observers[func(PropertyName)]
}

// SetErrors replaces the messages recorded for name.
//
// Messages must be non-empty; otherwise SetErrors returns an error wrapping
// ErrInvalidArgument and leaves the set untouched. When msgs equals the
// current list (same length, same messages, same order) nothing happens and
// no event fires. Any other change fires exactly one errors-changed event
// for name, after the set has been updated.
func (t *ErrorTracker) SetErrors(name PropertyName, msgs []string) error {
	if err := checkMessages(name, msgs); err != nil {
		return err
	}

	if slices.Equal(t.errs[name], msgs) {
		return nil
	}

	if len(msgs) == 0 {
		delete(t.errs, name)
	} else {
		if t.errs == nil {
			t.errs = make(map[PropertyName][]string)
		}
		t.errs[name] = slices.Clone(msgs)
	}

	t.raiseErrorsChanged(name)
	return nil
}

// SetError records a single message for name, replacing any others.
func (t *ErrorTracker) SetError(name PropertyName, msg string) error {
	return t.SetErrors(name, []string{msg})
}

// ClearErrors removes every message recorded for name.
func (t *ErrorTracker) ClearErrors(name PropertyName) {
	// An empty list never fails validation.
	_ = t.SetErrors(name, nil)
}

// ReplaceAll makes set the complete error state. Properties missing from
// set are cleared. Every list is checked before anything changes; events
// then fire per changed property, cleared properties first, each group in
// name order.
func (t *ErrorTracker) ReplaceAll(set map[PropertyName][]string) error {
	for _, name := range slices.Sorted(maps.Keys(set)) {
		if err := checkMessages(name, set[name]); err != nil {
			return err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(t.errs)) {
		if _, keep := set[name]; !keep {
			t.ClearErrors(name)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(set)) {
		if err := t.SetErrors(name, set[name]); err != nil {
			return err
		}
	}
	return nil
}

// Errors returns a copy of the messages recorded for name, or nil.
func (t *ErrorTracker) Errors(name PropertyName) []string {
	return slices.Clone(t.errs[name])
}

// All returns a copy of the whole error set.
func (t *ErrorTracker) All() map[PropertyName][]string {
	out := make(map[PropertyName][]string, len(t.errs))
	for name, msgs := range t.errs {
		out[name] = slices.Clone(msgs)
	}
	return out
}

// HasErrors reports whether any property has messages.
func (t *ErrorTracker) HasErrors() bool {
	return len(t.errs) > 0
}

// Count returns the total number of messages across all properties.
func (t *ErrorTracker) Count() int {
	n := 0
	for _, msgs := range t.errs {
		n += len(msgs)
	}
	return n
}

// SubscribeErrorsChanged registers fn to be called with the property whose
// messages changed. A nil fn is ignored.
func (t *ErrorTracker) SubscribeErrorsChanged(fn func(PropertyName)) Subscription {
	if fn == nil {
		return 0
	}
	return t.listeners.add(fn)
}

// UnsubscribeErrorsChanged removes a listener added by
// SubscribeErrorsChanged.
func (t *ErrorTracker) UnsubscribeErrorsChanged(s Subscription) {
	t.listeners.remove(s)
}

func (t *ErrorTracker) raiseErrorsChanged(name PropertyName) {
	t.listeners.each(func(fn func(PropertyName)) { fn(name) })
}

func checkMessages(name PropertyName, msgs []string) error {
	if i := slices.Index(msgs, ""); i >= 0 {
		return fmt.Errorf("%w: message %d for property %q is empty", ErrInvalidArgument, i, name)
	}
	return nil
}

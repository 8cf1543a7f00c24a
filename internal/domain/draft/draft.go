// Package draft defines the values the draft service hands to its callers:
// point-in-time snapshots of an editable entity, commit outcomes and the
// change events a watcher receives.
package draft

import "time"

// Kind identifies which entity a draft edits.
type Kind string

// Draft kinds.
const (
	KindTodo    Kind = "todo"
	KindProject Kind = "project"
)

// EntityKey is the key under which errors about the whole entity appear in
// Snapshot.Errors and Event.Property.
const EntityKey = "_entity"

// PropertyCommitted is the Event.Property raised when a draft's committed
// flag flips.
const PropertyCommitted = "committed"

// Snapshot is a copy of a draft's state. It is never updated after it is
// built.
type Snapshot struct {
	ID string
	// EntityID is the downstream ID, or zero for an entity not yet created.
	EntityID  int64
	Kind      Kind
	Values    map[string]any
	Committed bool
	CanCommit bool
	HasErrors bool
	// Errors maps property names to their messages in rule order.
	Errors map[string][]string
	// Changed lists properties edited since the last commit, in first-edit
	// order.
	Changed   []string
	UpdatedAt time.Time
}

// CommitResult reports the outcome of a commit. A commit that validation
// rejects is not an error: Committed is false and Snapshot.Errors says why.
type CommitResult struct {
	Committed bool
	Snapshot  *Snapshot
}

// EventType names a draft change notification.
type EventType string

// Event types delivered to watchers.
const (
	EventPropertyChanged  EventType = "property_changed"
	EventErrorsChanged    EventType = "errors_changed"
	EventCanCommitChanged EventType = "can_commit_changed"
	// EventClosed is the last event of a stream: the draft was discarded or
	// expired.
	EventClosed EventType = "closed"
)

// Event is a single change notification for a draft.
type Event struct {
	Type    EventType
	DraftID string
	// Property is set for property and errors events.
	Property string
	// CanCommit is the command state after the change, for
	// EventCanCommitChanged.
	CanCommit bool
	At        time.Time
}

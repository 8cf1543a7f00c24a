package drafts

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/go-draft-service/internal/app/editor"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/viewmodel"
)

// entry is one open draft. mu serializes every use of the editor, so editor
// notifications, and therefore publish, always run with mu held.
type entry struct {
	id  string
	now func() time.Time

	// lastUsed (unix nanos) and watching are read by the sweeper without mu.
	lastUsed atomic.Int64
	watching atomic.Int32

	mu        sync.Mutex
	ed        editor.Editor
	updatedAt time.Time
	canCommit bool
	closed    bool
	watchers  map[uint64]*watcher
	nextWatch uint64
}

// watcher is one Watch stream. done is closed together with ch so the
// context goroutine of the stream can exit.
type watcher struct {
	ch   chan draft.Event
	done chan struct{}
}

func newEntry(id string, ed editor.Editor, now func() time.Time) *entry {
	e := &entry{
		id:        id,
		now:       now,
		ed:        ed,
		updatedAt: now(),
		canCommit: ed.CanCommit(),
		watchers:  make(map[uint64]*watcher),
	}
	e.touch()

	ed.SubscribePropertyChanged(func(name viewmodel.PropertyName) {
		e.publish(draft.Event{Type: draft.EventPropertyChanged, Property: propertyKey(name)})
	})
	ed.SubscribeErrorsChanged(func(name viewmodel.PropertyName) {
		e.publish(draft.Event{Type: draft.EventErrorsChanged, Property: propertyKey(name)})
	})
	ed.CommitCommand().SubscribeCanExecuteChanged(func() {
		can := ed.CanCommit()
		if can == e.canCommit {
			return
		}
		e.canCommit = can
		e.publish(draft.Event{Type: draft.EventCanCommitChanged, CanCommit: can})
	})
	return e
}

func (e *entry) touch() {
	e.lastUsed.Store(e.now().UnixNano())
}

func (e *entry) idleSince() time.Time {
	return time.Unix(0, e.lastUsed.Load())
}

// publish delivers ev to every watcher without blocking. A watcher whose
// buffer is full misses the event.
func (e *entry) publish(ev draft.Event) {
	ev.DraftID = e.id
	ev.At = e.now()
	for _, w := range e.watchers {
		select {
		case w.ch <- ev:
		default:
		}
	}
}

func (e *entry) addWatcher(buffer int) (uint64, *watcher) {
	e.nextWatch++
	w := &watcher{
		ch:   make(chan draft.Event, buffer),
		done: make(chan struct{}),
	}
	e.watchers[e.nextWatch] = w
	e.watching.Add(1)
	return e.nextWatch, w
}

func (e *entry) removeWatcher(id uint64) {
	w, ok := e.watchers[id]
	if !ok {
		return
	}
	delete(e.watchers, id)
	e.watching.Add(-1)
	close(w.ch)
	close(w.done)
}

// close sends EventClosed to the watchers and ends their streams.
func (e *entry) close() {
	if e.closed {
		return
	}
	e.closed = true
	e.publish(draft.Event{Type: draft.EventClosed})
	for _, id := range slices.Sorted(maps.Keys(e.watchers)) {
		e.removeWatcher(id)
	}
}

func (e *entry) snapshot() *draft.Snapshot {
	errs := make(map[string][]string)
	for name, msgs := range e.ed.AllErrors() {
		errs[propertyKey(name)] = msgs
	}

	changed := make([]string, 0, len(e.ed.Changed()))
	for _, name := range e.ed.Changed() {
		changed = append(changed, propertyKey(name))
	}

	return &draft.Snapshot{
		ID:        e.id,
		EntityID:  e.ed.EntityID(),
		Kind:      e.ed.Kind(),
		Values:    e.ed.Values(),
		Committed: e.ed.Committed(),
		CanCommit: e.ed.CanCommit(),
		HasErrors: e.ed.HasErrors(),
		Errors:    errs,
		Changed:   changed,
		UpdatedAt: e.updatedAt,
	}
}

// propertyKey is the external name of a view model property.
func propertyKey(name viewmodel.PropertyName) string {
	switch name {
	case viewmodel.WholeEntity:
		return draft.EntityKey
	case viewmodel.CommittedProperty:
		return draft.PropertyCommitted
	default:
		return string(name)
	}
}

// propertyName is the inverse of propertyKey for error lookups.
func propertyName(key string) viewmodel.PropertyName {
	if key == "" || key == draft.EntityKey {
		return viewmodel.WholeEntity
	}
	return viewmodel.PropertyName(key)
}

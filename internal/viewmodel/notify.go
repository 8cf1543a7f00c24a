// Package viewmodel provides the change-notification, validation-error and
// commit bookkeeping shared by editable entity view models.
//
// An Entity combines three pieces:
//
//   - Notifier raises property-changed notifications by PropertyName.
//   - ErrorTracker keeps an ordered list of validation messages per property
//     and raises errors-changed notifications when a list actually changes.
//   - CommitTracker holds the committed flag (true on construction, false
//     after any property change) and gates Commit on the absence of errors.
//
// Typical embedding:
//
//	type PersonEditor struct {
//	    *viewmodel.Entity
//	    name string
//	}
//
//	const PropName viewmodel.PropertyName = "Name"
//
//	func (p *PersonEditor) SetName(v string) {
//	    if viewmodel.SetProperty(p.Entity, &p.name, v, PropName) {
//	        p.validateName()
//	    }
//	}
//
// Validation failures are state, not errors: they live in the ErrorTracker
// and are observed through HasErrors, Errors and the errors-changed
// subscription. Go errors are reserved for contract violations
// (ErrInvalidArgument) and for failing hooks.
//
// Nothing in this package locks. An Entity must be used from one goroutine
// at a time; hosts that share an Entity between goroutines serialize access
// per instance. All notifications are synchronous and depth-first, so a
// listener may call back into the Entity before the outer call returns.
package viewmodel

import "slices"

// PropertyName identifies an observable property of a view model.
type PropertyName string

// WholeEntity is the property name used for errors that apply to the entity
// as a whole rather than to a single property.
const WholeEntity PropertyName = ""

// Subscription is the handle returned when registering a listener. The zero
// value is never issued and unsubscribing it is a no-op.
type Subscription uint64

// observer pairs a listener with its subscription handle.
type observer[F any] struct {
	id Subscription
	fn F
}

// observers is an ordered listener list. Mutations replace the backing
// slice, so a dispatch in progress keeps iterating the list it started
// with. A listener removed mid-dispatch is skipped.
type observers[F any] struct {
	seq     uint64
	entries []observer[F]
	live    map[Subscription]struct{}
}

func (o *observers[F]) add(fn F) Subscription {
	o.seq++
	id := Subscription(o.seq)
	if o.live == nil {
		o.live = make(map[Subscription]struct{})
	}
	o.live[id] = struct{}{}
	o.entries = append(slices.Clip(o.entries), observer[F]{id: id, fn: fn})
	return id
}

func (o *observers[F]) remove(id Subscription) {
	if _, ok := o.live[id]; !ok {
		return
	}
	delete(o.live, id)
	o.entries = slices.DeleteFunc(slices.Clone(o.entries), func(e observer[F]) bool {
		return e.id == id
	})
}

func (o *observers[F]) len() int {
	return len(o.entries)
}

// each invokes call for every listener registered when each started, in
// subscription order, skipping listeners removed along the way.
func (o *observers[F]) each(call func(F)) {
	for _, e := range o.entries {
		if _, ok := o.live[e.id]; !ok {
			continue
		}
		call(e.fn)
	}
}

// Notifier dispatches property-changed notifications. The zero value is
// ready to use.
type Notifier struct {
	listeners observers[func(PropertyName)]
}

// Subscribe registers fn to be called with the name of every changed
// property. A nil fn is ignored and the zero Subscription is returned.
func (n *Notifier) Subscribe(fn func(PropertyName)) Subscription {
	if fn == nil {
		return 0
	}
	return n.listeners.add(fn)
}

// Unsubscribe removes a listener. Unknown or already removed handles are
// ignored.
func (n *Notifier) Unsubscribe(s Subscription) {
	n.listeners.remove(s)
}

// RaisePropertyChanged notifies listeners once per name, in argument order.
// Each notification reaches every listener, in subscription order, before
// the next name is raised.
func (n *Notifier) RaisePropertyChanged(names ...PropertyName) {
	if n.listeners.len() == 0 {
		return
	}
	for _, name := range names {
		n.listeners.each(func(fn func(PropertyName)) { fn(name) })
	}
}

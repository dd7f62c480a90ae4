package state

import (
	"errors"
	"fmt"
	"slices"
)

// ErrClosed is returned when subscribing to a closed Bus.
var ErrClosed = errors.New("state: event source closed")

// Kind names an event stream.
type Kind string

// Event stream kinds.
const (
	KindScroll      Kind = "scroll"
	KindPointerMove Kind = "pointermove"
)

// Event is a notification from the hosting environment.
type Event struct {
	Kind Kind
	// ScrollY is set for KindScroll.
	ScrollY float64
	// Pointer is set for KindPointerMove.
	Pointer Point
}

// ScrollEvent builds a scroll notification.
func ScrollEvent(offset float64) Event {
	return Event{Kind: KindScroll, ScrollY: offset}
}

// PointerEvent builds a pointer-move notification.
func PointerEvent(x, y float64) Event {
	return Event{Kind: KindPointerMove, Pointer: Point{X: x, Y: y}}
}

// Listener receives events synchronously.
type Listener func(Event)

// Subscription is a registered listener.
type Subscription interface {
	Unsubscribe()
}

// Source is a provider of event streams.
type Source interface {
	Subscribe(kind Kind, fn Listener) (Subscription, error)
}

// Bus is an in-process Source. Dispatch calls listeners synchronously on the
// caller's goroutine; like Holder it is not safe for concurrent use.
type Bus struct {
	listeners map[Kind]map[uint64]Listener
	next      uint64
	closed    bool
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[Kind]map[uint64]Listener)}
}

// Subscribe registers fn for events of the given kind.
func (b *Bus) Subscribe(kind Kind, fn Listener) (Subscription, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if fn == nil {
		return nil, fmt.Errorf("state: nil listener for %q", kind)
	}
	m, ok := b.listeners[kind]
	if !ok {
		m = make(map[uint64]Listener)
		b.listeners[kind] = m
	}
	b.next++
	id := b.next
	m[id] = fn
	return &busSub{bus: b, kind: kind, id: id}, nil
}

// Dispatch delivers ev to every listener of its kind, in subscription order.
func (b *Bus) Dispatch(ev Event) {
	m := b.listeners[ev.Kind]
	if len(m) == 0 {
		return
	}
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := m[id]; ok {
			fn(ev)
		}
	}
}

// ListenerCount returns the number of listeners for kind.
func (b *Bus) ListenerCount(kind Kind) int {
	return len(b.listeners[kind])
}

// Close drops every listener and rejects further subscriptions.
func (b *Bus) Close() {
	b.closed = true
	clear(b.listeners)
}

type busSub struct {
	bus  *Bus
	kind Kind
	id   uint64
}

func (s *busSub) Unsubscribe() {
	if m, ok := s.bus.listeners[s.kind]; ok {
		delete(m, s.id)
	}
}

// Package sse implements a Server-Sent Events broker that tells open pages
// when the portfolio content changed.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// Event types.
const (
	TypeContentChanged = "content.changed"
	TypePageReload     = "page.reload"
)

const (
	defaultReloadThrottle = time.Second
	defaultHeartbeat      = 30 * time.Second
	clientBuffer          = 64
	retryMillis           = 3000
)

// Event is a named SSE event with a JSON payload.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Option configures a Broker.
type Option func(*Broker)

// WithReloadThrottle sets the minimum interval between page.reload events.
func WithReloadThrottle(d time.Duration) Option {
	return func(b *Broker) {
		if d > 0 {
			b.reloadMin = d
		}
	}
}

// WithVersion sets the content version pages are expected to carry. Clients
// that subscribe with another version get a page.reload right away.
func WithVersion(v string) Option {
	return func(b *Broker) { b.version = v }
}

// WithHeartbeat sets the interval of keep-alive comments on open streams.
func WithHeartbeat(d time.Duration) Option {
	return func(b *Broker) {
		if d > 0 {
			b.heartbeat = d
		}
	}
}

// hub is the state owned by the broker's event loop.
type hub struct {
	clients    map[chan []byte]struct{}
	version    string
	lastReload time.Time
	// trailing fires a deferred page.reload for changes that landed inside
	// the throttle window. Nil when none is pending.
	trailing *time.Timer
}

func (h *hub) reload(now time.Time) {
	h.lastReload = now
	h.send(reloadFrame(h.version))
}

func (h *hub) send(msg []byte) {
	for ch := range h.clients {
		select {
		case ch <- msg:
		default:
			// Slow client; drop rather than stall the loop.
		}
	}
}

// Broker fans content events out to connected pages.
//
// All mutable state lives in a hub owned by one goroutine; every public
// method hands that goroutine a closure over the ops channel.
type Broker struct {
	reloadMin time.Duration
	heartbeat time.Duration
	version   string

	ops     chan func(*hub)
	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker starts a broker. Without options page.reload is throttled to
// one per second.
func NewBroker(opts ...Option) *Broker {
	b := &Broker{
		reloadMin: defaultReloadThrottle,
		heartbeat: defaultHeartbeat,
		ops:       make(chan func(*hub)),
		stopCh:    make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	go b.run()
	return b
}

func (b *Broker) run() {
	defer close(b.stopped)

	h := &hub{
		clients: make(map[chan []byte]struct{}),
		version: b.version,
	}
	for {
		select {
		case <-b.stopCh:
			if h.trailing != nil {
				h.trailing.Stop()
			}
			for ch := range h.clients {
				close(ch)
			}
			return
		case op := <-b.ops:
			op(h)
		}
	}
}

// do runs op on the event loop and waits for it. It reports false once the
// broker is closed. ops is unbuffered, so an accepted op always runs before
// the loop stops.
func (b *Broker) do(op func(*hub)) bool {
	if b.closed.Load() {
		return false
	}
	done := make(chan struct{})
	select {
	case b.ops <- func(h *hub) { op(h); close(done) }:
		<-done
		return true
	case <-b.stopped:
		return false
	}
}

// Close stops the loop and closes every client channel. Safe to call twice.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe registers a client that rendered its page from version. The
// returned channel is closed on Unsubscribe or Close.
func (b *Broker) Subscribe(version string) chan []byte {
	ch := make(chan []byte, clientBuffer)
	ok := b.do(func(h *hub) {
		h.clients[ch] = struct{}{}
		if version != "" && h.version != "" && version != h.version {
			ch <- reloadFrame(h.version)
		}
	})
	if !ok {
		close(ch)
	}
	return ch
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	b.do(func(h *hub) {
		if _, ok := h.clients[ch]; ok {
			delete(h.clients, ch)
			close(ch)
		}
	})
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	var n int
	b.do(func(h *hub) { n = len(h.clients) })
	return n
}

// Version returns the latest content version the broker has seen.
func (b *Broker) Version() string {
	var v string
	b.do(func(h *hub) { v = h.version })
	return v
}

// Publish sends event to all connected clients.
func (b *Broker) Publish(event Event) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}
	b.do(func(h *hub) { h.send(msg) })
	return nil
}

// PublishContentEvent records version as current, sends content.changed and
// a throttled page.reload. A change inside the throttle window schedules one
// page.reload for the end of the window carrying the latest version.
func (b *Broker) PublishContentEvent(path, version string) {
	changed := frame(TypeContentChanged, map[string]string{"path": path, "version": version})
	b.do(func(h *hub) {
		h.version = version
		h.send(changed)

		now := time.Now()
		wait := b.reloadMin - now.Sub(h.lastReload)
		switch {
		case wait <= 0 && h.trailing == nil:
			h.reload(now)
		case h.trailing == nil:
			h.trailing = time.AfterFunc(wait, b.flushReload)
		}
	})
}

// flushReload runs when the throttle window of a pending reload ends.
func (b *Broker) flushReload() {
	b.do(func(h *hub) {
		h.trailing = nil
		h.reload(time.Now())
	})
}

// ServeHTTP streams events to one page (GET /api/events?version=...).
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := b.Subscribe(r.URL.Query().Get("version"))
	defer b.Unsubscribe(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "retry: %d\n\n", retryMillis)
	flusher.Flush()

	ping := time.NewTicker(b.heartbeat)
	defer ping.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}

func encode(e Event) ([]byte, error) {
	payload, err := json.Marshal(e.Data)
	if err != nil {
		return nil, fmt.Errorf("sse: encode %s: %w", e.Type, err)
	}
	return fmt.Appendf(nil, "event: %s\ndata: %s\n\n", e.Type, payload), nil
}

// frame encodes string maps, which always marshal.
func frame(typ string, data map[string]string) []byte {
	msg, _ := encode(Event{Type: typ, Data: data})
	return msg
}

func reloadFrame(version string) []byte {
	return frame(TypePageReload, map[string]string{"version": version})
}

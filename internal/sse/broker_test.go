package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// drain collects every message already queued on ch.
func drain(ch chan []byte) []string {
	var out []string
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, string(msg))
		default:
			return out
		}
	}
}

func countType(msgs []string, typ string) int {
	n := 0
	for _, m := range msgs {
		if strings.HasPrefix(m, "event: "+typ+"\n") {
			n++
		}
	}
	return n
}

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe("")
	if n := b.ClientCount(); n != 1 {
		t.Fatalf("clients = %d, want 1", n)
	}
	b.Unsubscribe(ch)
	if n := b.ClientCount(); n != 0 {
		t.Fatalf("clients after unsubscribe = %d, want 0", n)
	}
	if _, ok := <-ch; ok {
		t.Error("unsubscribed channel should be closed")
	}
}

func TestPublish(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe("")
	defer b.Unsubscribe(ch)

	if err := b.Publish(Event{Type: TypeContentChanged, Data: map[string]string{"path": "site.yaml"}}); err != nil {
		t.Fatal(err)
	}
	msgs := drain(ch)
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if want := "event: content.changed\ndata: {\"path\":\"site.yaml\"}\n\n"; msgs[0] != want {
		t.Errorf("frame = %q, want %q", msgs[0], want)
	}

	if err := b.Publish(Event{Type: "bad", Data: make(chan int)}); err == nil {
		t.Error("expected encode error")
	}
}

func TestContentEventThrottlesReload(t *testing.T) {
	b := NewBroker(WithReloadThrottle(time.Hour))
	defer b.Close()
	ch := b.Subscribe("")
	defer b.Unsubscribe(ch)

	b.PublishContentEvent("projects/a.md", "v1")
	b.PublishContentEvent("site.yaml", "v2")

	msgs := drain(ch)
	if n := countType(msgs, TypeContentChanged); n != 2 {
		t.Errorf("content.changed = %d, want 2", n)
	}
	if n := countType(msgs, TypePageReload); n != 1 {
		t.Errorf("page.reload = %d, want 1", n)
	}
	if v := b.Version(); v != "v2" {
		t.Errorf("version = %q, want v2", v)
	}
}

func TestContentEventAfterThrottleWindow(t *testing.T) {
	b := NewBroker(WithReloadThrottle(20 * time.Millisecond))
	defer b.Close()
	ch := b.Subscribe("")
	defer b.Unsubscribe(ch)

	b.PublishContentEvent("site.yaml", "v1")
	time.Sleep(40 * time.Millisecond)
	b.PublishContentEvent("site.yaml", "v2")

	if n := countType(drain(ch), TypePageReload); n != 2 {
		t.Errorf("page.reload = %d, want 2", n)
	}
}

func TestContentEventInsideWindowReloadsLater(t *testing.T) {
	b := NewBroker(WithReloadThrottle(50 * time.Millisecond))
	defer b.Close()

	b.PublishContentEvent("site.yaml", "v1")

	// A page that reloaded to v1 subscribes, then v2 lands inside the window.
	ch := b.Subscribe("v1")
	defer b.Unsubscribe(ch)
	b.PublishContentEvent("projects/a.md", "v2")
	b.PublishContentEvent("projects/b.md", "v3")

	if n := countType(drain(ch), TypePageReload); n != 0 {
		t.Fatalf("page.reload inside window = %d, want 0", n)
	}

	var msgs []string
	deadline := time.Now().Add(time.Second)
	for countType(msgs, TypePageReload) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		msgs = append(msgs, drain(ch)...)
	}
	var reloads []string
	for _, m := range msgs {
		if strings.HasPrefix(m, "event: page.reload\n") {
			reloads = append(reloads, m)
		}
	}
	if len(reloads) != 1 {
		t.Fatalf("deferred page.reload = %d, want 1 (%q)", len(reloads), msgs)
	}
	if !strings.Contains(reloads[0], `"version":"v3"`) {
		t.Errorf("deferred reload = %q, want latest version v3", reloads[0])
	}

	// The next window starts from the deferred reload.
	time.Sleep(20 * time.Millisecond)
	if n := countType(drain(ch), TypePageReload); n != 0 {
		t.Errorf("extra page.reload = %d", n)
	}
}

func TestSubscribeStaleVersion(t *testing.T) {
	b := NewBroker(WithVersion("v2"))
	defer b.Close()

	current := b.Subscribe("v2")
	defer b.Unsubscribe(current)
	if msgs := drain(current); len(msgs) != 0 {
		t.Errorf("current page got %q", msgs)
	}

	stale := b.Subscribe("v1")
	defer b.Unsubscribe(stale)
	msgs := drain(stale)
	if len(msgs) != 1 || !strings.Contains(msgs[0], `"version":"v2"`) || countType(msgs, TypePageReload) != 1 {
		t.Errorf("stale page got %q, want one page.reload for v2", msgs)
	}

	unknown := b.Subscribe("")
	defer b.Unsubscribe(unknown)
	if msgs := drain(unknown); len(msgs) != 0 {
		t.Errorf("versionless client got %q", msgs)
	}
}

func TestSlowClientDoesNotBlock(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe("")
	defer b.Unsubscribe(ch)

	for range clientBuffer + 10 {
		if err := b.Publish(Event{Type: "tick", Data: map[string]string{}}); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(drain(ch)); n != clientBuffer {
		t.Errorf("buffered = %d, want %d", n, clientBuffer)
	}
}

func TestServeHTTP(t *testing.T) {
	b := NewBroker(WithVersion("v1"), WithHeartbeat(10*time.Millisecond))
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/events?version=v1", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for b.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("handler never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	b.PublishContentEvent("projects/a.md", "v2")
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content-type = %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{"retry: 3000\n\n", ": ping\n\n", "event: content.changed", "event: page.reload"} {
		if !strings.Contains(body, want) {
			t.Errorf("stream missing %q: %q", want, body)
		}
	}
	if n := b.ClientCount(); n != 0 {
		t.Errorf("clients after disconnect = %d, want 0", n)
	}
}

func TestServeHTTPEndsOnClose(t *testing.T) {
	b := NewBroker()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	w := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for b.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("handler never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}
	b.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream still open after Close")
	}
}

func TestClose(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("")

	b.Close()
	b.Close()

	if _, ok := <-ch; ok {
		t.Fatal("subscriber channel should be closed")
	}
	if n := b.ClientCount(); n != 0 {
		t.Errorf("clients after close = %d", n)
	}
	if v := b.Version(); v != "" {
		t.Errorf("version after close = %q", v)
	}
	if _, ok := <-b.Subscribe("v1"); ok {
		t.Error("subscribe after close should return a closed channel")
	}

	// No-ops once closed.
	_ = b.Publish(Event{Type: TypePageReload, Data: map[string]string{}})
	b.PublishContentEvent("site.yaml", "v4")
	b.Unsubscribe(ch)
}

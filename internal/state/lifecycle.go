package state

import "fmt"

// Mount subscribes h to the scroll and pointer streams of src. Both
// subscriptions are acquired together: if either fails, whatever was acquired
// is released before the error is returned. The returned release func drops
// both and may be called more than once.
func Mount(h *Holder, src Source) (func(), error) {
	var subs []Subscription
	release := func() {
		for _, s := range subs {
			s.Unsubscribe()
		}
		subs = nil
	}

	scroll, err := src.Subscribe(KindScroll, func(ev Event) {
		h.Scroll(ev.ScrollY)
	})
	if err != nil {
		release()
		return nil, fmt.Errorf("state: subscribe scroll: %w", err)
	}
	subs = append(subs, scroll)

	pointer, err := src.Subscribe(KindPointerMove, func(ev Event) {
		h.MovePointer(ev.Pointer)
	})
	if err != nil {
		release()
		return nil, fmt.Errorf("state: subscribe pointer: %w", err)
	}
	subs = append(subs, pointer)

	return release, nil
}

// Package notify carries the chat-refresh signal between the transcript
// and the sidebar. The transcript publishes after a successful send;
// whoever is interested subscribes. Publishing with no subscribers is a
// silent no-op, so the signal stays fire-and-forget.
package notify

import "sync"

type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewHub() *Hub {
	return &Hub{subs: map[int]func(){}}
}

// Subscribe registers fn and returns a cancel func. Callers are expected
// to cancel on teardown, mirroring listener deregistration on unmount.
func (h *Hub) Subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *Hub) Publish() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

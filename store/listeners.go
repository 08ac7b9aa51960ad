package store

import (
	"sync"
)

// listenerHub fans out change notifications to subscribed UI consumers.
// Callbacks run synchronously after the mutation, outside the store lock,
// so a subscriber can read the store it was notified about.
type listenerHub struct {
	mu        sync.Mutex
	nextToken int
	listeners map[int]func()
}

// Subscribe registers fn to run after every mutation and returns the
// matching unsubscribe func.
func (h *listenerHub) Subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners == nil {
		h.listeners = map[int]func(){}
	}
	token := h.nextToken
	h.nextToken++
	h.listeners[token] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, token)
	}
}

func (h *listenerHub) notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

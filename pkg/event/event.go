// Package event is a small in-process publish/subscribe bus. Stores fire
// snapshots on it and the push transports listen.
//
//	unlisten := bus.Listen("cart.updated", func(p any) { ... })
//	defer unlisten()
//	bus.Fire("cart.updated", items)
package event

import (
	"sync"
)

// Handler receives an event payload.
type Handler func(payload interface{})

type listener struct {
	id uint64
	h  Handler
}

// Bus dispatches named events to registered listeners.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]listener
}

func NewBus() *Bus {
	return &Bus{handlers: map[string][]listener{}}
}

// Listen registers handler for event and returns a func that removes it.
func (b *Bus) Listen(event string, handler Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[event] = append(b.handlers[event], listener{id: id, h: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(event, id) })
	}
}

func (b *Bus) remove(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := b.handlers[event]
	for i, l := range ls {
		if l.id == id {
			b.handlers[event] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(b.handlers[event]) == 0 {
		delete(b.handlers, event)
	}
}

func (b *Bus) snapshot(event string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	hs := make([]Handler, len(b.handlers[event]))
	for i, l := range b.handlers[event] {
		hs[i] = l.h
	}
	return hs
}

// Fire calls every listener of event synchronously, in registration order.
func (b *Bus) Fire(event string, payload interface{}) {
	for _, h := range b.snapshot(event) {
		h(payload)
	}
}

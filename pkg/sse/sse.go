// Package sse writes Server-Sent Events.
//
//	stream, err := sse.New(w, r)
//	if err != nil { ... }
//	stream.Send("cart.updated", items)
//	<-stream.Done()
package sse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrUnsupported is returned when the ResponseWriter cannot flush.
var ErrUnsupported = errors.New("sse: streaming unsupported")

// Stream is one open event stream. Send and Comment are safe for
// concurrent use.
type Stream struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	ctx     context.Context
	flusher http.Flusher
	nextID  uint64
}

// New sets the event-stream headers and flushes them.
func New(w http.ResponseWriter, r *http.Request) (*Stream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrUnsupported
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // nginx
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Stream{w: w, ctx: r.Context(), flusher: flusher}, nil
}

// Send writes a named event with a JSON payload and an increasing id.
func (s *Stream) Send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("sse: marshal %s: %w", event, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed() {
		return s.ctx.Err()
	}
	s.nextID++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.nextID, event, payload); err != nil {
		return fmt.Errorf("sse: write %s: %w", event, err)
	}
	s.flusher.Flush()
	return nil
}

// Comment writes a comment line, used as a keepalive.
func (s *Stream) Comment(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed() {
		return s.ctx.Err()
	}
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", msg); err != nil {
		return fmt.Errorf("sse: write comment: %w", err)
	}
	s.flusher.Flush()
	return nil
}

// Done is closed when the client disconnects.
func (s *Stream) Done() <-chan struct{} { return s.ctx.Done() }

func (s *Stream) closed() bool {
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

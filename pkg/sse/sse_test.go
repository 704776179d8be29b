package sse_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/pkg/sse"
)

func TestStreamWritesEvents(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events", nil)

	s, err := sse.New(rec, req)
	require.NoError(t, err)

	require.NoError(t, s.Send("cart.updated", []int{1, 2}))
	require.NoError(t, s.Comment("ping"))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "id: 1\nevent: cart.updated\ndata: [1,2]\n\n: ping\n\n", rec.Body.String())
}

func TestStreamStopsAfterDisconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events", nil).WithContext(ctx)

	s, err := sse.New(rec, req)
	require.NoError(t, err)
	cancel()

	assert.ErrorIs(t, s.Send("x", 1), context.Canceled)
	<-s.Done()
	assert.Empty(t, rec.Body.String())
}

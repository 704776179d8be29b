package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/foodcourt/pkg/event"
)

func TestFireCallsListenersInOrder(t *testing.T) {
	bus := event.NewBus()
	var got []string
	bus.Listen("cart.updated", func(p any) { got = append(got, "a:"+p.(string)) })
	bus.Listen("cart.updated", func(p any) { got = append(got, "b:"+p.(string)) })
	bus.Listen("session.changed", func(any) { got = append(got, "other") })

	bus.Fire("cart.updated", "x")

	assert.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestUnlistenRemovesOnlyThatListener(t *testing.T) {
	bus := event.NewBus()
	calls := 0
	stop := bus.Listen("e", func(any) { calls += 10 })
	bus.Listen("e", func(any) { calls++ })

	stop()
	stop()
	bus.Fire("e", nil)

	assert.Equal(t, 1, calls)
}

func TestUnlistenLastListenerThenListenAgain(t *testing.T) {
	bus := event.NewBus()
	stop := bus.Listen("e", func(any) { t.Error("removed listener called") })
	stop()

	calls := 0
	bus.Listen("e", func(any) { calls++ })
	bus.Fire("e", nil)
	assert.Equal(t, 1, calls)
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/kv"
)

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	rs, fs := fixtures()
	bus := event.NewBus()

	session, err := services.NewSessionService(ctx, kv.NewMemory(), slotKey, bus)
	require.NoError(t, err)
	cart := services.NewCartService(bus)
	checkout := services.NewCheckoutService(session, cart, bus)

	var placed []models.Order
	bus.Listen(services.EventOrderPlaced, func(p any) { placed = append(placed, p.(models.Order)) })

	t.Run("requires login", func(t *testing.T) {
		cart.AddToCart(fs[1], rs[1], 1)
		_, err := checkout.PlaceOrder(ctx)
		assert.ErrorIs(t, err, services.ErrLoginRequired)
		assert.Len(t, cart.Items(), 1, "cart is kept when checkout is refused")
		cart.ClearCart()
	})

	_, err = session.Login(ctx, "john@example.com", "pw")
	require.NoError(t, err)

	t.Run("requires items", func(t *testing.T) {
		_, err := checkout.PlaceOrder(ctx)
		assert.ErrorIs(t, err, services.ErrEmptyCart)
	})

	t.Run("places a pending order and clears the cart", func(t *testing.T) {
		cart.AddToCart(fs[1], rs[1], 2) // 25.98
		cart.AddToCart(fs[5], rs[3], 1) // 8.99

		order, err := checkout.PlaceOrder(ctx)
		require.NoError(t, err)

		assert.Equal(t, models.OrderPending, order.Status)
		assert.Len(t, order.Items, 2)
		assert.InDelta(t, 25.98+8.99+3.99, order.TotalAmount, 1e-9)
		assert.Equal(t, "123 Main St, City, State 12345", order.DeliveryAddress)
		assert.False(t, order.OrderDate.IsZero())
		assert.Empty(t, cart.Items())

		require.Len(t, placed, 1)
		assert.Equal(t, order.ID, placed[0].ID)
	})
}

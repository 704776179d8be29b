package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
)

// CheckoutService turns the cart into an Order receipt. Nothing is charged
// and the order is not stored.
type CheckoutService struct {
	session *SessionService
	cart    *CartService
	bus     *event.Bus
	now     func() time.Time
}

func NewCheckoutService(session *SessionService, cart *CartService, bus *event.Bus) *CheckoutService {
	return &CheckoutService{session: session, cart: cart, bus: bus, now: time.Now}
}

// PlaceOrder needs a signed-in user and a non-empty cart. It empties the
// cart, fires EventOrderPlaced and returns a pending order delivered to the
// user's address. An empty cart is refused with ErrEmptyCart rather than
// accepted as an empty order.
func (s *CheckoutService) PlaceOrder(ctx context.Context) (models.Order, error) {
	user, ok := s.session.CurrentUser()
	if !ok {
		return models.Order{}, ErrLoginRequired
	}

	items := s.cart.TakeAll()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	now := s.now()
	order := models.Order{
		ID:              now.UnixMilli(),
		Items:           items,
		TotalAmount:     Subtotal(items) + DeliveryFee(items),
		Status:          models.OrderPending,
		OrderDate:       now.UTC(),
		DeliveryAddress: user.Address,
	}

	metrics.RecordOrder(order.TotalAmount)
	logger.WithCtx(ctx).Info("order placed",
		"order_id", order.ID,
		"user_id", user.ID,
		"items", ItemCount(items),
		"total", order.TotalAmount,
	)
	s.bus.Fire(EventOrderPlaced, order)
	return order, nil
}

package services

import (
	"sync"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/collection"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
)

// CartService holds the cart entries in insertion order. Every mutation
// publishes a copy of the full list on EventCartUpdated. The cart is not
// persisted.
type CartService struct {
	pubMu sync.Mutex
	mu    sync.RWMutex
	items []models.CartItem
	bus   *event.Bus
}

// MaxQuantity caps a single cart entry. Adds and updates beyond it
// saturate.
const MaxQuantity = 99

func NewCartService(bus *event.Bus) *CartService {
	return &CartService{bus: bus}
}

// AddToCart merges into an existing entry for the same food item or appends
// a new one. qty <= 0 adds one; the merged quantity never exceeds
// MaxQuantity.
func (s *CartService) AddToCart(item models.FoodItem, restaurant models.Restaurant, qty int) []models.CartItem {
	if qty <= 0 {
		qty = 1
	}
	qty = min(qty, MaxQuantity)
	return s.mutate("add", func(items []models.CartItem) ([]models.CartItem, bool) {
		for i := range items {
			if items[i].FoodItem.ID == item.ID {
				merged := min(items[i].Quantity+qty, MaxQuantity)
				if merged == items[i].Quantity {
					return items, false
				}
				items[i].Quantity = merged
				return items, true
			}
		}
		return append(items, models.CartItem{FoodItem: item, Quantity: qty, Restaurant: restaurant}), true
	})
}

// UpdateQuantity sets an entry's quantity exactly, capped at MaxQuantity;
// qty <= 0 removes it. An absent ID changes nothing and publishes nothing.
func (s *CartService) UpdateQuantity(foodItemID, qty int) []models.CartItem {
	if qty <= 0 {
		return s.RemoveFromCart(foodItemID)
	}
	qty = min(qty, MaxQuantity)
	return s.mutate("update", func(items []models.CartItem) ([]models.CartItem, bool) {
		for i := range items {
			if items[i].FoodItem.ID == foodItemID {
				items[i].Quantity = qty
				return items, true
			}
		}
		return items, false
	})
}

// RemoveFromCart drops the entry for foodItemID, if any.
func (s *CartService) RemoveFromCart(foodItemID int) []models.CartItem {
	return s.mutate("remove", func(items []models.CartItem) ([]models.CartItem, bool) {
		kept := collection.Filter(items, func(c models.CartItem) bool { return c.FoodItem.ID != foodItemID })
		return kept, len(kept) != len(items)
	})
}

// ClearCart empties the cart. It publishes even when already empty.
func (s *CartService) ClearCart() []models.CartItem {
	return s.mutate("clear", func([]models.CartItem) ([]models.CartItem, bool) {
		return nil, true
	})
}

// TakeAll empties the cart and returns what it held, atomically, so no
// concurrent add slips between reading and clearing. An empty cart is left
// alone and nothing is published.
func (s *CartService) TakeAll() []models.CartItem {
	taken := []models.CartItem{}
	s.mutate("checkout", func(items []models.CartItem) ([]models.CartItem, bool) {
		if len(items) == 0 {
			return items, false
		}
		taken = items
		return nil, true
	})
	return taken
}

// Items returns a copy of the entries.
func (s *CartService) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]models.CartItem, 0, len(s.items)), s.items...)
}

func (s *CartService) TotalAmount() float64 { return Subtotal(s.Items()) }

func (s *CartService) TotalItems() int { return ItemCount(s.Items()) }

func (s *CartService) DeliveryFee() float64 { return DeliveryFee(s.Items()) }

// Subscribe calls fn with the current entries and then after every change
// until the returned func is called. fn must not mutate the cart.
func (s *CartService) Subscribe(fn func([]models.CartItem)) func() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	unlisten := s.bus.Listen(EventCartUpdated, func(p any) {
		items, _ := p.([]models.CartItem)
		fn(items)
	})
	fn(s.Items())
	return unlisten
}

// mutate applies fn to a private copy of the entries. When fn reports a
// change the copy is installed and published.
func (s *CartService) mutate(op string, fn func([]models.CartItem) ([]models.CartItem, bool)) []models.CartItem {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	next, changed := fn(append([]models.CartItem(nil), s.items...))
	if changed {
		s.items = next
	}
	s.mu.Unlock()

	snapshot := s.Items()
	if changed {
		metrics.CartMutations.WithLabelValues(op).Inc()
		s.bus.Fire(EventCartUpdated, snapshot)
	}
	return snapshot
}

// ── Derived totals ───────────────────────────────────────────────────────────

// Subtotal is Σ price × quantity.
func Subtotal(items []models.CartItem) float64 {
	return collection.Sum(items, models.CartItem.LineTotal)
}

// ItemCount is Σ quantity.
func ItemCount(items []models.CartItem) int {
	return collection.Reduce(items, 0, func(n int, c models.CartItem) int { return n + c.Quantity })
}

// DeliveryFee is the highest fee among the distinct restaurants in the
// cart, keyed by restaurant ID, and 0 for an empty cart.
func DeliveryFee(items []models.CartItem) float64 {
	restaurants := collection.Map(
		collection.UniqueBy(items, func(c models.CartItem) int { return c.Restaurant.ID }),
		func(c models.CartItem) models.Restaurant { return c.Restaurant },
	)
	return collection.Max(restaurants, func(r models.Restaurant) float64 { return r.DeliveryFee })
}

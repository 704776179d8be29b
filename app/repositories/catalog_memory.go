package repositories

import (
	"context"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/pkg/collection"
)

// MemoryCatalog serves fixed slices. It never mutates them, so no lock is
// needed; callers get copies.
type MemoryCatalog struct {
	restaurants []models.Restaurant
	items       []models.FoodItem
}

func NewMemoryCatalog(restaurants []models.Restaurant, items []models.FoodItem) *MemoryCatalog {
	return &MemoryCatalog{
		restaurants: append([]models.Restaurant(nil), restaurants...),
		items:       append([]models.FoodItem(nil), items...),
	}
}

func (m *MemoryCatalog) Restaurants(context.Context) ([]models.Restaurant, error) {
	return append(make([]models.Restaurant, 0, len(m.restaurants)), m.restaurants...), nil
}

func (m *MemoryCatalog) RestaurantByID(_ context.Context, id int) (models.Restaurant, bool, error) {
	r, ok := collection.First(m.restaurants, func(r models.Restaurant) bool { return r.ID == id })
	return r, ok, nil
}

func (m *MemoryCatalog) ItemsByRestaurant(_ context.Context, restaurantID int) ([]models.FoodItem, error) {
	return collection.Filter(m.items, func(f models.FoodItem) bool { return f.RestaurantID == restaurantID }), nil
}

func (m *MemoryCatalog) ItemByID(_ context.Context, id int) (models.FoodItem, bool, error) {
	f, ok := collection.First(m.items, func(f models.FoodItem) bool { return f.ID == id })
	return f, ok, nil
}

func (m *MemoryCatalog) Driver() string { return "memory" }

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/collection"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
)

// CatalogService answers read queries over restaurants and food items.
type CatalogService struct {
	repo repositories.CatalogRepository
}

func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) observe(op string) func() {
	start := time.Now()
	return func() { metrics.ObserveCatalog(s.repo.Driver(), op, start) }
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	defer s.observe("restaurants")()
	return s.repo.Restaurants(ctx)
}

func (s *CatalogService) RestaurantByID(ctx context.Context, id int) (models.Restaurant, bool, error) {
	defer s.observe("restaurant_by_id")()
	return s.repo.RestaurantByID(ctx, id)
}

func (s *CatalogService) ItemsByRestaurant(ctx context.Context, restaurantID int) ([]models.FoodItem, error) {
	defer s.observe("items_by_restaurant")()
	return s.repo.ItemsByRestaurant(ctx, restaurantID)
}

func (s *CatalogService) ItemByID(ctx context.Context, id int) (models.FoodItem, bool, error) {
	defer s.observe("item_by_id")()
	return s.repo.ItemByID(ctx, id)
}

// Search matches restaurants whose name or category contains query,
// case-insensitively. An empty query matches everything.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Restaurant, error) {
	all, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	return collection.Filter(all, func(r models.Restaurant) bool {
		return strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Category), q)
	}), nil
}

// Categories returns the distinct restaurant categories in first-seen order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctCategories(all), nil
}

// DistinctCategories keeps the first occurrence of each category.
func DistinctCategories(rs []models.Restaurant) []string {
	unique := collection.UniqueBy(rs, func(r models.Restaurant) string { return r.Category })
	return collection.Map(unique, func(r models.Restaurant) string { return r.Category })
}

// CartLine resolves a food item and its owning restaurant for the cart.
// A missing item or restaurant yields ErrUnknownItem.
func (s *CatalogService) CartLine(ctx context.Context, itemID int) (models.FoodItem, models.Restaurant, error) {
	item, ok, err := s.ItemByID(ctx, itemID)
	if err != nil {
		return models.FoodItem{}, models.Restaurant{}, err
	}
	if !ok {
		return models.FoodItem{}, models.Restaurant{}, fmt.Errorf("%w: %d", ErrUnknownItem, itemID)
	}

	restaurant, ok, err := s.RestaurantByID(ctx, item.RestaurantID)
	if err != nil {
		return models.FoodItem{}, models.Restaurant{}, err
	}
	if !ok {
		return models.FoodItem{}, models.Restaurant{}, fmt.Errorf("%w: %d has no restaurant", ErrUnknownItem, itemID)
	}
	return item, restaurant, nil
}

// Snapshot is the whole catalog as one document.
type Snapshot struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	FoodItems   []models.FoodItem   `json:"foodItems"`
}

// Snapshot collects every restaurant and, per restaurant, its items.
func (s *CatalogService) Snapshot(ctx context.Context) (Snapshot, error) {
	rs, err := s.Restaurants(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{Restaurants: rs, FoodItems: []models.FoodItem{}}
	for _, r := range rs {
		items, err := s.ItemsByRestaurant(ctx, r.ID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("services: catalog: items of %d: %w", r.ID, err)
		}
		snap.FoodItems = append(snap.FoodItems, items...)
	}
	return snap, nil
}

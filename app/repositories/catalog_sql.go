package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/app/models"
)

// SQLCatalog reads the migrated and seeded catalog tables. It never writes.
type SQLCatalog struct {
	db *gorm.DB
}

func NewSQLCatalog(db *gorm.DB) *SQLCatalog {
	return &SQLCatalog{db: db}
}

func (s *SQLCatalog) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	out := []models.Restaurant{}
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("repositories: restaurants: %w", err)
	}
	return out, nil
}

func (s *SQLCatalog) RestaurantByID(ctx context.Context, id int) (models.Restaurant, bool, error) {
	var r models.Restaurant
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, false, nil
	}
	if err != nil {
		return models.Restaurant{}, false, fmt.Errorf("repositories: restaurant %d: %w", id, err)
	}
	return r, true, nil
}

func (s *SQLCatalog) ItemsByRestaurant(ctx context.Context, restaurantID int) ([]models.FoodItem, error) {
	out := []models.FoodItem{}
	err := s.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: items of restaurant %d: %w", restaurantID, err)
	}
	return out, nil
}

func (s *SQLCatalog) ItemByID(ctx context.Context, id int) (models.FoodItem, bool, error) {
	var f models.FoodItem
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FoodItem{}, false, nil
	}
	if err != nil {
		return models.FoodItem{}, false, fmt.Errorf("repositories: food item %d: %w", id, err)
	}
	return f, true, nil
}

func (s *SQLCatalog) Driver() string { return "sql" }

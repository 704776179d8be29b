package seeders

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/foodcourt/app/repositories"
)

// SeedRestaurants upserts the built-in restaurants, so seeding twice is safe.
func SeedRestaurants(ctx context.Context, db *gorm.DB) error {
	rows := repositories.SeedRestaurants()
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

// SeedFoodItems upserts the built-in menu items. Restaurants must be seeded
// first.
func SeedFoodItems(ctx context.Context, db *gorm.DB) error {
	rows := repositories.SeedFoodItems()
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/app/models"
)

// -------- 0001: restaurants --------

type CreateRestaurantsTable struct{}

func (CreateRestaurantsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Restaurant{})
}

func (CreateRestaurantsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Restaurant{})
}

// -------- 0002: food_items --------

type CreateFoodItemsTable struct{}

func (CreateFoodItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.FoodItem{})
}

func (CreateFoodItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.FoodItem{})
}

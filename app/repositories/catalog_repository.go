package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/app/models"
)

// CatalogRepository reads restaurants and food items. Absent IDs are
// reported with found=false, never as an error.
type CatalogRepository interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
	RestaurantByID(ctx context.Context, id int) (models.Restaurant, bool, error)
	ItemsByRestaurant(ctx context.Context, restaurantID int) ([]models.FoodItem, error)
	ItemByID(ctx context.Context, id int) (models.FoodItem, bool, error)
	Driver() string
}

// NewCatalogRepository picks the driver named by CATALOG_DRIVER. db is only
// used by the "sql" driver.
func NewCatalogRepository(driver string, db *gorm.DB) (CatalogRepository, error) {
	switch driver {
	case "memory":
		return NewMemoryCatalog(SeedRestaurants(), SeedFoodItems()), nil
	case "sql":
		if db == nil {
			return nil, fmt.Errorf("repositories: sql catalog needs a database")
		}
		return NewSQLCatalog(db), nil
	default:
		return nil, fmt.Errorf("repositories: unknown catalog driver %q", driver)
	}
}

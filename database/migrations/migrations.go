// Package migrations holds the schema of the SQL catalog mirror.
package migrations

import "github.com/shashiranjanraj/foodcourt/pkg/migration"

// Registry returns every migration in chronological order.
func Registry() *migration.Registry {
	reg := migration.NewRegistry()
	reg.Add("20260101000000_create_restaurants_table", CreateRestaurantsTable{})
	reg.Add("20260101000001_create_food_items_table", CreateFoodItemsTable{})
	return reg
}

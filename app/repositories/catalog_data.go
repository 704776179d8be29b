package repositories

import "github.com/shashiranjanraj/foodcourt/app/models"

// SeedRestaurants returns a fresh copy of the built-in restaurants. The
// memory driver serves them and the catalog seeder writes them to SQL.
func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:           1,
			Name:         "Pizza Palace",
			Description:  "Authentic Italian pizzas with fresh ingredients",
			Image:        "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=300&h=200&fit=crop",
			Rating:       4.5,
			DeliveryTime: "25-35 min",
			DeliveryFee:  2.99,
			Category:     "Italian",
		},
		{
			ID:           2,
			Name:         "Burger Barn",
			Description:  "Juicy burgers and crispy fries",
			Image:        "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=300&h=200&fit=crop",
			Rating:       4.2,
			DeliveryTime: "20-30 min",
			DeliveryFee:  1.99,
			Category:     "American",
		},
		{
			ID:           3,
			Name:         "Sushi Zen",
			Description:  "Fresh sushi and Japanese cuisine",
			Image:        "https://images.unsplash.com/photo-1553621042-f6e147245754?w=300&h=200&fit=crop",
			Rating:       4.7,
			DeliveryTime: "30-40 min",
			DeliveryFee:  3.99,
			Category:     "Japanese",
		},
		{
			ID:           4,
			Name:         "Curry House",
			Description:  "Spicy Indian curries and naan bread",
			Image:        "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=300&h=200&fit=crop",
			Rating:       4.3,
			DeliveryTime: "25-35 min",
			DeliveryFee:  2.49,
			Category:     "Indian",
		},
	}
}

// SeedFoodItems returns a fresh copy of the built-in menu items.
func SeedFoodItems() []models.FoodItem {
	return []models.FoodItem{
		// Pizza Palace
		{ID: 1, Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and basil", Price: 12.99, Image: "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?w=300&h=200&fit=crop", Category: "Pizza", RestaurantID: 1, IsVegetarian: true},
		{ID: 2, Name: "Pepperoni Pizza", Description: "Pepperoni with mozzarella cheese and tomato sauce", Price: 14.99, Image: "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=300&h=200&fit=crop", Category: "Pizza", RestaurantID: 1},

		// Burger Barn
		{ID: 3, Name: "Classic Burger", Description: "Beef patty with lettuce, tomato, and special sauce", Price: 9.99, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300&h=200&fit=crop", Category: "Burger", RestaurantID: 2},
		{ID: 4, Name: "Chicken Burger", Description: "Grilled chicken breast with avocado and mayo", Price: 10.99, Image: "https://images.unsplash.com/photo-1606755962773-d324e9a13086?w=300&h=200&fit=crop", Category: "Burger", RestaurantID: 2},

		// Sushi Zen
		{ID: 5, Name: "California Roll", Description: "Crab, avocado, and cucumber roll", Price: 8.99, Image: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=300&h=200&fit=crop", Category: "Sushi", RestaurantID: 3},
		{ID: 6, Name: "Salmon Nigiri", Description: "Fresh salmon over seasoned rice", Price: 6.99, Image: "https://images.unsplash.com/photo-1617196034796-73dfa7b1fd56?w=300&h=200&fit=crop", Category: "Sushi", RestaurantID: 3},

		// Curry House
		{ID: 7, Name: "Chicken Tikka Masala", Description: "Creamy tomato curry with tender chicken", Price: 13.99, Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=300&h=200&fit=crop", Category: "Curry", RestaurantID: 4},
		{ID: 8, Name: "Vegetable Biryani", Description: "Fragrant rice with mixed vegetables and spices", Price: 11.99, Image: "https://images.unsplash.com/photo-1563379091339-03246963d51b?w=300&h=200&fit=crop", Category: "Rice", RestaurantID: 4, IsVegetarian: true},
	}
}

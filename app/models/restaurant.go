package models

// Restaurant is a catalog entry. The catalog is fixed at startup.
type Restaurant struct {
	ID           int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string  `gorm:"size:255;not null;index"        json:"name"`
	Description  string  `gorm:"type:text"                      json:"description"`
	Image        string  `gorm:"size:512"                       json:"image"`
	Rating       float64 `gorm:"not null;default:0"             json:"rating"`
	DeliveryTime string  `gorm:"size:50"                        json:"deliveryTime"`
	DeliveryFee  float64 `gorm:"not null;default:0"             json:"deliveryFee"`
	Category     string  `gorm:"size:100;index"                 json:"category"`
}

func (Restaurant) TableName() string { return "restaurants" }

// FoodItem is a dish on one restaurant's menu.
type FoodItem struct {
	ID           int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string  `gorm:"size:255;not null"              json:"name"`
	Description  string  `gorm:"type:text"                      json:"description"`
	Price        float64 `gorm:"not null;default:0"             json:"price"`
	Image        string  `gorm:"size:512"                       json:"image"`
	Category     string  `gorm:"size:100"                       json:"category"`
	RestaurantID int     `gorm:"not null;index"                 json:"restaurantId"`
	IsVegetarian bool    `gorm:"not null;default:false"         json:"isVegetarian"`
}

func (FoodItem) TableName() string { return "food_items" }

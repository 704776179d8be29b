package models

// CartItem is a value snapshot of a dish, its restaurant and a quantity.
// A cart holds at most one entry per food-item ID.
type CartItem struct {
	FoodItem   FoodItem   `json:"foodItem"`
	Quantity   int        `json:"quantity"`
	Restaurant Restaurant `json:"restaurant"`
}

// LineTotal is price × quantity.
func (c CartItem) LineTotal() float64 {
	return c.FoodItem.Price * float64(c.Quantity)
}

package views

// MissingFieldsMessage is shown when an auth form is submitted incomplete.
const MissingFieldsMessage = "Please fill in all fields"

// LoginInput is the login form. A whitespace-only field counts as missing.
type LoginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
}

// CartLineInput adds a food item to the cart.
type CartLineInput struct {
	FoodItemID int `json:"foodItemId" validate:"required,gt=0"`
	Quantity   int `json:"quantity"   validate:"max=99"`
}

// QuantityInput sets a cart entry's quantity; zero or less removes it.
type QuantityInput struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

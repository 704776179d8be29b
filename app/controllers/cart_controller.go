package controllers

import (
	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/app/views"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
)

type CartController struct {
	catalog *services.CatalogService
	cart    *services.CartService
}

func NewCartController(catalog *services.CatalogService, cart *services.CartService) *CartController {
	return &CartController{catalog: catalog, cart: cart}
}

// summary is what every cart endpoint answers with.
type summary struct {
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"totalItems"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"deliveryFee"`
	Total       float64           `json:"total"`
}

func summarize(items []models.CartItem) summary {
	if items == nil {
		items = []models.CartItem{}
	}
	sub, fee := services.Subtotal(items), services.DeliveryFee(items)
	return summary{
		Items:       items,
		TotalItems:  services.ItemCount(items),
		Subtotal:    sub,
		DeliveryFee: fee,
		Total:       sub + fee,
	}
}

func (cc *CartController) Show(c *ctx.Context) {
	c.Success(summarize(cc.cart.Items()))
}

// Add resolves the food item and its restaurant from the catalog and adds
// it to the cart.
func (cc *CartController) Add(c *ctx.Context) {
	var in views.CartLineInput
	if !c.BindJSON(&in) {
		return
	}

	item, restaurant, err := cc.catalog.CartLine(c.Context(), in.FoodItemID)
	if err != nil {
		fail(c, err)
		return
	}

	items := cc.cart.AddToCart(item, restaurant, in.Quantity)
	c.Log().Info("item added to cart", "food_item_id", item.ID, "quantity", in.Quantity)
	c.Success(summarize(items))
}

func (cc *CartController) Update(c *ctx.Context) {
	id, ok := c.ParamInt("foodItemId")
	if !ok {
		c.NotFound("Food item not found")
		return
	}
	var in views.QuantityInput
	if !c.BindJSON(&in) {
		return
	}
	c.Success(summarize(cc.cart.UpdateQuantity(id, *in.Quantity)))
}

// Remove is a no-op for an item that is not in the cart.
func (cc *CartController) Remove(c *ctx.Context) {
	id, ok := c.ParamInt("foodItemId")
	if !ok {
		c.NotFound("Food item not found")
		return
	}
	c.Success(summarize(cc.cart.RemoveFromCart(id)))
}

func (cc *CartController) Clear(c *ctx.Context) {
	c.Success(summarize(cc.cart.ClearCart()))
}

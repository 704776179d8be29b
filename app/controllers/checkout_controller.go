package controllers

import (
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Place turns the cart into an order and empties it.
func (cc *CheckoutController) Place(c *ctx.Context) {
	order, err := cc.checkout.PlaceOrder(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(order)
}

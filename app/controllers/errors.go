package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
)

// fail maps a service error onto the response envelope.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLoginRequired):
		c.Unauthorized("Please login to place an order")
	case errors.Is(err, services.ErrEmptyCart):
		c.Error(http.StatusUnprocessableEntity, "Your cart is empty")
	case errors.Is(err, services.ErrUnknownItem):
		c.NotFound("Food item not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Error(http.StatusUnprocessableEntity, "Invalid credentials")
	default:
		c.Log().Error("request failed", "error", err)
		c.Error(http.StatusInternalServerError, "Internal server error")
	}
}

package services

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when email or password is empty.
	ErrInvalidCredentials = errors.New("services: email and password are required")

	// ErrLoginRequired is returned by checkout without a signed-in user.
	ErrLoginRequired = errors.New("services: login required")

	// ErrEmptyCart is returned by checkout when there is nothing to order.
	ErrEmptyCart = errors.New("services: cart is empty")

	// ErrUnknownItem is returned when a food item or its restaurant does not exist.
	ErrUnknownItem = errors.New("services: unknown food item")
)

// Event names published on the bus.
const (
	EventSessionChanged = "session.changed"
	EventCartUpdated    = "cart.updated"
	EventOrderPlaced    = "order.placed"
)

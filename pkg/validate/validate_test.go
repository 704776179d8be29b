package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/foodcourt/pkg/validate"
)

type registerInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required,max=80"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Email:    "john@example.com",
		Password: "secret",
		Name:     "John Doe",
		Phone:    "+1234567890",
		Address:  "123 Main St",
	})
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequiredReportsEveryMissingField(t *testing.T) {
	errs := validate.Struct(&registerInput{Email: "john@example.com"})

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "name")
	assert.Equal(t, "The phone field is required.", errs["phone"])
}

func TestRequiredTreatsBlankAsEmpty(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required"`
	}
	errs := validate.Struct(in{Email: "   "})
	assert.Contains(t, errs, "email")
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	assert.Contains(t, validate.Struct(in{Email: "not-an-email"}), "email")
	assert.Empty(t, validate.Struct(in{Email: "valid@example.com"}))
}

func TestFirstFailingRuleWins(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{})
	assert.Equal(t, "The email field is required.", errs["email"])
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int     `json:"quantity" validate:"gte=0,lte=99"`
		Rating   float64 `json:"rating"   validate:"nullable,min=0,max=5"`
	}
	assert.Empty(t, validate.Struct(in{Quantity: 3, Rating: 4.5}))
	assert.Contains(t, validate.Struct(in{Quantity: -1}), "quantity")
	assert.Contains(t, validate.Struct(in{Quantity: 100}), "quantity")
	assert.Contains(t, validate.Struct(in{Rating: 5.1}), "rating")
}

func TestPointerBounds(t *testing.T) {
	type in struct {
		Quantity *int `json:"quantity" validate:"required,max=99"`
	}
	n := func(v int) *int { return &v }

	assert.Empty(t, validate.Struct(in{Quantity: n(0)}))
	assert.Empty(t, validate.Struct(in{Quantity: n(99)}))
	assert.Equal(t, "The quantity must not be greater than 99.", validate.Struct(in{Quantity: n(100)})["quantity"])
	assert.Equal(t, "The quantity field is required.", validate.Struct(in{})["quantity"])
}

func TestStringLength(t *testing.T) {
	type in struct {
		Query string `json:"q" validate:"nullable,min=2,max=5"`
	}
	assert.Empty(t, validate.Struct(in{}))
	assert.Contains(t, validate.Struct(in{Query: "a"}), "q")
	assert.Contains(t, validate.Struct(in{Query: "abcdef"}), "q")
	assert.Empty(t, validate.Struct(in{Query: "café"}))
}

func TestInRule(t *testing.T) {
	type in struct {
		Mode string `json:"mode" validate:"required,in=login|register"`
	}
	assert.Empty(t, validate.Struct(in{Mode: "register"}))
	assert.Equal(t, "The selected mode is invalid.", validate.Struct(in{Mode: "admin"})["mode"])
}

func TestNonStructIsIgnored(t *testing.T) {
	assert.Empty(t, validate.Struct(42))
}

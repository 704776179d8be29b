package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/app/views"
	"github.com/shashiranjanraj/foodcourt/pkg/collection"
	"github.com/shashiranjanraj/foodcourt/pkg/validate"
)

func restaurantNames(rs []models.Restaurant) []string {
	return collection.Map(rs, func(r models.Restaurant) string { return r.Name })
}

func TestHomeFeaturesHighlyRated(t *testing.T) {
	v := views.Home(repositories.SeedRestaurants())

	assert.Len(t, v.Restaurants, 4)
	assert.Equal(t, []string{"Pizza Palace", "Sushi Zen"}, restaurantNames(v.FeaturedRestaurants))
}

func TestRestaurantList(t *testing.T) {
	all := repositories.SeedRestaurants()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{name: "query matches name case-insensitively", query: "zen", want: []string{"Sushi Zen"}},
		{name: "query matches description", query: "NAAN", want: []string{"Curry House"}},
		{name: "category only", category: "Italian", want: []string{"Pizza Palace"}},
		{name: "blank query is no filter", query: "   ", want: []string{"Pizza Palace", "Burger Barn", "Sushi Zen", "Curry House"}},
		{name: "query and category are combined", query: "fresh", category: "Japanese", want: []string{"Sushi Zen"}},
		{name: "unmatched query with a category", query: "tacos", category: "Italian", want: []string{}},
		{name: "unmatched query alone", query: "tacos", want: []string{}},
		{name: "category is exact", category: "italian", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := views.RestaurantList(all, tt.query, tt.category)
			assert.Equal(t, tt.want, restaurantNames(v.Restaurants))
			assert.Equal(t, []string{"Italian", "American", "Japanese", "Indian"}, v.Categories)
		})
	}
}

func TestClearFilters(t *testing.T) {
	v := views.ClearFilters(repositories.SeedRestaurants())
	assert.Len(t, v.Restaurants, 4)
	assert.Empty(t, v.SearchQuery)
	assert.Empty(t, v.SelectedCategory)
}

func TestMenuGroupsByFirstSeenCategory(t *testing.T) {
	r := models.Restaurant{ID: 1, Name: "Pizza Palace"}
	items := []models.FoodItem{
		{ID: 1, Name: "Margherita", Category: "Pizza"},
		{ID: 9, Name: "Tiramisu", Category: "Dessert"},
		{ID: 2, Name: "Pepperoni", Category: "Pizza"},
	}

	v := views.Menu(&r, items)

	assert.Equal(t, []string{"Pizza", "Dessert"}, v.Categories)
	require.Len(t, v.Groups, 2)
	assert.Equal(t, "Pizza", v.Groups[0].Category)
	assert.Len(t, v.Groups[0].Items, 2)
	assert.Equal(t, "Margherita", v.Groups[0].Items[0].Name)
	assert.Equal(t, "Pepperoni", v.Groups[0].Items[1].Name)
}

func TestMenuForUnknownRestaurantIsEmpty(t *testing.T) {
	v := views.Menu(nil, nil)
	assert.Nil(t, v.Restaurant)
	assert.NotNil(t, v.FoodItems)
	assert.Empty(t, v.Groups)
	assert.Empty(t, v.Categories)
}

func TestCartTotal(t *testing.T) {
	v := views.Cart(nil, 20.5, 3.99, true)
	assert.InDelta(t, 24.49, v.Total, 1e-9)
	assert.True(t, v.LoggedIn)
	assert.NotNil(t, v.CartItems)
}

func TestHeaderAndAuth(t *testing.T) {
	h := views.Header(3, nil)
	assert.Equal(t, 3, h.CartItemCount)
	assert.False(t, h.LoggedIn)

	u := models.User{ID: 1, Email: "john@example.com"}
	assert.True(t, views.Header(0, &u).LoggedIn)

	a := views.Auth(nil, views.ParseAuthMode("REGISTER"))
	assert.Equal(t, views.ModeRegister, a.Mode)
	assert.False(t, a.IsLoginMode)
	assert.Equal(t, views.ModeLogin, views.ParseAuthMode("whatever"))
}

func TestAuthForms(t *testing.T) {
	errs := validate.Struct(views.LoginInput{Email: "john@example.com"})
	assert.Contains(t, errs, "password")

	errs = validate.Struct(views.RegisterInput{Email: "a@b.c", Password: "x", Name: "A", Phone: " ", Address: "Here"})
	assert.Equal(t, []string{"phone"}, keys(errs))

	assert.Empty(t, validate.Struct(views.LoginInput{Email: "x", Password: "y"}))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

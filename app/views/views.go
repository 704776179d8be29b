// Package views turns store snapshots into the state each page renders.
// Every function is pure: the same snapshots always give the same view.
package views

import (
	"strings"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/collection"
)

// FeaturedRating is the minimum rating for the home page's featured row.
const FeaturedRating = 4.5

// Page is the document every page route returns.
type Page struct {
	Page   string      `json:"page"`
	Header HeaderView  `json:"header"`
	View   interface{} `json:"view"`
}

// ── Header ───────────────────────────────────────────────────────────────────

type HeaderView struct {
	CartItemCount int          `json:"cartItemCount"`
	CurrentUser   *models.User `json:"currentUser"`
	LoggedIn      bool         `json:"loggedIn"`
}

func Header(itemCount int, user *models.User) HeaderView {
	return HeaderView{CartItemCount: itemCount, CurrentUser: user, LoggedIn: user != nil}
}

// ── Home ─────────────────────────────────────────────────────────────────────

type HomeView struct {
	Restaurants         []models.Restaurant `json:"restaurants"`
	FeaturedRestaurants []models.Restaurant `json:"featuredRestaurants"`
}

func Home(restaurants []models.Restaurant) HomeView {
	return HomeView{
		Restaurants: nonNil(restaurants),
		FeaturedRestaurants: collection.Filter(restaurants, func(r models.Restaurant) bool {
			return r.Rating >= FeaturedRating
		}),
	}
}

// ── Restaurant list ──────────────────────────────────────────────────────────

type RestaurantListView struct {
	Restaurants      []models.Restaurant `json:"restaurants"`
	SearchQuery      string              `json:"searchQuery"`
	SelectedCategory string              `json:"selectedCategory"`
	Categories       []string            `json:"categories"`
}

// RestaurantList applies the free-text filter and the category selector,
// combined with AND, to the full list. A blank query and an empty category
// leave the list unfiltered.
func RestaurantList(restaurants []models.Restaurant, query, category string) RestaurantListView {
	filtered := restaurants

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = collection.Filter(filtered, func(r models.Restaurant) bool {
			return strings.Contains(strings.ToLower(r.Name), q) ||
				strings.Contains(strings.ToLower(r.Category), q) ||
				strings.Contains(strings.ToLower(r.Description), q)
		})
	}
	if category != "" {
		filtered = collection.Filter(filtered, func(r models.Restaurant) bool {
			return r.Category == category
		})
	}

	return RestaurantListView{
		Restaurants:      nonNil(filtered),
		SearchQuery:      query,
		SelectedCategory: category,
		Categories:       nonNil(services.DistinctCategories(restaurants)),
	}
}

// ClearFilters is the restaurant list with no query and no category.
func ClearFilters(restaurants []models.Restaurant) RestaurantListView {
	return RestaurantList(restaurants, "", "")
}

// ── Menu ─────────────────────────────────────────────────────────────────────

type MenuGroup struct {
	Category string            `json:"category"`
	Items    []models.FoodItem `json:"items"`
}

type MenuView struct {
	Restaurant *models.Restaurant `json:"restaurant"`
	FoodItems  []models.FoodItem  `json:"foodItems"`
	Groups     []MenuGroup        `json:"groups"`
	Categories []string           `json:"categories"`
}

// Menu groups items by category in order of first appearance. A nil
// restaurant means the id did not resolve; the menu is then empty.
func Menu(restaurant *models.Restaurant, items []models.FoodItem) MenuView {
	grouped := collection.GroupBy(items, func(f models.FoodItem) string { return f.Category })

	return MenuView{
		Restaurant: restaurant,
		FoodItems:  nonNil(items),
		Groups: collection.Map(grouped, func(g collection.Group[string, models.FoodItem]) MenuGroup {
			return MenuGroup{Category: g.Key, Items: g.Items}
		}),
		Categories: collection.Map(grouped, func(g collection.Group[string, models.FoodItem]) string {
			return g.Key
		}),
	}
}

// ── Cart ─────────────────────────────────────────────────────────────────────

type CartView struct {
	CartItems   []models.CartItem `json:"cartItems"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"deliveryFee"`
	Total       float64           `json:"total"`
	LoggedIn    bool              `json:"isLoggedIn"`
}

func Cart(items []models.CartItem, subtotal, fee float64, loggedIn bool) CartView {
	return CartView{
		CartItems:   nonNil(items),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
		LoggedIn:    loggedIn,
	}
}

// ── Auth ─────────────────────────────────────────────────────────────────────

// AuthMode toggles the auth page between its two forms.
type AuthMode string

const (
	ModeLogin    AuthMode = "login"
	ModeRegister AuthMode = "register"
)

// ParseAuthMode maps anything but "register" to login.
func ParseAuthMode(s string) AuthMode {
	if AuthMode(strings.ToLower(s)) == ModeRegister {
		return ModeRegister
	}
	return ModeLogin
}

type AuthView struct {
	Mode        AuthMode     `json:"mode"`
	IsLoginMode bool         `json:"isLoginMode"`
	CurrentUser *models.User `json:"currentUser"`
}

func Auth(user *models.User, mode AuthMode) AuthView {
	return AuthView{Mode: mode, IsLoginMode: mode == ModeLogin, CurrentUser: user}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

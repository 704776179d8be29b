package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/routes"
	"github.com/shashiranjanraj/foodcourt/app/views"
	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/internal/bootstrap"
	"github.com/shashiranjanraj/foodcourt/pkg/app"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	config.Set("SESSION_STORE", "memory")
	config.Set("CATALOG_DRIVER", "memory")
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())

	c, err := bootstrap.Boot(context.Background())
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return app.New().
		RateLimit(0).
		Routes(func(r *router.Router) { routes.Register(r, c) }).
		Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// page decodes a page response with its view into V.
type page[V any] struct {
	Page   string           `json:"page"`
	Header views.HeaderView `json:"header"`
	View   V                `json:"view"`
}

func decodePage[V any](t *testing.T, rec *httptest.ResponseRecorder) page[V] {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var p page[V]
	require.NoError(t, json.Unmarshal(envelope(t, rec).Data, &p))
	return p
}

func TestUnknownPathsRedirectHome(t *testing.T) {
	h := newHandler(t)

	for _, path := range []string{"/nope", "/menu", "/restaurants/1/extra"} {
		rec := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get("Location"), path)
	}

	rec := do(t, h, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomeAndAlias(t *testing.T) {
	h := newHandler(t)

	for _, path := range []string{"/", "/home"} {
		p := decodePage[views.HomeView](t, do(t, h, http.MethodGet, path, ""))
		assert.Equal(t, "home", p.Page)
		assert.Len(t, p.View.Restaurants, 4)
		assert.Len(t, p.View.FeaturedRestaurants, 2)
		assert.False(t, p.Header.LoggedIn)
	}
}

func TestRestaurantsPageFilters(t *testing.T) {
	h := newHandler(t)

	p := decodePage[views.RestaurantListView](t, do(t, h, http.MethodGet, "/restaurants?q=zen", ""))
	require.Len(t, p.View.Restaurants, 1)
	assert.Equal(t, "Sushi Zen", p.View.Restaurants[0].Name)

	p = decodePage[views.RestaurantListView](t, do(t, h, http.MethodGet, "/restaurants?q=tacos&category=Italian", ""))
	assert.Empty(t, p.View.Restaurants)
	assert.Len(t, p.View.Categories, 4)
}

func TestMenuPage(t *testing.T) {
	h := newHandler(t)

	p := decodePage[views.MenuView](t, do(t, h, http.MethodGet, "/menu/1", ""))
	require.NotNil(t, p.View.Restaurant)
	assert.Equal(t, "Pizza Palace", p.View.Restaurant.Name)
	assert.Equal(t, []string{"Pizza"}, p.View.Categories)
	require.Len(t, p.View.Groups, 1)
	assert.Len(t, p.View.Groups[0].Items, 2)

	for _, path := range []string{"/menu/abc", "/menu/99"} {
		p := decodePage[views.MenuView](t, do(t, h, http.MethodGet, path, ""))
		assert.Nil(t, p.View.Restaurant, path)
		assert.Empty(t, p.View.FoodItems, path)
	}
}

func TestCatalogAPI(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/api/restaurants/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var r models.Restaurant
	require.NoError(t, json.Unmarshal(envelope(t, rec).Data, &r))
	assert.Equal(t, "Sushi Zen", r.Name)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/restaurants/99", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/items/99", "").Code)

	rec = do(t, h, http.MethodGet, "/api/restaurants/99/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(envelope(t, rec).Data))
}

func TestOrderingFlow(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/api/cart/items", `{"foodItemId":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(t, h, http.MethodPost, "/api/cart/items", `{"foodItemId":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/cart/items", `{"foodItemId":404}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	cart := decodePage[views.CartView](t, do(t, h, http.MethodGet, "/cart", ""))
	assert.Equal(t, 3, cart.Header.CartItemCount)
	assert.Len(t, cart.View.CartItems, 2)
	assert.InDelta(t, 2*12.99+8.99, cart.View.Subtotal, 1e-9)
	assert.InDelta(t, 3.99, cart.View.DeliveryFee, 1e-9)
	assert.InDelta(t, 2*12.99+8.99+3.99, cart.View.Total, 1e-9)
	assert.False(t, cart.View.LoggedIn)

	rec = do(t, h, http.MethodPost, "/api/checkout", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/auth/login", `{"email":"john@example.com","password":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, views.MissingFieldsMessage, envelope(t, rec).Message)

	rec = do(t, h, http.MethodPost, "/api/auth/login", `{"email":"john@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	auth := decodePage[views.AuthView](t, do(t, h, http.MethodGet, "/auth", ""))
	require.NotNil(t, auth.View.CurrentUser)
	assert.Equal(t, "john@example.com", auth.View.CurrentUser.Email)
	assert.True(t, auth.Header.LoggedIn)
	assert.Equal(t, views.ModeLogin, auth.View.Mode)

	register := decodePage[views.AuthView](t, do(t, h, http.MethodGet, "/auth?mode=register", ""))
	assert.Equal(t, views.ModeRegister, register.View.Mode)
	assert.False(t, register.View.IsLoginMode)

	rec = do(t, h, http.MethodPatch, "/api/cart/items/5", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/checkout", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var order models.Order
	require.NoError(t, json.Unmarshal(envelope(t, rec).Data, &order))
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 2*12.99+2.99, order.TotalAmount, 1e-9)

	rec = do(t, h, http.MethodPost, "/api/checkout", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/auth/me", "").Code)
}

func TestCartQuantityBounds(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/api/cart/items", `{"foodItemId":1,"quantity":9223372036854775807}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, envelope(t, rec).Errors, "quantity")

	rec = do(t, h, http.MethodPost, "/api/cart/items", `{"foodItemId":1,"quantity":99}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(t, h, http.MethodPost, "/api/cart/items", `{"foodItemId":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPatch, "/api/cart/items/1", `{"quantity":100}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	cart := decodePage[views.CartView](t, do(t, h, http.MethodGet, "/cart", ""))
	require.Len(t, cart.View.CartItems, 1)
	assert.Equal(t, 99, cart.View.CartItems[0].Quantity)
	assert.Equal(t, 99, cart.Header.CartItemCount)
	assert.InDelta(t, 99*12.99, cart.View.Subtotal, 1e-6)
}

func TestOperationalEndpoints(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodcourt_http_requests_total")
}

package graph_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodcourt/app/graph"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	fcgraphql "github.com/shashiranjanraj/foodcourt/pkg/graphql"
	"github.com/shashiranjanraj/foodcourt/pkg/kv"
)

type result struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newHandler(t *testing.T) (http.Handler, *services.CartService, *services.CatalogService) {
	t.Helper()
	bus := event.NewBus()
	catalog := services.NewCatalogService(
		repositories.NewMemoryCatalog(repositories.SeedRestaurants(), repositories.SeedFoodItems()),
	)
	cart := services.NewCartService(bus)
	session, err := services.NewSessionService(context.Background(), kv.NewMemory(), "currentUser", bus)
	require.NoError(t, err)

	schema, err := graph.NewSchema(catalog, cart, session)
	require.NoError(t, err)
	return fcgraphql.Handler(schema), cart, catalog
}

func post(t *testing.T, h http.Handler, query string) result {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"query": query})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	var res result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Empty(t, res.Errors)
	return res
}

func TestRestaurantsQuery(t *testing.T) {
	h, _, _ := newHandler(t)

	res := post(t, h, `{ restaurants(search: "zen") { id name deliveryFee } }`)
	assert.JSONEq(t, `[{"id":3,"name":"Sushi Zen","deliveryFee":3.99}]`, string(res.Data["restaurants"]))
}

func TestMenuQuery(t *testing.T) {
	h, _, _ := newHandler(t)

	res := post(t, h, `{ restaurant(id: 4) { name } foodItems(restaurantId: 4) { name isVegetarian } }`)
	assert.JSONEq(t, `{"name":"Curry House"}`, string(res.Data["restaurant"]))
	assert.JSONEq(t,
		`[{"name":"Chicken Tikka Masala","isVegetarian":false},{"name":"Vegetable Biryani","isVegetarian":true}]`,
		string(res.Data["foodItems"]))

	res = post(t, h, `{ restaurant(id: 99) { name } }`)
	assert.JSONEq(t, `null`, string(res.Data["restaurant"]))
}

func TestCartAndMeQuery(t *testing.T) {
	h, cart, catalog := newHandler(t)
	item, restaurant, err := catalog.CartLine(context.Background(), 3)
	require.NoError(t, err)
	cart.AddToCart(item, restaurant, 2)

	res := post(t, h, `{ cart { totalItems total items { quantity foodItem { name } } } me { email } }`)
	assert.JSONEq(t,
		`{"totalItems":2,"total":21.97,"items":[{"quantity":2,"foodItem":{"name":"Classic Burger"}}]}`,
		string(res.Data["cart"]))
	assert.JSONEq(t, `null`, string(res.Data["me"]))
}

func TestHandlerRejectsMissingQuery(t *testing.T) {
	h, _, _ := newHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

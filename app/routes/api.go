package routes

import (
	"net/http"

	"github.com/shashiranjanraj/foodcourt/app/controllers"
	"github.com/shashiranjanraj/foodcourt/internal/bootstrap"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
	"github.com/shashiranjanraj/foodcourt/pkg/graphql"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// RegisterAPI installs the action API, the GraphQL endpoint and the push
// streams.
func RegisterAPI(r *router.Router, c *bootstrap.Container) {
	catalog := controllers.NewCatalogController(c.Catalog)
	auth := controllers.NewAuthController(c.Session)
	cart := controllers.NewCartController(c.Catalog, c.Cart)
	checkout := controllers.NewCheckoutController(c.Checkout)
	push := controllers.NewPushController(c.Session, c.Cart, c.Bus, c.Hub)

	api := r.Group("/api")

	api.Get("/restaurants", "api.restaurants.index", ctx.Wrap(catalog.Index))
	api.Get("/restaurants/{id}", "api.restaurants.show", ctx.Wrap(catalog.Show))
	api.Get("/restaurants/{id}/items", "api.restaurants.items", ctx.Wrap(catalog.Items))
	api.Get("/items/{id}", "api.items.show", ctx.Wrap(catalog.Item))
	api.Get("/categories", "api.categories", ctx.Wrap(catalog.Categories))

	api.Post("/auth/login", "api.auth.login", ctx.Wrap(auth.Login))
	api.Post("/auth/register", "api.auth.register", ctx.Wrap(auth.Register))
	api.Post("/auth/logout", "api.auth.logout", ctx.Wrap(auth.Logout))
	api.Get("/auth/me", "api.auth.me", ctx.Wrap(auth.Me))

	api.Get("/cart", "api.cart.show", ctx.Wrap(cart.Show))
	api.Delete("/cart", "api.cart.clear", ctx.Wrap(cart.Clear))
	api.Post("/cart/items", "api.cart.add", ctx.Wrap(cart.Add))
	api.Patch("/cart/items/{foodItemId}", "api.cart.update", ctx.Wrap(cart.Update))
	api.Delete("/cart/items/{foodItemId}", "api.cart.remove", ctx.Wrap(cart.Remove))

	api.Post("/checkout", "api.checkout", ctx.Wrap(checkout.Place))

	gql := graphql.Handler(c.Schema)
	r.Handle(http.MethodGet, "/graphql", "graphql.query", gql)
	r.Handle(http.MethodPost, "/graphql", "graphql", gql)

	r.Get("/ws", "push.ws", ctx.Wrap(push.WebSocket))
	r.Get("/events", "push.events", ctx.Wrap(push.Events))
}

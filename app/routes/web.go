package routes

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/foodcourt/app/controllers"
	"github.com/shashiranjanraj/foodcourt/internal/bootstrap"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// RegisterWeb installs the navigable pages. Any other path outside /api
// redirects to the home page.
func RegisterWeb(r *router.Router, c *bootstrap.Container) {
	pages := controllers.NewPageController(c.Catalog, c.Session, c.Cart)

	r.Get("/", "home", ctx.Wrap(pages.Home))
	r.Get("/home", "home.alias", ctx.Wrap(pages.Home))
	r.Get("/restaurants", "restaurants", ctx.Wrap(pages.Restaurants))
	r.Get("/menu/{restaurantId}", "menu", ctx.Wrap(pages.Menu))
	r.Get("/cart", "cart", ctx.Wrap(pages.Cart))
	r.Get("/auth", "auth", ctx.Wrap(pages.Auth))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			response.NotFound(w)
			return
		}
		http.Redirect(w, req, "/", http.StatusFound)
	})
}

package controllers

import (
	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/app/views"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
)

// PageController renders the view state of each navigable page.
type PageController struct {
	catalog *services.CatalogService
	session *services.SessionService
	cart    *services.CartService
}

func NewPageController(catalog *services.CatalogService, session *services.SessionService, cart *services.CartService) *PageController {
	return &PageController{catalog: catalog, session: session, cart: cart}
}

func (pc *PageController) render(c *ctx.Context, page string, view any) {
	c.Success(views.Page{
		Page:   page,
		Header: views.Header(pc.cart.TotalItems(), pc.currentUser()),
		View:   view,
	})
}

func (pc *PageController) currentUser() *models.User {
	u, ok := pc.session.CurrentUser()
	if !ok {
		return nil
	}
	return &u
}

// Home serves / and /home.
func (pc *PageController) Home(c *ctx.Context) {
	rs, err := pc.catalog.Restaurants(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	pc.render(c, "home", views.Home(rs))
}

// Restaurants serves /restaurants?q=&category=.
func (pc *PageController) Restaurants(c *ctx.Context) {
	rs, err := pc.catalog.Restaurants(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	pc.render(c, "restaurants", views.RestaurantList(rs, c.Query("q"), c.Query("category")))
}

// Menu serves /menu/{restaurantId}. An id that is not a number or does not
// resolve renders an empty menu.
func (pc *PageController) Menu(c *ctx.Context) {
	id, ok := c.ParamInt("restaurantId")
	if !ok {
		pc.render(c, "menu", views.Menu(nil, nil))
		return
	}

	restaurant, found, err := pc.catalog.RestaurantByID(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	items, err := pc.catalog.ItemsByRestaurant(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	var r *models.Restaurant
	if found {
		r = &restaurant
	}
	pc.render(c, "menu", views.Menu(r, items))
}

func (pc *PageController) Cart(c *ctx.Context) {
	items := pc.cart.Items()
	pc.render(c, "cart", views.Cart(
		items,
		services.Subtotal(items),
		services.DeliveryFee(items),
		pc.session.IsLoggedIn(),
	))
}

// Auth serves /auth?mode=login|register.
func (pc *PageController) Auth(c *ctx.Context) {
	pc.render(c, "auth", views.Auth(pc.currentUser(), views.ParseAuthMode(c.DefaultQuery("mode", string(views.ModeLogin)))))
}

package controllers

import (
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// Index lists restaurants, filtered by ?q= on name or category.
func (cc *CatalogController) Index(c *ctx.Context) {
	rs, err := cc.catalog.Search(c.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(rs)
}

func (cc *CatalogController) Show(c *ctx.Context) {
	id, ok := c.ParamInt("id")
	if !ok {
		c.NotFound("Restaurant not found")
		return
	}
	r, found, err := cc.catalog.RestaurantByID(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		c.NotFound("Restaurant not found")
		return
	}
	c.Success(r)
}

// Items lists a restaurant's menu. An unknown restaurant has no items.
func (cc *CatalogController) Items(c *ctx.Context) {
	id, _ := c.ParamInt("id")
	items, err := cc.catalog.ItemsByRestaurant(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(items)
}

func (cc *CatalogController) Item(c *ctx.Context) {
	id, ok := c.ParamInt("id")
	if !ok {
		c.NotFound("Food item not found")
		return
	}
	item, found, err := cc.catalog.ItemByID(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		c.NotFound("Food item not found")
		return
	}
	c.Success(item)
}

func (cc *CatalogController) Categories(c *ctx.Context) {
	cats, err := cc.catalog.Categories(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cats)
}

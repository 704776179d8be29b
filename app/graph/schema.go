// Package graph exposes the catalog, the cart and the signed-in user as a
// read-only GraphQL schema.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/foodcourt/app/services"
	fcgraphql "github.com/shashiranjanraj/foodcourt/pkg/graphql"
)

var restaurantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Restaurant",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":         &graphql.Field{Type: graphql.String},
		"description":  &graphql.Field{Type: graphql.String},
		"image":        &graphql.Field{Type: graphql.String},
		"rating":       &graphql.Field{Type: graphql.Float},
		"deliveryTime": &graphql.Field{Type: graphql.String},
		"deliveryFee":  &graphql.Field{Type: graphql.Float},
		"category":     &graphql.Field{Type: graphql.String},
	},
})

var foodItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FoodItem",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":         &graphql.Field{Type: graphql.String},
		"description":  &graphql.Field{Type: graphql.String},
		"price":        &graphql.Field{Type: graphql.Float},
		"image":        &graphql.Field{Type: graphql.String},
		"category":     &graphql.Field{Type: graphql.String},
		"restaurantId": &graphql.Field{Type: graphql.Int},
		"isVegetarian": &graphql.Field{Type: graphql.Boolean},
	},
})

var cartItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CartItem",
	Fields: graphql.Fields{
		"foodItem":   &graphql.Field{Type: foodItemType},
		"quantity":   &graphql.Field{Type: graphql.Int},
		"restaurant": &graphql.Field{Type: restaurantType},
	},
})

// User ids are Unix milliseconds for registered users, beyond Int's range.
var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.ID},
		"email":   &graphql.Field{Type: graphql.String},
		"name":    &graphql.Field{Type: graphql.String},
		"phone":   &graphql.Field{Type: graphql.String},
		"address": &graphql.Field{Type: graphql.String},
	},
})

var cartType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cart",
	Fields: graphql.Fields{
		"items":       &graphql.Field{Type: graphql.NewList(cartItemType)},
		"totalItems":  &graphql.Field{Type: graphql.Int},
		"subtotal":    &graphql.Field{Type: graphql.Float},
		"deliveryFee": &graphql.Field{Type: graphql.Float},
		"total":       &graphql.Field{Type: graphql.Float},
	},
})

// NewSchema wires resolvers to the services.
func NewSchema(catalog *services.CatalogService, cart *services.CartService, session *services.SessionService) (graphql.Schema, error) {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"restaurants": &graphql.Field{
				Type: graphql.NewList(restaurantType),
				Args: graphql.FieldConfigArgument{
					"search": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					q, _ := p.Args["search"].(string)
					return catalog.Search(p.Context, q)
				},
			},
			"restaurant": &graphql.Field{
				Type: restaurantType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, ok, err := catalog.RestaurantByID(p.Context, p.Args["id"].(int))
					if err != nil || !ok {
						return nil, err
					}
					return r, nil
				},
			},
			"foodItems": &graphql.Field{
				Type: graphql.NewList(foodItemType),
				Args: graphql.FieldConfigArgument{
					"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.ItemsByRestaurant(p.Context, p.Args["restaurantId"].(int))
				},
			},
			"foodItem": &graphql.Field{
				Type: foodItemType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f, ok, err := catalog.ItemByID(p.Context, p.Args["id"].(int))
					if err != nil || !ok {
						return nil, err
					}
					return f, nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Categories(p.Context)
				},
			},
			"cart": &graphql.Field{
				Type: cartType,
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					items := cart.Items()
					sub, fee := services.Subtotal(items), services.DeliveryFee(items)
					return map[string]interface{}{
						"items":       items,
						"totalItems":  services.ItemCount(items),
						"subtotal":    sub,
						"deliveryFee": fee,
						"total":       sub + fee,
					}, nil
				},
			},
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					u, ok := session.CurrentUser()
					if !ok {
						return nil, nil
					}
					return u, nil
				},
			},
		},
	})

	return fcgraphql.NewSchema(query)
}

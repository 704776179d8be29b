// Package routes maps URLs to controllers.
package routes

import (
	"github.com/shashiranjanraj/foodcourt/internal/bootstrap"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// Register installs the page routes, the action API and the push and
// query endpoints.
func Register(r *router.Router, c *bootstrap.Container) {
	RegisterWeb(r, c)
	RegisterAPI(r, c)
}

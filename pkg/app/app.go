// Package app assembles the HTTP side of the process: the global
// middleware stack, the routes and the server lifecycle. It knows nothing
// about the food-ordering domain; routes are plugged in with Routes.
//
//	err := app.New().
//	    Routes(func(r *router.Router) { routes.Register(r, c) }).
//	    OnShutdown(c.Close).
//	    Serve(ctx)
package app

import (
	"net/http"
	"sync"

	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// Application collects route callbacks and shutdown hooks.
type Application struct {
	routesFns []func(*router.Router)
	shutdown  []func()
	rateLimit int

	once    sync.Once
	handler http.Handler
	router  *router.Router
}

// New returns an Application using RATE_LIMIT requests per minute per client.
func New() *Application {
	return &Application{rateLimit: config.RateLimit()}
}

// Routes adds a route-registration callback. Callbacks run in order when
// the handler is first built.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// OnShutdown adds a hook run after the servers have stopped, in reverse
// order of registration.
func (a *Application) OnShutdown(fn func()) *Application {
	a.shutdown = append(a.shutdown, fn)
	return a
}

// RateLimit overrides the per-client budget; n <= 0 disables the limiter.
func (a *Application) RateLimit(n int) *Application {
	a.rateLimit = n
	return a
}

// Handler builds the router once and returns it.
func (a *Application) Handler() http.Handler {
	a.build()
	return a.handler
}

// RouteTable lists every named route.
func (a *Application) RouteTable() []router.RouteInfo {
	a.build()
	return a.router.Routes()
}

func (a *Application) build() {
	a.once.Do(func() {
		a.router = buildRouter(a)
		a.handler = a.router.Handler()
	})
}

func (a *Application) runShutdownHooks() {
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		a.shutdown[i]()
	}
}

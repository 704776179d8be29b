package app

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
	"github.com/shashiranjanraj/foodcourt/pkg/middleware"
	"github.com/shashiranjanraj/foodcourt/pkg/reqid"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// buildRouter installs the global middleware, the operational endpoints
// and then every route callback.
func buildRouter(a *Application) *router.Router {
	r := router.New()

	// Outermost first:
	//  1. metrics     total latency, including recovery
	//  2. request id  before anything logs
	//  3. logger      access line tagged with the request id
	//  4. recovery    panics become a logged 500
	//  5. CORS
	//  6. rate limit
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	if a.rateLimit > 0 {
		r.Use(middleware.RateLimit(a.rateLimit, time.Minute))
	}

	r.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	for _, fn := range a.routesFns {
		fn(r)
	}
	return r
}

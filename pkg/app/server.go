package app

import (
	"context"

	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/internal/server"
)

// Serve runs the HTTP and gRPC servers until ctx is cancelled, then runs
// the shutdown hooks.
func (a *Application) Serve(ctx context.Context) error {
	defer a.runShutdownHooks()
	return server.Run(ctx, a.Handler(), server.Options{
		HTTPPort: config.AppPort(),
		GRPCPort: config.GRPCPort(),
	})
}

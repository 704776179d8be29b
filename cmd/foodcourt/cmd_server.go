package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/foodcourt/app/routes"
	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/internal/bootstrap"
	"github.com/shashiranjanraj/foodcourt/pkg/app"
	"github.com/shashiranjanraj/foodcourt/pkg/router"
)

// foodcourt serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP and gRPC servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, err := bootstrap.Boot(ctx)
		if err != nil {
			return err
		}
		c.Start(ctx)

		return app.New().
			Routes(func(r *router.Router) { routes.Register(r, c) }).
			OnShutdown(c.Close).
			Serve(ctx)
	},
}

// foodcourt route:list
var routeListCmd = &cobra.Command{
	Use:     "route:list",
	Aliases: []string{"routes"},
	Short:   "List every named route",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The table does not depend on the backends; keep them in memory.
		config.Set("SESSION_STORE", "memory")
		config.Set("CATALOG_DRIVER", "memory")

		c, err := bootstrap.Boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		return app.New().
			Routes(func(r *router.Router) { routes.Register(r, c) }).
			PrintRoutes(cmd.OutOrStdout())
	},
}

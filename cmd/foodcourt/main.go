// Command foodcourt runs the food-ordering service and its maintenance
// tasks.
//
//	foodcourt serve             # HTTP + gRPC
//	foodcourt route:list
//	foodcourt migrate           # SQL catalog mirror
//	foodcourt migrate:rollback
//	foodcourt migrate:status
//	foodcourt seed
//	foodcourt catalog:export --disk s3 --path exports/catalog.json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "foodcourt",
	Short:         "Food-ordering demo service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(catalogExportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

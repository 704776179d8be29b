package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/internal/bootstrap"
)

var (
	exportDisk string
	exportPath string
)

// foodcourt catalog:export
var catalogExportCmd = &cobra.Command{
	Use:   "catalog:export",
	Short: "Write the catalog as JSON to a storage disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config.Set("SESSION_STORE", "memory")

		c, err := bootstrap.Boot(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		disk := c.Disks.Default()
		if exportDisk != "" {
			if disk, err = c.Disks.Disk(exportDisk); err != nil {
				return err
			}
		}

		snap, err := c.Catalog.Snapshot(ctx)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("catalog:export: encode: %w", err)
		}
		if err := disk.Put(ctx, exportPath, data); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d restaurants and %d food items to %s\n",
			len(snap.Restaurants), len(snap.FoodItems), disk.URL(exportPath))
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().StringVar(&exportDisk, "disk", "", "storage disk (default STORAGE_DISK)")
	catalogExportCmd.Flags().StringVar(&exportPath, "path", "exports/catalog.json", "object path on the disk")
}

package app

// Printers for the CLI. Each takes its dependencies explicitly so the
// package stays free of project code.

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/pkg/migration"
)

// PrintRoutes writes the route table.
func (a *Application) PrintRoutes(w io.Writer) error {
	infos := a.RouteTable()
	if len(infos) == 0 {
		fmt.Fprintln(w, "No routes registered.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tNAME")
	fmt.Fprintln(tw, "------\t----\t----")
	for _, ri := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return tw.Flush()
}

// Migrate runs pending migrations and lists what ran.
func Migrate(ctx context.Context, w io.Writer, db *gorm.DB, reg *migration.Registry) error {
	ran, err := migration.New(db, reg).Run(ctx)
	for _, name := range ran {
		fmt.Fprintf(w, "Migrated:  %s\n", name)
	}
	if err != nil {
		return err
	}
	if len(ran) == 0 {
		fmt.Fprintln(w, "Nothing to migrate.")
	}
	return nil
}

// Rollback reverses the last batch and lists what was rolled back.
func Rollback(ctx context.Context, w io.Writer, db *gorm.DB, reg *migration.Registry) error {
	rolled, err := migration.New(db, reg).Rollback(ctx)
	for _, name := range rolled {
		fmt.Fprintf(w, "Rolled back:  %s\n", name)
	}
	if err != nil {
		return err
	}
	if len(rolled) == 0 {
		fmt.Fprintln(w, "Nothing to roll back.")
	}
	return nil
}

// MigrateStatus prints every registered migration with its batch.
func MigrateStatus(ctx context.Context, w io.Writer, db *gorm.DB, reg *migration.Registry) error {
	rows, err := migration.New(db, reg).Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "RAN\tMIGRATION\tBATCH")
	for _, row := range rows {
		ran, batch := "No", "-"
		if row.Ran {
			ran, batch = "Yes", fmt.Sprint(row.Batch)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ran, row.Name, batch)
	}
	return tw.Flush()
}

// Seeders is satisfied by database/seeders.Set.
type Seeders interface {
	RunAll(ctx context.Context, db *gorm.DB) ([]string, error)
}

// Seed runs every seeder in set.
func Seed(ctx context.Context, w io.Writer, db *gorm.DB, set Seeders) error {
	ran, err := set.RunAll(ctx, db)
	for _, name := range ran {
		fmt.Fprintf(w, "Seeded:  %s\n", name)
	}
	return err
}

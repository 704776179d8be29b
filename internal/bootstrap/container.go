// Package bootstrap builds the object graph the commands run on.
package bootstrap

import (
	"context"
	"fmt"
	"io"

	gql "github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/app/controllers"
	"github.com/shashiranjanraj/foodcourt/app/graph"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/database/migrations"
	"github.com/shashiranjanraj/foodcourt/database/seeders"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/kv"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/migration"
	"github.com/shashiranjanraj/foodcourt/pkg/storage"
	"github.com/shashiranjanraj/foodcourt/pkg/ws"
)

// Container holds one process's stores and transports. The process plays
// a single browser tab: one session, one cart.
type Container struct {
	Bus      *event.Bus
	Disks    *storage.Manager
	Slot     kv.Store
	DB       *gorm.DB // nil unless CATALOG_DRIVER=sql
	Catalog  *services.CatalogService
	Session  *services.SessionService
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Hub      *ws.Hub
	Schema   gql.Schema

	closers []func() error
}

// Boot reads config and builds the container. The sql catalog is
// migrated and seeded on the way up.
func Boot(ctx context.Context) (*Container, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("bootstrap: config: %w", err)
	}

	c := &Container{Bus: event.NewBus(), Hub: ws.NewHub()}

	disks, err := storage.NewManagerFromConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: storage: %w", err)
	}
	c.Disks = disks

	slot, err := kv.Open(ctx, config.SessionStore(), disks)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: session slot: %w", err)
	}
	if cl, ok := slot.(io.Closer); ok {
		c.closers = append(c.closers, cl.Close)
	}
	c.Slot = kv.Instrument(slot)

	driver := config.CatalogDriver()
	if driver == "sql" {
		db, err := OpenCatalogDB(ctx)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.DB = db
		c.closers = append(c.closers, func() error { return database.Close(db) })
	}

	repo, err := repositories.NewCatalogRepository(driver, c.DB)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("bootstrap: catalog: %w", err)
	}
	c.Catalog = services.NewCatalogService(repo)

	c.Session, err = services.NewSessionService(ctx, c.Slot, config.SessionKey(), c.Bus)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Cart = services.NewCartService(c.Bus)
	c.Checkout = services.NewCheckoutService(c.Session, c.Cart, c.Bus)

	c.Schema, err = graph.NewSchema(c.Catalog, c.Cart, c.Session)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("bootstrap: graphql schema: %w", err)
	}

	logger.Info("bootstrap: ready",
		"catalog", repo.Driver(),
		"session_store", c.Slot.Driver(),
		"disks", disks.Names(),
	)
	return c, nil
}

// OpenCatalogDB connects, migrates and seeds the SQL catalog mirror.
func OpenCatalogDB(ctx context.Context) (*gorm.DB, error) {
	db, err := database.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if _, err := migration.New(db, migrations.Registry()).Run(ctx); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("bootstrap: migrate catalog: %w", err)
	}
	if _, err := seeders.Default().RunAll(ctx, db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("bootstrap: seed catalog: %w", err)
	}
	return db, nil
}

// Start runs the websocket hub and relays store events to it until ctx
// ends.
func (c *Container) Start(ctx context.Context) {
	go c.Hub.Run(ctx)
	stop := controllers.NewPushController(c.Session, c.Cart, c.Bus, c.Hub).Forward()
	go func() {
		<-ctx.Done()
		stop()
	}()
}

// Close releases the slot store and database connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logger.Warn("bootstrap: close", "error", err)
		}
	}
	c.closers = nil
}

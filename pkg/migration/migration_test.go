package migration_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/pkg/database"
	"github.com/shashiranjanraj/foodcourt/pkg/migration"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

type noop struct{}

func (noop) Up(*gorm.DB) error   { return nil }
func (noop) Down(*gorm.DB) error { return nil }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Open(context.Background(), "sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRunRollbackStatus(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	reg := migration.NewRegistry()
	reg.Add("20260101000001_second", noop{})
	reg.Add("20260101000000_create_widgets", createWidgets{})
	runner := migration.New(db, reg)

	applied, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"20260101000000_create_widgets", "20260101000001_second"}, applied)
	assert.True(t, db.Migrator().HasTable(&widget{}))

	again, err := runner.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	rows, err := runner.Status(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Ran)
	assert.Equal(t, 1, rows[0].Batch)

	reverted, err := runner.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"20260101000001_second", "20260101000000_create_widgets"}, reverted)
	assert.False(t, db.Migrator().HasTable(&widget{}))

	rows, err = runner.Status(ctx)
	require.NoError(t, err)
	assert.False(t, rows[0].Ran)

	reverted, err = runner.Rollback(ctx)
	require.NoError(t, err)
	assert.Empty(t, reverted)
}

func TestRollbackUnknownMigration(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	reg := migration.NewRegistry()
	reg.Add("20260101000000_noop", noop{})
	_, err := migration.New(db, reg).Run(ctx)
	require.NoError(t, err)

	_, err = migration.New(db, migration.NewRegistry()).Rollback(ctx)
	assert.ErrorIs(t, err, migration.ErrNotRegistered)
}

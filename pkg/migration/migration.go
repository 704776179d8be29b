// Package migration runs and tracks schema migrations in batches.
//
//	reg := migration.NewRegistry()
//	reg.Add("20260101000000_create_restaurants_table", CreateRestaurantsTable{})
//	err := migration.New(db, reg).Run(ctx)
//
// The CLI exposes Run, Rollback and Status as migrate, migrate:rollback and
// migrate:status.
package migration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/pkg/logger"
)

// Migration is implemented by every schema change.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// ErrNotRegistered is returned when rolling back a recorded migration whose
// code is no longer registered.
var ErrNotRegistered = errors.New("migration: not registered")

// record is a row of the tracking table.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "foodcourt_migrations" }

// ------------------- Registry -------------------

type entry struct {
	name string
	m    Migration
}

// Registry is an ordered set of named migrations. Names are
// timestamp-prefixed so they sort chronologically.
type Registry struct {
	entries []entry
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Add(name string, m Migration) {
	r.entries = append(r.entries, entry{name: name, m: m})
}

func (r *Registry) sorted() []entry {
	out := append([]entry(nil), r.entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (r *Registry) lookup(name string) (Migration, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.m, true
		}
	}
	return nil, false
}

// ------------------- Runner -------------------

// Runner executes and tracks migrations against one database.
type Runner struct {
	db  *gorm.DB
	reg *Registry
}

func New(db *gorm.DB, reg *Registry) *Runner {
	return &Runner{db: db, reg: reg}
}

// StatusRow describes one registered migration.
type StatusRow struct {
	Name  string
	Ran   bool
	Batch int
}

func (r *Runner) ensureTable(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	return nil
}

func (r *Runner) ran(ctx context.Context) (map[string]record, error) {
	var rows []record
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("migration: read history: %w", err)
	}
	out := make(map[string]record, len(rows))
	for _, rec := range rows {
		out[rec.Name] = rec
	}
	return out, nil
}

func (r *Runner) lastBatch(ctx context.Context) (int, error) {
	var last struct{ Max int }
	err := r.db.WithContext(ctx).Model(&record{}).Select("COALESCE(MAX(batch), 0) as max").Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return last.Max, nil
}

// Run applies every pending migration as one new batch and returns the
// names it applied.
func (r *Runner) Run(ctx context.Context) ([]string, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	done, err := r.ran(ctx)
	if err != nil {
		return nil, err
	}

	var pending []entry
	for _, e := range r.reg.sorted() {
		if _, ok := done[e.name]; !ok {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		logger.Info("migration: nothing to migrate")
		return nil, nil
	}

	last, err := r.lastBatch(ctx)
	if err != nil {
		return nil, err
	}
	batch := last + 1

	applied := make([]string, 0, len(pending))
	for _, e := range pending {
		logger.Info("migration: running", "name", e.name, "batch", batch)

		if err := e.m.Up(r.db.WithContext(ctx)); err != nil {
			return applied, fmt.Errorf("migration: %s up: %w", e.name, err)
		}
		if err := r.db.WithContext(ctx).Create(&record{Name: e.name, Batch: batch}).Error; err != nil {
			return applied, fmt.Errorf("migration: record %s: %w", e.name, err)
		}
		applied = append(applied, e.name)
	}

	logger.Info("migration: done", "ran", len(applied), "batch", batch)
	return applied, nil
}

// Rollback reverses the most recent batch, newest first, and returns the
// names it rolled back.
func (r *Runner) Rollback(ctx context.Context) ([]string, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	last, err := r.lastBatch(ctx)
	if err != nil || last == 0 {
		return nil, err
	}

	var rows []record
	if err := r.db.WithContext(ctx).Where("batch = ?", last).Order("id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("migration: read batch %d: %w", last, err)
	}

	var reverted []string
	for _, rec := range rows {
		m, ok := r.reg.lookup(rec.Name)
		if !ok {
			return reverted, fmt.Errorf("%w: %s", ErrNotRegistered, rec.Name)
		}

		logger.Info("migration: rolling back", "name", rec.Name, "batch", last)
		if err := m.Down(r.db.WithContext(ctx)); err != nil {
			return reverted, fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.WithContext(ctx).Delete(&rec).Error; err != nil {
			return reverted, fmt.Errorf("migration: forget %s: %w", rec.Name, err)
		}
		reverted = append(reverted, rec.Name)
	}
	return reverted, nil
}

// Status lists every registered migration with its batch, if run.
func (r *Runner) Status(ctx context.Context) ([]StatusRow, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	done, err := r.ran(ctx)
	if err != nil {
		return nil, err
	}

	entries := r.reg.sorted()
	out := make([]StatusRow, 0, len(entries))
	for _, e := range entries {
		rec, ok := done[e.name]
		out = append(out, StatusRow{Name: e.name, Ran: ok, Batch: rec.Batch})
	}
	return out, nil
}

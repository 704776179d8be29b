// Package seeders fills the SQL catalog mirror.
//
//	err := seeders.Default().RunAll(ctx, db)
package seeders

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/pkg/logger"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(ctx context.Context, db *gorm.DB) error

type entry struct {
	name string
	fn   SeederFunc
}

// Set is an ordered list of named seeders.
type Set struct {
	entries []entry
}

func (s *Set) Register(name string, fn SeederFunc) {
	s.entries = append(s.entries, entry{name: name, fn: fn})
}

// Default returns the seeders the seed command runs.
func Default() *Set {
	s := &Set{}
	s.Register("restaurants", SeedRestaurants)
	s.Register("food_items", SeedFoodItems)
	return s
}

// RunAll executes every seeder in registration order and stops at the first
// error. It returns the names that ran.
func (s *Set) RunAll(ctx context.Context, db *gorm.DB) ([]string, error) {
	ran := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		logger.Info("seeder: running", "name", e.name)
		if err := e.fn(ctx, db); err != nil {
			return ran, fmt.Errorf("seeder %q: %w", e.name, err)
		}
		ran = append(ran, e.name)
	}
	return ran, nil
}

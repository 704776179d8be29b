// Package kv is a string key-value store with swappable drivers. The
// session store keeps its one persisted slot here, the way a browser keeps
// a value in localStorage.
//
//	store, _ := kv.Open(ctx, "redis", disks)
//	_ = store.Set(ctx, "currentUser", `{"id":1}`)
//	v, ok, err := store.Get(ctx, "currentUser")
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
	"github.com/shashiranjanraj/foodcourt/pkg/storage"
)

// Store is implemented by every driver.
type Store interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	// Driver names the backend for logs and metrics.
	Driver() string
}

// Open builds the store named by driver ("memory", "disk" or "redis").
// The disk driver writes through the default disk of m.
func Open(ctx context.Context, driver string, m *storage.Manager) (Store, error) {
	switch driver {
	case "memory":
		return NewMemory(), nil
	case "disk":
		if m == nil {
			return nil, fmt.Errorf("kv: disk driver needs a storage manager")
		}
		return NewDisk(m.Default(), "session"), nil
	case "redis":
		client, err := Connect(ctx, config.RedisAddr(), config.RedisPassword())
		if err != nil {
			return nil, err
		}
		return NewRedis(client, "foodcourt:"), nil
	default:
		return nil, fmt.Errorf("kv: unknown driver %q", driver)
	}
}

// Instrument wraps s so every Get is counted as a hit, miss or error.
func Instrument(s Store) Store {
	return instrumented{s}
}

type instrumented struct{ Store }

func (i instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := i.Store.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RecordSlotRead(i.Driver(), "error")
	case ok:
		metrics.RecordSlotRead(i.Driver(), "hit")
	default:
		metrics.RecordSlotRead(i.Driver(), "miss")
	}
	return v, ok, err
}

// Disk is a driver that keeps one file per key under prefix on a storage disk.
type Disk struct {
	disk   storage.Disk
	prefix string
}

func NewDisk(d storage.Disk, prefix string) *Disk {
	return &Disk{disk: d, prefix: prefix}
}

func (d *Disk) path(key string) string { return d.prefix + "/" + key + ".json" }

func (d *Disk) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := d.disk.Get(ctx, d.path(key))
	if errors.Is(err, storage.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/disk: get %s: %w", key, err)
	}
	return string(data), true, nil
}

func (d *Disk) Set(ctx context.Context, key, value string) error {
	if err := d.disk.Put(ctx, d.path(key), []byte(value)); err != nil {
		return fmt.Errorf("kv/disk: set %s: %w", key, err)
	}
	return nil
}

func (d *Disk) Delete(ctx context.Context, key string) error {
	if err := d.disk.Delete(ctx, d.path(key)); err != nil {
		return fmt.Errorf("kv/disk: delete %s: %w", key, err)
	}
	return nil
}

func (d *Disk) Driver() string { return "disk" }

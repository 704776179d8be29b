// Package storage is a small filesystem abstraction with two drivers:
//   - "local": a directory on the local filesystem (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2)
//
// The session slot's disk driver and the catalog:export command write
// through it:
//
//	m, _ := storage.NewManagerFromConfig(ctx)
//	_ = m.Default().Put(ctx, "exports/catalog.json", data)
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get when nothing is stored at the path.
var ErrNotExist = errors.New("storage: file does not exist")

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, replacing anything already there.
	Put(ctx context.Context, path string, content []byte) error

	// Get returns the full content at path, or ErrNotExist.
	Get(ctx context.Context, path string) ([]byte, error)

	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes path. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error

	// Files lists the paths directly inside directory.
	Files(ctx context.Context, directory string) ([]string, error)

	// URL returns the public URL for path.
	URL(path string) string
}

package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has no value
var ErrNotFound = errors.New("storage: key not found")

// Storage is a durable string key-value store.
// Supports both a local filesystem directory and a Redis server.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

// Package storage defines the key-value engine contract the repositories are built on.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrForeignBatch is returned when a batch created by another engine is written.
	ErrForeignBatch = errors.New("batch was not created by this store")
	// ErrBatchTooLarge is returned when a batch exceeds what the engine commits
	// atomically. Nothing of the batch is applied; callers should split their work.
	ErrBatchTooLarge = errors.New("batch exceeds the engine transaction limit")
)

type (
	// Store is an ordered byte-key store with atomic batch writes.
	Store interface {
		// Get returns nil without error for a missing key.
		Get(ctx context.Context, key []byte) ([]byte, error)
		Has(ctx context.Context, key []byte) (bool, error)
		Put(ctx context.Context, key, value []byte) error
		Delete(ctx context.Context, key []byte) error
		NewBatch() Batch
		// Write applies every operation of the batch or none of them.
		Write(ctx context.Context, batch Batch) error
		// Iterate visits keys with the prefix in ascending order until fn returns false.
		// Slices passed to fn are only valid during the call.
		Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) (bool, error)) error
		Close() error
	}

	// Batch collects writes applied atomically by Store.Write.
	Batch interface {
		Put(key, value []byte)
		Delete(key []byte)
		Len() int
	}
)

// Concat builds a key from a prefix and its parts.
func Concat(prefix []byte, parts ...[]byte) []byte {
	size := len(prefix)
	for _, p := range parts {
		size += len(p)
	}
	key := make([]byte, 0, size)
	key = append(key, prefix...)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

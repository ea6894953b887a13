// Package leveldb implements storage.Store on goleveldb.
package leveldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/goleveldb/leveldb"
	"github.com/btcsuite/goleveldb/leveldb/opt"
	leveldbstorage "github.com/btcsuite/goleveldb/leveldb/storage"
	"github.com/btcsuite/goleveldb/leveldb/util"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
)

// Options tunes the on-disk database.
type Options struct {
	CacheSizeMiB int
	SyncWrites   bool
}

// Store is a goleveldb backed storage.Store.
type Store struct {
	db   *leveldb.DB
	sync bool
}

// Open opens (or creates) the database at path.
func Open(path string, options Options) (*Store, error) {
	if path == "" {
		return nil, errors.New("leveldb path is required")
	}
	o := &opt.Options{
		Compression: opt.SnappyCompression,
	}
	if options.CacheSizeMiB > 0 {
		o.BlockCacheCapacity = options.CacheSizeMiB * opt.MiB
	}
	db, err := leveldb.OpenFile(path, o)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &Store{db: db, sync: options.SyncWrites}, nil
}

// OpenMemory opens a volatile database, used by tests.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(leveldbstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leveldb get: %w", err)
	}
	return value, nil
}

func (s *Store) Has(ctx context.Context, key []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := s.db.Has(key, nil)
	if err != nil {
		return false, fmt.Errorf("leveldb has: %w", err)
	}
	return ok, nil
}

func (s *Store) Put(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Put(key, value, s.writeOptions()); err != nil {
		return fmt.Errorf("leveldb put: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Delete(key, s.writeOptions()); err != nil {
		return fmt.Errorf("leveldb delete: %w", err)
	}
	return nil
}

func (s *Store) NewBatch() storage.Batch {
	return &batch{b: new(leveldb.Batch)}
}

func (s *Store) Write(ctx context.Context, b storage.Batch) error {
	lb, ok := b.(*batch)
	if !ok {
		return storage.ErrForeignBatch
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Write(lb.b, s.writeOptions()); err != nil {
		return fmt.Errorf("leveldb write batch: %w", err)
	}
	return nil
}

func (s *Store) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) (bool, error)) error {
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := fn(iter.Key(), iter.Value())
		if err != nil {
			return err
		}
		if !next {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("leveldb iterate: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) writeOptions() *opt.WriteOptions {
	if !s.sync {
		return nil
	}
	return &opt.WriteOptions{Sync: true}
}

type batch struct {
	b *leveldb.Batch
}

func (b *batch) Put(key, value []byte) { b.b.Put(key, value) }
func (b *batch) Delete(key []byte)     { b.b.Delete(key) }
func (b *batch) Len() int              { return b.b.Len() }

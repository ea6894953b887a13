// Package badger implements storage.Store on BadgerDB.
package badger

import (
	"context"
	"errors"
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
	"go.uber.org/zap"
)

// Options tunes the on-disk database.
type Options struct {
	SyncWrites bool
	InMemory   bool
}

// Store is a BadgerDB backed storage.Store. Batches are applied inside a single
// read-write transaction; one over Badger's transaction limits is rejected whole
// with storage.ErrBatchTooLarge.
type Store struct {
	db *badgerdb.DB
}

// Open opens (or creates) the database at path.
func Open(path string, options Options, logger *zap.Logger) (*Store, error) {
	if path == "" && !options.InMemory {
		return nil, errors.New("badger path is required")
	}
	opts := badgerdb.DefaultOptions(path).
		WithSyncWrites(options.SyncWrites).
		WithLogger(&badgerLogger{logger: logger.Named("badger").Sugar()})
	if options.InMemory {
		opts = opts.WithDir("").WithValueDir("").WithInMemory(true)
	}
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("badger get: %w", err)
	}
	return value, nil
}

func (s *Store) Has(ctx context.Context, key []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := s.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("badger has: %w", err)
	}
	return true, nil
}

func (s *Store) Put(ctx context.Context, key, value []byte) error {
	b := s.NewBatch()
	b.Put(key, value)
	return s.Write(ctx, b)
}

func (s *Store) Delete(ctx context.Context, key []byte) error {
	b := s.NewBatch()
	b.Delete(key)
	return s.Write(ctx, b)
}

func (s *Store) NewBatch() storage.Batch {
	return &batch{}
}

func (s *Store) Write(ctx context.Context, b storage.Batch) error {
	bb, ok := b.(*batch)
	if !ok {
		return storage.ErrForeignBatch
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		for _, o := range bb.ops {
			var err error
			if o.delete {
				err = txn.Delete(o.key)
			} else {
				err = txn.Set(o.key, o.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, badgerdb.ErrTxnTooBig) {
		return fmt.Errorf("badger write batch of %d ops: %w: %w", len(bb.ops), storage.ErrBatchTooLarge, err)
	}
	if err != nil {
		return fmt.Errorf("badger write batch: %w", err)
	}
	return nil
}

func (s *Store) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) (bool, error)) error {
	return s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			var next bool
			err := item.Value(func(val []byte) error {
				var fnErr error
				next, fnErr = fn(item.Key(), val)
				return fnErr
			})
			if err != nil {
				return err
			}
			if !next {
				return nil
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}

type op struct {
	key    []byte
	value  []byte
	delete bool
}

type batch struct {
	ops []op
}

func (b *batch) Put(key, value []byte) {
	b.ops = append(b.ops, op{key: append([]byte(nil), key...), value: append([]byte(nil), value...)})
}

func (b *batch) Delete(key []byte) {
	b.ops = append(b.ops, op{key: append([]byte(nil), key...), delete: true})
}

func (b *batch) Len() int { return len(b.ops) }

type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{})   { l.logger.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...interface{}) { l.logger.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...interface{})    { l.logger.Debugf(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...interface{})   { l.logger.Debugf(format, args...) }

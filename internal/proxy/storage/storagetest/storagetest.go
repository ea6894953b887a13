// Package storagetest holds behaviour checks shared by every storage engine.
package storagetest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
)

// Run exercises the storage.Store contract against a fresh store from newStore.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()

	t.Run("missing key returns nil", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		got, err := s.Get(ctx, []byte("missing"))
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("Get() = %x, want nil", got)
		}
		ok, err := s.Has(ctx, []byte("missing"))
		if err != nil || ok {
			t.Fatalf("Has() = %v, %v, want false, nil", ok, err)
		}
	})

	t.Run("put get delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		if err := s.Put(ctx, []byte("k"), []byte("v")); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
		got, err := s.Get(ctx, []byte("k"))
		if err != nil || !bytes.Equal(got, []byte("v")) {
			t.Fatalf("Get() = %q, %v", got, err)
		}
		if err := s.Delete(ctx, []byte("k")); err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if got, _ := s.Get(ctx, []byte("k")); got != nil {
			t.Fatalf("Get() after delete = %q", got)
		}
	})

	t.Run("batch is applied atomically", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		if err := s.Put(ctx, []byte("a"), []byte("1")); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
		b := s.NewBatch()
		b.Delete([]byte("a"))
		b.Put([]byte("b"), []byte("2"))
		b.Put([]byte("c"), []byte("3"))
		if b.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", b.Len())
		}
		if err := s.Write(ctx, b); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		if got, _ := s.Get(ctx, []byte("a")); got != nil {
			t.Fatalf("a should be deleted, got %q", got)
		}
		if got, _ := s.Get(ctx, []byte("c")); !bytes.Equal(got, []byte("3")) {
			t.Fatalf("c = %q, want 3", got)
		}
	})

	t.Run("iterate prefix in order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for _, k := range []string{"x2", "p3", "p1", "p2", "q1"} {
			if err := s.Put(ctx, []byte(k), []byte(k)); err != nil {
				t.Fatalf("Put() error: %v", err)
			}
		}
		var keys []string
		err := s.Iterate(ctx, []byte("p"), func(key, _ []byte) (bool, error) {
			keys = append(keys, string(key))
			return len(keys) < 2, nil
		})
		if err != nil {
			t.Fatalf("Iterate() error: %v", err)
		}
		if len(keys) != 2 || keys[0] != "p1" || keys[1] != "p2" {
			t.Fatalf("Iterate() keys = %v, want [p1 p2]", keys)
		}
	})

	t.Run("iterate propagates callback error", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		if err := s.Put(ctx, []byte("p1"), []byte("v")); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
		boom := errors.New("boom")
		err := s.Iterate(ctx, []byte("p"), func(_, _ []byte) (bool, error) {
			return false, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("Iterate() error = %v, want %v", err, boom)
		}
	})

	t.Run("foreign batch rejected", func(t *testing.T) {
		s := newStore(t)
		if err := s.Write(context.Background(), foreignBatch{}); !errors.Is(err, storage.ErrForeignBatch) {
			t.Fatalf("Write() error = %v, want ErrForeignBatch", err)
		}
	})
}

type foreignBatch struct{}

func (foreignBatch) Put(_, _ []byte) {}
func (foreignBatch) Delete(_ []byte) {}
func (foreignBatch) Len() int        { return 0 }

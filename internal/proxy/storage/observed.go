package storage

import (
	"context"
	"time"
)

// Metrics records storage operation outcomes.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// ObservedStore decorates a Store with operation metrics.
type ObservedStore struct {
	Store
	metrics Metrics
}

// NewObservedStore wraps store so every call is reported to metrics.
func NewObservedStore(store Store, metrics Metrics) *ObservedStore {
	return &ObservedStore{Store: store, metrics: metrics}
}

func (s *ObservedStore) Get(ctx context.Context, key []byte) (value []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get", err, started)
	}()
	return s.Store.Get(ctx, key)
}

func (s *ObservedStore) Has(ctx context.Context, key []byte) (ok bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("has", err, started)
	}()
	return s.Store.Has(ctx, key)
}

func (s *ObservedStore) Put(ctx context.Context, key, value []byte) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("put", err, started)
	}()
	return s.Store.Put(ctx, key, value)
}

func (s *ObservedStore) Delete(ctx context.Context, key []byte) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("delete", err, started)
	}()
	return s.Store.Delete(ctx, key)
}

func (s *ObservedStore) Write(ctx context.Context, batch Batch) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("write_batch", err, started)
	}()
	return s.Store.Write(ctx, batch)
}

func (s *ObservedStore) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) (bool, error)) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("iterate", err, started)
	}()
	return s.Store.Iterate(ctx, prefix, fn)
}

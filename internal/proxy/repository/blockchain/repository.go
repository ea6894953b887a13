// Package blockchain stores the header chain, block bodies and the transaction
// index of the light node.
package blockchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrCorrupted reports an index entry whose target is missing or unreadable.
	ErrCorrupted = errors.New("blockchain storage corrupted")
	// ErrChainLinkage reports headers that do not extend the best chain.
	ErrChainLinkage = errors.New("header does not link to the best chain")
	// ErrNoGenesis is returned by tip lookups before the genesis header is stored.
	ErrNoGenesis = errors.New("genesis header is not stored")
)

// Repository is the chain-indexed header and block store.
type Repository struct {
	store  storage.Store
	params *chaincfg.Params
	logger *zap.Logger

	tipMu sync.Mutex
	saves singleflight.Group
}

// New constructs a Repository on top of store.
func New(store storage.Store, params *chaincfg.Params, logger *zap.Logger) *Repository {
	return &Repository{
		store:  store,
		params: params,
		logger: logger.Named("blockchain_repository"),
	}
}

// Init stores the genesis block of the configured network when the store is empty.
func (r *Repository) Init(ctx context.Context) error {
	r.tipMu.Lock()
	defer r.tipMu.Unlock()

	ok, err := r.store.Has(ctx, keyTip)
	if err != nil {
		return fmt.Errorf("check tip: %w", err)
	}
	if ok {
		return nil
	}

	var buf bytes.Buffer
	if err := r.params.GenesisBlock.Serialize(&buf); err != nil {
		return fmt.Errorf("serialize genesis: %w", err)
	}
	genesis := model.Block{Hash: *r.params.GenesisHash, Data: buf.Bytes(), Height: 0}
	msg, locs, err := bitcoin.ParseBlock(genesis.Data)
	if err != nil {
		return fmt.Errorf("parse genesis: %w", err)
	}

	batch := r.store.NewBatch()
	if err := putBody(batch, genesis, msg, locs); err != nil {
		return err
	}
	header := genesis.Header()
	batch.Put(headerKey(genesis.Hash), headerRecord{
		connected: true,
		chainwork: bitcoin.Work(r.params.GenesisBlock.Header.Bits),
		raw:       header.Data,
	}.encode())
	batch.Put(heightKey(0), genesis.Hash[:])
	batch.Put(keyTip, genesis.Hash[:])
	if err := r.store.Write(ctx, batch); err != nil {
		return fmt.Errorf("write genesis: %w", err)
	}
	r.logger.Info("stored genesis block", zap.String("hash", genesis.Hash.String()))
	return nil
}

func (r *Repository) headerRecord(ctx context.Context, hash chainhash.Hash) (*headerRecord, error) {
	value, err := r.store.Get(ctx, headerKey(hash))
	if err != nil {
		return nil, fmt.Errorf("get header %s: %w", hash, err)
	}
	if value == nil {
		return nil, nil
	}
	rec, err := decodeHeaderRecord(value)
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", hash, err)
	}
	return &rec, nil
}

func (r *Repository) tipHash(ctx context.Context) (*chainhash.Hash, error) {
	value, err := r.store.Get(ctx, keyTip)
	if err != nil {
		return nil, fmt.Errorf("get tip: %w", err)
	}
	if value == nil {
		return nil, nil
	}
	hash, err := decodeHash(value)
	if err != nil {
		return nil, fmt.Errorf("tip: %w", err)
	}
	return &hash, nil
}

// tipRecord returns the best header record, or nil before genesis.
func (r *Repository) tipRecord(ctx context.Context) (*chainhash.Hash, *headerRecord, error) {
	hash, err := r.tipHash(ctx)
	if err != nil || hash == nil {
		return nil, nil, err
	}
	rec, err := r.headerRecord(ctx, *hash)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil || !rec.connected {
		return nil, nil, fmt.Errorf("%w: tip %s has no connected header", ErrCorrupted, hash)
	}
	return hash, rec, nil
}

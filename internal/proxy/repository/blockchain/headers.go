package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"go.uber.org/zap"
)

const medianTimeBlocks = 11

// GetHeader returns the stored header, or nil for an unknown hash.
func (r *Repository) GetHeader(ctx context.Context, hash chainhash.Hash) (*model.BlockHeader, error) {
	rec, err := r.headerRecord(ctx, hash)
	if err != nil || rec == nil {
		return nil, err
	}
	header := rec.header(hash)
	return &header, nil
}

// GetHeaderAtHeight returns the best chain header at height, or nil above the tip.
func (r *Repository) GetHeaderAtHeight(ctx context.Context, height uint32) (*model.BlockHeader, error) {
	hash, err := r.GetBlockHash(ctx, height)
	if err != nil || hash == nil {
		return nil, err
	}
	header, err := r.GetHeader(ctx, *hash)
	if err != nil {
		return nil, err
	}
	if header == nil || !header.Connected() {
		return nil, fmt.Errorf("%w: height %d points to missing header %s", ErrCorrupted, height, hash)
	}
	return header, nil
}

// GetBlockHash returns the best chain hash at height, or nil above the tip.
func (r *Repository) GetBlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error) {
	value, err := r.store.Get(ctx, heightKey(height))
	if err != nil {
		return nil, fmt.Errorf("get hash at height %d: %w", height, err)
	}
	if value == nil {
		return nil, nil
	}
	hash, err := decodeHash(value)
	if err != nil {
		return nil, fmt.Errorf("height %d: %w", height, err)
	}
	return &hash, nil
}

// GetBestHeader returns the chain tip.
func (r *Repository) GetBestHeader(ctx context.Context) (model.BlockHeader, error) {
	hash, rec, err := r.tipRecord(ctx)
	if err != nil {
		return model.BlockHeader{}, err
	}
	if rec == nil {
		return model.BlockHeader{}, ErrNoGenesis
	}
	return rec.header(*hash), nil
}

func (r *Repository) GetBestHeight(ctx context.Context) (uint32, error) {
	header, err := r.GetBestHeader(ctx)
	if err != nil {
		return 0, err
	}
	return header.HeightOrZero(), nil
}

func (r *Repository) GetBestBlockHash(ctx context.Context) (chainhash.Hash, error) {
	header, err := r.GetBestHeader(ctx)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return header.Hash, nil
}

// GetChainwork returns the accumulated work up to the header, or nil for unknown
// or pending headers.
func (r *Repository) GetChainwork(ctx context.Context, hash chainhash.Hash) (*big.Int, error) {
	rec, err := r.headerRecord(ctx, hash)
	if err != nil || rec == nil || !rec.connected {
		return nil, err
	}
	return rec.chainwork, nil
}

// GetMedianTime returns the median timestamp of the header and up to ten ancestors.
func (r *Repository) GetMedianTime(ctx context.Context, hash chainhash.Hash) (time.Time, error) {
	timestamps := make([]int64, 0, medianTimeBlocks)
	current := hash
	for len(timestamps) < medianTimeBlocks {
		header, err := r.GetHeader(ctx, current)
		if err != nil {
			return time.Time{}, err
		}
		if header == nil {
			break
		}
		timestamps = append(timestamps, header.Timestamp().Unix())
		current = header.PrevBlockHash()
	}
	if len(timestamps) == 0 {
		return time.Time{}, nil
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })
	return time.Unix(timestamps[len(timestamps)/2], 0), nil
}

// SaveHeaders appends headers on top of the best chain. The first header must
// extend the tip, or be the network genesis on an empty store.
func (r *Repository) SaveHeaders(ctx context.Context, headers []model.BlockHeader) error {
	if len(headers) == 0 {
		return nil
	}

	r.tipMu.Lock()
	defer r.tipMu.Unlock()

	tipHash, tip, err := r.tipRecord(ctx)
	if err != nil {
		return err
	}

	var (
		height uint32
		prev   chainhash.Hash
		work   = new(big.Int)
	)
	if tip != nil {
		height = tip.height + 1
		prev = *tipHash
		work.Set(tip.chainwork)
	} else if headers[0].Hash != *r.params.GenesisHash {
		return fmt.Errorf("%w: first header %s is not genesis", ErrChainLinkage, headers[0].Hash)
	}

	batch := r.store.NewBatch()
	for i, h := range headers {
		hdr, err := h.Wire()
		if err != nil {
			return err
		}
		hash := hdr.BlockHash()
		if hash != h.Hash {
			return fmt.Errorf("header hash mismatch: expected %s, got %s", h.Hash, hash)
		}
		if (tip != nil || i > 0) && h.PrevBlockHash() != prev {
			return fmt.Errorf("%w: header %s at height %d has parent %s, expected %s",
				ErrChainLinkage, hash, height, h.PrevBlockHash(), prev)
		}
		if err := bitcoin.CheckProofOfWork(hdr, r.params); err != nil {
			return fmt.Errorf("header %s at height %d: %w", hash, height, err)
		}
		work.Add(work, bitcoin.Work(hdr.Bits))
		batch.Put(headerKey(hash), headerRecord{
			connected: true,
			height:    height,
			chainwork: work,
			raw:       h.Data,
		}.encode())
		batch.Put(heightKey(height), hash[:])
		prev = hash
		height++
	}
	batch.Put(keyTip, prev[:])

	if err := r.store.Write(ctx, batch); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	r.logger.Debug("headers saved",
		zap.Int("count", len(headers)),
		zap.Uint32("tip_height", height-1),
		zap.String("tip_hash", prev.String()),
	)
	return nil
}

// RemoveHeadersAbove disconnects every best chain header above height and moves
// the tip back to height. Disconnected headers and their bodies stay addressable
// by hash.
func (r *Repository) RemoveHeadersAbove(ctx context.Context, height uint32) (int, error) {
	r.tipMu.Lock()
	defer r.tipMu.Unlock()

	_, tip, err := r.tipRecord(ctx)
	if err != nil {
		return 0, err
	}
	if tip == nil {
		return 0, ErrNoGenesis
	}
	if tip.height <= height {
		return 0, nil
	}

	newTip, err := r.GetBlockHash(ctx, height)
	if err != nil {
		return 0, err
	}
	if newTip == nil {
		return 0, fmt.Errorf("%w: no hash at height %d", ErrCorrupted, height)
	}

	batch := r.store.NewBatch()
	removed := 0
	for h := tip.height; h > height; h-- {
		hash, err := r.GetBlockHash(ctx, h)
		if err != nil {
			return 0, err
		}
		if hash == nil {
			return 0, fmt.Errorf("%w: no hash at height %d", ErrCorrupted, h)
		}
		rec, err := r.headerRecord(ctx, *hash)
		if err != nil {
			return 0, err
		}
		if rec == nil {
			return 0, fmt.Errorf("%w: height %d points to missing header %s", ErrCorrupted, h, hash)
		}
		rec.connected = false
		batch.Put(headerKey(*hash), rec.encode())
		batch.Delete(heightKey(h))
		removed++
	}
	batch.Put(keyTip, newTip[:])

	if err := r.store.Write(ctx, batch); err != nil {
		return 0, fmt.Errorf("write rollback: %w", err)
	}
	r.logger.Warn("best chain rolled back",
		zap.Uint32("from_height", tip.height),
		zap.Uint32("to_height", height),
		zap.String("tip_hash", newTip.String()),
	)
	return removed, nil
}

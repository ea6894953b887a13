package follower

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/repository/blockchain"
	"go.uber.org/zap"
)

// ErrGenesisMismatch means the header source serves another network.
var ErrGenesisMismatch = errors.New("header source disagrees on block 1 parent")

type syncResult struct {
	saved int
	tip   uint32
	more  bool
}

type headerSyncer struct {
	source HeaderSource
	chain  BlockchainRepository
	chunk  int
	logger *zap.Logger
}

// Sync appends one chunk of headers on top of the local tip. When the chunk
// does not link, the tip header is dropped so the next call refetches from its parent.
func (h *headerSyncer) Sync(ctx context.Context) (syncResult, error) {
	best, err := h.chain.GetBestHeader(ctx)
	if err != nil {
		return syncResult{}, fmt.Errorf("get best header: %w", err)
	}
	tip := best.HeightOrZero()
	start := tip + 1

	raws, err := h.source.GetHeaders(ctx, start, h.chunk)
	if err != nil {
		return syncResult{tip: tip}, fmt.Errorf("get headers from %d: %w", start, err)
	}
	if len(raws) == 0 {
		return syncResult{tip: tip}, nil
	}

	headers := make([]model.BlockHeader, 0, len(raws))
	for i, raw := range raws {
		header, err := model.NewBlockHeader(raw, model.HeightPtr(start+uint32(i)))
		if err != nil {
			return syncResult{tip: tip}, fmt.Errorf("header at %d: %w", start+uint32(i), err)
		}
		headers = append(headers, header)
	}

	err = h.chain.SaveHeaders(ctx, headers)
	switch {
	case err == nil:
	case errors.Is(err, blockchain.ErrChainLinkage):
		return h.rollback(ctx, tip)
	default:
		return syncResult{tip: tip}, fmt.Errorf("save headers from %d: %w", start, err)
	}

	newTip := tip + uint32(len(headers))
	h.logger.Info("headers saved", zap.Uint32("from", start), zap.Uint32("tip", newTip))
	return syncResult{saved: len(headers), tip: newTip, more: len(headers) >= h.chunk}, nil
}

func (h *headerSyncer) rollback(ctx context.Context, tip uint32) (syncResult, error) {
	if tip == 0 {
		return syncResult{}, ErrGenesisMismatch
	}
	removed, err := h.chain.RemoveHeadersAbove(ctx, tip-1)
	if err != nil {
		return syncResult{tip: tip}, fmt.Errorf("remove headers above %d: %w", tip-1, err)
	}
	h.logger.Warn("chain reorganized, tip header dropped",
		zap.Uint32("height", tip), zap.Int("removed", removed))
	return syncResult{tip: tip - 1, more: true}, nil
}

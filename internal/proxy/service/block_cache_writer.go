package service

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/pkg/batcher"
	"go.uber.org/zap"
)

// BlockCacheWriter stores blocks fetched on behalf of queries in the background.
// Save never blocks and write failures are only logged.
type BlockCacheWriter struct {
	repo    BlockSaver
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Block]
}

// NewBlockCacheWriter builds a writer flushing into repo.
func NewBlockCacheWriter(repo BlockSaver, logger *zap.Logger) *BlockCacheWriter {
	w := &BlockCacheWriter{
		repo:   repo,
		logger: logger.Named("block_cache"),
	}
	w.batcher = batcher.New[model.Block](
		w.logger.Named("batcher"),
		w.flush,
		blockCacheFlushSize,
		blockCacheFlushInterval,
		blockCacheRPS,
	)
	return w
}

func (w *BlockCacheWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *BlockCacheWriter) Stop() {
	w.batcher.Stop()
}

// Save queues a block, dropping it when the queue is full or stopped.
func (w *BlockCacheWriter) Save(block model.Block) {
	if err := w.batcher.TryAdd(block); err != nil {
		w.logger.Debug("block not cached", zap.Stringer("hash", block.Hash), zap.Error(err))
	}
}

func (w *BlockCacheWriter) flush(ctx context.Context, blocks []model.Block) error {
	for _, block := range blocks {
		if err := w.repo.SaveBlock(ctx, block); err != nil {
			w.logger.Warn("save block failed", zap.Stringer("hash", block.Hash), zap.Error(err))
			continue
		}
		w.logger.Debug("block cached", zap.Stringer("hash", block.Hash), zap.Uint32("height", block.Height))
	}
	return nil
}

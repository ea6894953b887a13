package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/pkg/workerpool"
	"go.uber.org/zap"
)

var (
	// ErrUTXOSetDiverged means the UTXO set tip left the best chain. The set
	// keeps no undo data, so it has to be rebuilt.
	ErrUTXOSetDiverged  = errors.New("utxo set diverged from the best chain")
	errBlockUnavailable = errors.New("block unavailable")
)

type utxoProcessor struct {
	chain       BlockchainRepository
	blocks      BlockSource
	utxo        UTXORepository
	index       IndexWriter
	metrics     Metrics
	reorgDepth  uint32
	batchSize   int
	workers     int
	startHeight uint32
	logger      *zap.Logger
}

// Process applies the next batch of buried blocks and returns how many were
// applied together with the resulting UTXO set height.
func (p *utxoProcessor) Process(ctx context.Context, bestHeight uint32) (int, uint32, error) {
	next, current, err := p.nextHeight(ctx)
	if err != nil {
		return 0, current, err
	}
	if bestHeight < p.reorgDepth {
		return 0, current, nil
	}
	target := bestHeight - p.reorgDepth
	if next > target {
		return 0, current, nil
	}
	end := target
	if span := uint32(p.batchSize - 1); next+span < end {
		end = next + span
	}

	heights := make([]uint32, 0, end-next+1)
	for h := next; h <= end; h++ {
		heights = append(heights, h)
	}
	blocks, err := workerpool.Map(ctx, p.workers, heights, p.fetchBlock)
	if err != nil {
		return 0, current, err
	}

	diff, err := p.utxo.ProcessBlocks(ctx, blocks)
	for errors.Is(err, storage.ErrBatchTooLarge) && len(blocks) > 1 {
		blocks = blocks[:len(blocks)/2]
		p.logger.Warn("utxo batch exceeds storage limits, retrying with fewer blocks",
			zap.Uint32("from", next), zap.Int("blocks", len(blocks)))
		diff, err = p.utxo.ProcessBlocks(ctx, blocks)
	}
	end = blocks[len(blocks)-1].Height
	if err != nil {
		return 0, current, fmt.Errorf("process blocks %d..%d: %w", next, end, err)
	}
	p.logger.Info("blocks applied to utxo set",
		zap.Uint32("from", next), zap.Uint32("to", end),
		zap.Int("created", len(diff.Created)), zap.Int("spent", len(diff.Spent)))

	p.writeIndex(ctx, diff)
	return len(blocks), end, nil
}

// nextHeight returns the next height to apply and the current set height,
// checking that the set tip is still on the best chain.
func (p *utxoProcessor) nextHeight(ctx context.Context) (uint32, uint32, error) {
	tip, err := p.utxo.Tip(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("utxo tip: %w", err)
	}
	if tip == nil {
		return p.startHeight, 0, nil
	}
	hash, err := p.chain.GetBlockHash(ctx, tip.Height)
	if err != nil {
		return 0, tip.Height, fmt.Errorf("get block hash at %d: %w", tip.Height, err)
	}
	if hash == nil {
		// headers were rolled back below the set tip; wait for them to come back
		return tip.Height + 1, tip.Height, nil
	}
	if *hash != tip.Hash {
		return 0, tip.Height, fmt.Errorf("%w: tip %s at %d, best chain has %s", ErrUTXOSetDiverged, tip.Hash, tip.Height, hash)
	}
	return tip.Height + 1, tip.Height, nil
}

func (p *utxoProcessor) fetchBlock(ctx context.Context, height uint32) (model.DeserializedBlock, error) {
	return loadBlock(ctx, p.chain, p.blocks, height)
}

// loadBlock reads the best chain block at height from the repository, falling
// back to the block source and storing what it delivers.
func loadBlock(ctx context.Context, chain BlockchainRepository, source BlockSource, height uint32) (model.DeserializedBlock, error) {
	hash, err := chain.GetBlockHash(ctx, height)
	if err != nil {
		return model.DeserializedBlock{}, fmt.Errorf("get block hash at %d: %w", height, err)
	}
	if hash == nil {
		return model.DeserializedBlock{}, fmt.Errorf("no header at %d: %w", height, errBlockUnavailable)
	}

	block, err := chain.GetBlock(ctx, *hash)
	if err != nil {
		return model.DeserializedBlock{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	if block == nil {
		data, err := source.GetBlock(ctx, *hash)
		if err != nil {
			return model.DeserializedBlock{}, fmt.Errorf("fetch block %s: %w", hash, err)
		}
		if data == nil {
			return model.DeserializedBlock{}, fmt.Errorf("block %s at %d: %w", hash, height, errBlockUnavailable)
		}
		block = &model.Block{Hash: *hash, Data: data, Height: height}
		if err := chain.SaveBlock(ctx, *block); err != nil {
			return model.DeserializedBlock{}, fmt.Errorf("save block %s: %w", hash, err)
		}
	}
	return bitcoin.DeserializeBlock(*block)
}

// writeIndex feeds the secondary index. The UTXO set already moved on, so a
// failure is logged and counted rather than retried.
func (p *utxoProcessor) writeIndex(ctx context.Context, diff model.UTXODiff) {
	if p.index == nil || diff.Empty() {
		return
	}
	started := time.Now()
	err := p.index.WriteDiff(ctx, diff)
	p.metrics.ObserveIndexWrite(err, len(diff.Created)+len(diff.Spent), started)
	if err != nil {
		p.logger.Error("index write failed", zap.Error(err))
	}
}

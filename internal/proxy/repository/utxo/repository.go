// Package utxo maintains the unspent output set as blocks are applied in
// height order.
package utxo

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
	"go.uber.org/zap"
)

var (
	// ErrMissingUTXO reports an input referencing an output that is absent or already spent.
	ErrMissingUTXO = errors.New("referenced output is not in the utxo set")
	// ErrBlocksOutOfOrder reports blocks that do not continue the set tip without gaps.
	ErrBlocksOutOfOrder = errors.New("blocks are not in consecutive height order")
	// ErrAlreadyApplied reports blocks at or below the set tip.
	ErrAlreadyApplied = errors.New("blocks already applied to the utxo set")
)

// Repository is the UTXO set. ProcessBlocks calls are serialized per instance.
type Repository struct {
	store  storage.Store
	logger *zap.Logger
	lane   chan struct{}
}

// New constructs a Repository on top of store.
func New(store storage.Store, logger *zap.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger.Named("utxo_repository"),
		lane:   make(chan struct{}, 1),
	}
}

func (r *Repository) acquire(ctx context.Context) error {
	select {
	case r.lane <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Repository) release() {
	<-r.lane
}

// Tip returns the last applied block, or nil for an empty set.
func (r *Repository) Tip(ctx context.Context) (*model.UTXOTip, error) {
	value, err := r.store.Get(ctx, keyTip)
	if err != nil {
		return nil, fmt.Errorf("get utxo tip: %w", err)
	}
	if value == nil {
		return nil, nil
	}
	tip, err := decodeTip(value)
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

// GetUTXO returns the unspent output, or nil when it is spent or unknown.
func (r *Repository) GetUTXO(ctx context.Context, op model.OutPoint) (*model.UTXO, error) {
	value, err := r.store.Get(ctx, outPointKey(op))
	if err != nil {
		return nil, fmt.Errorf("get utxo %s: %w", op, err)
	}
	if value == nil {
		return nil, nil
	}
	u, err := decodeUTXO(op, value)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Stats walks the whole set.
func (r *Repository) Stats(ctx context.Context) (model.UTXOSetStats, error) {
	var stats model.UTXOSetStats
	tip, err := r.Tip(ctx)
	if err != nil {
		return stats, err
	}
	if tip != nil {
		stats.Tip = *tip
	}
	err = r.store.Iterate(ctx, prefixUTXO, func(key, value []byte) (bool, error) {
		op, err := decodeOutPointKey(key)
		if err != nil {
			return false, err
		}
		u, err := decodeUTXO(op, value)
		if err != nil {
			return false, err
		}
		stats.Outputs++
		stats.TotalAmount += u.Amount
		return true, nil
	})
	if err != nil {
		return stats, fmt.Errorf("iterate utxo set: %w", err)
	}
	return stats, nil
}

// ProcessBlocks applies blocks to the set and returns the net diff. Blocks must
// continue the set tip in ascending height order without gaps. Either every
// block is applied in one storage batch or the set is left untouched.
func (r *Repository) ProcessBlocks(ctx context.Context, blocks []model.DeserializedBlock) (model.UTXODiff, error) {
	if len(blocks) == 0 {
		return model.UTXODiff{}, nil
	}
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Height != blocks[i-1].Height+1 {
			return model.UTXODiff{}, fmt.Errorf("%w: height %d follows %d",
				ErrBlocksOutOfOrder, blocks[i].Height, blocks[i-1].Height)
		}
	}

	if err := r.acquire(ctx); err != nil {
		return model.UTXODiff{}, err
	}
	defer r.release()

	tip, err := r.Tip(ctx)
	if err != nil {
		return model.UTXODiff{}, err
	}
	first := blocks[0].Height
	if tip != nil {
		if first <= tip.Height {
			return model.UTXODiff{}, fmt.Errorf("%w: height %d, tip %d", ErrAlreadyApplied, first, tip.Height)
		}
		if first != tip.Height+1 {
			return model.UTXODiff{}, fmt.Errorf("%w: height %d after tip %d", ErrBlocksOutOfOrder, first, tip.Height)
		}
	}

	pending := newOverlay(r.GetUTXO)
	for _, block := range blocks {
		if err := applyBlock(ctx, pending, block); err != nil {
			return model.UTXODiff{}, fmt.Errorf("block %s at height %d: %w", block.Hash, block.Height, err)
		}
	}

	last := blocks[len(blocks)-1]
	diff := pending.diff()
	if err := r.write(ctx, pending, diff, model.UTXOTip{Height: last.Height, Hash: last.Hash}); err != nil {
		return model.UTXODiff{}, err
	}

	r.logger.Debug("blocks applied",
		zap.Uint32("from_height", first),
		zap.Uint32("to_height", last.Height),
		zap.Int("spent", len(diff.Spent)),
		zap.Int("created", len(diff.Created)),
	)
	return diff, nil
}

func applyBlock(ctx context.Context, pending *overlay, block model.DeserializedBlock) error {
	for _, tx := range block.Transactions {
		if !tx.IsCoinbase {
			for _, in := range tx.Inputs {
				op := model.OutPoint{TxID: in.PrevTxHash, Index: in.PrevIndex}
				if err := pending.spend(ctx, op, block.Height); err != nil {
					return fmt.Errorf("tx %s: %w", tx.Hash, err)
				}
			}
		}
		for i, out := range tx.Outputs {
			pending.create(model.UTXO{
				TxID:     tx.Hash,
				Index:    uint32(i),
				Height:   block.Height,
				Amount:   out.Amount,
				Script:   out.Script,
				Witness:  bitcoin.WitnessProgram(out.Script),
				Coinbase: tx.IsCoinbase,
			})
		}
	}
	return nil
}

func (r *Repository) write(ctx context.Context, pending *overlay, diff model.UTXODiff, tip model.UTXOTip) error {
	batch := r.store.NewBatch()
	for _, spent := range diff.Spent {
		batch.Delete(outPointKey(spent.OutPoint))
	}
	for op := range pending.tombstones {
		batch.Delete(outPointKey(op))
	}
	for _, u := range diff.Created {
		value, err := encodeUTXO(u)
		if err != nil {
			return err
		}
		batch.Put(outPointKey(u.OutPoint()), value)
	}
	batch.Put(keyTip, encodeTip(tip))

	if err := r.store.Write(ctx, batch); err != nil {
		return fmt.Errorf("write utxo batch: %w", err)
	}
	return nil
}

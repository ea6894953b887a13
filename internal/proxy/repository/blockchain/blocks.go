package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/pkg/safe"
	"go.uber.org/zap"
)

// GetBlock returns a locally stored block, or nil when the body is not cached.
func (r *Repository) GetBlock(ctx context.Context, hash chainhash.Hash) (*model.Block, error) {
	data, err := r.store.Get(ctx, blockKey(hash))
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	if data == nil {
		return nil, nil
	}
	if len(data) < model.HeaderSize {
		return nil, fmt.Errorf("%w: block %s body of %d bytes", ErrCorrupted, hash, len(data))
	}
	rec, err := r.headerRecord(ctx, hash)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: block %s stored without header", ErrCorrupted, hash)
	}
	return &model.Block{Hash: hash, Data: data, Height: rec.height}, nil
}

// SaveBlock stores the block body, its transaction index and, when unknown, its
// header in one batch. Blocks failing proof of work or whose transactions do not
// match the header merkle root are rejected. A block extending the tip advances it before SaveBlock
// returns. Concurrent saves of the same hash share one write.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) error {
	msg, locs, err := bitcoin.ParseBlock(block.Data)
	if err != nil {
		return fmt.Errorf("save block %s: %w", block.Hash, err)
	}
	if got := msg.BlockHash(); got != block.Hash {
		return fmt.Errorf("save block: hash mismatch: expected %s, got %s", block.Hash, got)
	}
	if err := bitcoin.CheckProofOfWork(&msg.Header, r.params); err != nil {
		return fmt.Errorf("save block %s: %w", block.Hash, err)
	}
	if err := bitcoin.CheckMerkleRoot(msg); err != nil {
		return fmt.Errorf("save block %s: %w", block.Hash, err)
	}

	// the shared write must not fail for every waiter when the first caller goes away
	shared := context.WithoutCancel(ctx)
	_, err, _ = r.saves.Do(block.Hash.String(), func() (interface{}, error) {
		return nil, r.saveBlock(shared, block, msg, locs)
	})
	return err
}

func (r *Repository) saveBlock(ctx context.Context, block model.Block, msg *wire.MsgBlock, locs []wire.TxLoc) error {
	batch := r.store.NewBatch()
	if err := putBody(batch, block, msg, locs); err != nil {
		return err
	}

	rec, err := r.headerRecord(ctx, block.Hash)
	if err != nil {
		return err
	}
	if rec != nil && rec.connected {
		return r.writeBlock(ctx, block, batch)
	}

	r.tipMu.Lock()
	defer r.tipMu.Unlock()

	if rec, err = r.headerRecord(ctx, block.Hash); err != nil {
		return err
	}
	if rec != nil && rec.connected {
		return r.writeBlock(ctx, block, batch)
	}

	tipHash, tip, err := r.tipRecord(ctx)
	if err != nil {
		return err
	}
	header := block.Header()
	switch {
	case tip != nil && header.PrevBlockHash() == *tipHash && block.Height == tip.height+1:
		work := new(big.Int).Add(tip.chainwork, bitcoin.Work(msg.Header.Bits))
		batch.Put(headerKey(block.Hash), headerRecord{
			connected: true,
			height:    block.Height,
			chainwork: work,
			raw:       header.Data,
		}.encode())
		batch.Put(heightKey(block.Height), block.Hash[:])
		batch.Put(keyTip, block.Hash[:])
		r.logger.Debug("block extends tip",
			zap.Uint32("height", block.Height),
			zap.String("hash", block.Hash.String()),
		)
	case rec == nil:
		batch.Put(headerKey(block.Hash), headerRecord{
			height: block.Height,
			raw:    header.Data,
		}.encode())
	}
	return r.writeBlock(ctx, block, batch)
}

func (r *Repository) writeBlock(ctx context.Context, block model.Block, batch storage.Batch) error {
	if err := r.store.Write(ctx, batch); err != nil {
		return fmt.Errorf("write block %s: %w", block.Hash, err)
	}
	return nil
}

func putBody(batch storage.Batch, block model.Block, msg *wire.MsgBlock, locs []wire.TxLoc) error {
	batch.Put(blockKey(block.Hash), block.Data)
	for i, tx := range msg.Transactions {
		offset, err := safe.Uint32(locs[i].TxStart)
		if err != nil {
			return fmt.Errorf("tx offset: %w", err)
		}
		length, err := safe.Uint32(locs[i].TxLen)
		if err != nil {
			return fmt.Errorf("tx length: %w", err)
		}
		batch.Put(txIndexKey(tx.TxHash()), txIndexRecord{
			block:  block.Hash,
			offset: offset,
			length: length,
		}.encode())
	}
	return nil
}

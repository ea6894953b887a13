package blockchain

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// GetTransaction returns the raw transaction from a locally stored block, or nil
// when the transaction is not indexed.
func (r *Repository) GetTransaction(ctx context.Context, txid chainhash.Hash) ([]byte, error) {
	value, err := r.store.Get(ctx, txIndexKey(txid))
	if err != nil {
		return nil, fmt.Errorf("get tx index %s: %w", txid, err)
	}
	if value == nil {
		return nil, nil
	}
	loc, err := decodeTxIndexRecord(value)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", txid, err)
	}
	body, err := r.store.Get(ctx, blockKey(loc.block))
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", loc.block, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: tx %s indexed in missing block %s", ErrCorrupted, txid, loc.block)
	}
	end := uint64(loc.offset) + uint64(loc.length)
	if end > uint64(len(body)) {
		return nil, fmt.Errorf("%w: tx %s outside block %s", ErrCorrupted, txid, loc.block)
	}
	raw := make([]byte, loc.length)
	copy(raw, body[loc.offset:end])
	return raw, nil
}

package follower

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
)

// mempoolConfirmer evicts transactions mined in freshly synced blocks. Only the
// newest depth blocks of a sync step are loaded; older ones cannot hold
// transactions the pool still tracks.
type mempoolConfirmer struct {
	chain   BlockchainRepository
	blocks  BlockSource
	mempool Mempool
	depth   uint32
	logger  *zap.Logger
}

// Confirm reports every block saved by res to the mempool. A block that cannot
// be loaded still advances the pool height; its transactions expire by TTL.
func (c *mempoolConfirmer) Confirm(ctx context.Context, res syncResult) {
	if res.saved == 0 {
		return
	}
	from := res.tip - uint32(res.saved) + 1
	if res.tip >= c.depth && from+c.depth <= res.tip {
		from = res.tip - c.depth + 1
	}
	for height := from; height <= res.tip; height++ {
		if ctx.Err() != nil {
			return
		}
		block, err := loadBlock(ctx, c.chain, c.blocks, height)
		if err != nil {
			c.logger.Warn("block unavailable for mempool confirmation",
				zap.Uint32("height", height), zap.Error(err))
			c.mempool.BlockConnected(height, nil)
			continue
		}
		txids := make([]chainhash.Hash, 0, len(block.Transactions))
		for _, tx := range block.Transactions {
			txids = append(txids, tx.Hash)
		}
		c.mempool.BlockConnected(height, txids)
	}
}

package follower

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeaderSource interface {
		GetHeaders(ctx context.Context, start uint32, count int) ([][]byte, error)
	}
	BlockSource interface {
		GetBlock(ctx context.Context, hash chainhash.Hash) ([]byte, error)
	}
	BlockchainRepository interface {
		GetBestHeader(ctx context.Context) (model.BlockHeader, error)
		GetBlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error)
		GetBlock(ctx context.Context, hash chainhash.Hash) (*model.Block, error)
		SaveHeaders(ctx context.Context, headers []model.BlockHeader) error
		RemoveHeadersAbove(ctx context.Context, height uint32) (int, error)
		SaveBlock(ctx context.Context, block model.Block) error
	}
	UTXORepository interface {
		Tip(ctx context.Context) (*model.UTXOTip, error)
		ProcessBlocks(ctx context.Context, blocks []model.DeserializedBlock) (model.UTXODiff, error)
	}
	IndexWriter interface {
		WriteDiff(ctx context.Context, diff model.UTXODiff) error
	}
	Mempool interface {
		BlockConnected(height uint32, txids []chainhash.Hash)
	}
	Metrics interface {
		ObserveHeaderSync(err error, headers int, started time.Time)
		ObserveUTXOBatch(err error, blocks int, started time.Time)
		ObserveIndexWrite(err error, outputs int, started time.Time)
		SetHeights(headers, utxo uint32)
	}
)

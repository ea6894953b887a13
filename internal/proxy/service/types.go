package service

import (
	"context"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockchainRepository interface {
		GetHeader(ctx context.Context, hash chainhash.Hash) (*model.BlockHeader, error)
		GetBestHeader(ctx context.Context) (model.BlockHeader, error)
		GetBlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error)
		GetBlock(ctx context.Context, hash chainhash.Hash) (*model.Block, error)
		GetTransaction(ctx context.Context, txid chainhash.Hash) ([]byte, error)
		GetChainwork(ctx context.Context, hash chainhash.Hash) (*big.Int, error)
		GetMedianTime(ctx context.Context, hash chainhash.Hash) (time.Time, error)
	}
	UTXORepository interface {
		Tip(ctx context.Context) (*model.UTXOTip, error)
		GetUTXO(ctx context.Context, op model.OutPoint) (*model.UTXO, error)
		Stats(ctx context.Context) (model.UTXOSetStats, error)
	}
	P2P interface {
		GetBlock(ctx context.Context, hash chainhash.Hash) ([]byte, error)
		Connections() []model.PeerDescriptor
		BootstrapStatus() float64
	}
	Electrum interface {
		GetRawTransaction(ctx context.Context, txid string) (string, error)
		GetTransactionVerbose(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
		SendRawTransaction(ctx context.Context, rawHex string) (string, error)
		GetMerkleProof(ctx context.Context, txid string, height uint32) (bitcoin.MerkleProof, error)
		EstimateFee(ctx context.Context, blocks int) (float64, error)
		ListUnspent(ctx context.Context, scripthash string) ([]model.ScriptUnspent, error)
		Connections() []model.PeerDescriptor
	}
	Mempool interface {
		Info() model.MempoolInfo
		RawMempool() []string
		VerboseMempool() map[string]model.MempoolEntry
	}
	BlockCache interface {
		Save(block model.Block)
	}
	BlockSaver interface {
		SaveBlock(ctx context.Context, block model.Block) error
	}
)

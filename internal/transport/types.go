package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

type (
	// QueryService answers the node queries routed by the JSON-RPC server.
	QueryService interface {
		GetBestBlockHash(ctx context.Context) (string, error)
		GetBlockCount(ctx context.Context) (uint32, error)
		GetBlockHash(ctx context.Context, height int64) (string, error)
		GetBlock(ctx context.Context, hash string, mode int) (string, error)
		GetBlockHeaderHex(ctx context.Context, hash string) (string, error)
		GetBlockHeaderVerbose(ctx context.Context, hash string) (*model.HeaderResult, error)
		GetBestBlockHeaderHex(ctx context.Context) (string, error)
		GetBestBlockHeaderVerbose(ctx context.Context) (*model.HeaderResult, error)
		GetRawTransactionHex(ctx context.Context, txid string) (string, error)
		GetRawTransactionVerbose(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
		SendRawTransaction(ctx context.Context, rawHex string) (string, error)
		GetTxOut(ctx context.Context, txid string, index uint32) (*model.TxOutResult, error)
		GetTxOutSetInfo(ctx context.Context) (*model.TxOutSetInfo, error)
		EstimateFee(ctx context.Context, blocks int) (*float64, error)
		GetBlockchainInfo(ctx context.Context) (*model.BlockchainInfo, error)
		GetPeerInfo(ctx context.Context) []model.PeerInfo
		GetMempoolInfo(ctx context.Context) (*model.MempoolInfo, error)
		GetRawMempool(ctx context.Context, verbose bool) (interface{}, error)
		ValidateAddress(address string) model.AddressValidation
	}

	Metrics interface {
		Observe(method string, known bool, err error, started time.Time)
	}
)

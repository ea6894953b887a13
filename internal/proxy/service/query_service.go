// Package service answers bitcoind-style queries from the local repositories,
// falling back to the P2P and Electrum pools for data the node does not hold.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

var (
	// ErrServiceUnavailable means a network collaborator could not serve data
	// the node does not hold locally.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrInvalidProofOfWork means Electrum data failed merkle verification
	// against the locally stored header.
	ErrInvalidProofOfWork = errors.New("invalid proof of work")
	ErrMempoolDisabled    = errors.New("mempool is disabled")
	ErrUTXOSetDisabled    = errors.New("utxo set tracking is disabled")
	ErrNotImplemented     = errors.New("not implemented")
	ErrInvalidParameter   = errors.New("invalid parameter")
	// ErrUnknownBlock means a transaction claims a block the node has no header for.
	ErrUnknownBlock = errors.New("unknown block")
)

// Dependencies are the collaborators of the QueryService. UTXO and Mempool are optional.
type Dependencies struct {
	Blockchain BlockchainRepository
	UTXO       UTXORepository
	P2P        P2P
	Electrum   Electrum
	Mempool    Mempool
	BlockCache BlockCache
}

// QueryService implements the read and broadcast operations exposed over JSON-RPC.
type QueryService struct {
	blockchain BlockchainRepository
	utxo       UTXORepository
	p2p        P2P
	electrum   Electrum
	mempool    Mempool
	cache      BlockCache
	params     *chaincfg.Params
	decoder    *bitcoin.ScriptDecoder
	logger     *zap.Logger

	expected *ttlcache.Cache[string, struct{}]
	sleep    func(context.Context, time.Duration) error

	feeMu   sync.Mutex
	lastFee *float64
}

// NewQueryService validates the collaborators and builds a QueryService.
func NewQueryService(deps Dependencies, params *chaincfg.Params, logger *zap.Logger) (*QueryService, error) {
	if deps.Blockchain == nil {
		return nil, errors.New("nil blockchain repository")
	}
	if deps.P2P == nil {
		return nil, errors.New("nil p2p pool")
	}
	if deps.Electrum == nil {
		return nil, errors.New("nil electrum pool")
	}
	if deps.BlockCache == nil {
		return nil, errors.New("nil block cache")
	}
	if params == nil {
		return nil, errors.New("nil chain params")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QueryService{
		blockchain: deps.Blockchain,
		utxo:       deps.UTXO,
		p2p:        deps.P2P,
		electrum:   deps.Electrum,
		mempool:    deps.Mempool,
		cache:      deps.BlockCache,
		params:     params,
		decoder:    bitcoin.NewScriptDecoder(params),
		logger:     logger.Named("query_service"),
		expected: ttlcache.New[string, struct{}](
			ttlcache.WithTTL[string, struct{}](expectedTxTTL),
			ttlcache.WithCapacity[string, struct{}](expectedTxCapacity),
		),
		sleep: clock.SleepWithContext,
	}, nil
}

// Start runs the expected-txid cache janitor until ctx is done.
func (s *QueryService) Start(ctx context.Context) {
	go s.expected.Start()
	go func() {
		<-ctx.Done()
		s.expected.Stop()
	}()
}

func parseHash(value string) (*chainhash.Hash, error) {
	hash, err := chainhash.NewHashFromStr(value)
	if err != nil || len(value) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("hash %q: %w", value, ErrInvalidParameter)
	}
	return hash, nil
}

// unavailable marks a collaborator failure, keeping context errors visible.
func unavailable(operation string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return fmt.Errorf("%s: %w: %w", operation, ErrServiceUnavailable, err)
}

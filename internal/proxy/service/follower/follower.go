// Package follower keeps the local chain in step with the network: headers come
// from Electrum, blocks from the repository or the P2P pool, and buried blocks
// are applied to the UTXO set.
package follower

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"go.uber.org/zap"
)

// Config tunes the follower. Zero values fall back to defaults.
type Config struct {
	// HeadersChunk is the number of headers requested per Electrum call.
	HeadersChunk int
	// ReorgDepth is how many confirmations a block needs before it reaches the UTXO set.
	ReorgDepth uint32
	// UTXOBatchSize is the number of blocks applied per ProcessBlocks call.
	UTXOBatchSize int
	// FetchWorkers bounds concurrent block fetches.
	FetchWorkers int
	// UTXOStartHeight is the first block applied to an empty UTXO set.
	UTXOStartHeight uint32
}

func (c Config) withDefaults() Config {
	if c.HeadersChunk <= 0 {
		c.HeadersChunk = defaultHeadersChunk
	}
	if c.ReorgDepth == 0 {
		c.ReorgDepth = defaultReorgDepth
	}
	if c.UTXOBatchSize <= 0 {
		c.UTXOBatchSize = defaultUTXOBatchSize
	}
	if c.FetchWorkers <= 0 {
		c.FetchWorkers = defaultFetchWorkers
	}
	if c.UTXOStartHeight == 0 {
		c.UTXOStartHeight = defaultUTXOStartHeight
	}
	return c
}

// Dependencies are the collaborators of the follower. UTXO, Index and Mempool are optional.
type Dependencies struct {
	Headers    HeaderSource
	Blocks     BlockSource
	Blockchain BlockchainRepository
	UTXO       UTXORepository
	Index      IndexWriter
	Mempool    Mempool
}

// Service runs the follow loop.
type Service struct {
	logger            *zap.Logger
	metrics           Metrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	headerSyncer      *headerSyncer
	confirmer         *mempoolConfirmer
	utxoProcessor     *utxoProcessor
	blockSignal       <-chan struct{}
}

// New builds a follower Service. blockSignal wakes the loop early, typically
// on Electrum header notifications; it may be nil.
func New(cfg Config, deps Dependencies, metrics Metrics, logger *zap.Logger, blockSignal <-chan struct{}) (*Service, error) {
	if deps.Headers == nil || deps.Blocks == nil || deps.Blockchain == nil {
		return nil, errors.New("follower requires header source, block source and blockchain repository")
	}
	if metrics == nil {
		return nil, errors.New("follower metrics is required")
	}
	cfg = cfg.withDefaults()
	logger = logger.Named("follower")

	s := &Service{
		logger:            logger,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		blockSignal:       blockSignal,
		headerSyncer: &headerSyncer{
			source: deps.Headers,
			chain:  deps.Blockchain,
			chunk:  cfg.HeadersChunk,
			logger: logger.Named("headers"),
		},
	}
	if deps.Mempool != nil {
		s.confirmer = &mempoolConfirmer{
			chain:   deps.Blockchain,
			blocks:  deps.Blocks,
			mempool: deps.Mempool,
			depth:   cfg.ReorgDepth,
			logger:  logger.Named("mempool"),
		}
	}
	if deps.UTXO != nil {
		s.utxoProcessor = &utxoProcessor{
			chain:       deps.Blockchain,
			blocks:      deps.Blocks,
			utxo:        deps.UTXO,
			index:       deps.Index,
			metrics:     metrics,
			reorgDepth:  cfg.ReorgDepth,
			batchSize:   cfg.UTXOBatchSize,
			workers:     cfg.FetchWorkers,
			startHeight: cfg.UTXOStartHeight,
			logger:      logger.Named("utxo"),
		}
	}
	return s, nil
}

// Run follows the chain until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if errors.Is(err, ErrUTXOSetDiverged) {
				return err
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.wait(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	res, err := s.headerSyncer.Sync(ctx)
	s.metrics.ObserveHeaderSync(err, res.saved, started)
	if err != nil {
		s.logger.Error("header sync failed", zap.Error(err))
		return err
	}
	if s.confirmer != nil {
		s.confirmer.Confirm(ctx, res)
	}

	var utxoHeight uint32
	applied := 0
	if s.utxoProcessor != nil {
		started = time.Now()
		applied, utxoHeight, err = s.utxoProcessor.Process(ctx, res.tip)
		s.metrics.ObserveUTXOBatch(err, applied, started)
		if err != nil {
			return err
		}
	}
	s.metrics.SetHeights(res.tip, utxoHeight)

	if res.more || applied > 0 {
		return nil
	}
	s.logger.Debug("caught up; sleeping", zap.Uint32("tip", res.tip), zap.Duration("sleep", s.longSleepDuration))
	return s.wait(ctx, s.longSleepDuration)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.blockSignal:
		return nil
	case <-timer.C:
		return nil
	}
}

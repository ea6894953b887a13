// Command lightnode runs the bitcoin light node: it follows the chain through
// Electrum and P2P peers and answers bitcoind-style JSON-RPC queries.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/electrum"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/mempool"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/p2p"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/repository/blockchain"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/repository/utxo"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/service"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/service/follower"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage/badger"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage/leveldb"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/pkg/safe"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const healthInterval = 5 * time.Second

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger.Named("grpc"))

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("light node failed", zap.Error(err))
	}
	logger.Info("light node stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close storage", zap.Error(err))
		}
	}()
	observed := storage.NewObservedStore(store, metrics.NewStorage(cfg.Storage.Engine))

	chain := blockchain.New(observed, params, logger)
	if err := chain.Init(ctx); err != nil {
		return fmt.Errorf("init blockchain repository: %w", err)
	}

	var pool *mempool.Mempool
	if cfg.Mempool.Enabled {
		pool = mempool.New(mempool.Config{TTL: cfg.Mempool.TTL, MaxTransactions: cfg.Mempool.MaxTransactions}, logger)
		pool.Start()
		defer pool.Stop()
	}

	servers, err := electrum.ParseServers(cfg.Electrum.Servers)
	if err != nil {
		return err
	}
	electrumPool := electrum.NewPool(electrum.Config{
		Servers:       servers,
		Timeout:       cfg.Electrum.Timeout,
		TLSSkipVerify: cfg.Electrum.TLSSkipVerify,
	}, logger, metrics.NewRPCClient(string(model.PeerElectrum), cfg.Network))
	if err := electrumPool.Start(ctx); err != nil {
		return fmt.Errorf("start electrum pool: %w", err)
	}
	defer electrumPool.Close()

	var txs p2p.TxHandler
	if pool != nil {
		txs = pool
	}
	p2pPool := p2p.NewPool(p2p.Config{
		Peers:         cfg.P2P.Peers,
		Params:        params,
		RequiredPeers: cfg.P2P.RequiredPeers,
		FetchTimeout:  cfg.P2P.FetchTimeout,
		RelayTx:       pool != nil,
	}, logger, metrics.NewRPCClient(string(model.PeerP2P), cfg.Network), txs, localTip(ctx, chain))
	if err := p2pPool.Start(ctx); err != nil {
		return fmt.Errorf("start p2p pool: %w", err)
	}
	defer p2pPool.Close()

	cache := service.NewBlockCacheWriter(chain, logger)
	cache.Start(ctx)
	defer cache.Stop()

	queryDeps := service.Dependencies{
		Blockchain: chain,
		P2P:        p2pPool,
		Electrum:   electrumPool,
		BlockCache: cache,
	}
	followDeps := follower.Dependencies{
		Headers:    electrumPool,
		Blocks:     p2pPool,
		Blockchain: chain,
	}
	if pool != nil {
		queryDeps.Mempool = pool
		followDeps.Mempool = pool
	}
	if cfg.UTXO.Enabled {
		set := utxo.New(observed, logger)
		queryDeps.UTXO = set
		followDeps.UTXO = set
	}
	if cfg.ClickhouseDSN != "" {
		index, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository(cfg.Network))
		if err != nil {
			return fmt.Errorf("init clickhouse index: %w", err)
		}
		defer func() {
			_ = index.Close()
		}()
		followDeps.Index = index
	}

	svc, err := service.NewQueryService(queryDeps, params, logger)
	if err != nil {
		return fmt.Errorf("init query service: %w", err)
	}
	svc.Start(ctx)

	zmqSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}
	chainFollower, err := follower.New(follower.Config{
		HeadersChunk:    cfg.UTXO.HeadersChunk,
		ReorgDepth:      cfg.UTXO.ReorgDepth,
		UTXOBatchSize:   cfg.UTXO.BatchSize,
		FetchWorkers:    cfg.UTXO.FetchWorkers,
		UTXOStartHeight: cfg.UTXO.StartHeight,
	}, followDeps, metrics.NewFollower(cfg.Network), logger,
		mergeSignals(ctx, electrumPool.HeaderNotifications(), zmqSignal))
	if err != nil {
		return fmt.Errorf("init follower: %w", err)
	}

	rpcServer := transport.NewRPCServer(svc, transport.RPCConfig{
		User:           cfg.RPC.User,
		Password:       cfg.RPC.Password,
		RequestTimeout: cfg.RPC.Timeout,
		AllowedOrigins: cfg.RPC.AllowedOrigins,
	}, metrics.NewRPCServer(), logger)
	grpcServer, health := transport.NewGRPCServer(logger)

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return chainFollower.Run(gctx)
	})
	g.Go(func() error {
		return serveHTTP(gctx, cfg.RPC.Addr, rpcServer.Handler(), logger)
	})
	g.Go(func() error {
		socket, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("listen grpc: %w", err)
		}
		go func() {
			<-gctx.Done()
			logger.Info("shutting down grpc server")
			grpcServer.GracefulStop()
		}()
		logger.Info("starting grpc server", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(socket)
	})
	g.Go(func() error {
		transport.WatchHealth(gctx, health, healthInterval, func(context.Context) bool {
			return p2pPool.BootstrapStatus() >= 1
		}, logger)
		return nil
	})
	return g.Wait()
}

func openStore(cfg config, logger *zap.Logger) (storage.Store, error) {
	path := filepath.Join(cfg.DataDir, string(cfg.Network), cfg.Storage.Engine)
	switch cfg.Storage.Engine {
	case "badger":
		store, err := badger.Open(path, badger.Options{SyncWrites: cfg.Storage.SyncWrites}, logger)
		if err != nil {
			return nil, fmt.Errorf("open badger storage: %w", err)
		}
		return store, nil
	case "leveldb", "":
		store, err := leveldb.Open(path, leveldb.Options{
			CacheSizeMiB: cfg.Storage.CacheSizeMiB,
			SyncWrites:   cfg.Storage.SyncWrites,
		})
		if err != nil {
			return nil, fmt.Errorf("open leveldb storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage engine %q", cfg.Storage.Engine)
	}
}

// localTip reports the best stored header for the P2P version handshake.
func localTip(ctx context.Context, chain *blockchain.Repository) p2p.TipFunc {
	return func() (*chainhash.Hash, int32, error) {
		header, err := chain.GetBestHeader(ctx)
		if err != nil {
			return nil, 0, err
		}
		height, err := safe.Int32(header.HeightOrZero())
		if err != nil {
			return nil, 0, err
		}
		return &header.Hash, height, nil
	}
}

// mergeSignals fans several wake-up channels into one. Nil inputs are skipped.
func mergeSignals(ctx context.Context, signals ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{}, 1)
	for _, sig := range signals {
		if sig == nil {
			continue
		}
		go func(in <-chan struct{}) {
			for {
				select {
				case <-ctx.Done():
					return
				case <-in:
					select {
					case out <- struct{}{}:
					default:
					}
				}
			}
		}(sig)
	}
	return out
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the json-rpc server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown json-rpc server", zap.Error(err))
		}
	}()

	logger.Info("starting json-rpc server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("json-rpc server: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

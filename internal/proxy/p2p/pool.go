// Package p2p keeps outbound connections to bitcoin peers and fetches blocks
// from them.
package p2p

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/peer"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Defaults applied by NewPool to zero Config fields.
const (
	DefaultFetchTimeout    = 30 * time.Second
	DefaultDialTimeout     = 10 * time.Second
	DefaultReconnectPeriod = 30 * time.Second
	DefaultUserAgentName   = "blockinsight7000-lightnode"
	DefaultUserAgent       = "0.1.0"
)

type (
	// Config tunes the pool.
	Config struct {
		Peers           []string
		Params          *chaincfg.Params
		RequiredPeers   int
		FetchTimeout    time.Duration
		DialTimeout     time.Duration
		ReconnectPeriod time.Duration
		RelayTx         bool

		allowSelfConns bool
	}

	// Metrics records per-operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// TxHandler receives transactions relayed by peers.
	TxHandler interface {
		AddTx(tx *wire.MsgTx)
	}

	// TipFunc reports the local best block announced in the version message.
	TipFunc func() (*chainhash.Hash, int32, error)
)

// Pool fetches blocks from the connected peers, rotating on timeouts.
type Pool struct {
	cfg     Config
	logger  *zap.Logger
	metrics Metrics
	txs     TxHandler
	tip     TipFunc

	mu    sync.RWMutex
	peers map[string]*peer.Peer
	next  atomic.Uint64

	waitMu  sync.Mutex
	waiters map[chainhash.Hash][]chan []byte
}

// NewPool constructs a pool; Start connects it. txs may be nil.
func NewPool(cfg Config, logger *zap.Logger, metrics Metrics, txs TxHandler, tip TipFunc) *Pool {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.ReconnectPeriod <= 0 {
		cfg.ReconnectPeriod = DefaultReconnectPeriod
	}
	if cfg.RequiredPeers <= 0 {
		cfg.RequiredPeers = len(cfg.Peers)
	}
	return &Pool{
		cfg:     cfg,
		logger:  logger.Named("p2p"),
		metrics: metrics,
		txs:     txs,
		tip:     tip,
		peers:   make(map[string]*peer.Peer),
		waiters: make(map[chainhash.Hash][]chan []byte),
	}
}

// Start connects the configured peers and keeps reconnecting dropped ones
// until ctx is done. Unreachable peers are logged, not fatal.
func (p *Pool) Start(ctx context.Context) error {
	if len(p.cfg.Peers) == 0 {
		return errors.New("no p2p peers configured")
	}
	p.connectMissing(ctx)
	if len(p.connected()) == 0 {
		p.logger.Warn("no p2p peer reachable yet")
	}
	go p.maintain(ctx)
	return nil
}

func (p *Pool) maintain(ctx context.Context) {
	for {
		if err := clock.SleepWithContext(ctx, p.cfg.ReconnectPeriod); err != nil {
			p.Close()
			return
		}
		p.connectMissing(ctx)
	}
}

func (p *Pool) connectMissing(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for _, addr := range p.cfg.Peers {
		addr := addr
		p.mu.RLock()
		existing, ok := p.peers[addr]
		p.mu.RUnlock()
		if ok && existing.Connected() {
			continue
		}
		g.Go(func() error {
			if err := p.connect(gctx, addr); err != nil {
				p.logger.Warn("p2p connect failed", zap.String("peer", addr), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Pool) connect(ctx context.Context, addr string) error {
	verack := make(chan struct{}, 1)
	cfg := p.peerConfig(verack)
	pr, err := peer.NewOutboundPeer(cfg, addr)
	if err != nil {
		return fmt.Errorf("new peer %s: %w", addr, err)
	}

	dialer := net.Dialer{Timeout: p.cfg.DialTimeout}
	netConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	pr.AssociateConnection(netConn)

	timer := time.NewTimer(p.cfg.DialTimeout)
	defer timer.Stop()
	select {
	case <-verack:
	case <-timer.C:
		pr.Disconnect()
		return fmt.Errorf("verack timeout from %s", addr)
	case <-ctx.Done():
		pr.Disconnect()
		return ctx.Err()
	}

	p.mu.Lock()
	p.peers[addr] = pr
	p.mu.Unlock()
	p.logger.Info("p2p peer connected",
		zap.String("peer", addr),
		zap.String("user_agent", pr.UserAgent()),
		zap.Int32("starting_height", pr.StartingHeight()),
	)

	go func() {
		pr.WaitForDisconnect()
		p.mu.Lock()
		if p.peers[addr] == pr {
			delete(p.peers, addr)
		}
		p.mu.Unlock()
		p.logger.Info("p2p peer disconnected", zap.String("peer", addr))
	}()
	return nil
}

func (p *Pool) peerConfig(verack chan struct{}) *peer.Config {
	return &peer.Config{
		UserAgentName:    DefaultUserAgentName,
		UserAgentVersion: DefaultUserAgent,
		ChainParams:      p.cfg.Params,
		Services:         0,
		DisableRelayTx:   !p.cfg.RelayTx || p.txs == nil,
		AllowSelfConns:   p.cfg.allowSelfConns,
		NewestBlock:      peer.HashFunc(p.tip),
		Listeners: peer.MessageListeners{
			OnVerAck: func(*peer.Peer, *wire.MsgVerAck) {
				select {
				case verack <- struct{}{}:
				default:
				}
			},
			OnBlock: p.onBlock,
			OnInv:   p.onInv,
			OnTx:    p.onTx,
		},
	}
}

func (p *Pool) onBlock(pr *peer.Peer, msg *wire.MsgBlock, buf []byte) {
	hash := msg.BlockHash()
	p.waitMu.Lock()
	waiters := p.waiters[hash]
	delete(p.waiters, hash)
	p.waitMu.Unlock()
	if len(waiters) == 0 {
		return
	}
	var data []byte
	if err := bitcoin.CheckMerkleRoot(msg); err != nil {
		// waiters get nil and move on to the next peer
		p.logger.Warn("peer sent block with mismatching transactions",
			zap.String("peer", pr.Addr()),
			zap.String("hash", hash.String()),
			zap.Error(err),
		)
	} else {
		data = make([]byte, len(buf))
		copy(data, buf)
	}
	for _, ch := range waiters {
		ch <- data
	}
}

func (p *Pool) onInv(pr *peer.Peer, msg *wire.MsgInv) {
	if p.txs == nil || !p.cfg.RelayTx {
		return
	}
	getData := wire.NewMsgGetData()
	for _, inv := range msg.InvList {
		if inv.Type != wire.InvTypeTx && inv.Type != wire.InvTypeWitnessTx {
			continue
		}
		if err := getData.AddInvVect(wire.NewInvVect(wire.InvTypeWitnessTx, &inv.Hash)); err != nil {
			p.logger.Warn("dropping relay announcements", zap.String("peer", pr.Addr()), zap.Error(err))
			break
		}
	}
	if len(getData.InvList) > 0 {
		pr.QueueMessage(getData, nil)
	}
}

func (p *Pool) onTx(_ *peer.Peer, msg *wire.MsgTx) {
	if p.txs != nil {
		p.txs.AddTx(msg)
	}
}

func (p *Pool) connected() []*peer.Peer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	peers := make([]*peer.Peer, 0, len(p.peers))
	for _, addr := range p.cfg.Peers {
		if pr, ok := p.peers[addr]; ok && pr.Connected() {
			peers = append(peers, pr)
		}
	}
	return peers
}

func (p *Pool) wait(hash chainhash.Hash) chan []byte {
	ch := make(chan []byte, 1)
	p.waitMu.Lock()
	p.waiters[hash] = append(p.waiters[hash], ch)
	p.waitMu.Unlock()
	return ch
}

func (p *Pool) cancelWait(hash chainhash.Hash, ch chan []byte) {
	p.waitMu.Lock()
	defer p.waitMu.Unlock()
	waiters := p.waiters[hash]
	for i, w := range waiters {
		if w == ch {
			waiters = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(waiters) == 0 {
		delete(p.waiters, hash)
		return
	}
	p.waiters[hash] = waiters
}

// GetBlock asks connected peers for the block in turn until one delivers it
// within the fetch timeout. It returns nil when no peer did.
func (p *Pool) GetBlock(ctx context.Context, hash chainhash.Hash) (data []byte, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe("get_block", err, started)
	}()

	peers := p.connected()
	if len(peers) == 0 {
		return nil, nil
	}
	first := int(p.next.Add(1) % uint64(len(peers)))
	for i := range peers {
		pr := peers[(first+i)%len(peers)]
		block, fetchErr := p.fetch(ctx, pr, hash)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if block != nil {
			return block, nil
		}
		p.logger.Debug("peer did not deliver block",
			zap.String("peer", pr.Addr()),
			zap.String("hash", hash.String()),
		)
	}
	return nil, nil
}

func (p *Pool) fetch(ctx context.Context, pr *peer.Peer, hash chainhash.Hash) ([]byte, error) {
	getData := wire.NewMsgGetData()
	if err := getData.AddInvVect(wire.NewInvVect(wire.InvTypeWitnessBlock, &hash)); err != nil {
		return nil, fmt.Errorf("getdata %s: %w", hash, err)
	}
	ch := p.wait(hash)
	pr.QueueMessage(getData, nil)

	timer := time.NewTimer(p.cfg.FetchTimeout)
	defer timer.Stop()
	select {
	case data := <-ch:
		return data, nil
	case <-timer.C:
		p.cancelWait(hash, ch)
		return nil, nil
	case <-ctx.Done():
		p.cancelWait(hash, ch)
		return nil, ctx.Err()
	}
}

// Connections describes the connected peers.
func (p *Pool) Connections() []model.PeerDescriptor {
	peers := p.connected()
	result := make([]model.PeerDescriptor, 0, len(peers))
	for _, pr := range peers {
		result = append(result, model.NewP2PPeer(pr.Addr(), pr.UserAgent(), pr.TimeConnected(), pr.LastBlock(), 0))
	}
	return result
}

// BootstrapStatus is the share of required peers currently connected, capped at 1.
func (p *Pool) BootstrapStatus() float64 {
	connected := len(p.connected())
	if connected >= p.cfg.RequiredPeers {
		return 1
	}
	return float64(connected) / float64(p.cfg.RequiredPeers)
}

// Close disconnects every peer.
func (p *Pool) Close() {
	p.mu.Lock()
	peers := make([]*peer.Peer, 0, len(p.peers))
	for _, pr := range p.peers {
		peers = append(peers, pr)
	}
	p.mu.Unlock()
	for _, pr := range peers {
		pr.Disconnect()
	}
}

// Package electrum is a client pool for Electrum protocol servers.
package electrum

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrMissingResponse is returned when a server times out or drops the connection.
// Callers may retry on it.
var ErrMissingResponse = errors.New("electrum: missing response")

// Defaults applied by NewPool to zero Config fields.
const (
	DefaultTimeout         = 15 * time.Second
	DefaultReconnectPeriod = 30 * time.Second
	DefaultProtocol        = "1.4"
	DefaultClientName      = "blockinsight7000-lightnode"
)

type (
	// Config tunes the pool.
	Config struct {
		Servers         []Server
		Timeout         time.Duration
		ReconnectPeriod time.Duration
		ClientName      string
		ProtocolVersion string
		TLSSkipVerify   bool
	}

	// Metrics records per-method outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Pool spreads requests over the connected servers round robin.
type Pool struct {
	cfg     Config
	logger  *zap.Logger
	metrics Metrics

	mu    sync.RWMutex
	conns map[string]*conn
	next  atomic.Uint64

	headers chan struct{}
}

// NewPool constructs a pool; Start connects it.
func NewPool(cfg Config, logger *zap.Logger, metrics Metrics) *Pool {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ReconnectPeriod <= 0 {
		cfg.ReconnectPeriod = DefaultReconnectPeriod
	}
	if cfg.ProtocolVersion == "" {
		cfg.ProtocolVersion = DefaultProtocol
	}
	if cfg.ClientName == "" {
		cfg.ClientName = DefaultClientName
	}
	return &Pool{
		cfg:     cfg,
		logger:  logger.Named("electrum"),
		metrics: metrics,
		conns:   make(map[string]*conn),
		headers: make(chan struct{}, 1),
	}
}

// Start connects every configured server and keeps reconnecting dropped ones
// until ctx is done. It fails only if no server could be reached.
func (p *Pool) Start(ctx context.Context) error {
	if len(p.cfg.Servers) == 0 {
		return errors.New("no electrum servers configured")
	}
	p.connectMissing(ctx)
	if p.connected() == 0 {
		return fmt.Errorf("%w: no electrum server reachable", ErrMissingResponse)
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
		p.pingAll(ctx)
		p.connectMissing(ctx)
	}
}

func (p *Pool) connectMissing(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for _, server := range p.cfg.Servers {
		server := server
		p.mu.RLock()
		existing, ok := p.conns[server.String()]
		p.mu.RUnlock()
		if ok && existing.alive() {
			continue
		}
		g.Go(func() error {
			c, err := p.connect(gctx, server)
			if err != nil {
				p.logger.Warn("electrum connect failed", zap.String("server", server.String()), zap.Error(err))
				return nil
			}
			p.mu.Lock()
			p.conns[server.String()] = c
			p.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Pool) connect(ctx context.Context, server Server) (*conn, error) {
	c, err := dial(ctx, server, p.cfg, p.logger, p.onHeader)
	if err != nil {
		return nil, err
	}

	raw, err := c.call(ctx, "server.version", p.cfg.ClientName, p.cfg.ProtocolVersion)
	if err != nil {
		c.close()
		return nil, fmt.Errorf("server.version: %w", err)
	}
	var version []string
	if err := json.Unmarshal(raw, &version); err != nil || len(version) == 0 {
		c.close()
		return nil, fmt.Errorf("server.version: unexpected response %s", string(raw))
	}
	c.serverVersion = version[0]

	raw, err = c.call(ctx, methodHeadersSubscribe)
	if err != nil {
		c.close()
		return nil, fmt.Errorf("headers subscribe: %w", err)
	}
	var tip HeaderNotification
	if err := json.Unmarshal(raw, &tip); err != nil {
		c.close()
		return nil, fmt.Errorf("headers subscribe: %w", err)
	}
	c.tipHeight.Store(tip.Height)

	p.logger.Info("electrum connected",
		zap.String("server", server.String()),
		zap.String("version", c.serverVersion),
		zap.Int32("tip_height", tip.Height),
	)
	return c, nil
}

func (p *Pool) pingAll(ctx context.Context) {
	for _, c := range p.alive() {
		if _, err := c.call(ctx, "server.ping"); err != nil {
			p.logger.Debug("electrum ping failed", zap.String("server", c.server.String()), zap.Error(err))
			if errors.Is(err, ErrMissingResponse) {
				c.close()
			}
		}
	}
}

func (p *Pool) onHeader(c *conn, h HeaderNotification) {
	p.logger.Debug("electrum header notification",
		zap.String("server", c.server.String()),
		zap.Int32("height", h.Height),
	)
	select {
	case p.headers <- struct{}{}:
	default:
	}
}

// HeaderNotifications signals when any server announces a new tip.
func (p *Pool) HeaderNotifications() <-chan struct{} {
	return p.headers
}

func (p *Pool) alive() []*conn {
	p.mu.RLock()
	defer p.mu.RUnlock()
	conns := make([]*conn, 0, len(p.conns))
	for _, server := range p.cfg.Servers {
		if c, ok := p.conns[server.String()]; ok && c.alive() {
			conns = append(conns, c)
		}
	}
	return conns
}

func (p *Pool) connected() int {
	return len(p.alive())
}

func (p *Pool) pick() (*conn, error) {
	conns := p.alive()
	if len(conns) == 0 {
		return nil, fmt.Errorf("%w: no electrum connection", ErrMissingResponse)
	}
	i := p.next.Add(1)
	return conns[i%uint64(len(conns))], nil
}

// call runs method on the next server and decodes the result into out.
func (p *Pool) call(ctx context.Context, operation string, out interface{}, method string, params ...interface{}) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe(operation, err, started)
	}()

	c, err := p.pick()
	if err != nil {
		return err
	}
	raw, err := c.call(ctx, method, params...)
	if err != nil {
		if errors.Is(err, ErrMissingResponse) {
			c.close()
		}
		return fmt.Errorf("%s on %s: %w", method, c.server, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", method, err)
	}
	return nil
}

// BestHeight is the highest tip announced by a connected server, or -1.
func (p *Pool) BestHeight() int32 {
	best := int32(-1)
	for _, c := range p.alive() {
		if h := c.tipHeight.Load(); h > best {
			best = h
		}
	}
	return best
}

// Connections describes the connected servers.
func (p *Pool) Connections() []model.PeerDescriptor {
	conns := p.alive()
	peers := make([]model.PeerDescriptor, 0, len(conns))
	for _, c := range conns {
		tip := c.tipHeight.Load()
		var height *int32
		if tip >= 0 {
			height = &tip
		}
		peers = append(peers, model.NewElectrumPeer(c.server.Host, c.server.Port, c.serverVersion, c.connectedAt, height))
	}
	return peers
}

// Close drops every connection.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, c := range p.conns {
		c.close()
		delete(p.conns, key)
	}
}

// Package mempool tracks unconfirmed transactions relayed by peers.
package mempool

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

// Defaults applied by New to zero Config fields.
const (
	DefaultTTL             = 72 * time.Hour
	DefaultMaxTransactions = 100_000
)

// Config tunes the mempool.
type Config struct {
	TTL             time.Duration
	MaxTransactions uint64
}

type entry struct {
	size   int
	vsize  int64
	added  time.Time
	height uint32
}

// Mempool is a TTL bounded set of unconfirmed transactions.
type Mempool struct {
	cache  *ttlcache.Cache[chainhash.Hash, entry]
	logger *zap.Logger
	height atomic.Uint32

	stopOnce sync.Once
}

// New constructs a Mempool. Start runs expiry.
func New(cfg Config, logger *zap.Logger) *Mempool {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxTransactions == 0 {
		cfg.MaxTransactions = DefaultMaxTransactions
	}
	m := &Mempool{
		cache: ttlcache.New[chainhash.Hash, entry](
			ttlcache.WithTTL[chainhash.Hash, entry](cfg.TTL),
			ttlcache.WithCapacity[chainhash.Hash, entry](cfg.MaxTransactions),
			ttlcache.WithDisableTouchOnHit[chainhash.Hash, entry](),
		),
		logger: logger.Named("mempool"),
	}
	return m
}

// Start runs the expiry loop until Stop.
func (m *Mempool) Start() {
	m.cache.Start()
}

func (m *Mempool) Stop() {
	m.stopOnce.Do(m.cache.Stop)
}

// AddTx records a relayed transaction.
func (m *Mempool) AddTx(tx *wire.MsgTx) {
	hash := tx.TxHash()
	if m.cache.Has(hash) {
		return
	}
	weight := blockchain.GetTransactionWeight(btcutil.NewTx(tx))
	e := entry{
		size:   tx.SerializeSize(),
		vsize:  (weight + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor,
		added:  time.Now(),
		height: m.height.Load(),
	}
	m.cache.Set(hash, e, ttlcache.DefaultTTL)
	m.logger.Debug("transaction added", zap.String("txid", hash.String()), zap.Int64("vsize", e.vsize))
}

// BlockConnected drops confirmed transactions and records the new height.
func (m *Mempool) BlockConnected(height uint32, txids []chainhash.Hash) {
	m.height.Store(height)
	for _, txid := range txids {
		m.cache.Delete(txid)
	}
}

// Has reports whether txid is pending.
func (m *Mempool) Has(txid chainhash.Hash) bool {
	return m.cache.Has(txid)
}

// Info is the getmempoolinfo view.
func (m *Mempool) Info() model.MempoolInfo {
	items := m.cache.Items()
	info := model.MempoolInfo{Loaded: true, Size: len(items)}
	for _, item := range items {
		info.Bytes += int64(item.Value().size)
	}
	return info
}

// RawMempool lists pending txids in ascending order.
func (m *Mempool) RawMempool() []string {
	keys := m.cache.Keys()
	txids := make([]string, 0, len(keys))
	for _, k := range keys {
		txids = append(txids, k.String())
	}
	sort.Strings(txids)
	return txids
}

// VerboseMempool describes every pending transaction.
func (m *Mempool) VerboseMempool() map[string]model.MempoolEntry {
	items := m.cache.Items()
	result := make(map[string]model.MempoolEntry, len(items))
	for hash, item := range items {
		e := item.Value()
		result[hash.String()] = model.MempoolEntry{
			VSize:  e.vsize,
			Time:   e.added.Unix(),
			Height: e.height,
		}
	}
	return result
}

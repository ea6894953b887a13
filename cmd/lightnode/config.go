package main

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

type config struct {
	Network     model.Network `long:"network" env:"LIGHTNODE_NETWORK" description:"bitcoin network" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet" default:"mainnet"`
	DataDir     string        `long:"data-dir" env:"LIGHTNODE_DATA_DIR" description:"directory of the local chain database" default:"./data"`
	MetricsAddr string        `long:"metrics-addr" env:"LIGHTNODE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	GRPCAddr    string        `long:"grpc-addr" env:"LIGHTNODE_GRPC_ADDR" description:"address for the gRPC health server" default:":9090"`
	ZMQAddr     string        `long:"zmq-addr" env:"LIGHTNODE_ZMQ_ADDR" description:"optional ZMQ hashblock publisher that wakes the follower (requires the zmq build tag)"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"LIGHTNODE_CLICKHOUSE_DSN" description:"ClickHouse DSN of the optional per-script output index"`

	Storage  storageConfig  `group:"Storage" namespace:"storage" env-namespace:"LIGHTNODE_STORAGE"`
	Electrum electrumConfig `group:"Electrum" namespace:"electrum" env-namespace:"LIGHTNODE_ELECTRUM"`
	P2P      p2pConfig      `group:"P2P" namespace:"p2p" env-namespace:"LIGHTNODE_P2P"`
	Mempool  mempoolConfig  `group:"Mempool" namespace:"mempool" env-namespace:"LIGHTNODE_MEMPOOL"`
	UTXO     utxoConfig     `group:"UTXO set" namespace:"utxo" env-namespace:"LIGHTNODE_UTXO"`
	RPC      rpcConfig      `group:"JSON-RPC" namespace:"rpc" env-namespace:"LIGHTNODE_RPC"`
	Log      logging.Config `group:"Logging" namespace:"log" env-namespace:"LIGHTNODE_LOG"`
}

type storageConfig struct {
	Engine       string `long:"engine" env:"ENGINE" description:"key-value engine" choice:"leveldb" choice:"badger" default:"leveldb"`
	CacheSizeMiB int    `long:"cache-size-mib" env:"CACHE_SIZE_MIB" description:"leveldb block cache size" default:"64"`
	SyncWrites   bool   `long:"sync-writes" env:"SYNC_WRITES" description:"fsync every batch"`
}

type electrumConfig struct {
	Servers       []string      `long:"server" env:"SERVERS" env-delim:"," description:"electrum server as host:port[:s|t], repeatable" required:"true"`
	Timeout       time.Duration `long:"timeout" env:"TIMEOUT" description:"request timeout" default:"15s"`
	TLSSkipVerify bool          `long:"tls-skip-verify" env:"TLS_SKIP_VERIFY" description:"accept self-signed server certificates"`
}

type p2pConfig struct {
	Peers         []string      `long:"peer" env:"PEERS" env-delim:"," description:"bitcoin peer as host:port, repeatable" required:"true"`
	RequiredPeers int           `long:"required-peers" env:"REQUIRED_PEERS" description:"connected peers needed to report bootstrap as complete (0 means all)"`
	FetchTimeout  time.Duration `long:"fetch-timeout" env:"FETCH_TIMEOUT" description:"block fetch timeout per peer" default:"30s"`
}

type mempoolConfig struct {
	Enabled         bool          `long:"enabled" env:"ENABLED" description:"track transactions relayed by peers"`
	TTL             time.Duration `long:"ttl" env:"TTL" description:"drop unconfirmed transactions after this long" default:"72h"`
	MaxTransactions uint64        `long:"max-transactions" env:"MAX_TRANSACTIONS" description:"mempool capacity" default:"100000"`
}

type utxoConfig struct {
	Enabled      bool   `long:"enabled" env:"ENABLED" description:"maintain the local UTXO set"`
	StartHeight  uint32 `long:"start-height" env:"START_HEIGHT" description:"first block applied to an empty set" default:"1"`
	ReorgDepth   uint32 `long:"reorg-depth" env:"REORG_DEPTH" description:"confirmations a block needs before it is applied" default:"6"`
	BatchSize    int    `long:"batch-size" env:"BATCH_SIZE" description:"blocks applied per batch" default:"20"`
	FetchWorkers int    `long:"fetch-workers" env:"FETCH_WORKERS" description:"concurrent block fetches" default:"4"`
	HeadersChunk int    `long:"headers-chunk" env:"HEADERS_CHUNK" description:"headers requested per electrum call" default:"2016"`
}

type rpcConfig struct {
	Addr           string        `long:"addr" env:"ADDR" description:"JSON-RPC listen address" default:"127.0.0.1:8332"`
	User           string        `long:"user" env:"USER" description:"basic auth user"`
	Password       string        `long:"password" env:"PASSWORD" description:"basic auth password"`
	Timeout        time.Duration `long:"timeout" env:"TIMEOUT" description:"per request timeout" default:"60s"`
	AllowedOrigins []string      `long:"allowed-origin" env:"ALLOWED_ORIGINS" env-delim:"," description:"CORS origin, repeatable"`
}

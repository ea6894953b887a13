// Command lightnode-cli sends one JSON-RPC call to a running lightnode.
package main

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/pkg/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type config struct {
	Host     string         `long:"rpc-host" env:"LIGHTNODE_CLI_HOST" description:"lightnode JSON-RPC host:port" default:"127.0.0.1:8332"`
	User     string         `long:"rpc-user" env:"LIGHTNODE_CLI_USER" description:"JSON-RPC user"`
	Password string         `long:"rpc-password" env:"LIGHTNODE_CLI_PASSWORD" description:"JSON-RPC password"`
	Log      logging.Config `group:"Logging" namespace:"log" env-namespace:"LIGHTNODE_CLI_LOG"`
	Args     struct {
		Method string   `positional-arg-name:"method" required:"true"`
		Params []string `positional-arg-name:"params"`
	} `positional-args:"yes"`
}

type callLogger struct {
	logger *zap.Logger
}

func (c callLogger) Observe(operation string, err error, started time.Time) {
	c.logger.Debug("rpc call", zap.String("method", operation), zap.Duration("took", time.Since(started)), zap.Error(err))
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	out, err := run(cfg, logger.Named("cli"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func run(cfg config, logger *zap.Logger) (string, error) {
	client, err := rpcclient.NewHTTPClient(cfg.Host, cfg.User, cfg.Password)
	if err != nil {
		return "", fmt.Errorf("create rpc client: %w", err)
	}
	observed := rpcclient.NewObservedClient(client, callLogger{logger: logger})
	defer observed.Shutdown()

	switch cfg.Args.Method {
	case "getblockcount":
		count, err := observed.GetBlockCount()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(count, 10), nil
	case "getbestblockhash":
		hash, err := observed.GetBestBlockHash()
		if err != nil {
			return "", err
		}
		return hash.String(), nil
	}

	params := make([]stdjson.RawMessage, 0, len(cfg.Args.Params))
	for _, p := range cfg.Args.Params {
		params = append(params, param(p))
	}
	res, err := observed.RawRequest(cfg.Args.Method, params)
	if err != nil {
		return "", err
	}
	return render(res)
}

// param passes JSON literals through and quotes everything else. The btcd
// client takes encoding/json raw messages.
func param(arg string) stdjson.RawMessage {
	if json.Valid([]byte(arg)) {
		return stdjson.RawMessage(arg)
	}
	quoted, _ := json.Marshal(arg)
	return quoted
}

func render(res []byte) (string, error) {
	if len(res) > 0 && res[0] == '"' {
		var s string
		if err := json.Unmarshal(res, &s); err != nil {
			return "", fmt.Errorf("decode result: %w", err)
		}
		return s, nil
	}
	var v interface{}
	if err := json.Unmarshal(res, &v); err != nil {
		return "", fmt.Errorf("decode result: %w", err)
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(pretty), nil
}

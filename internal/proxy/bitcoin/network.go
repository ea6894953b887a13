// Package bitcoin wraps btcd primitives used to decode, verify and describe chain data.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

// ChainParams resolves btcd chain parameters for a network name.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3", "test":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// ChainName is the bitcoind name of the chain ("main", "test", ...).
func ChainName(params *chaincfg.Params) string {
	switch params.Net {
	case chaincfg.MainNetParams.Net:
		return "main"
	case chaincfg.TestNet3Params.Net:
		return "test"
	case chaincfg.RegressionNetParams.Net:
		return "regtest"
	case chaincfg.SigNetParams.Net:
		return "signet"
	default:
		return params.Name
	}
}

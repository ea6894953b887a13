package transport

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/electrum"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/service"
)

// errInvalidParams marks malformed or missing positional parameters.
var errInvalidParams = errors.New("invalid params")

// rpcError translates a service error into a bitcoind error object.
func rpcError(err error) *btcjson.RPCError {
	var rejected *electrum.RPCError
	switch {
	case errors.Is(err, errInvalidParams):
		return btcjson.NewRPCError(btcjson.ErrRPCInvalidParams.Code, err.Error())
	case errors.Is(err, service.ErrInvalidParameter):
		return btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter, err.Error())
	case errors.Is(err, service.ErrUnknownBlock):
		return btcjson.NewRPCError(btcjson.ErrRPCBlockNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidProofOfWork):
		return btcjson.NewRPCError(btcjson.ErrRPCVerify, err.Error())
	case errors.As(err, &rejected):
		return btcjson.NewRPCError(btcjson.ErrRPCVerify, rejected.Message)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return btcjson.NewRPCError(btcjson.ErrRPCMisc, "request canceled")
	default:
		// unavailable collaborators and disabled features share the generic code
		return btcjson.NewRPCError(btcjson.ErrRPCMisc, err.Error())
	}
}

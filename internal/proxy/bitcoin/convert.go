package bitcoin

import (
	"github.com/btcsuite/btcd/btcutil"
)

// SatoshisToBTC converts an integer amount into a BTC float for RPC responses.
func SatoshisToBTC(sats int64) float64 {
	return btcutil.Amount(sats).ToBTC()
}

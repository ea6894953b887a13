package bitcoin

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// ErrBadProofOfWork reports a header whose hash does not meet its own target,
// or whose target is easier than the network allows.
var ErrBadProofOfWork = errors.New("bad proof of work")

// CheckProofOfWork verifies the header hash against the target encoded in its
// bits, bounded by the network proof of work limit.
func CheckProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("%w: target %064x is not positive", ErrBadProofOfWork, target)
	}
	if target.Cmp(params.PowLimit) > 0 {
		return fmt.Errorf("%w: target %064x above limit %064x", ErrBadProofOfWork, target, params.PowLimit)
	}
	hash := header.BlockHash()
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return fmt.Errorf("%w: hash %s above target %064x", ErrBadProofOfWork, hash, target)
	}
	return nil
}

// Difficulty returns the bitcoind-style difficulty ratio for compact bits.
func Difficulty(bits uint32, params *chaincfg.Params) float64 {
	limit := blockchain.CompactToBig(params.PowLimitBits)
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		return 0
	}
	ratio := new(big.Rat).SetFrac(limit, target)
	diff, err := strconv.ParseFloat(ratio.FloatString(8), 64)
	if err != nil {
		return 0
	}
	return diff
}

// Work returns the expected number of hashes for a header with the given bits.
func Work(bits uint32) *big.Int {
	return blockchain.CalcWork(bits)
}

// ChainworkHex renders accumulated work the way bitcoind does.
func ChainworkHex(work *big.Int) string {
	if work == nil {
		work = new(big.Int)
	}
	return fmt.Sprintf("%064x", work)
}

// BitsHex renders compact bits as 8 hex digits.
func BitsHex(bits uint32) string {
	return fmt.Sprintf("%08x", bits)
}

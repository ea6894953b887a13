package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// OutPoint identifies a transaction output.
type OutPoint struct {
	TxID  chainhash.Hash
	Index uint32
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}

// UTXO is an unspent output owned by the UTXO set.
type UTXO struct {
	TxID     chainhash.Hash
	Index    uint32
	Height   uint32
	Amount   int64
	Script   []byte
	Witness  []byte
	Coinbase bool
}

// OutPoint returns the set key of the output.
func (u UTXO) OutPoint() OutPoint {
	return OutPoint{TxID: u.TxID, Index: u.Index}
}

// SpentOutput is a UTXO removed by an input, reported with its last known record.
type SpentOutput struct {
	OutPoint    OutPoint
	UTXO        UTXO
	SpentHeight uint32
}

// UTXODiff is the net mutation of the UTXO set produced by one processing call.
type UTXODiff struct {
	Spent   []SpentOutput
	Created []UTXO
}

// Empty reports whether the diff carries no mutation.
func (d UTXODiff) Empty() bool {
	return len(d.Spent) == 0 && len(d.Created) == 0
}

// UTXOSetStats summarizes the whole UTXO set.
type UTXOSetStats struct {
	Tip         UTXOTip
	Outputs     int64
	TotalAmount int64
}

// UTXOTip is the last block applied to the UTXO set.
type UTXOTip struct {
	Height uint32
	Hash   chainhash.Hash
}

// ScriptUnspent is an unspent output reported by an Electrum scripthash listing.
type ScriptUnspent struct {
	TxHash string `json:"tx_hash"`
	TxPos  uint32 `json:"tx_pos"`
	Height int64  `json:"height"`
	Value  int64  `json:"value"`
}

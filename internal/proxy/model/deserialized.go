package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// DeserializedBlock is a block decoded into the shape consumed by UTXO processing.
type DeserializedBlock struct {
	Hash         chainhash.Hash
	Height       uint32
	Transactions []DeserializedTransaction
}

// DeserializedTransaction is a transaction with its inputs and outputs in block order.
type DeserializedTransaction struct {
	Hash       chainhash.Hash
	IsCoinbase bool
	Inputs     []DeserializedInput
	Outputs    []DeserializedOutput
}

// DeserializedInput references a previous output.
type DeserializedInput struct {
	PrevTxHash chainhash.Hash
	PrevIndex  uint32
	Script     []byte
	Witness    [][]byte
}

// DeserializedOutput is a newly created output.
type DeserializedOutput struct {
	Script []byte
	Amount int64
}

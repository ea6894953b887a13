package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

// ParseBlock decodes raw block bytes and returns the block with the location of
// every transaction inside the serialization.
func ParseBlock(data []byte) (*wire.MsgBlock, []wire.TxLoc, error) {
	var msg wire.MsgBlock
	locs, err := msg.DeserializeTxLoc(bytes.NewBuffer(data))
	if err != nil {
		return nil, nil, fmt.Errorf("deserialize block: %w", err)
	}
	return &msg, locs, nil
}

// DeserializeBlock turns a stored block into the shape consumed by the UTXO set.
func DeserializeBlock(block model.Block) (model.DeserializedBlock, error) {
	msg, _, err := ParseBlock(block.Data)
	if err != nil {
		return model.DeserializedBlock{}, fmt.Errorf("block %s: %w", block.Hash, err)
	}
	if got := msg.BlockHash(); got != block.Hash {
		return model.DeserializedBlock{}, fmt.Errorf("block hash mismatch: expected %s, got %s", block.Hash, got)
	}
	if err := CheckMerkleRoot(msg); err != nil {
		return model.DeserializedBlock{}, err
	}
	return FromMsgBlock(msg, block.Height), nil
}

// FromMsgBlock converts an already decoded block.
func FromMsgBlock(msg *wire.MsgBlock, height uint32) model.DeserializedBlock {
	txs := make([]model.DeserializedTransaction, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		txs = append(txs, fromMsgTx(tx))
	}
	return model.DeserializedBlock{
		Hash:         msg.BlockHash(),
		Height:       height,
		Transactions: txs,
	}
}

func fromMsgTx(tx *wire.MsgTx) model.DeserializedTransaction {
	coinbase := blockchain.IsCoinBaseTx(tx)
	inputs := make([]model.DeserializedInput, 0, len(tx.TxIn))
	for _, in := range tx.TxIn {
		inputs = append(inputs, model.DeserializedInput{
			PrevTxHash: in.PreviousOutPoint.Hash,
			PrevIndex:  in.PreviousOutPoint.Index,
			Script:     in.SignatureScript,
			Witness:    in.Witness,
		})
	}
	outputs := make([]model.DeserializedOutput, 0, len(tx.TxOut))
	for _, out := range tx.TxOut {
		outputs = append(outputs, model.DeserializedOutput{
			Script: out.PkScript,
			Amount: out.Value,
		})
	}
	return model.DeserializedTransaction{
		Hash:       tx.TxHash(),
		IsCoinbase: coinbase,
		Inputs:     inputs,
		Outputs:    outputs,
	}
}

// DecodeTx parses a raw transaction.
func DecodeTx(raw []byte) (*btcutil.Tx, error) {
	tx, err := btcutil.NewTxFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("deserialize tx: %w", err)
	}
	return tx, nil
}

// DecodeTxHex parses a hex encoded raw transaction.
func DecodeTxHex(rawHex string) (*btcutil.Tx, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("decode tx hex: %w", err)
	}
	return DecodeTx(raw)
}

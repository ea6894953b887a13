// Package bitcointest builds small regtest chains for tests.
package bitcointest

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

var (
	// Params are the regtest parameters every helper builds on.
	Params = &chaincfg.RegressionNetParams

	// P2PKHScript pays to a fixed legacy key hash.
	P2PKHScript = append(append([]byte{0x76, 0xa9, 0x14}, bytes.Repeat([]byte{0x11}, 20)...), 0x88, 0xac)
	// P2WPKHScript pays to a fixed segwit v0 key hash.
	P2WPKHScript = append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0x22}, 20)...)
)

// Coinbase builds a coinbase transaction made unique by height.
func Coinbase(height uint32, amounts ...int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	sig := make([]byte, 5)
	sig[0] = 0x04
	binary.LittleEndian.PutUint32(sig[1:], height)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  sig,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	for _, amount := range amounts {
		tx.AddTxOut(wire.NewTxOut(amount, P2PKHScript))
	}
	return tx
}

// Spend builds a transaction consuming prevs and paying amounts to script.
func Spend(prevs []wire.OutPoint, script []byte, amounts ...int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	for i := range prevs {
		tx.AddTxIn(wire.NewTxIn(&prevs[i], []byte{0x51}, nil))
	}
	for _, amount := range amounts {
		tx.AddTxOut(wire.NewTxOut(amount, script))
	}
	return tx
}

// MsgBlock assembles a block on top of prev.
func MsgBlock(prev chainhash.Hash, height uint32, txs ...*wire.MsgTx) *wire.MsgBlock {
	wrapped := make([]*btcutil.Tx, 0, len(txs))
	for _, tx := range txs {
		wrapped = append(wrapped, btcutil.NewTx(tx))
	}
	msg := wire.NewMsgBlock(&wire.BlockHeader{
		Version:    0x20000000,
		PrevBlock:  prev,
		MerkleRoot: blockchain.CalcMerkleRoot(wrapped, false),
		Timestamp:  Params.GenesisBlock.Header.Timestamp.Add(time.Duration(height) * 10 * time.Minute),
		Bits:       Params.PowLimitBits,
		Nonce:      height,
	})
	for _, tx := range txs {
		_ = msg.AddTransaction(tx)
	}
	mine(&msg.Header)
	return msg
}

// mine bumps the nonce until the header meets its regtest target.
func mine(header *wire.BlockHeader) {
	target := blockchain.CompactToBig(header.Bits)
	for {
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			return
		}
		header.Nonce++
	}
}

// Block serializes msg into a model block at height.
func Block(msg *wire.MsgBlock, height uint32) model.Block {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		panic(err)
	}
	return model.Block{Hash: msg.BlockHash(), Data: buf.Bytes(), Height: height}
}

// Header returns the model header of a block.
func Header(msg *wire.MsgBlock, height uint32) model.BlockHeader {
	var buf bytes.Buffer
	if err := msg.Header.Serialize(&buf); err != nil {
		panic(err)
	}
	header, err := model.NewBlockHeader(buf.Bytes(), model.HeightPtr(height))
	if err != nil {
		panic(err)
	}
	return header
}

// Chain builds n coinbase-only blocks from fromHeight on top of prev. The salt
// distinguishes competing branches.
func Chain(prev chainhash.Hash, fromHeight uint32, n int, salt int64) []*wire.MsgBlock {
	blocks := make([]*wire.MsgBlock, 0, n)
	for i := 0; i < n; i++ {
		height := fromHeight + uint32(i)
		msg := MsgBlock(prev, height, Coinbase(height, 50_0000_0000+salt))
		blocks = append(blocks, msg)
		prev = msg.BlockHash()
	}
	return blocks
}

// Headers converts blocks into model headers starting at fromHeight.
func Headers(blocks []*wire.MsgBlock, fromHeight uint32) []model.BlockHeader {
	headers := make([]model.BlockHeader, 0, len(blocks))
	for i, b := range blocks {
		headers = append(headers, Header(b, fromHeight+uint32(i)))
	}
	return headers
}

// RawTx serializes a transaction with witness data.
func RawTx(tx *wire.MsgTx) []byte {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

package electrum

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

type merkleResponse struct {
	BlockHeight uint32   `json:"block_height"`
	Merkle      []string `json:"merkle"`
	Pos         int      `json:"pos"`
}

type headersResponse struct {
	Count int    `json:"count"`
	Hex   string `json:"hex"`
	Max   int    `json:"max"`
}

// GetRawTransaction returns the hex serialization of a transaction.
func (p *Pool) GetRawTransaction(ctx context.Context, txid string) (string, error) {
	var raw string
	if err := p.call(ctx, "get_transaction", &raw, "blockchain.transaction.get", txid, false); err != nil {
		return "", err
	}
	return raw, nil
}

// GetTransactionVerbose returns the bitcoind-style decoded transaction, including
// the confirming block hash when the server knows it.
func (p *Pool) GetTransactionVerbose(ctx context.Context, txid string) (*btcjson.TxRawResult, error) {
	var tx btcjson.TxRawResult
	if err := p.call(ctx, "get_transaction_verbose", &tx, "blockchain.transaction.get", txid, true); err != nil {
		return nil, err
	}
	if tx.Hex == "" {
		return nil, nil
	}
	return &tx, nil
}

// SendRawTransaction broadcasts a transaction and returns its txid.
func (p *Pool) SendRawTransaction(ctx context.Context, rawHex string) (string, error) {
	var txid string
	if err := p.call(ctx, "broadcast", &txid, "blockchain.transaction.broadcast", rawHex); err != nil {
		return "", err
	}
	return txid, nil
}

// GetMerkleProof returns the merkle branch of txid in the block at height.
func (p *Pool) GetMerkleProof(ctx context.Context, txid string, height uint32) (bitcoin.MerkleProof, error) {
	var resp merkleResponse
	if err := p.call(ctx, "get_merkle", &resp, "blockchain.transaction.get_merkle", txid, height); err != nil {
		return bitcoin.MerkleProof{}, err
	}
	return bitcoin.MerkleProof{BlockHeight: resp.BlockHeight, Branch: resp.Merkle, Pos: resp.Pos}, nil
}

// EstimateFee returns the fee rate in BTC/kB for confirmation within blocks.
func (p *Pool) EstimateFee(ctx context.Context, blocks int) (float64, error) {
	var fee float64
	if err := p.call(ctx, "estimate_fee", &fee, "blockchain.estimatefee", blocks); err != nil {
		return 0, err
	}
	return fee, nil
}

// ListUnspent lists the unspent outputs paying to scripthash.
func (p *Pool) ListUnspent(ctx context.Context, scripthash string) ([]model.ScriptUnspent, error) {
	var unspents []model.ScriptUnspent
	if err := p.call(ctx, "list_unspent", &unspents, "blockchain.scripthash.listunspent", scripthash); err != nil {
		return nil, err
	}
	return unspents, nil
}

// GetHeaders returns up to count raw headers starting at height start.
func (p *Pool) GetHeaders(ctx context.Context, start uint32, count int) ([][]byte, error) {
	var resp headersResponse
	if err := p.call(ctx, "get_headers", &resp, "blockchain.block.headers", start, count); err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(resp.Hex)
	if err != nil {
		return nil, fmt.Errorf("decode headers: %w", err)
	}
	if len(data) != resp.Count*model.HeaderSize {
		return nil, fmt.Errorf("headers response: %d bytes for %d headers", len(data), resp.Count)
	}
	headers := make([][]byte, 0, resp.Count)
	for i := 0; i < resp.Count; i++ {
		headers = append(headers, data[i*model.HeaderSize:(i+1)*model.HeaderSize])
	}
	return headers, nil
}

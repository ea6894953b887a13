package transport

import (
	"context"
	"fmt"
	"math"
)

type handlerFunc func(ctx context.Context, p params) (interface{}, error)

func (s *RPCServer) routes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"getbestblockhash":   s.getBestBlockHash,
		"getblockcount":      s.getBlockCount,
		"getblockhash":       s.getBlockHash,
		"getblock":           s.getBlock,
		"getblockheader":     s.getBlockHeader,
		"getbestblockheader": s.getBestBlockHeader,
		"getrawtransaction":  s.getRawTransaction,
		"sendrawtransaction": s.sendRawTransaction,
		"gettxout":           s.getTxOut,
		"gettxoutsetinfo":    s.getTxOutSetInfo,
		"estimatefee":        s.estimateFee,
		"estimatesmartfee":   s.estimateSmartFee,
		"getblockchaininfo":  s.getBlockchainInfo,
		"getpeerinfo":        s.getPeerInfo,
		"getmempoolinfo":     s.getMempoolInfo,
		"getrawmempool":      s.getRawMempool,
		"validateaddress":    s.validateAddress,
	}
}

// orNull renders not-found string results as JSON null.
func orNull(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

func (s *RPCServer) getBestBlockHash(ctx context.Context, _ params) (interface{}, error) {
	hash, err := s.svc.GetBestBlockHash(ctx)
	return orNull(hash), err
}

func (s *RPCServer) getBlockCount(ctx context.Context, _ params) (interface{}, error) {
	return s.svc.GetBlockCount(ctx)
}

func (s *RPCServer) getBlockHash(ctx context.Context, p params) (interface{}, error) {
	if err := p.require(1); err != nil {
		return nil, err
	}
	height, err := p.int64(0, 0)
	if err != nil {
		return nil, err
	}
	hash, err := s.svc.GetBlockHash(ctx, height)
	return orNull(hash), err
}

func (s *RPCServer) getBlock(ctx context.Context, p params) (interface{}, error) {
	hash, err := p.string(0)
	if err != nil {
		return nil, err
	}
	mode, err := p.verbosity(1, 0)
	if err != nil {
		return nil, err
	}
	block, err := s.svc.GetBlock(ctx, hash, mode)
	return orNull(block), err
}

func (s *RPCServer) getBlockHeader(ctx context.Context, p params) (interface{}, error) {
	hash, err := p.string(0)
	if err != nil {
		return nil, err
	}
	verbose, err := p.bool(1, true)
	if err != nil {
		return nil, err
	}
	if !verbose {
		header, err := s.svc.GetBlockHeaderHex(ctx, hash)
		return orNull(header), err
	}
	header, err := s.svc.GetBlockHeaderVerbose(ctx, hash)
	if err != nil || header == nil {
		return nil, err
	}
	return header, nil
}

func (s *RPCServer) getBestBlockHeader(ctx context.Context, p params) (interface{}, error) {
	verbose, err := p.bool(0, true)
	if err != nil {
		return nil, err
	}
	if !verbose {
		header, err := s.svc.GetBestBlockHeaderHex(ctx)
		return orNull(header), err
	}
	header, err := s.svc.GetBestBlockHeaderVerbose(ctx)
	if err != nil || header == nil {
		return nil, err
	}
	return header, nil
}

func (s *RPCServer) getRawTransaction(ctx context.Context, p params) (interface{}, error) {
	txid, err := p.string(0)
	if err != nil {
		return nil, err
	}
	verbose, err := p.bool(1, false)
	if err != nil {
		return nil, err
	}
	if !verbose {
		raw, err := s.svc.GetRawTransactionHex(ctx, txid)
		return orNull(raw), err
	}
	tx, err := s.svc.GetRawTransactionVerbose(ctx, txid)
	if err != nil || tx == nil {
		return nil, err
	}
	return tx, nil
}

func (s *RPCServer) sendRawTransaction(ctx context.Context, p params) (interface{}, error) {
	raw, err := p.string(0)
	if err != nil {
		return nil, err
	}
	return s.svc.SendRawTransaction(ctx, raw)
}

func (s *RPCServer) getTxOut(ctx context.Context, p params) (interface{}, error) {
	if err := p.require(2); err != nil {
		return nil, err
	}
	txid, err := p.string(0)
	if err != nil {
		return nil, err
	}
	n, err := p.int64(1, 0)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > math.MaxUint32 {
		return nil, fmt.Errorf("%w: output index %d out of range", errInvalidParams, n)
	}
	out, err := s.svc.GetTxOut(ctx, txid, uint32(n))
	if err != nil || out == nil {
		return nil, err
	}
	return out, nil
}

func (s *RPCServer) getTxOutSetInfo(ctx context.Context, _ params) (interface{}, error) {
	return s.svc.GetTxOutSetInfo(ctx)
}

func (s *RPCServer) estimateFee(ctx context.Context, p params) (interface{}, error) {
	blocks, err := s.confTarget(p)
	if err != nil {
		return nil, err
	}
	fee, err := s.svc.EstimateFee(ctx, blocks)
	if err != nil || fee == nil {
		return nil, err
	}
	return *fee, nil
}

type smartFeeResult struct {
	FeeRate *float64 `json:"feerate,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Blocks  int      `json:"blocks"`
}

func (s *RPCServer) estimateSmartFee(ctx context.Context, p params) (interface{}, error) {
	blocks, err := s.confTarget(p)
	if err != nil {
		return nil, err
	}
	fee, err := s.svc.EstimateFee(ctx, blocks)
	if err != nil {
		return nil, err
	}
	if fee == nil || *fee < 0 {
		return smartFeeResult{Errors: []string{"Insufficient data or no feerate found"}, Blocks: blocks}, nil
	}
	return smartFeeResult{FeeRate: fee, Blocks: blocks}, nil
}

func (s *RPCServer) confTarget(p params) (int, error) {
	if err := p.require(1); err != nil {
		return 0, err
	}
	blocks, err := p.int64(0, 0)
	if err != nil {
		return 0, err
	}
	if blocks > math.MaxInt32 {
		return 0, fmt.Errorf("%w: confirmation target %d out of range", errInvalidParams, blocks)
	}
	return int(blocks), nil
}

func (s *RPCServer) getBlockchainInfo(ctx context.Context, _ params) (interface{}, error) {
	return s.svc.GetBlockchainInfo(ctx)
}

func (s *RPCServer) getPeerInfo(ctx context.Context, _ params) (interface{}, error) {
	return s.svc.GetPeerInfo(ctx), nil
}

func (s *RPCServer) getMempoolInfo(ctx context.Context, _ params) (interface{}, error) {
	return s.svc.GetMempoolInfo(ctx)
}

func (s *RPCServer) getRawMempool(ctx context.Context, p params) (interface{}, error) {
	verbose, err := p.bool(0, false)
	if err != nil {
		return nil, err
	}
	return s.svc.GetRawMempool(ctx, verbose)
}

func (s *RPCServer) validateAddress(_ context.Context, p params) (interface{}, error) {
	address, err := p.string(0)
	if err != nil {
		return nil, err
	}
	return s.svc.ValidateAddress(address), nil
}

package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

// GetBlockHeaderHex returns the raw header hex, or an empty string for an unknown hash.
func (s *QueryService) GetBlockHeaderHex(ctx context.Context, hash string) (string, error) {
	h, err := parseHash(hash)
	if err != nil {
		return "", err
	}
	header, err := s.blockchain.GetHeader(ctx, *h)
	if err != nil {
		return "", fmt.Errorf("get header %s: %w", h, err)
	}
	if header == nil {
		return "", nil
	}
	return hex.EncodeToString(header.Data), nil
}

// GetBlockHeaderVerbose returns the decoded header, or nil for an unknown hash.
func (s *QueryService) GetBlockHeaderVerbose(ctx context.Context, hash string) (*model.HeaderResult, error) {
	h, err := parseHash(hash)
	if err != nil {
		return nil, err
	}
	header, err := s.blockchain.GetHeader(ctx, *h)
	if err != nil {
		return nil, fmt.Errorf("get header %s: %w", h, err)
	}
	if header == nil {
		return nil, nil
	}
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("get best header: %w", err)
	}
	return s.headerResult(ctx, *header, best)
}

// GetBestBlockHeaderHex returns the raw hex of the best header.
func (s *QueryService) GetBestBlockHeaderHex(ctx context.Context) (string, error) {
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return "", fmt.Errorf("get best header: %w", err)
	}
	return hex.EncodeToString(best.Data), nil
}

// GetBestBlockHeaderVerbose returns the decoded best header.
func (s *QueryService) GetBestBlockHeaderVerbose(ctx context.Context) (*model.HeaderResult, error) {
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("get best header: %w", err)
	}
	return s.headerResult(ctx, best, best)
}

func (s *QueryService) headerResult(ctx context.Context, header, best model.BlockHeader) (*model.HeaderResult, error) {
	hdr, err := header.Wire()
	if err != nil {
		return nil, err
	}
	res := &model.HeaderResult{
		Hash:          header.Hash.String(),
		Confirmations: -1,
		Version:       hdr.Version,
		VersionHex:    fmt.Sprintf("%08x", uint32(hdr.Version)),
		MerkleRoot:    hdr.MerkleRoot.String(),
		Time:          hdr.Timestamp.Unix(),
		Nonce:         hdr.Nonce,
		Bits:          bitcoin.BitsHex(hdr.Bits),
		Difficulty:    bitcoin.Difficulty(hdr.Bits, s.params),
	}
	if hdr.PrevBlock != (chainhash.Hash{}) {
		res.PreviousBlockHash = hdr.PrevBlock.String()
	}

	work, err := s.blockchain.GetChainwork(ctx, header.Hash)
	if err != nil {
		return nil, fmt.Errorf("get chainwork %s: %w", header.Hash, err)
	}
	res.Chainwork = bitcoin.ChainworkHex(work)

	median, err := s.blockchain.GetMedianTime(ctx, header.Hash)
	if err != nil {
		return nil, fmt.Errorf("get median time %s: %w", header.Hash, err)
	}
	res.MedianTime = median.Unix()

	if !header.Connected() {
		return res, nil
	}
	height := *header.Height
	bestHeight := best.HeightOrZero()
	res.Height = height
	res.Confirmations = int64(bestHeight) - int64(height) + 1

	switch {
	case bestHeight <= height:
	case bestHeight == height+1:
		res.NextBlockHash = best.Hash.String()
	default:
		next, err := s.blockchain.GetBlockHash(ctx, height+1)
		if err != nil {
			return nil, fmt.Errorf("get block hash at %d: %w", height+1, err)
		}
		if next != nil {
			res.NextBlockHash = next.String()
		}
	}
	return res, nil
}

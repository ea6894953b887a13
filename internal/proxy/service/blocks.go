package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"go.uber.org/zap"
)

// GetBlock returns the raw block hex for verbosity 0. Blocks missing locally are
// fetched from the P2P pool and handed to the block cache. An unknown hash
// yields an empty string.
func (s *QueryService) GetBlock(ctx context.Context, hash string, mode int) (string, error) {
	switch mode {
	case 0:
	case 1, 2:
		return "", fmt.Errorf("getblock verbosity %d: %w", mode, ErrNotImplemented)
	default:
		return "", fmt.Errorf("getblock verbosity %d: %w", mode, ErrInvalidParameter)
	}
	h, err := parseHash(hash)
	if err != nil {
		return "", err
	}

	block, err := s.blockchain.GetBlock(ctx, *h)
	if err != nil {
		return "", fmt.Errorf("get local block %s: %w", h, err)
	}
	if block != nil {
		return hex.EncodeToString(block.Data), nil
	}

	header, err := s.blockchain.GetHeader(ctx, *h)
	if err != nil {
		return "", fmt.Errorf("get header %s: %w", h, err)
	}
	if header == nil {
		return "", nil
	}

	data, err := s.p2p.GetBlock(ctx, *h)
	if err != nil {
		return "", unavailable(fmt.Sprintf("fetch block %s", h), err)
	}
	if data == nil {
		return "", fmt.Errorf("fetch block %s: no peer delivered it: %w", h, ErrServiceUnavailable)
	}
	if err := checkBlockData(*h, data); err != nil {
		s.logger.Warn("p2p block failed validation", zap.Stringer("hash", h), zap.Error(err))
		return "", fmt.Errorf("fetch block %s: %w: %w", h, ErrInvalidProofOfWork, err)
	}

	s.cache.Save(model.Block{Hash: *h, Data: data, Height: header.HeightOrZero()})
	s.logger.Debug("block fetched from p2p", zap.Stringer("hash", h), zap.Int("size", len(data)))
	return hex.EncodeToString(data), nil
}

// checkBlockData makes sure raw bytes decode to the block committed by hash.
func checkBlockData(hash chainhash.Hash, data []byte) error {
	msg, _, err := bitcoin.ParseBlock(data)
	if err != nil {
		return err
	}
	if got := msg.BlockHash(); got != hash {
		return fmt.Errorf("peer served %s", got)
	}
	return bitcoin.CheckMerkleRoot(msg)
}

// GetBlockHash returns the best-chain hash at height, or an empty string.
func (s *QueryService) GetBlockHash(ctx context.Context, height int64) (string, error) {
	if height < 0 || height > int64(^uint32(0)) {
		return "", fmt.Errorf("height %d: %w", height, ErrInvalidParameter)
	}
	hash, err := s.blockchain.GetBlockHash(ctx, uint32(height))
	if err != nil {
		return "", fmt.Errorf("get block hash at %d: %w", height, err)
	}
	if hash == nil {
		return "", nil
	}
	return hash.String(), nil
}

// GetBlockCount returns the height of the best header.
func (s *QueryService) GetBlockCount(ctx context.Context) (uint32, error) {
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return 0, fmt.Errorf("get best header: %w", err)
	}
	return best.HeightOrZero(), nil
}

// GetBestBlockHash returns the hash of the best header.
func (s *QueryService) GetBestBlockHash(ctx context.Context) (string, error) {
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return "", fmt.Errorf("get best header: %w", err)
	}
	return best.Hash.String(), nil
}

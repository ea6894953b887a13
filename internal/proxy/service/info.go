package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/electrum"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"go.uber.org/zap"
)

// EstimateFee asks Electrum for a fee rate in BTC/kB. When the servers keep
// dropping the request the last known rate is served instead. A nil rate means
// no estimate has ever been obtained.
func (s *QueryService) EstimateFee(ctx context.Context, blocks int) (*float64, error) {
	if blocks < 1 {
		return nil, fmt.Errorf("blocks %d: %w", blocks, ErrInvalidParameter)
	}
	var fee float64
	err := clock.Retry(ctx, clock.RetryPolicy{
		Attempts:  estimateFeeAttempts,
		Sleep:     s.sleep,
		Retryable: func(err error) bool { return errors.Is(err, electrum.ErrMissingResponse) },
	}, func(ctx context.Context) error {
		res, err := s.electrum.EstimateFee(ctx, blocks)
		if err != nil {
			return err
		}
		fee = res
		return nil
	})

	s.feeMu.Lock()
	defer s.feeMu.Unlock()
	if err == nil {
		s.lastFee = &fee
		return &fee, nil
	}
	s.logger.Error("estimatefee failed", zap.Int("blocks", blocks), zap.Error(err))
	if s.lastFee != nil {
		last := *s.lastFee
		return &last, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return nil, nil
}

// GetBlockchainInfo reports the best header and P2P bootstrap progress.
func (s *QueryService) GetBlockchainInfo(ctx context.Context) (*model.BlockchainInfo, error) {
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("get best header: %w", err)
	}
	hdr, err := best.Wire()
	if err != nil {
		return nil, err
	}
	work, err := s.blockchain.GetChainwork(ctx, best.Hash)
	if err != nil {
		return nil, fmt.Errorf("get chainwork %s: %w", best.Hash, err)
	}
	median, err := s.blockchain.GetMedianTime(ctx, best.Hash)
	if err != nil {
		return nil, fmt.Errorf("get median time %s: %w", best.Hash, err)
	}
	progress := s.p2p.BootstrapStatus()

	return &model.BlockchainInfo{
		Chain:                bitcoin.ChainName(s.params),
		Blocks:               best.HeightOrZero(),
		Headers:              best.HeightOrZero(),
		BestBlockHash:        best.Hash.String(),
		Difficulty:           bitcoin.Difficulty(hdr.Bits, s.params),
		MedianTime:           median.Unix(),
		VerificationProgress: progress,
		InitialBlockDownload: progress < 1,
		Chainwork:            bitcoin.ChainworkHex(work),
	}, nil
}

// GetPeerInfo lists the live Electrum and P2P connections.
func (s *QueryService) GetPeerInfo(_ context.Context) []model.PeerInfo {
	peers := append(s.electrum.Connections(), s.p2p.Connections()...)
	res := make([]model.PeerInfo, 0, len(peers))
	for _, p := range peers {
		res = append(res, model.PeerInfo{
			Addr:           p.Addr(),
			Subver:         p.Subversion,
			ConnTime:       p.ConnectedAt.Unix(),
			StartingHeight: p.LastBlockIndex,
			Network:        string(p.Kind),
		})
	}
	return res
}

// GetMempoolInfo reports mempool size when the mempool is enabled.
func (s *QueryService) GetMempoolInfo(_ context.Context) (*model.MempoolInfo, error) {
	if s.mempool == nil {
		return nil, ErrMempoolDisabled
	}
	info := s.mempool.Info()
	return &info, nil
}

// GetRawMempool returns txids, or txid keyed entries when verbose.
func (s *QueryService) GetRawMempool(_ context.Context, verbose bool) (interface{}, error) {
	if s.mempool == nil {
		return nil, ErrMempoolDisabled
	}
	if verbose {
		return s.mempool.VerboseMempool(), nil
	}
	return s.mempool.RawMempool(), nil
}

// ValidateAddress checks an address against the configured network.
func (s *QueryService) ValidateAddress(address string) model.AddressValidation {
	if !s.decoder.ValidateAddress(address) {
		return model.AddressValidation{}
	}
	return model.AddressValidation{IsValid: true, Address: address}
}

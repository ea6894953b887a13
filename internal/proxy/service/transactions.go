package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/electrum"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

var errTxNotFound = errors.New("transaction not found")

// GetRawTransactionHex returns the raw transaction hex from the local tx index,
// or from Electrum after merkle verification. Unknown txids yield an empty string.
func (s *QueryService) GetRawTransactionHex(ctx context.Context, txid string) (string, error) {
	h, err := parseHash(txid)
	if err != nil {
		return "", err
	}
	raw, err := s.blockchain.GetTransaction(ctx, *h)
	if err != nil {
		return "", fmt.Errorf("get local transaction %s: %w", h, err)
	}
	if raw != nil {
		return hex.EncodeToString(raw), nil
	}

	tx, err := s.electrumTransaction(ctx, *h)
	if err != nil || tx == nil {
		return "", err
	}
	return tx.Hex, nil
}

// GetRawTransactionVerbose returns the decoded transaction from Electrum after
// merkle verification, or nil for an unknown txid.
func (s *QueryService) GetRawTransactionVerbose(ctx context.Context, txid string) (*btcjson.TxRawResult, error) {
	h, err := parseHash(txid)
	if err != nil {
		return nil, err
	}
	return s.electrumTransaction(ctx, *h)
}

// SendRawTransaction broadcasts through Electrum and remembers the txid so
// follow-up lookups wait for the servers to index it.
func (s *QueryService) SendRawTransaction(ctx context.Context, rawHex string) (string, error) {
	if _, err := bitcoin.DecodeTxHex(rawHex); err != nil {
		return "", fmt.Errorf("decode transaction: %w: %w", ErrInvalidParameter, err)
	}
	txid, err := s.electrum.SendRawTransaction(ctx, rawHex)
	if err != nil {
		var rpcErr *electrum.RPCError
		if errors.As(err, &rpcErr) {
			return "", fmt.Errorf("broadcast rejected: %w", err)
		}
		return "", unavailable("broadcast", err)
	}
	if _, err := parseHash(txid); err == nil {
		s.expected.Set(txid, struct{}{}, ttlcache.DefaultTTL)
	}
	return txid, nil
}

func (s *QueryService) electrumTransaction(ctx context.Context, txid chainhash.Hash) (*btcjson.TxRawResult, error) {
	id := txid.String()
	attempts := 1
	if s.expected.Has(id) {
		attempts = expectedTxRetries + 1
	}

	var tx *btcjson.TxRawResult
	err := clock.Retry(ctx, clock.RetryPolicy{
		Attempts: attempts,
		Delay:    expectedTxRetryDelay,
		Sleep:    s.sleep,
		OnRetry: func(attempt int, err error) {
			s.logger.Debug("expected transaction not served yet",
				zap.String("txid", id), zap.Int("attempt", attempt), zap.Error(err))
		},
	}, func(ctx context.Context) error {
		res, err := s.electrum.GetTransactionVerbose(ctx, id)
		if err != nil {
			return err
		}
		if res == nil {
			return errTxNotFound
		}
		tx = res
		return nil
	})

	var rpcErr *electrum.RPCError
	switch {
	case err == nil:
	case errors.Is(err, errTxNotFound), errors.As(err, &rpcErr):
		return nil, nil
	default:
		return nil, unavailable("electrum transaction "+id, err)
	}

	decoded, err := bitcoin.DecodeTxHex(tx.Hex)
	if err != nil {
		return nil, fmt.Errorf("electrum transaction %s: %w: %w", id, ErrServiceUnavailable, err)
	}
	if got := decoded.Hash(); !got.IsEqual(&txid) {
		s.logger.Warn("electrum served a transaction with a different hash",
			zap.String("txid", id), zap.Stringer("got", got))
		return nil, fmt.Errorf("electrum served %s for %s: %w", got, id, ErrInvalidProofOfWork)
	}

	if err := s.verifyTransaction(ctx, txid, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// verifyTransaction checks the Electrum merkle branch of a confirmed transaction
// against the merkle root of the locally stored header and fills confirmations.
func (s *QueryService) verifyTransaction(ctx context.Context, txid chainhash.Hash, tx *btcjson.TxRawResult) error {
	if tx.BlockHash == "" {
		tx.Confirmations = 0
		return nil
	}
	blockHash, err := chainhash.NewHashFromStr(tx.BlockHash)
	if err != nil {
		return fmt.Errorf("transaction %s block hash %q: %w", txid, tx.BlockHash, ErrInvalidProofOfWork)
	}
	header, err := s.blockchain.GetHeader(ctx, *blockHash)
	if err != nil {
		return fmt.Errorf("get header %s: %w", blockHash, err)
	}
	if header == nil || !header.Connected() {
		return fmt.Errorf("transaction %s in block %s: %w", txid, blockHash, ErrUnknownBlock)
	}
	height := *header.Height

	proof, err := s.electrum.GetMerkleProof(ctx, txid.String(), height)
	if err != nil {
		return unavailable("electrum merkle proof "+txid.String(), err)
	}
	hdr, err := header.Wire()
	if err != nil {
		return err
	}
	ok, err := bitcoin.VerifyMerkleProof(txid, proof, hdr.MerkleRoot)
	if err != nil || !ok || proof.BlockHeight != height {
		s.logger.Warn("merkle proof rejected",
			zap.Stringer("txid", txid), zap.Stringer("block", blockHash), zap.Error(err))
		return fmt.Errorf("transaction %s in block %s: %w", txid, blockHash, ErrInvalidProofOfWork)
	}

	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return fmt.Errorf("get best header: %w", err)
	}
	if bestHeight := best.HeightOrZero(); bestHeight >= height {
		tx.Confirmations = uint64(bestHeight-height) + 1
	}
	tx.Time = hdr.Timestamp.Unix()
	tx.Blocktime = hdr.Timestamp.Unix()
	return nil
}

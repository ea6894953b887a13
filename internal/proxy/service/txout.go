package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/electrum"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"go.uber.org/zap"
)

// GetTxOut describes an unspent output, or returns nil when it is spent or unknown.
// The UTXO set answers once it has caught up with the best header; until then
// the output is looked up through the Electrum scripthash index.
func (s *QueryService) GetTxOut(ctx context.Context, txid string, index uint32) (*model.TxOutResult, error) {
	h, err := parseHash(txid)
	if err != nil {
		return nil, err
	}
	best, err := s.blockchain.GetBestHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("get best header: %w", err)
	}

	synced, err := s.utxoSynced(ctx, best)
	if err != nil {
		return nil, err
	}
	if synced {
		utxo, err := s.utxo.GetUTXO(ctx, model.OutPoint{TxID: *h, Index: index})
		if err != nil {
			return nil, fmt.Errorf("get utxo %s:%d: %w", h, index, err)
		}
		if utxo == nil {
			return nil, nil
		}
		return s.txOutResult(best, int64(utxo.Height), utxo.Amount, utxo.Script, utxo.Coinbase), nil
	}
	return s.electrumTxOut(ctx, best, *h, index)
}

// GetTxOutSetInfo summarizes the UTXO set.
func (s *QueryService) GetTxOutSetInfo(ctx context.Context) (*model.TxOutSetInfo, error) {
	if s.utxo == nil {
		return nil, ErrUTXOSetDisabled
	}
	stats, err := s.utxo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("utxo stats: %w", err)
	}
	return &model.TxOutSetInfo{
		Height:      stats.Tip.Height,
		BestBlock:   stats.Tip.Hash.String(),
		TxOuts:      stats.Outputs,
		TotalAmount: bitcoin.SatoshisToBTC(stats.TotalAmount),
	}, nil
}

func (s *QueryService) utxoSynced(ctx context.Context, best model.BlockHeader) (bool, error) {
	if s.utxo == nil {
		return false, nil
	}
	tip, err := s.utxo.Tip(ctx)
	if err != nil {
		return false, fmt.Errorf("utxo tip: %w", err)
	}
	return tip != nil && tip.Height == best.HeightOrZero() && tip.Hash == best.Hash, nil
}

func (s *QueryService) electrumTxOut(ctx context.Context, best model.BlockHeader, txid chainhash.Hash, index uint32) (*model.TxOutResult, error) {
	tx, err := s.transaction(ctx, txid)
	if err != nil || tx == nil {
		return nil, err
	}
	if int(index) >= len(tx.TxOut) {
		return nil, nil
	}
	out := tx.TxOut[index]

	unspents := s.listUnspent(ctx, bitcoin.ScriptHash(out.PkScript))
	for _, unspent := range unspents {
		if unspent.TxHash != txid.String() || unspent.TxPos != index {
			continue
		}
		return s.txOutResult(best, unspent.Height, unspent.Value, out.PkScript, blockchain.IsCoinBaseTx(tx)), nil
	}
	return nil, nil
}

// transaction decodes a transaction from the local index or from Electrum.
func (s *QueryService) transaction(ctx context.Context, txid chainhash.Hash) (*wire.MsgTx, error) {
	raw, err := s.blockchain.GetTransaction(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("get local transaction %s: %w", txid, err)
	}
	if raw != nil {
		tx, err := bitcoin.DecodeTx(raw)
		if err != nil {
			return nil, err
		}
		return tx.MsgTx(), nil
	}

	rawHex, err := s.electrum.GetRawTransaction(ctx, txid.String())
	if err != nil {
		var rpcErr *electrum.RPCError
		if errors.As(err, &rpcErr) {
			return nil, nil
		}
		return nil, unavailable("electrum transaction "+txid.String(), err)
	}
	if rawHex == "" {
		return nil, nil
	}
	tx, err := bitcoin.DecodeTxHex(rawHex)
	if err != nil {
		return nil, fmt.Errorf("electrum transaction %s: %w: %w", txid, ErrServiceUnavailable, err)
	}
	if got := tx.Hash(); !got.IsEqual(&txid) {
		return nil, fmt.Errorf("electrum served %s for %s: %w", got, txid, ErrInvalidProofOfWork)
	}
	return tx.MsgTx(), nil
}

// listUnspent tolerates flaky servers and gives up with an empty listing.
func (s *QueryService) listUnspent(ctx context.Context, scripthash string) []model.ScriptUnspent {
	var unspents []model.ScriptUnspent
	err := clock.Retry(ctx, clock.RetryPolicy{
		Attempts: listUnspentAttempts,
		Sleep:    s.sleep,
	}, func(ctx context.Context) error {
		res, err := s.electrum.ListUnspent(ctx, scripthash)
		if err != nil {
			return err
		}
		unspents = res
		return nil
	})
	if err != nil {
		s.logger.Warn("listunspent exhausted", zap.String("scripthash", scripthash), zap.Error(err))
		return nil
	}
	return unspents
}

func (s *QueryService) txOutResult(best model.BlockHeader, height, amount int64, script []byte, coinbase bool) *model.TxOutResult {
	var confirmations int64
	if height > 0 {
		confirmations = int64(best.HeightOrZero()) - height + 1
	}
	return &model.TxOutResult{
		BestBlock:     best.Hash.String(),
		Confirmations: confirmations,
		Value:         bitcoin.SatoshisToBTC(amount),
		ScriptPubKey:  s.decoder.Decode(script),
		Coinbase:      coinbase,
	}
}

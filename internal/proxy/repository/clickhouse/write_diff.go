package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

const insertCreatedQuery = `
INSERT INTO utxo_created (
	network,
	scripthash,
	txid,
	output_index,
	height,
	value,
	script_hex,
	coinbase
) VALUES`

const insertSpentQuery = `
INSERT INTO utxo_spent (
	network,
	scripthash,
	txid,
	output_index,
	height,
	spent_height,
	value
) VALUES`

// WriteDiff records the outputs a UTXO set batch created and spent. Rows are
// keyed by outpoint, so writing the same diff twice collapses on merge.
func (r *Repository) WriteDiff(ctx context.Context, diff model.UTXODiff) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("write_diff", err, start)
	}()

	if err = r.insertCreated(ctx, diff.Created); err != nil {
		return err
	}
	err = r.insertSpent(ctx, diff.Spent)
	return err
}

func (r *Repository) insertCreated(ctx context.Context, created []model.UTXO) error {
	if len(created) == 0 {
		return nil
	}
	batch, err := r.conn.PrepareBatch(ctx, insertCreatedQuery)
	if err != nil {
		return fmt.Errorf("prepare created outputs batch: %w", err)
	}
	for _, utxo := range created {
		if err := batch.Append(
			string(r.network),
			bitcoin.ScriptHash(utxo.Script),
			utxo.TxID.String(),
			utxo.Index,
			utxo.Height,
			utxo.Amount,
			hex.EncodeToString(utxo.Script),
			utxo.Coinbase,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append created output %s:%d: %w", utxo.TxID, utxo.Index, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert created outputs: %w", err)
	}
	return nil
}

func (r *Repository) insertSpent(ctx context.Context, spent []model.SpentOutput) error {
	if len(spent) == 0 {
		return nil
	}
	batch, err := r.conn.PrepareBatch(ctx, insertSpentQuery)
	if err != nil {
		return fmt.Errorf("prepare spent outputs batch: %w", err)
	}
	for _, s := range spent {
		if err := batch.Append(
			string(r.network),
			bitcoin.ScriptHash(s.UTXO.Script),
			s.OutPoint.TxID.String(),
			s.OutPoint.Index,
			s.UTXO.Height,
			s.SpentHeight,
			s.UTXO.Amount,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append spent output %s: %w", s.OutPoint, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert spent outputs: %w", err)
	}
	return nil
}

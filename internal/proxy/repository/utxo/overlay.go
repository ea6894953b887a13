package utxo

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

// overlay holds the pending mutation of one ProcessBlocks call on top of the
// persisted set.
type overlay struct {
	load func(ctx context.Context, op model.OutPoint) (*model.UTXO, error)

	created      map[model.OutPoint]model.UTXO
	createdOrder []model.OutPoint
	spent        map[model.OutPoint]model.SpentOutput
	spentOrder   []model.OutPoint
	// tombstones are keys created and spent inside the call. A lookup that hits
	// one ends there; the persisted record it replaced is reported as spent.
	tombstones map[model.OutPoint]struct{}
}

func newOverlay(load func(ctx context.Context, op model.OutPoint) (*model.UTXO, error)) *overlay {
	return &overlay{
		load:       load,
		created:    make(map[model.OutPoint]model.UTXO),
		spent:      make(map[model.OutPoint]model.SpentOutput),
		tombstones: make(map[model.OutPoint]struct{}),
	}
}

func (o *overlay) create(u model.UTXO) {
	op := u.OutPoint()
	if _, ok := o.created[op]; !ok {
		o.createdOrder = append(o.createdOrder, op)
	}
	o.created[op] = u
	delete(o.tombstones, op)
}

func (o *overlay) spend(ctx context.Context, op model.OutPoint, height uint32) error {
	if u, ok := o.created[op]; ok {
		delete(o.created, op)
		o.tombstones[op] = struct{}{}
		return o.shadow(ctx, op, u.Height)
	}
	if _, ok := o.tombstones[op]; ok {
		return fmt.Errorf("%w: %s already spent in this call", ErrMissingUTXO, op)
	}
	if _, ok := o.spent[op]; ok {
		return fmt.Errorf("%w: %s already spent at height %d", ErrMissingUTXO, op, o.spent[op].SpentHeight)
	}
	u, err := o.load(ctx, op)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("%w: %s", ErrMissingUTXO, op)
	}
	o.spent[op] = model.SpentOutput{OutPoint: op, UTXO: *u, SpentHeight: height}
	o.spentOrder = append(o.spentOrder, op)
	return nil
}

// shadow records a persisted output that a duplicate txid replaced at height,
// so its removal shows up in the diff.
func (o *overlay) shadow(ctx context.Context, op model.OutPoint, height uint32) error {
	if _, ok := o.spent[op]; ok {
		return nil
	}
	u, err := o.load(ctx, op)
	if err != nil || u == nil {
		return err
	}
	o.spent[op] = model.SpentOutput{OutPoint: op, UTXO: *u, SpentHeight: height}
	o.spentOrder = append(o.spentOrder, op)
	return nil
}

// diff returns the net mutation in first-seen order.
func (o *overlay) diff() model.UTXODiff {
	var d model.UTXODiff
	for _, op := range o.spentOrder {
		d.Spent = append(d.Spent, o.spent[op])
	}
	seen := make(map[model.OutPoint]struct{}, len(o.created))
	for _, op := range o.createdOrder {
		u, ok := o.created[op]
		if !ok {
			continue
		}
		if _, dup := seen[op]; dup {
			continue
		}
		seen[op] = struct{}{}
		d.Created = append(d.Created, u)
	}
	return d
}

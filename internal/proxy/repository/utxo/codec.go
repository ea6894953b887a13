package utxo

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
)

var (
	prefixUTXO = []byte("u")
	keyTip     = []byte("U")
)

const (
	flagCoinbase byte = 1 << 0

	outPointKeySize = 1 + chainhash.HashSize + 4
	tipRecordSize   = 4 + chainhash.HashSize
)

func outPointKey(op model.OutPoint) []byte {
	var index [4]byte
	binary.BigEndian.PutUint32(index[:], op.Index)
	return storage.Concat(prefixUTXO, op.TxID[:], index[:])
}

func decodeOutPointKey(key []byte) (model.OutPoint, error) {
	if len(key) != outPointKeySize {
		return model.OutPoint{}, fmt.Errorf("utxo key of %d bytes", len(key))
	}
	var op model.OutPoint
	copy(op.TxID[:], key[1:1+chainhash.HashSize])
	op.Index = binary.BigEndian.Uint32(key[1+chainhash.HashSize:])
	return op, nil
}

// encodeUTXO writes flags | height | amount | varbytes script | varbytes witness.
func encodeUTXO(u model.UTXO) ([]byte, error) {
	var buf bytes.Buffer
	var head [13]byte
	if u.Coinbase {
		head[0] |= flagCoinbase
	}
	binary.BigEndian.PutUint32(head[1:5], u.Height)
	binary.BigEndian.PutUint64(head[5:13], uint64(u.Amount))
	buf.Write(head[:])
	if err := wire.WriteVarBytes(&buf, 0, u.Script); err != nil {
		return nil, fmt.Errorf("write script: %w", err)
	}
	if err := wire.WriteVarBytes(&buf, 0, u.Witness); err != nil {
		return nil, fmt.Errorf("write witness: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeUTXO(op model.OutPoint, value []byte) (model.UTXO, error) {
	if len(value) < 13 {
		return model.UTXO{}, fmt.Errorf("utxo %s record of %d bytes", op, len(value))
	}
	u := model.UTXO{
		TxID:     op.TxID,
		Index:    op.Index,
		Coinbase: value[0]&flagCoinbase != 0,
		Height:   binary.BigEndian.Uint32(value[1:5]),
		Amount:   int64(binary.BigEndian.Uint64(value[5:13])),
	}
	r := bytes.NewReader(value[13:])
	var err error
	if u.Script, err = wire.ReadVarBytes(r, 0, wire.MaxBlockPayload, "script"); err != nil {
		return model.UTXO{}, fmt.Errorf("utxo %s script: %w", op, err)
	}
	if u.Witness, err = wire.ReadVarBytes(r, 0, wire.MaxBlockPayload, "witness"); err != nil {
		return model.UTXO{}, fmt.Errorf("utxo %s witness: %w", op, err)
	}
	if len(u.Witness) == 0 {
		u.Witness = nil
	}
	return u, nil
}

func encodeTip(tip model.UTXOTip) []byte {
	buf := make([]byte, tipRecordSize)
	binary.BigEndian.PutUint32(buf[:4], tip.Height)
	copy(buf[4:], tip.Hash[:])
	return buf
}

func decodeTip(value []byte) (model.UTXOTip, error) {
	if len(value) != tipRecordSize {
		return model.UTXOTip{}, fmt.Errorf("utxo tip record of %d bytes", len(value))
	}
	var tip model.UTXOTip
	tip.Height = binary.BigEndian.Uint32(value[:4])
	copy(tip.Hash[:], value[4:])
	return tip, nil
}

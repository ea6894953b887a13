package blockchain

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/storage"
)

var (
	prefixHeader  = []byte("h")
	prefixHeight  = []byte("H")
	prefixBlock   = []byte("b")
	prefixTxIndex = []byte("t")
	keyTip        = []byte("T")
)

const (
	statusPending   byte = 0
	statusConnected byte = 1

	chainworkSize     = 32
	headerRecordSize  = 1 + 4 + chainworkSize + model.HeaderSize
	txIndexRecordSize = chainhash.HashSize + 4 + 4
)

func headerKey(hash chainhash.Hash) []byte {
	return storage.Concat(prefixHeader, hash[:])
}

func heightKey(height uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], height)
	return storage.Concat(prefixHeight, buf[:])
}

func blockKey(hash chainhash.Hash) []byte {
	return storage.Concat(prefixBlock, hash[:])
}

func txIndexKey(txid chainhash.Hash) []byte {
	return storage.Concat(prefixTxIndex, txid[:])
}

// headerRecord is the stored form of a header: status | height | chainwork | raw.
// Pending headers keep the height their block claimed.
type headerRecord struct {
	connected bool
	height    uint32
	chainwork *big.Int
	raw       []byte
}

func (r headerRecord) encode() []byte {
	buf := make([]byte, headerRecordSize)
	buf[0] = statusPending
	if r.connected {
		buf[0] = statusConnected
	}
	binary.BigEndian.PutUint32(buf[1:5], r.height)
	if r.chainwork != nil {
		r.chainwork.FillBytes(buf[5 : 5+chainworkSize])
	}
	copy(buf[5+chainworkSize:], r.raw)
	return buf
}

func decodeHeaderRecord(value []byte) (headerRecord, error) {
	if len(value) != headerRecordSize {
		return headerRecord{}, fmt.Errorf("%w: header record of %d bytes", ErrCorrupted, len(value))
	}
	raw := make([]byte, model.HeaderSize)
	copy(raw, value[5+chainworkSize:])
	return headerRecord{
		connected: value[0] == statusConnected,
		height:    binary.BigEndian.Uint32(value[1:5]),
		chainwork: new(big.Int).SetBytes(value[5 : 5+chainworkSize]),
		raw:       raw,
	}, nil
}

func (r headerRecord) header(hash chainhash.Hash) model.BlockHeader {
	h := model.BlockHeader{Data: r.raw, Hash: hash}
	if r.connected {
		h.Height = model.HeightPtr(r.height)
	}
	return h
}

type txIndexRecord struct {
	block  chainhash.Hash
	offset uint32
	length uint32
}

func (r txIndexRecord) encode() []byte {
	buf := make([]byte, txIndexRecordSize)
	copy(buf, r.block[:])
	binary.BigEndian.PutUint32(buf[chainhash.HashSize:], r.offset)
	binary.BigEndian.PutUint32(buf[chainhash.HashSize+4:], r.length)
	return buf
}

func decodeTxIndexRecord(value []byte) (txIndexRecord, error) {
	if len(value) != txIndexRecordSize {
		return txIndexRecord{}, fmt.Errorf("%w: tx index record of %d bytes", ErrCorrupted, len(value))
	}
	var r txIndexRecord
	copy(r.block[:], value[:chainhash.HashSize])
	r.offset = binary.BigEndian.Uint32(value[chainhash.HashSize:])
	r.length = binary.BigEndian.Uint32(value[chainhash.HashSize+4:])
	return r, nil
}

func decodeHash(value []byte) (chainhash.Hash, error) {
	var h chainhash.Hash
	if len(value) != chainhash.HashSize {
		return h, fmt.Errorf("%w: hash of %d bytes", ErrCorrupted, len(value))
	}
	copy(h[:], value)
	return h, nil
}

// Package model defines the value objects shared by the light node components.
package model

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// HeaderSize is the length of a serialized block header.
const HeaderSize = 80

// ErrHeaderSize is returned when raw header bytes are not exactly HeaderSize long.
var ErrHeaderSize = errors.New("block header must be 80 bytes")

// BlockHeader is a raw block header together with its hash and, once linked
// into the best chain, its height.
type BlockHeader struct {
	Data   []byte
	Hash   chainhash.Hash
	Height *uint32
}

// NewBlockHeader hashes raw header bytes into a BlockHeader.
func NewBlockHeader(data []byte, height *uint32) (BlockHeader, error) {
	if len(data) != HeaderSize {
		return BlockHeader{}, fmt.Errorf("%w: got %d", ErrHeaderSize, len(data))
	}
	raw := make([]byte, HeaderSize)
	copy(raw, data)
	return BlockHeader{
		Data:   raw,
		Hash:   chainhash.DoubleHashH(raw),
		Height: height,
	}, nil
}

// HeightPtr is a helper for building headers with a known height.
func HeightPtr(h uint32) *uint32 {
	return &h
}

// Connected reports whether the header is linked into the best chain.
func (h BlockHeader) Connected() bool {
	return h.Height != nil
}

// HeightOrZero returns the header height, or zero for pending headers.
func (h BlockHeader) HeightOrZero() uint32 {
	if h.Height == nil {
		return 0
	}
	return *h.Height
}

// PrevBlockHash returns bytes [4:36) of the raw header. The chainhash keeps
// wire order, so String() renders those bytes reversed.
func (h BlockHeader) PrevBlockHash() chainhash.Hash {
	var prev chainhash.Hash
	if len(h.Data) >= 36 {
		copy(prev[:], h.Data[4:36])
	}
	return prev
}

// Wire decodes the raw bytes into a btcd header.
func (h BlockHeader) Wire() (*wire.BlockHeader, error) {
	var hdr wire.BlockHeader
	if err := hdr.Deserialize(bytes.NewReader(h.Data)); err != nil {
		return nil, fmt.Errorf("deserialize header %s: %w", h.Hash, err)
	}
	return &hdr, nil
}

// Timestamp returns the header time, or the zero time for malformed data.
func (h BlockHeader) Timestamp() time.Time {
	hdr, err := h.Wire()
	if err != nil {
		return time.Time{}
	}
	return hdr.Timestamp
}

// Block is a full serialized block accepted at Height.
type Block struct {
	Hash   chainhash.Hash
	Data   []byte
	Height uint32
}

// Header projects the first 80 bytes of the block into a BlockHeader.
func (b Block) Header() BlockHeader {
	end := HeaderSize
	if len(b.Data) < end {
		end = len(b.Data)
	}
	return BlockHeader{
		Data:   b.Data[:end:end],
		Hash:   b.Hash,
		Height: HeightPtr(b.Height),
	}
}

// Size is the serialized block length in bytes.
func (b Block) Size() int {
	return len(b.Data)
}

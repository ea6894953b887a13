package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ErrMerkleMismatch reports a block whose transactions do not hash to the
// merkle root in its header.
var ErrMerkleMismatch = errors.New("merkle root mismatch")

// MerkleProof is an Electrum merkle branch for a transaction.
type MerkleProof struct {
	BlockHeight uint32
	Branch      []string
	Pos         int
}

// VerifyMerkleProof folds the branch from txid up to the root and compares it
// with the merkle root committed in the header.
func VerifyMerkleProof(txid chainhash.Hash, proof MerkleProof, merkleRoot chainhash.Hash) (bool, error) {
	if proof.Pos < 0 {
		return false, fmt.Errorf("negative merkle position %d", proof.Pos)
	}
	current := txid
	pos := proof.Pos
	var buf [chainhash.HashSize * 2]byte
	for i, node := range proof.Branch {
		sibling, err := chainhash.NewHashFromStr(node)
		if err != nil {
			return false, fmt.Errorf("merkle node %d: %w", i, err)
		}
		if pos&1 == 1 {
			copy(buf[:chainhash.HashSize], sibling[:])
			copy(buf[chainhash.HashSize:], current[:])
		} else {
			copy(buf[:chainhash.HashSize], current[:])
			copy(buf[chainhash.HashSize:], sibling[:])
		}
		current = chainhash.DoubleHashH(buf[:])
		pos >>= 1
	}
	if pos != 0 {
		return false, nil
	}
	return current.IsEqual(&merkleRoot), nil
}

// CheckMerkleRoot recomputes the transaction merkle root of msg and compares it
// with the header commitment.
func CheckMerkleRoot(msg *wire.MsgBlock) error {
	if len(msg.Transactions) == 0 {
		return fmt.Errorf("%w: block %s has no transactions", ErrMerkleMismatch, msg.BlockHash())
	}
	txs := make([]*btcutil.Tx, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		txs = append(txs, btcutil.NewTx(tx))
	}
	root := blockchain.CalcMerkleRoot(txs, false)
	if !root.IsEqual(&msg.Header.MerkleRoot) {
		return fmt.Errorf("%w: block %s commits to %s, transactions hash to %s",
			ErrMerkleMismatch, msg.BlockHash(), msg.Header.MerkleRoot, root)
	}
	return nil
}

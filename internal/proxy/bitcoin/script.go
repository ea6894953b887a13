package bitcoin

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-lightnode/internal/proxy/model"
)

// ScriptHash is the Electrum index key of a locking script: sha256 in reversed hex.
func ScriptHash(script []byte) string {
	sum := sha256.Sum256(script)
	for i, j := 0, len(sum)-1; i < j; i, j = i+1, j-1 {
		sum[i], sum[j] = sum[j], sum[i]
	}
	return hex.EncodeToString(sum[:])
}

// WitnessProgram returns the witness program of a segwit locking script, or nil.
func WitnessProgram(script []byte) []byte {
	if !txscript.IsWitnessProgram(script) {
		return nil
	}
	_, program, err := txscript.ExtractWitnessProgramInfo(script)
	if err != nil {
		return nil
	}
	return program
}

// ScriptDecoder describes locking scripts for RPC responses.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for the provided network params.
func NewScriptDecoder(params *chaincfg.Params) *ScriptDecoder {
	return &ScriptDecoder{params: params}
}

// Decode fills asm, type, required signatures and addresses of a script.
func (d *ScriptDecoder) Decode(script []byte) model.ScriptPubKeyResult {
	res := model.ScriptPubKeyResult{
		Hex:  hex.EncodeToString(script),
		Type: txscript.NonStandardTy.String(),
	}
	if asm, err := txscript.DisasmString(script); err == nil {
		res.Asm = asm
	}
	class, addrs, reqSigs, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return res
	}
	res.Type = class.String()
	res.ReqSigs = reqSigs
	res.Addresses = encodeAddresses(addrs)
	return res
}

// ValidateAddress reports whether the address decodes for the configured network.
func (d *ScriptDecoder) ValidateAddress(address string) bool {
	addr, err := btcutil.DecodeAddress(address, d.params)
	if err != nil {
		return false
	}
	return addr.IsForNet(d.params)
}

func encodeAddresses(addrs []btcutil.Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result
}

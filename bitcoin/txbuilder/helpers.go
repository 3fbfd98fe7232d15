// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// ExtractInputKindsFromPSBT returns map with input kinds and indexes of inputs of that kind.
func ExtractInputKindsFromPSBT(data []byte) (map[InputKind][]int, error) {
	p, err := psbt.NewFromRawBytes(bytes.NewReader(data), false)
	if err != nil {
		return nil, err
	}

	var result = make(map[InputKind][]int, 2)
	for idx := range p.Inputs {
		kind := inputKind(&p.Inputs[idx], p.UnsignedTx.TxIn[idx].PreviousOutPoint)
		result[kind] = append(result[kind], idx)
	}

	return result, nil
}

// inputKind returns kind of psbt input.
func inputKind(input *psbt.PInput, prevOut wire.OutPoint) InputKind {
	var pkScript []byte
	switch {
	case input.WitnessUtxo != nil:
		pkScript = input.WitnessUtxo.PkScript
	case input.NonWitnessUtxo != nil && int(prevOut.Index) < len(input.NonWitnessUtxo.TxOut):
		pkScript = input.NonWitnessUtxo.TxOut[prevOut.Index].PkScript
	default:
		return InputKindUnknown
	}

	if !txscript.IsPayToScriptHash(pkScript) {
		return InputKindDirect
	}
	if len(input.RedeemScript) == 0 {
		return InputKindUnresolvedScriptHash
	}

	return InputKindScriptHash
}

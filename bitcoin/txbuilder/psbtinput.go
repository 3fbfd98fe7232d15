// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"psbtbuilder/bitcoin"
	"psbtbuilder/bitcoin/address"
)

// pendingInput describes funding output waiting to be assembled into transaction.
type pendingInput struct {
	utxo       bitcoin.UTXORef
	owner      *address.Info
	pubKey     *btcec.PublicKey // optional.
	compressed bool             // pubKey was provided in compressed form.
}

// txIn returns unsigned transaction input spending the utxo.
func (in *pendingInput) txIn() *wire.TxIn {
	txIn := wire.NewTxIn(in.utxo.OutPoint(), nil, nil)
	txIn.Sequence = rbfSequence

	return txIn
}

// redeemScript returns P2WPKH script to be used as P2SH redeem script (P2SH-P2WPKH).
// Returns nil if the owner is not P2SH or there is no compressed key to derive script from.
func (in *pendingInput) redeemScript(networkParams *chaincfg.Params) []byte {
	if in.owner.Type != address.P2SH || in.pubKey == nil || !in.compressed {
		return nil
	}

	witness, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(in.pubKey.SerializeCompressed()), networkParams)
	if err != nil {
		return nil
	}

	witnessProg, err := txscript.PayToAddrScript(witness)
	if err != nil {
		return nil
	}

	return witnessProg
}

// prepareInput updates psbt input with funding output and redeem script if any.
func (in *pendingInput) prepareInput(input *psbt.PInput, networkParams *chaincfg.Params) {
	input.WitnessUtxo = wire.NewTxOut(int64(in.utxo.Amount), bytes.Clone(in.owner.ScriptPubKey))
	input.RedeemScript = in.redeemScript(networkParams)
}

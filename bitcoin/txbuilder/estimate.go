// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"

	"psbtbuilder/bitcoin"
	"psbtbuilder/bitcoin/address"
)

// stubPayloadSize defines size in bytes of placeholder witness item and signature script.
// It is a fixed approximation, not a signature size model, fee calculations depend on it.
const stubPayloadSize = 50

// EstimateVBytes returns estimated virtual size in vBytes of the transaction once signed.
//
// Signing material is simulated with zero payloads of stubPayloadSize per input:
//   - P2SH: single item witness and signature script (P2SH-P2WPKH spend);
//   - P2WSH: single item witness;
//   - any other type: signature script.
func (b *Builder) EstimateVBytes() (uint64, error) {
	p, err := b.Build()
	if err != nil {
		return 0, err
	}

	tx, err := extractUnsignedTx(p)
	if err != nil {
		return 0, err
	}
	if len(tx.TxIn) != len(b.inputs) {
		return 0, errors.Join(bitcoin.ErrExtractionFailure,
			fmt.Errorf("tx has %d inputs, builder has %d", len(tx.TxIn), len(b.inputs)))
	}

	for i, txIn := range tx.TxIn {
		stubInput(txIn, b.inputs[i].owner.Type)
	}

	vBytes := VirtualSize(tx)
	log.Debugf("Estimated %v size: %d vB", b, vBytes)

	return vBytes, nil
}

// VirtualSize returns transaction virtual size in vBytes, ceil(weight / 4).
func VirtualSize(tx *wire.MsgTx) uint64 {
	weight := blockchain.GetTransactionWeight(btcutil.NewTx(tx))

	return uint64((weight + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor)
}

// extractUnsignedTx returns copy of PSBT unsigned transaction.
func extractUnsignedTx(p *psbt.Packet) (*wire.MsgTx, error) {
	if p.UnsignedTx == nil {
		return nil, errors.Join(bitcoin.ErrExtractionFailure, errors.New("psbt has no unsigned tx"))
	}
	if len(p.UnsignedTx.TxIn) != len(p.Inputs) {
		return nil, errors.Join(bitcoin.ErrExtractionFailure,
			fmt.Errorf("psbt has %d inputs for %d tx inputs", len(p.Inputs), len(p.UnsignedTx.TxIn)))
	}

	return p.UnsignedTx.Copy(), nil
}

// stubInput fills input with placeholder signing material for owner address type.
func stubInput(txIn *wire.TxIn, ownerType address.Type) {
	switch ownerType {
	case address.P2SH:
		txIn.Witness = wire.TxWitness{make([]byte, stubPayloadSize)}
		txIn.SignatureScript = make([]byte, stubPayloadSize)
	case address.P2WSH:
		txIn.Witness = wire.TxWitness{make([]byte, stubPayloadSize)}
	default:
		txIn.SignatureScript = make([]byte, stubPayloadSize)
	}
}

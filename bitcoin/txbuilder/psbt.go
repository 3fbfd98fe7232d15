// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
)

// ErrPSBTAssembly defines errors class for psbt assembling.
// Not expected with validated builder state, signals a consistency bug.
var ErrPSBTAssembly = errors.New("assemble psbt")

// Build assembles fresh unsigned PSBT from accumulated inputs and outputs.
// Inputs and outputs keep insertion order. Builder state is not changed.
func (b *Builder) Build() (*psbt.Packet, error) {
	tx := wire.NewMsgTx(txVersion)
	tx.LockTime = txLockTime
	for i := range b.inputs {
		tx.AddTxIn(b.inputs[i].txIn())
	}
	for _, out := range b.outputs {
		tx.AddTxOut(wire.NewTxOut(out.amount, bytes.Clone(out.script)))
	}

	p, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, errors.Join(ErrPSBTAssembly, err)
	}

	for i := range b.inputs {
		b.inputs[i].prepareInput(&p.Inputs[i], b.networkParams)
	}

	log.Tracef("Assembled psbt for %v: %v", b, newLogClosure(func() string {
		return spew.Sdump(p)
	}))

	return p, nil
}

// Serialize returns assembled PSBT in standard binary encoding.
func (b *Builder) Serialize() ([]byte, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}

	w := bytes.NewBuffer(nil)
	err = p.Serialize(w)
	if err != nil {
		return nil, errors.Join(ErrPSBTAssembly, err)
	}

	return w.Bytes(), nil
}

// SerializeBase64 returns assembled PSBT in base64 encoding.
func (b *Builder) SerializeBase64() (string, error) {
	p, err := b.Build()
	if err != nil {
		return "", err
	}

	encoded, err := p.B64Encode()
	if err != nil {
		return "", errors.Join(ErrPSBTAssembly, err)
	}

	return encoded, nil
}

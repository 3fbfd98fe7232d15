// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"psbtbuilder/bitcoin"
	"psbtbuilder/bitcoin/address"
)

const (
	// txVersion defines transaction version for this builder.
	txVersion int32 = 2
	// txLockTime defines absolute lock time of built transactions.
	txLockTime uint32 = 0
	// rbfSequence signals replace-by-fee and disables relative lock time for every input.
	rbfSequence = wire.MaxTxInSequenceNum - 2
	// initialCapacity defines preallocated amount of inputs and outputs.
	initialCapacity = 5
)

// Option defines Builder configuration option.
type Option func(*Builder)

// WithStrictRedeemScripts makes AddInput reject P2SH owned inputs
// without compressed public key to derive redeem script from.
// By default such inputs are accepted and left without redeem script.
func WithStrictRedeemScripts() Option {
	return func(b *Builder) {
		b.strictRedeemScripts = true
	}
}

// pendingOutput describes payment waiting to be assembled into transaction.
type pendingOutput struct {
	script []byte // ScriptPubKey.
	amount int64  // in Satoshi.
}

// Builder accumulates funding outputs and payments bound to single network
// and assembles them into unsigned PSBT.
//
// Builder is not safe for concurrent use, access must be serialized by caller.
type Builder struct {
	network             bitcoin.Network
	networkParams       *chaincfg.Params
	strictRedeemScripts bool

	inputs  []pendingInput
	outputs []pendingOutput
}

// NewBuilder is a constructor for Builder.
func NewBuilder(network string, opts ...Option) (*Builder, error) {
	n, err := bitcoin.ParseNetwork(network)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		network:       n,
		networkParams: n.Params(),
		inputs:        make([]pendingInput, 0, initialCapacity),
		outputs:       make([]pendingOutput, 0, initialCapacity),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Network returns network the builder is bound to.
func (b *Builder) Network() bitcoin.Network {
	return b.network
}

// AddInput appends new input spending provided utxo owned by ownerAddress.
// ownerPubKey is optional (nil), it is required for P2SH-P2WPKH addresses
// to derive redeem script. Nothing is appended on error.
func (b *Builder) AddInput(utxo bitcoin.UTXORef, ownerAddress string, ownerPubKey []byte) error {
	owner, err := address.Resolve(ownerAddress, b.networkParams)
	if err != nil {
		return fmt.Errorf("input owner address: %w", err)
	}

	in := pendingInput{utxo: utxo, owner: owner}
	if ownerPubKey != nil {
		in.pubKey, err = btcec.ParsePubKey(ownerPubKey)
		if err != nil {
			return errors.Join(bitcoin.ErrInvalidPublicKey,
				fmt.Errorf("owner public key %x: %w", ownerPubKey, err))
		}

		in.compressed = len(ownerPubKey) == btcec.PubKeyBytesLenCompressed
	}

	if b.strictRedeemScripts && owner.Type == address.P2SH && in.redeemScript(b.networkParams) == nil {
		return errors.Join(bitcoin.ErrMissingRedeemScript,
			fmt.Errorf("p2sh address %q requires compressed owner public key", ownerAddress))
	}

	b.inputs = append(b.inputs, in)
	log.Debugf("Added input #%d %v owned by %s (%s)", len(b.inputs)-1, utxo, ownerAddress, owner.Type)

	return nil
}

// AddOutput appends new output paying amount in satoshi to address.
// No dust or balance checks are made. Nothing is appended on error.
func (b *Builder) AddOutput(recipientAddress string, amount uint64) error {
	recipient, err := address.Resolve(recipientAddress, b.networkParams)
	if err != nil {
		return fmt.Errorf("output address: %w", err)
	}

	value, err := bitcoin.AmountFromSat(amount)
	if err != nil {
		return fmt.Errorf("output amount: %w", err)
	}

	b.outputs = append(b.outputs, pendingOutput{
		script: recipient.ScriptPubKey,
		amount: int64(value),
	})
	log.Debugf("Added output #%d paying %v to %s", len(b.outputs)-1, value, recipientAddress)

	return nil
}

// String returns short builder summary.
func (b *Builder) String() string {
	return fmt.Sprintf("<Builder: %d inputs, %d outputs>", len(b.inputs), len(b.outputs))
}

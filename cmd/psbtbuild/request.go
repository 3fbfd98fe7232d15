// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"psbtbuilder/bitcoin"
	"psbtbuilder/bitcoin/txbuilder"
)

// utxoRequest describes funding output reference.
type utxoRequest struct {
	TxID  string `json:"tx_id"`
	Vout  uint32 `json:"vout"`
	Value uint64 `json:"value"` // in Satoshi.
}

// inputRequest describes input to add to the builder.
type inputRequest struct {
	UTXO    utxoRequest `json:"utxo"`
	Address string      `json:"address"`
	PubKey  string      `json:"pub_key,omitempty"` // hex, optional.
}

// outputRequest describes payment to add to the builder.
type outputRequest struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"` // in Satoshi.
}

// request describes PSBT build request.
type request struct {
	Inputs  []inputRequest  `json:"inputs"`
	Outputs []outputRequest `json:"outputs"`
}

// readRequest decodes JSON build request.
func readRequest(r io.Reader) (*request, error) {
	var req request

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	return &req, nil
}

// apply adds requested inputs and outputs to the builder in order.
func (req *request) apply(b *txbuilder.Builder) error {
	for i, in := range req.Inputs {
		utxo, err := bitcoin.NewUTXORef(in.UTXO.TxID, in.UTXO.Vout, in.UTXO.Value)
		if err != nil {
			return fmt.Errorf("input #%d: %w", i, err)
		}

		var pubKey []byte
		if in.PubKey != "" {
			pubKey, err = hex.DecodeString(in.PubKey)
			if err != nil {
				return fmt.Errorf("input #%d: %w", i, errors.Join(bitcoin.ErrInvalidPublicKey, err))
			}
		}

		if err = b.AddInput(utxo, in.Address, pubKey); err != nil {
			return fmt.Errorf("input #%d: %w", i, err)
		}
	}

	for i, out := range req.Outputs {
		if err := b.AddOutput(out.Address, out.Amount); err != nil {
			return fmt.Errorf("output #%d: %w", i, err)
		}
	}

	return nil
}

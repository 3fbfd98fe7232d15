// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Package address parses human-readable bitcoin addresses, binds them
// to a network and classifies the script type they pay to.
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"psbtbuilder/bitcoin"
)

// Type defines script type over which the address is built.
type Type string

const (
	// P2PKH defines P2PKH (public key hash) script type.
	P2PKH Type = "p2pkh"
	// P2SH defines P2SH (script hash) script type.
	P2SH Type = "p2sh"
	// P2WPKH defines P2WPKH (witness public key hash) script type.
	P2WPKH Type = "p2wpkh"
	// P2WSH defines P2WSH (witness script hash) script type.
	P2WSH Type = "p2wsh"
	// P2TR defines P2TR (taproot) script type.
	P2TR Type = "p2tr"
	// Other defines any address type without specific classification.
	Other Type = "other"
)

// String returns address type label.
func (t Type) String() string {
	return string(t)
}

// decodeNetworks defines networks tried in order while decoding address without network bound.
var decodeNetworks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
}

// Info describes parsed address bound to network.
type Info struct {
	Address      btcutil.Address
	Type         Type
	ScriptPubKey []byte
}

// Resolve parses raw address, checks it belongs to provided network
// and returns its script pubkey and type.
func Resolve(raw string, params *chaincfg.Params) (*Info, error) {
	addr, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	if !addr.IsForNet(params) {
		return nil, errors.Join(bitcoin.ErrNetworkMismatch,
			fmt.Errorf("address %q is not valid for %s network", raw, params.Name))
	}

	script, err := scriptPubKey(addr)
	if err != nil {
		return nil, errors.Join(bitcoin.ErrInvalidAddress, fmt.Errorf("address %q: %w", raw, err))
	}

	return &Info{
		Address:      addr,
		Type:         TypeOf(addr),
		ScriptPubKey: script,
	}, nil
}

// Decode parses raw address under any supported encoding without binding it to network.
// Serialized public keys are not accepted as addresses. Segwit addresses of
// witness version 2..16 are decoded as well and classified as Other.
func Decode(raw string) (btcutil.Address, error) {
	var lastErr error
	for _, params := range decodeNetworks {
		addr, err := btcutil.DecodeAddress(raw, params)
		if err != nil {
			var verErr btcutil.UnsupportedWitnessVerError
			if errors.As(err, &verErr) {
				return decodeFutureWitness(raw)
			}

			lastErr = err
			continue
		}

		if _, ok := addr.(*btcutil.AddressPubKey); ok {
			return nil, errors.Join(bitcoin.ErrInvalidAddress,
				fmt.Errorf("%q is a public key, not an address", raw))
		}

		return addr, nil
	}

	return nil, errors.Join(bitcoin.ErrInvalidAddress, fmt.Errorf("address %q: %w", raw, lastErr))
}

// decodeFutureWitness parses segwit address of witness version unknown to btcutil.
func decodeFutureWitness(raw string) (btcutil.Address, error) {
	addr, err := decodeWitnessAddress(raw)
	if err != nil {
		return nil, errors.Join(bitcoin.ErrInvalidAddress, fmt.Errorf("address %q: %w", raw, err))
	}

	return addr, nil
}

// Classify returns type of raw address without network check.
// Fails only if the string is not an address at all.
func Classify(raw string) (Type, error) {
	addr, err := Decode(raw)
	if err != nil {
		return "", err
	}

	return TypeOf(addr), nil
}

// TypeOf returns script type of decoded address.
func TypeOf(addr btcutil.Address) Type {
	switch addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return P2PKH
	case *btcutil.AddressScriptHash:
		return P2SH
	case *btcutil.AddressWitnessPubKeyHash:
		return P2WPKH
	case *btcutil.AddressWitnessScriptHash:
		return P2WSH
	case *btcutil.AddressTaproot:
		return P2TR
	default:
		return Other
	}
}

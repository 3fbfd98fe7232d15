// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

const (
	minWitnessProgramLen = 2
	maxWitnessProgramLen = 40
)

// witnessAddress is a segwit address of witness version 2..16, reserved
// for future soft forks and not decoded by btcutil.
type witnessAddress struct {
	encoded string // lower case bech32m form.
	hrp     string
	version byte
	program []byte
}

var _ btcutil.Address = (*witnessAddress)(nil)

// decodeWitnessAddress parses bech32m encoded segwit address of witness version 2..16.
func decodeWitnessAddress(raw string) (*witnessAddress, error) {
	hrp, data, encoding, err := bech32.DecodeGeneric(raw)
	if err != nil {
		return nil, err
	}
	if encoding != bech32.VersionM {
		return nil, errors.New("witness version 2+ requires bech32m checksum")
	}
	if len(data) < 1 {
		return nil, errors.New("no witness version")
	}

	version := data[0]
	if version < 2 || version > 16 {
		return nil, fmt.Errorf("unexpected witness version: %d", version)
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(program) < minWitnessProgramLen || len(program) > maxWitnessProgramLen {
		return nil, fmt.Errorf("invalid witness program length: %d", len(program))
	}

	known := false
	for _, params := range decodeNetworks {
		if params.Bech32HRPSegwit == hrp {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown segwit prefix %q", hrp)
	}

	return &witnessAddress{
		encoded: strings.ToLower(raw),
		hrp:     hrp,
		version: version,
		program: program,
	}, nil
}

// String returns address in bech32m form.
func (a *witnessAddress) String() string {
	return a.encoded
}

// EncodeAddress returns address in bech32m form.
func (a *witnessAddress) EncodeAddress() string {
	return a.encoded
}

// ScriptAddress returns witness program.
func (a *witnessAddress) ScriptAddress() []byte {
	return bytes.Clone(a.program)
}

// IsForNet returns whether address segwit prefix belongs to the network.
func (a *witnessAddress) IsForNet(params *chaincfg.Params) bool {
	return a.hrp == params.Bech32HRPSegwit
}

// script returns witness program output script: OP_n <program>.
func (a *witnessAddress) script() ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_1 + a.version - 1).
		AddData(a.program).
		Script()
}

// scriptPubKey returns output script paying to the address.
func scriptPubKey(addr btcutil.Address) ([]byte, error) {
	if witness, ok := addr.(*witnessAddress); ok {
		return witness.script()
	}

	return txscript.PayToAddrScript(addr)
}

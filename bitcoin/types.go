// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// UTXORef describes reference to previously confirmed transaction output.
// It carries no ownership of funds, data is trusted as provided.
type UTXORef struct {
	TxHash chainhash.Hash
	Index  uint32         // output index in transaction outputs.
	Amount btcutil.Amount // in Satoshi.
}

// NewUTXORef is a constructor for UTXORef.
// txID is the 64 hex characters transaction id in its usual (byte-reversed) form.
func NewUTXORef(txID string, vout uint32, value uint64) (UTXORef, error) {
	if len(txID) != chainhash.MaxHashStringSize {
		return UTXORef{}, errors.Join(ErrInvalidTxHash,
			fmt.Errorf("tx_id %q must be %d hex characters", txID, chainhash.MaxHashStringSize))
	}
	if _, err := hex.DecodeString(txID); err != nil {
		return UTXORef{}, errors.Join(ErrInvalidTxHash, fmt.Errorf("tx_id %q: %w", txID, err))
	}

	hash, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return UTXORef{}, errors.Join(ErrInvalidTxHash, fmt.Errorf("tx_id %q: %w", txID, err))
	}

	amount, err := AmountFromSat(value)
	if err != nil {
		return UTXORef{}, fmt.Errorf("value: %w", err)
	}

	return UTXORef{TxHash: *hash, Index: vout, Amount: amount}, nil
}

// OutPoint returns referenced outpoint.
func (u UTXORef) OutPoint() *wire.OutPoint {
	return wire.NewOutPoint(&u.TxHash, u.Index)
}

// String returns outpoint in txid:vout form.
func (u UTXORef) String() string {
	return u.OutPoint().String()
}

// AmountFromSat converts satoshi value into btcutil.Amount.
// Only values that do not fit transaction output value field (int64) are rejected.
func AmountFromSat(value uint64) (btcutil.Amount, error) {
	if value > math.MaxInt64 {
		return 0, errors.Join(ErrInvalidAmount, fmt.Errorf("%d satoshi overflows int64", value))
	}

	return btcutil.Amount(value), nil
}

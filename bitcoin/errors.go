// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
)

var (
	// ErrInvalidNetwork defines that network identifier is not recognized.
	ErrInvalidNetwork = errors.New("invalid network")
	// ErrInvalidAddress defines that address could not be parsed under any supported encoding.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrNetworkMismatch defines that address is valid, but bound to another network.
	ErrNetworkMismatch = errors.New("address network mismatch")
	// ErrInvalidPublicKey defines that public key bytes are not a valid secp256k1 public key.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidTxHash defines that transaction id is not a valid hash.
	ErrInvalidTxHash = errors.New("invalid tx hash")
	// ErrInvalidAmount defines that satoshi amount can not be represented in transaction.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingRedeemScript defines that P2SH input has no material to derive redeem script from.
	ErrMissingRedeemScript = errors.New("missing redeem script")
	// ErrExtractionFailure defines that unsigned transaction could not be extracted from PSBT.
	// Not expected with validated builder state, signals a consistency bug.
	ErrExtractionFailure = errors.New("failed to extract tx")
)

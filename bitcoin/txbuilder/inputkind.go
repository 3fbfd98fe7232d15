// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

// InputKind defines how assembled PSBT input is going to be satisfied,
// based on its funding output script and redeem script presence.
type InputKind byte

const (
	// InputKindUnknown defines input without funding output data.
	InputKindUnknown InputKind = 0x00
	// InputKindDirect defines input spending non P2SH script, no redeem script needed.
	InputKindDirect InputKind = 0x10
	// InputKindScriptHash defines P2SH input with redeem script provided.
	InputKindScriptHash InputKind = 0x20
	// InputKindUnresolvedScriptHash defines P2SH input without redeem script.
	// Such input can not be finalized until redeem script is added out-of-band.
	InputKindUnresolvedScriptHash InputKind = 0x21
)

// String returns InputKind name.
func (k InputKind) String() string {
	switch k {
	case InputKindUnknown:
		return "unknown"
	case InputKindDirect:
		return "direct"
	case InputKindScriptHash:
		return "script-hash"
	case InputKindUnresolvedScriptHash:
		return "unresolved-script-hash"
	}

	return "invalid"
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package address_test

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"psbtbuilder/bitcoin"
	"psbtbuilder/bitcoin/address"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func TestResolve(t *testing.T) {
	t.Run("valid for network", func(t *testing.T) {
		tests := []struct {
			address string
			params  *chaincfg.Params
			typ     address.Type
			script  string
		}{
			{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.MainNetParams, address.P2PKH, "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac"},
			{"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", &chaincfg.MainNetParams, address.P2SH, "a914b472a266d0bd89c13706a4132ccfb16f7c3b9fcb87"},
			{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &chaincfg.MainNetParams, address.P2WPKH, "0014751e76e8199196d454941c45d1b3a323f1433bd6"},
			{"bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3", &chaincfg.MainNetParams, address.P2WSH, "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"},
			{"bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0", &chaincfg.MainNetParams, address.P2TR, "512079be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
			{"mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn", &chaincfg.TestNet3Params, address.P2PKH, "76a914243f1394f44554f4ce3fd68649c19adc483ce92488ac"},
			{"2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.TestNet3Params, address.P2SH, "a91425104dcfd3af17b7e58600bfdf33da2663e0cdd187"},
			{"tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", &chaincfg.TestNet3Params, address.P2WPKH, "0014751e76e8199196d454941c45d1b3a323f1433bd6"},
			{"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7", &chaincfg.TestNet3Params, address.P2WSH, "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"},
			{"tb1peymd09grxec8qg7tn5vqsmf7j7fhuvw9w8lua3msmzzqhr3qtfjqlj50zg", &chaincfg.TestNet3Params, address.P2TR, "5120c936d7950336707023cb9d18086d3e97937e31c571ffcec770d8840b8e205a64"},
			{"bcrt1qg3gmqfdwgteve988hvps7kws2kdzagtkqf6gu0", &chaincfg.RegressionNetParams, address.P2WPKH, "00144451b025ae42f2cc94e7bb030f59d0559a2ea176"},
			{"bcrt1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qzf4jry", &chaincfg.RegressionNetParams, address.P2WSH, "00201863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"},
			{"bcrt1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqc8gma6", &chaincfg.RegressionNetParams, address.P2TR, "512079be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
			// future witness versions.
			{"bc1zw508d6qejxtdg4y5r3zarvaryvaxxpcs", &chaincfg.MainNetParams, address.Other, "5210751e76e8199196d454941c45d1b3a323"},
			{"bc1sw50qgdz25j", &chaincfg.MainNetParams, address.Other, "6002751e"},
			{"bcrt1zw508d6qejxtdg4y5r3zarvaryv2wuatf", &chaincfg.RegressionNetParams, address.Other, "5210751e76e8199196d454941c45d1b3a323"},
			{"tb1sw50qadvs0e", &chaincfg.SigNetParams, address.Other, "6002751e"},
			// base58 test addresses are shared by test networks.
			{"2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.RegressionNetParams, address.P2SH, "a91425104dcfd3af17b7e58600bfdf33da2663e0cdd187"},
			{"mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn", &chaincfg.SigNetParams, address.P2PKH, "76a914243f1394f44554f4ce3fd68649c19adc483ce92488ac"},
			{"tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", &chaincfg.SigNetParams, address.P2WPKH, "0014751e76e8199196d454941c45d1b3a323f1433bd6"},
		}
		for _, test := range tests {
			info, err := address.Resolve(test.address, test.params)
			require.NoError(t, err, test.address)
			require.Equal(t, test.typ, info.Type, test.address)
			require.Equal(t, mustHex(t, test.script), info.ScriptPubKey, test.address)
			require.Equal(t, test.address, info.Address.String(), test.address)
		}
	})

	t.Run("network mismatch", func(t *testing.T) {
		tests := []struct {
			address string
			params  *chaincfg.Params
		}{
			{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.TestNet3Params},
			{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.RegressionNetParams},
			{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &chaincfg.RegressionNetParams},
			{"bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0", &chaincfg.SigNetParams},
			{"2MvdCXCZZsJc3g9gsXhWdAoTwzoTX2vq3yv", &chaincfg.MainNetParams},
			{"tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", &chaincfg.MainNetParams},
			{"tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", &chaincfg.RegressionNetParams},
			{"bcrt1qg3gmqfdwgteve988hvps7kws2kdzagtkqf6gu0", &chaincfg.TestNet3Params},
			{"bcrt1qg3gmqfdwgteve988hvps7kws2kdzagtkqf6gu0", &chaincfg.MainNetParams},
			{"bc1zw508d6qejxtdg4y5r3zarvaryvaxxpcs", &chaincfg.TestNet3Params},
			{"bcrt1zw508d6qejxtdg4y5r3zarvaryv2wuatf", &chaincfg.MainNetParams},
			{"tb1sw50qadvs0e", &chaincfg.RegressionNetParams},
		}
		for _, test := range tests {
			_, err := address.Resolve(test.address, test.params)
			require.ErrorIs(t, err, bitcoin.ErrNetworkMismatch, test.address)
			require.NotErrorIs(t, err, bitcoin.ErrInvalidAddress, test.address)
			require.Contains(t, err.Error(), test.address)
		}
	})

	t.Run("invalid address", func(t *testing.T) {
		tests := []string{
			"",
			"not-an-address",
			"bcrt1qg3gmqfdwgteve988hvps7kws2kdzagtkqf6gu1", // broken checksum.
			"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb",           // broken checksum.
			"bc1zw508d6qejxtdg4y5r3zarvaryvg6kdaj",         // witness version 2 with bech32 checksum.
			// compressed public key is not an address.
			"03d17661b814dfaf3f7d6e70e8d4c8f5e6fdbe780a2c0373dd06ca7d75dc19f8be",
		}
		for _, test := range tests {
			_, err := address.Resolve(test, &chaincfg.RegressionNetParams)
			require.ErrorIs(t, err, bitcoin.ErrInvalidAddress, test)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		address string
		label   string
	}{
		{"bcrt1qg3gmqfdwgteve988hvps7kws2kdzagtkqf6gu0", "p2wpkh"},
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "p2pkh"},
		{"2N8mvwwUPfXt8FczXvE1UvM8ioVTW9LQLj1", "p2sh"},
		{"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7", "p2wsh"},
		{"tb1p9m40h0uj4uk37hsgvm97h4shhx2kyhehvfax8rysfhwjdp2ycvgqtxqsu0", "p2tr"},
		{"bc1zw508d6qejxtdg4y5r3zarvaryvaxxpcs", "other"},
		{"BC1SW50QGDZ25J", "other"},
	}
	for _, test := range tests {
		typ, err := address.Classify(test.address)
		require.NoError(t, err, test.address)
		require.Equal(t, test.label, typ.String(), test.address)
	}

	_, err := address.Classify("not-an-address")
	require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)

	require.Equal(t, address.Other, address.TypeOf(nil))
}

// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network defines canonical bitcoin network identifier.
type Network string

const (
	// NetworkMain defines bitcoin main network.
	NetworkMain Network = "main"
	// NetworkTest defines bitcoin test network (testnet3).
	NetworkTest Network = "test"
	// NetworkRegtest defines bitcoin regression test network.
	NetworkRegtest Network = "regtest"
	// NetworkSignet defines bitcoin default signet network.
	NetworkSignet Network = "signet"
)

// Networks lists all supported networks, main network first.
var Networks = []Network{NetworkMain, NetworkTest, NetworkRegtest, NetworkSignet}

// networkAliases maps accepted spellings to canonical network.
var networkAliases = map[string]Network{
	"main":     NetworkMain,
	"mainnet":  NetworkMain,
	"bitcoin":  NetworkMain,
	"test":     NetworkTest,
	"testnet":  NetworkTest,
	"testnet3": NetworkTest,
	"regtest":  NetworkRegtest,
	"signet":   NetworkSignet,
}

// ParseNetwork parses network identifier into canonical Network.
func ParseNetwork(network string) (Network, error) {
	n, ok := networkAliases[strings.ToLower(strings.TrimSpace(network))]
	if !ok {
		return "", errors.Join(ErrInvalidNetwork, fmt.Errorf("unknown network %q, expected one of %v", network, Networks))
	}

	return n, nil
}

// Params returns chain parameters of the network.
func (n Network) Params() *chaincfg.Params {
	switch n {
	case NetworkMain:
		return &chaincfg.MainNetParams
	case NetworkTest:
		return &chaincfg.TestNet3Params
	case NetworkRegtest:
		return &chaincfg.RegressionNetParams
	case NetworkSignet:
		return &chaincfg.SigNetParams
	}

	return nil
}

// String returns network identifier.
func (n Network) String() string {
	return string(n)
}

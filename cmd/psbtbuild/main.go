// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Command psbtbuild builds unsigned PSBT from JSON request of funding outputs
// and payments, and prints it along with estimated signed transaction size.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"psbtbuilder/bitcoin/txbuilder"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes psbtbuild with provided arguments. PSBT is written to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}

		return err
	}

	setLogLevels(cfg.LogLevel)
	if cfg.LogDir != "" {
		if err = initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
			return err
		}
		defer closeLogRotator()
	}

	var opts []txbuilder.Option
	if cfg.Strict {
		opts = append(opts, txbuilder.WithStrictRedeemScripts())
	}

	b, err := txbuilder.NewBuilder(cfg.Network, opts...)
	if err != nil {
		return err
	}

	reqReader := stdin
	if cfg.Request != stdinRequest {
		f, err := os.Open(cfg.Request)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		reqReader = f
	}

	req, err := readRequest(reqReader)
	if err != nil {
		return err
	}

	if err = req.apply(b); err != nil {
		return err
	}

	data, err := b.Serialize()
	if err != nil {
		return err
	}

	vBytes, err := b.EstimateVBytes()
	if err != nil {
		return err
	}

	kinds, err := txbuilder.ExtractInputKindsFromPSBT(data)
	if err != nil {
		return err
	}
	log.Debugf("Input kinds: %v", kinds)
	if unresolved := kinds[txbuilder.InputKindUnresolvedScriptHash]; len(unresolved) > 0 {
		log.Warnf("Inputs %v spend P2SH outputs without redeem script, "+
			"PSBT will not finalize until it is added", unresolved)
	}

	log.Infof("Built %v on %s network, estimated size %d vB", b, b.Network(), vBytes)

	return writePSBT(stdout, cfg.Format, b, data)
}

// writePSBT writes serialized PSBT in requested format.
func writePSBT(w io.Writer, format string, b *txbuilder.Builder, data []byte) error {
	switch format {
	case "hex":
		_, err := fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	case "binary":
		_, err := w.Write(data)
		return err
	}

	encoded, err := b.SerializeBase64()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, encoded)
	return err
}

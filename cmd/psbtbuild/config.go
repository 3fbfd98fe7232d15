// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"

	"psbtbuilder/bitcoin"
)

const (
	defaultNetwork     = "test"
	defaultLogLevel    = "info"
	defaultLogFilename = "psbtbuild.log"
	stdinRequest       = "-"
)

// config defines the configuration options for psbtbuild.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to ini configuration file"`
	Network    string `short:"n" long:"network" description:"Network to build the transaction for {main, test, regtest, signet}"`
	Request    string `short:"r" long:"request" description:"Path to JSON request file, - reads standard input"`
	Format     string `short:"f" long:"format" description:"PSBT output format" choice:"base64" choice:"hex" choice:"binary"`
	Strict     bool   `long:"strict" description:"Reject P2SH inputs without compressed public key to derive redeem script from"`
	LogLevel   string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogDir     string `long:"logdir" description:"Directory to write rotated log file to, empty disables file logging"`
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Network:  defaultNetwork,
		Request:  stdinRequest,
		Format:   "base64",
		LogLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	if preCfg.ConfigFile != "" {
		err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return nil, fmt.Errorf("config file %s not found: %w", preCfg.ConfigFile, err)
			}

			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	_, err = parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if _, err = bitcoin.ParseNetwork(cfg.Network); err != nil {
		return nil, err
	}

	if _, ok := btclog.LevelFromString(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	return &cfg, nil
}

// isHelp returns true if err is a request to show usage.
func isHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

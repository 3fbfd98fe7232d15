// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"psbtbuilder/bitcoin/txbuilder"
)

// logWriter implements an io.Writer that outputs to standard error and,
// once initialized, to the log rotator. Standard output carries the PSBT.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var (
	backendLog = btclog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs. It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log    = backendLog.Logger("PSBT")
	txbLog = backendLog.Logger("TXBD")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"PSBT": log,
	"TXBD": txbLog,
}

func init() {
	txbuilder.UseLogger(txbLog)
}

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// closeLogRotator flushes and closes the log rotator if any.
func closeLogRotator() {
	if logRotator != nil {
		logRotator.Close()
		logRotator = nil
	}
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level. Invalid levels are ignored.
func setLogLevels(logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}

	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

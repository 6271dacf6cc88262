//-------------------------------------------------------------------------
//
// SmartStore Warehouse Tools
//
// Portions copyright (c) 2025 - 2026, SmartStore Analytics
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package logging provides the structured operational log for
// smartstore-dw. Stages log progress and per-table counters at info and
// recoverable gaps at warn; failures propagate to the CLI as errors, so
// nothing here logs above warn.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger is the process-wide logger. Access goes through the level
// helpers; Init replaces it wholesale.
var logger zerolog.Logger

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level emitted (debug, info, warn).
	Level string

	// Pretty selects the human-readable console writer over raw JSON.
	Pretty bool

	// TimeFormat overrides the console timestamp format.
	TimeFormat string
}

// DefaultConfig returns the configuration installed before Init runs.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Pretty:     true,
		TimeFormat: time.RFC3339,
	}
}

// Init replaces the process-wide logger. An unknown level falls back to
// info; logging must never stop a pipeline run.
func Init(cfg Config) {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: timeFormat,
		}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Debug returns a debug level event.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info returns an info level event.
func Info() *zerolog.Event {
	return logger.Info()
}

// Warn returns a warning level event.
func Warn() *zerolog.Event {
	return logger.Warn()
}

func init() {
	Init(DefaultConfig())
}

// Package logger builds the zap loggers used by the foldhash programs and adapts them to the
// foldhash.Tracer hook.
package logger

import (
	"fmt"
	"github.com/p7r0x7/foldhash"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Config controls the level and encoding of a logger.
type Config struct {
	Debug  bool   // Enable debug level logging
	Format string // "json" or "human"
}

// DefaultConfig returns a human-readable configuration that logs warnings and errors only.
func DefaultConfig() Config {
	return Config{Format: "human"}
}

// New builds a logger writing to w, or to STDERR if w is nil. Digests go to STDOUT, so logs never
// share a stream with them.
func New(cfg Config, w zapcore.WriteSyncer) (*zap.SugaredLogger, error) {
	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "human", "":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		ec.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}
	if w == nil {
		w = zapcore.Lock(os.Stderr)
	}
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if cfg.Debug {
		level.SetLevel(zap.DebugLevel)
	}
	return zap.New(zapcore.NewCore(enc, w, level)).Sugar(), nil
}

// Tracer reports every stage of a digest computation as a debug entry.
type Tracer struct {
	Log *zap.SugaredLogger
}

var _ foldhash.Tracer = Tracer{}

func (t Tracer) Encoded(hex, decimal string) {
	t.Log.Debugw("encoded", "hex", hex, "decimal", decimal, "digits", len(decimal))
}

func (t Tracer) Block(i int, block uint64) {
	t.Log.Debugw("block", "index", i, "value", block)
}

func (t Tracer) Folded(i int, running uint64) {
	t.Log.Debugw("folded", "index", i, "running", running, "hex", foldhash.Format(running, 16))
}

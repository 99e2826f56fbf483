// Package logsink implements the shared append-only log file described by
// the training harness: truncated once at open, then shared by the
// coordinator and every worker, each line atomically written and tagged
// with the producing agent's id.
package logsink

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink is a handle to the shared log file. It is safe for concurrent use
// by multiple goroutines: each Log call is a single atomically-written
// record.
type Sink struct {
	logger *zap.Logger
	file   *os.File
}

// Open truncates (or creates) the file at path and returns a Sink backed
// by it. Every subsequent Log call appends one line.
func Open(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:          "T",
		MessageKey:       "M",
		LevelKey:         zapcore.OmitKey,
		NameKey:          zapcore.OmitKey,
		CallerKey:        zapcore.OmitKey,
		StacktraceKey:    zapcore.OmitKey,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		ConsoleSeparator: " ",
	}

	// zapcore.Lock wraps the file's WriteSyncer with a mutex so concurrent
	// Log calls from the coordinator and workers never interleave mid-line.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		zapcore.InfoLevel,
	)

	return &Sink{logger: zap.New(core), file: f}, nil
}

// Noop returns a Sink that discards every line, used when no log path is
// configured.
func Noop() *Sink {
	return &Sink{logger: zap.NewNop()}
}

// Log appends one line of the form "<timestamp> <agentID> <message>".
func (s *Sink) Log(agentID, message string) {
	s.logger.Info(agentID + " " + message)
}

// Close flushes and closes the underlying file, if any.
func (s *Sink) Close() error {
	_ = s.logger.Sync()
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

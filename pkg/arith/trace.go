package arith

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer runs the arithmetic primitives and logs each algorithm step.
// A Tracer is safe for concurrent use.
type Tracer struct {
	logger *zap.Logger
}

// silent backs the package-level functions.
var silent = &Tracer{logger: zap.NewNop()}

// NewTracer creates a Tracer that writes step entries to logger at debug level.
// A nil logger yields a Tracer that logs nothing.
func NewTracer(logger *zap.Logger) *Tracer {
	if logger == nil {
		return silent
	}
	return &Tracer{logger: logger.Named("arith")}
}

// Enabled reports whether step entries will actually be written.
func (t *Tracer) Enabled() bool {
	return t != nil && t.logger.Core().Enabled(zapcore.DebugLevel)
}

func (t *Tracer) step(msg string, fields ...zap.Field) {
	if t == nil {
		return
	}
	if ce := t.logger.Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

// binary renders a value as a fixed-width bit string only when a log entry is
// actually encoded.
type binary uint16

func (b binary) String() string {
	return fmt.Sprintf("%016b", uint16(b))
}

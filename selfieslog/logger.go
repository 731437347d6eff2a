// Package selfieslog provides the codec's structured-logging seam.
//
// Direct use of go.uber.org/zap is confined to this package so the
// underlying library can be swapped without touching codec logic. The
// default logger is a no-op: encoder/decoder calls are pure functions of
// their string inputs (no I/O happens on the codec's golden path), and
// embedders opt into diagnostics with SetDefault.
package selfieslog

import (
	"sync"

	"go.uber.org/zap"
)

// Field is a typed key-value pair attached to a log entry.
type Field = zap.Field

// String constructs a string Field.
func String(key, val string) Field { return zap.String(key, val) }

// Int constructs an int Field.
func Int(key string, val int) Field { return zap.Int(key, val) }

// Logger is the narrow interface codec packages depend on. Only the
// events the spec calls "notable but not erroneous" are logged through it:
// pruned aromatic vertices, and ring bonds that are skipped or clamped for
// lack of remaining capacity.
type Logger interface {
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)   { l.z.Warn(msg, fields...) }

var (
	mu      sync.RWMutex
	current Logger = &zapLogger{z: zap.NewNop()}
)

// SetDefault installs the process-wide codec logger. Pass a *zap.Logger,
// or nil to revert to the no-op default.
func SetDefault(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if z == nil {
		current = &zapLogger{z: zap.NewNop()}
		return
	}
	current = &zapLogger{z: z}
}

// Default returns the currently installed Logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger passed to world.New (and built by
// cmd/stagesim). It wraps a zap.SugaredLogger so call sites can use the
// familiar Debugw/Infow/Warnw/Errorw key-value idiom.
type Logger struct {
	name string
	zl   *zap.SugaredLogger
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a production-style Logger at the given minimum level.
func New(name string, level Level) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	cfg.EncoderConfig.TimeKey = "ts"
	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Config built above is static and known-good; a failure here is a
		// broken build environment, not a caller error.
		panic(err)
	}
	return &Logger{name: name, zl: zl.Sugar().Named(name)}
}

// NewTestLogger builds a Logger suitable for unit tests: DEBUG level,
// no sampling, synchronous output.
func NewTestLogger() *Logger {
	cfg := zap.NewDevelopmentConfig()
	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return &Logger{name: "test", zl: zl.Sugar()}
}

// Named returns a child logger that prefixes its name with this logger's.
func (l *Logger) Named(name string) *Logger {
	return &Logger{name: l.name + "." + name, zl: l.zl.Named(name)}
}

func (l *Logger) Debugw(msg string, kv ...interface{}) { l.zl.Debugw(msg, kv...) }
func (l *Logger) Infow(msg string, kv ...interface{})  { l.zl.Infow(msg, kv...) }
func (l *Logger) Warnw(msg string, kv ...interface{})  { l.zl.Warnw(msg, kv...) }
func (l *Logger) Errorw(msg string, kv ...interface{}) { l.zl.Errorw(msg, kv...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.zl.Sync() }

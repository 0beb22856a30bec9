// Package logging contains the structured logger used across vehiclekin.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// NewLoggerConfig returns a new default logger config.
func NewLoggerConfig() zap.Config {
	// from https://github.com/uber-go/zap/blob/2314926ec34c23ee21f3dd4399438469668f8097/config.go#L135
	// but disable stacktraces, use same keys as prod, and color levels.
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a new logger that outputs Info+ logs to stdout in UTC.
func NewLogger(name string) Logger {
	return newFromConfig(name, INFO)
}

// NewDebugLogger returns a new logger that outputs Debug+ logs to stdout in UTC.
func NewDebugLogger(name string) Logger {
	return newFromConfig(name, DEBUG)
}

func newFromConfig(name string, level Level) Logger {
	atomic := zap.NewAtomicLevelAt(level.AsZap())
	config := NewLoggerConfig()
	config.Level = atomic
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(DefaultTimeFormatStr)
	base := zap.Must(config.Build(zap.AddCallerSkip(1))).WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return utcCore{c}
	}))
	return &impl{name: name, level: atomic, base: base, sugar: base.Sugar().Named(name)}
}

// NewBlankLogger returns a new logger that outputs Debug+ logs but without any outputs.
func NewBlankLogger(name string) Logger {
	atomic := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	base := zap.NewNop()
	return &impl{name: name, level: atomic, base: base, sugar: base.Sugar().Named(name)}
}

// NewTestLogger returns a new logger that outputs Debug+ logs through the test's `Log` method.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also saves logs to an in memory observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	observerCore, observedLogs := observer.New(atomic)
	base := zaptest.NewLogger(tb, zaptest.Level(atomic)).WithOptions(
		zap.AddCallerSkip(1),
		zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, observerCore)
		}),
	)
	return &impl{name: "", level: atomic, base: base, sugar: base.Sugar()}, observedLogs
}

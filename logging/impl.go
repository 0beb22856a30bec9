package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the default time format string for log appenders.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Logger interface for logging to.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a new logger named `<name>.<subname>` which shares the outputs of this one
	// but has its own level.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	GetLevel() Level
	AsZap() *zap.SugaredLogger
	Sync() error
}

type impl struct {
	name  string
	level zap.AtomicLevel
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}

	// The child gets its own level so it can be tuned independently of the parent. The parent
	// level still gates the shared cores.
	level := zap.NewAtomicLevelAt(imp.level.Level())
	base := imp.base.WithOptions(zap.IncreaseLevel(level))
	return &impl{
		name:  newName,
		level: level,
		base:  imp.base,
		sugar: base.Sugar().Named(newName),
	}
}

func (imp *impl) SetLevel(level Level) {
	imp.level.SetLevel(level.AsZap())
}

func (imp *impl) GetLevel() Level {
	return levelFromZap(imp.level.Level())
}

func (imp *impl) AsZap() *zap.SugaredLogger {
	return imp.sugar
}

func (imp *impl) Sync() error {
	return imp.base.Sync()
}

func (imp *impl) enabled(level Level) bool {
	return imp.level.Enabled(level.AsZap())
}

func (imp *impl) Debug(args ...interface{}) {
	if imp.enabled(DEBUG) {
		imp.sugar.Debug(args...)
	}
}

func (imp *impl) Debugf(template string, args ...interface{}) {
	if imp.enabled(DEBUG) {
		imp.sugar.Debugf(template, args...)
	}
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	if imp.enabled(DEBUG) {
		imp.sugar.Debugw(msg, keysAndValues...)
	}
}

func (imp *impl) Info(args ...interface{}) {
	if imp.enabled(INFO) {
		imp.sugar.Info(args...)
	}
}

func (imp *impl) Infof(template string, args ...interface{}) {
	if imp.enabled(INFO) {
		imp.sugar.Infof(template, args...)
	}
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	if imp.enabled(INFO) {
		imp.sugar.Infow(msg, keysAndValues...)
	}
}

func (imp *impl) Warn(args ...interface{}) {
	if imp.enabled(WARN) {
		imp.sugar.Warn(args...)
	}
}

func (imp *impl) Warnf(template string, args ...interface{}) {
	if imp.enabled(WARN) {
		imp.sugar.Warnf(template, args...)
	}
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	if imp.enabled(WARN) {
		imp.sugar.Warnw(msg, keysAndValues...)
	}
}

func (imp *impl) Error(args ...interface{}) {
	if imp.enabled(ERROR) {
		imp.sugar.Error(args...)
	}
}

func (imp *impl) Errorf(template string, args ...interface{}) {
	if imp.enabled(ERROR) {
		imp.sugar.Errorf(template, args...)
	}
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	if imp.enabled(ERROR) {
		imp.sugar.Errorw(msg, keysAndValues...)
	}
}

// utcCore rewrites entry times to UTC before handing them to the wrapped core.
type utcCore struct {
	zapcore.Core
}

func (c utcCore) With(fields []zapcore.Field) zapcore.Core {
	return utcCore{c.Core.With(fields)}
}

func (c utcCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c utcCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	entry.Time = entry.Time.In(time.UTC)
	return c.Core.Write(entry, fields)
}

// Package logger wraps zap behind a small interface shared by the host and the UI.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger passed through the host and the UI.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)

	// Named returns a child logger with the given name segment.
	Named(name string) Logger
	// SetLevel changes the level of this logger and every logger derived from it.
	// Unknown level names are ignored.
	SetLevel(level string)

	Sync() error
}

type zapLogger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

// New builds a logger writing to stderr. pretty selects the colored
// console encoder, otherwise lines are JSON.
func New(level string, pretty bool) Logger {
	cfg := newConfig(level, pretty)
	z, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		// Only reachable with a broken encoder config.
		panic(err)
	}
	return &zapLogger{z: z, level: cfg.Level}
}

// NewFile builds a logger writing to path. The UI uses this since the
// terminal belongs to the TUI.
func NewFile(path, level string) (Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	cfg := newConfig(level, false)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	z, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build file logger: %w", err)
	}
	return &zapLogger{z: z, level: cfg.Level}, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &zapLogger{z: zap.NewNop(), level: zap.NewAtomicLevel()}
}

func newConfig(level string, pretty bool) zap.Config {
	cfg := zap.NewProductionConfig()
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if lvl, ok := parseLevel(level); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg
}

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

func parseLevel(name string) (zapcore.Level, bool) {
	lvl, ok := levels[name]
	return lvl, ok
}

// ValidLevel reports whether name is a level New understands.
func ValidLevel(name string) bool {
	_, ok := parseLevel(name)
	return ok
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...zap.Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...zap.Field)  { l.z.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...zap.Field) { l.z.Error(msg, fields...) }

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name), level: l.level}
}

func (l *zapLogger) SetLevel(level string) {
	if lvl, ok := parseLevel(level); ok {
		l.level.SetLevel(lvl)
	}
}

func (l *zapLogger) Sync() error { return l.z.Sync() }

// Field constructors, so callers don't import zap.
func String(key, val string) zap.Field                 { return zap.String(key, val) }
func Int(key string, val int) zap.Field                { return zap.Int(key, val) }
func Uint64(key string, val uint64) zap.Field          { return zap.Uint64(key, val) }
func Bool(key string, val bool) zap.Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) zap.Field { return zap.Duration(key, val) }
func Error(err error) zap.Field                        { return zap.Error(err) }

// Package log provides prefixed, coloured console loggers backed by zap.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const colorReset = "\033[0m"

// level is shared by every logger created by New.
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Logger writes human-readable lines tagged with a coloured component prefix.
type Logger struct {
	zapLogger *zap.Logger
}

// New creates a logger that tags every line with prefix, rendered in color, and writes to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, fmt.Errorf("nil writer for logger %q", prefix)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%s[%s]%s", color, name, colorReset))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return &Logger{zapLogger: zap.New(core).Named(prefix)}, nil
}

// SetLevel changes the minimum level of every logger. Accepts debug, info, warn and error.
func SetLevel(name string) error {
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

func (l *Logger) Debug(msg string) {
	l.zapLogger.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.zapLogger.Info(msg)
}

func (l *Logger) Warn(msg string) {
	l.zapLogger.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.zapLogger.Error(msg)
}

// With returns a child logger that adds key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{zapLogger: l.zapLogger.With(zap.Any(key, value))}
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

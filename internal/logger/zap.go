package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the logger configuration options
type Config struct {
	LogLevel LogLevel

	// FilePath receives JSON entries at or above LogLevel, rotated by size
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	UseConsole bool
	// Console defaults to stderr so stdout stays free for rendered output
	Console io.Writer

	Development bool
}

// ZapLogger implements Logger on top of zap
type ZapLogger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
	cfg   Config
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger builds a logger from cfg. With neither a file nor the
// console enabled every entry is discarded.
func NewZapLogger(cfg Config) (Logger, error) {
	cfg = withDefaults(cfg)
	z, err := buildZapLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return newZapLogger(z, cfg), nil
}

func newZapLogger(z *zap.Logger, cfg Config) *ZapLogger {
	return &ZapLogger{zap: z, sugar: z.Sugar(), cfg: cfg}
}

func withDefaults(cfg Config) Config {
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = DefaultMaxAgeDays
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = DefaultMaxSizeMB
	}
	if cfg.MaxBackups < 0 {
		cfg.MaxBackups = DefaultMaxBackups
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Console == nil {
		cfg.Console = os.Stderr
	}
	return cfg
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	if development {
		enc = zap.NewDevelopmentEncoderConfig()
	}
	enc.TimeKey = "timestamp"
	enc.MessageKey = "message"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	return enc
}

// rotatingFile opens a lumberjack sink, creating its directory
func rotatingFile(path string, cfg Config) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(path), err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}), nil
}

func buildZapLogger(cfg Config) (*zap.Logger, error) {
	level := zapLevel(cfg.LogLevel)
	enc := encoderConfig(cfg.Development)

	var cores []zapcore.Core
	if cfg.FilePath != "" {
		sink, err := rotatingFile(cfg.FilePath, cfg)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, level))
	}
	if cfg.UseConsole {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(cfg.Console), level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func zapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func (l *ZapLogger) write(level zapcore.Level, msg string, fields map[string]interface{}) {
	if ce := l.zap.Check(level, msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.write(zapcore.DebugLevel, msg, fields)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.write(zapcore.InfoLevel, msg, fields)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.write(zapcore.WarnLevel, msg, fields)
}

func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.write(zapcore.ErrorLevel, msg, fields)
}

// Fatal logs and exits the process
func (l *ZapLogger) Fatal(msg string, fields map[string]interface{}) {
	l.write(zapcore.FatalLevel, msg, fields)
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *ZapLogger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
func (l *ZapLogger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }

// WithField returns a child logger carrying key=value on every entry
func (l *ZapLogger) WithField(key string, value interface{}) Logger {
	return newZapLogger(l.zap.With(zap.Any(key, value)), l.cfg)
}

// WithFields returns a child logger carrying fields on every entry
func (l *ZapLogger) WithFields(fields map[string]interface{}) Logger {
	if len(fields) == 0 {
		return l
	}
	return newZapLogger(l.zap.With(zapFields(fields)...), l.cfg)
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

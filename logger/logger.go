package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the root logger. It discards everything until Init is called.
var Log = &Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "nop"}

type Logger struct {
	*zap.SugaredLogger
	Name string
}

// Config represents configuration options for logger initialization
type Config struct {
	Debug    bool      // Enable debug logging
	TimeZone string    // IANA zone name for timestamps (default: UTC)
	Output   io.Writer // Destination (default: stderr, stdout carries the table)
}

// Init is a function to initialize logger with extended configuration
func Init(config Config) error {
	location := time.UTC
	if config.TimeZone != "" {
		loc, err := time.LoadLocation(config.TimeZone)
		if err != nil {
			return fmt.Errorf("load time zone: %w", err)
		}
		location = loc
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.In(location).Format("2006-01-02 15:04:05"))
		},
	}

	var level zapcore.Level
	if config.Debug {
		level = zapcore.DebugLevel
	} else {
		level = zapcore.InfoLevel
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(out)), level)
	log := zap.New(core, zap.AddCaller())

	Log = &Logger{
		SugaredLogger: log.Named("main").Sugar(),
		Name:          "main",
	}
	return nil
}

// Named returns a child of the root logger ("table", "config", etc.)
func Named(name string) *Logger {
	return &Logger{
		SugaredLogger: Log.SugaredLogger.Named(name),
		Name:          name,
	}
}

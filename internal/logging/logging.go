// Package logging builds the process logger.
package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the encoder, level and optional rotating log file.
type Config struct {
	Level       string `long:"level" env:"LEVEL" default:"info" description:"Log level (debug, info, warn, error)"`
	Development bool   `long:"development" env:"DEVELOPMENT" description:"Console encoder with colored levels instead of JSON"`
	File        string `long:"file" env:"FILE" description:"Also write logs to this file, rotated by size"`
	MaxSizeMB   int    `long:"max-size-mb" env:"MAX_SIZE_MB" default:"100" description:"Rotate the log file after this many megabytes"`
	MaxBackups  int    `long:"max-backups" env:"MAX_BACKUPS" default:"5" description:"Rotated log files to keep"`
	MaxAgeDays  int    `long:"max-age-days" env:"MAX_AGE_DAYS" default:"14" description:"Days to keep rotated log files"`
	Compress    bool   `long:"compress" env:"COMPRESS" description:"Gzip rotated log files"`
}

// New returns a logger writing to stderr and, when File is set, to a rotating file.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	atom := zap.NewAtomicLevelAt(level)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Development), zapcore.Lock(os.Stderr), atom),
	}
	if cfg.File != "" {
		writer, err := fileWriter(cfg)
		if err != nil {
			return nil, err
		}
		// files always get json so they stay machine readable
		cores = append(cores, zapcore.NewCore(encoder(false), writer, atom))
	}

	options := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Development {
		options = append(options, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), options...), nil
}

func encoder(development bool) zapcore.Encoder {
	if development {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(ec)
}

func fileWriter(cfg Config) (zapcore.WriteSyncer, error) {
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return nil, errors.New("log rotation limits must not be negative")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

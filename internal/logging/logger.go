// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

// Rotation defaults for the optional log file.
const (
	defaultMaxSizeMB  = 15
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Logger pairs a zerolog.Logger with the resources it writes to.
type Logger struct {
	zerolog.Logger
	file *lumberjack.Logger
}

// New builds a logger writing to stderr in the configured format and,
// when cfg.File is set, JSON lines to a rotating file as well.
func New(cfg types.LogConfig) *Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit console writer.
func NewWithWriter(cfg types.LogConfig, w io.Writer) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = w
	if cfg.Format != types.LogJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	var file *lumberjack.Logger
	if cfg.File != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: orDefault(cfg.MaxBackups, defaultMaxBackups),
			MaxAge:     orDefault(cfg.MaxAgeDays, defaultMaxAgeDays),
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, file)
	}

	return &Logger{
		Logger: zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger(),
		file:   file,
	}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

package config

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"

	"github.com/lgbarn/hexchess-go/internal/errors"
)

// LogFormat selects the log handler.
type LogFormat int

const (
	LogText LogFormat = iota // human readable, one line per entry
	LogJSON                  // one JSON object per entry
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is an apex/log level name: debug, info, warn, error or fatal.
	Level  string
	Format LogFormat
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn", Format: LogText}
}

// Validate checks the level name and format.
func (l *LogConfig) Validate() error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	if l.Format != LogText && l.Format != LogJSON {
		return fmt.Errorf("log format %d: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}

// NewLogger builds a logger writing to w.
func (l *LogConfig) NewLogger(w io.Writer) (*log.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	level, _ := log.ParseLevel(l.Level)

	var handler log.Handler
	switch l.Format {
	case LogJSON:
		handler = json.New(w)
	default:
		handler = cli.New(w)
	}
	return &log.Logger{Handler: handler, Level: level}, nil
}

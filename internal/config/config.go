// Package config provides configuration for the hexchess tools.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/hexchess-go/internal/chess"
)

// Config holds all program configuration.
type Config struct {
	Log    LogConfig
	Perft  PerftConfig
	Output OutputConfig
	Store  StoreConfig

	// Colour is the side whose moves are listed or counted.
	Colour chess.Colour

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:        *NewLogConfig(),
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		Store:      *NewStoreConfig(),
		Colour:     chess.White,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

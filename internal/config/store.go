package config

import (
	"fmt"

	"github.com/lgbarn/hexchess-go/internal/errors"
)

// StoreConfig holds settings for the perft cache.
type StoreConfig struct {
	// Enabled turns the cache on
	Enabled bool

	// Dir is the database directory; empty keeps the cache in memory
	Dir string

	// Position names a stored board to load instead of the initial one
	Position string

	// SaveAs stores the final board under this name
	SaveAs string
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Persistent reports whether the store lives on disk.
func (s *StoreConfig) Persistent() bool {
	return s.Dir != ""
}

// Validate checks that named positions have a directory to live in; an
// in-memory store is discarded when the process exits.
func (s *StoreConfig) Validate() error {
	if (s.Position != "" || s.SaveAs != "") && !s.Persistent() {
		return fmt.Errorf("stored positions need a cache directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}

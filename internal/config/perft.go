package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/hexchess-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth; the store keys depth in one byte
// and deeper trees are out of practical reach anyway.
const MaxPerftDepth = 12

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Depth is the number of plies to count (0 disables perft)
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines expanding root moves
	Workers int

	// BufferSize is the worker pool channel buffer
	BufferSize int

	// CacheMinDepth is the shallowest subtree stored in the cache
	CacheMinDepth int

	// CountUnique also counts distinct leaf positions
	CountUnique bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:       runtime.NumCPU(),
		BufferSize:    64,
		CacheMinDepth: 2,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside [0, %d]: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheMinDepth < 1 {
		return fmt.Errorf("cache min depth (%d) < 1: %w", p.CacheMinDepth, errors.ErrInvalidConfig)
	}
	return nil
}

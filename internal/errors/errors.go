// Package errors provides sentinel errors and error types for the hexchess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a coordinate pair outside the 91 playable tiles.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIllegalMove indicates a move that violates hexagonal chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSetup indicates a board arrangement that breaks a board invariant.
	ErrInvalidSetup = errors.New("invalid board setup")

	// ErrInvalidSnapshot indicates a malformed board snapshot.
	ErrInvalidSnapshot = errors.New("invalid board snapshot")

	// ErrUnsupportedMove indicates a move kind the engine cannot resolve or apply.
	ErrUnsupportedMove = errors.New("unsupported move kind")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCacheMiss indicates a lookup that found no cached entry.
	ErrCacheMiss = errors.New("cache miss")
)

// PositionError wraps errors with board context: the operation, the tile
// coordinates involved and the colour being played.
type PositionError struct {
	Err    error  // The underlying error
	Op     string // Operation that failed (e.g. "place", "apply")
	X, Y   int    // Tile coordinates
	Colour string // Colour of the side involved, if any
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	parts = append(parts, fmt.Sprintf("tile (%d,%d)", e.X, e.Y))
	if e.Colour != "" {
		parts = append(parts, strings.ToLower(e.Colour))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

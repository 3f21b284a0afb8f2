package config

import (
	"fmt"

	"github.com/lgbarn/hexchess-go/internal/errors"
)

// OutputFormat represents the report format.
type OutputFormat int

const (
	Text OutputFormat = iota // plain text
	JSON                     // one JSON document
)

// GlyphStyle selects how pieces are drawn on a board diagram.
type GlyphStyle int

const (
	Letters GlyphStyle = iota // P N B R Q K, lowercase for Black
	Symbols                   // Unicode chess symbols
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format OutputFormat

	// Glyphs selects the board diagram glyphs
	Glyphs GlyphStyle

	// ShowBoard prints the board diagram
	ShowBoard bool

	// ShowMoves lists the legal moves of the side to move
	ShowMoves bool

	// ShowMaterial prints the material value of both sides
	ShowMaterial bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		Glyphs:    Letters,
		ShowBoard: true,
	}
}

// Validate checks the enumerated fields.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Glyphs != Letters && o.Glyphs != Symbols {
		return fmt.Errorf("glyph style %d: %w", o.Glyphs, errors.ErrInvalidConfig)
	}
	return nil
}

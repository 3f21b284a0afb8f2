package config

import (
	"io"

	"github.com/lgbarn/hexchess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithColour sets the side to move.
func (b *ConfigBuilder) WithColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Colour = c
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log handler format.
func (b *ConfigBuilder) WithLogFormat(format LogFormat) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithPerft sets the perft depth and divide mode.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithUniqueCount enables counting of distinct leaf positions.
func (b *ConfigBuilder) WithUniqueCount(enabled bool) *ConfigBuilder {
	b.cfg.Perft.CountUnique = enabled
	return b
}

// WithCache enables the perft cache in dir; empty dir keeps it in memory.
func (b *ConfigBuilder) WithCache(dir string) *ConfigBuilder {
	b.cfg.Store.Enabled = true
	b.cfg.Store.Dir = dir
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithGlyphs sets the board diagram glyphs.
func (b *ConfigBuilder) WithGlyphs(style GlyphStyle) *ConfigBuilder {
	b.cfg.Output.Glyphs = style
	return b
}

// ShowMoves controls whether legal moves are listed.
func (b *ConfigBuilder) ShowMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// ShowBoard controls whether the board diagram is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/config"
	"github.com/lgbarn/hexchess-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("json", false, "Output in JSON format")
	noBoard      = flag.Bool("noboard", false, "Don't print the board diagram")
	symbols      = flag.Bool("symbols", false, "Draw pieces with Unicode chess symbols")
	showMoves    = flag.Bool("moves", false, "List the legal moves of the side to move")
	showMaterial = flag.Bool("material", false, "Print the material value of both sides")

	// Position
	colourName = flag.String("colour", "white", "Side to move first: white or black")
	playMoves  = flag.String("play", "", "Moves to play from the start position, e.g. '4,3-6,5 6,7-4,5'")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes N plies deep (0 = off)")
	divide     = flag.Bool("divide", false, "Report perft counts per root move")
	workers    = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")
	unique     = flag.Bool("unique", false, "Also count distinct perft leaf positions")

	// Store
	useCache  = flag.Bool("cache", false, "Cache perft subtree counts")
	cacheDir  = flag.String("cachedir", "", "Directory of a persistent cache (implies -cache)")
	loadName  = flag.String("load", "", "Start from the stored position NAME")
	saveName  = flag.String("save", "", "Store the final position as NAME")
	listNames = flag.Bool("list", false, "List stored positions")

	// Logging
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	logJSON  = flag.Bool("log-json", false, "Write logs as JSON")

	// Meta
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
	applyStoreFlags(cfg)
	applyLogFlags(cfg)
	return applyColourFlag(cfg)
}

// applyOutputFlags configures report settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if *symbols {
		cfg.Output.Glyphs = config.Symbols
	}
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.ShowMaterial = *showMaterial
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.CountUnique = *unique
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// applyStoreFlags configures the cache and stored positions.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Enabled = *useCache || *cacheDir != ""
	cfg.Store.Dir = *cacheDir
	cfg.Store.Position = *loadName
	cfg.Store.SaveAs = *saveName
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = *logLevel
	if *logJSON {
		cfg.Log.Format = config.LogJSON
	}
}

// applyColourFlag sets the side to move first.
func applyColourFlag(cfg *config.Config) error {
	c, err := parseColour(*colourName)
	if err != nil {
		return err
	}
	cfg.Colour = c
	return nil
}

func parseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}

// Package output renders boards, move lists and perft results as text or
// JSON reports.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/config"
	"github.com/lgbarn/hexchess-go/internal/engine"
	"github.com/lgbarn/hexchess-go/internal/perft"
)

// Report is everything the tools print about one position.
type Report struct {
	Board    *chess.Board
	Colour   chess.Colour // side to move
	Moves    []chess.Move // nil unless requested
	Check    *chess.Move  // capturing reply if Colour is in check
	Material [chess.NumColours]int
	Perft    *perft.Result
}

// NewReport collects the position facts for board with colour to move.
// Legal moves are listed only when withMoves is set.
func NewReport(board *chess.Board, colour chess.Colour, withMoves bool) *Report {
	r := &Report{Board: board, Colour: colour}
	r.Material[chess.White] = board.MaterialValue(chess.White)
	r.Material[chess.Black] = board.MaterialValue(chess.Black)
	if m, ok := engine.InCheck(board, colour); ok {
		r.Check = &m
	}
	if withMoves {
		r.Moves = []chess.Move{}
		for m := range engine.LegalMoves(board, colour) {
			r.Moves = append(r.Moves, m)
		}
	}
	return r
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

func glyphFunc(style config.GlyphStyle) chess.GlyphFunc {
	if style == config.Symbols {
		return chess.SymbolGlyph
	}
	return chess.LetterGlyph
}

// WriteBoard prints the board diagram.
func WriteBoard(w io.Writer, board *chess.Board, style config.GlyphStyle) {
	fmt.Fprintln(w, board.Render(glyphFunc(style)))
}

// WriteMoves prints moves separated by spaces and wrapped at 80 columns.
func WriteMoves(w io.Writer, moves []chess.Move) {
	ow := NewOutputWriter(w, 80)
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

// WritePerft prints a perft result, one line per root move when divided.
func WritePerft(w io.Writer, res *perft.Result, divide bool) {
	if divide {
		for _, mc := range res.Moves {
			fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "perft(%d) %s: %d nodes", res.Depth, res.Colour, res.Nodes)
	if res.Unique > 0 {
		fmt.Fprintf(w, ", %d unique", res.Unique)
	}
	fmt.Fprintf(w, " in %s\n", res.Elapsed.Round(time.Millisecond))
}

// WriteText prints a report as plain text.
func WriteText(w io.Writer, r *Report, cfg *config.OutputConfig, divide bool) {
	if cfg.ShowBoard {
		WriteBoard(w, r.Board, cfg.Glyphs)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%s to move\n", r.Colour)
	if r.Check != nil {
		fmt.Fprintf(w, "in check: %s\n", *r.Check)
	}
	if cfg.ShowMaterial {
		fmt.Fprintf(w, "material: White %d, Black %d\n", r.Material[chess.White], r.Material[chess.Black])
	}
	if r.Moves != nil {
		fmt.Fprintf(w, "%d legal moves\n", len(r.Moves))
		WriteMoves(w, r.Moves)
	}
	if r.Perft != nil {
		WritePerft(w, r.Perft, divide)
	}
}

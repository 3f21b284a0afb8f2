package chess

import (
	"strings"

	"github.com/lgbarn/hexchess-go/internal/hex"
)

// GlyphFunc maps an occupied tile to the rune drawn for it.
type GlyphFunc func(piece Piece, c Colour) rune

// LetterGlyph draws White in upper case and Black in lower case.
func LetterGlyph(piece Piece, c Colour) rune {
	r := rune(piece.Letter())
	if c == Black {
		r += 'a' - 'A'
	}
	return r
}

// SymbolGlyph draws the chess symbols of Piece.Glyph.
func SymbolGlyph(piece Piece, c Colour) rune {
	return piece.Glyph(c)
}

// Render draws the board as text, one line per rank with Black's corner
// on top. Each tile sits in the column of its file, so neighbouring ranks
// interleave like the hexagon. Empty tiles are drawn as '.'.
func (b *Board) Render(glyph GlyphFunc) string {
	var sb strings.Builder
	for rank := hex.MaxRank; rank >= 0; rank-- {
		line := []rune(strings.Repeat(" ", 2*hex.NumFiles))
		lo := hex.MinValidCoordinateForRank(rank)
		for y := lo; y < lo+hex.RankWidth(rank); y++ {
			p := hex.MustNew(rank-y, y)
			r := '.'
			if piece, c, ok := b.GetEither(p); ok {
				r = glyph(piece, c)
			}
			line[2*p.File()] = r
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the board with letters.
func (b *Board) String() string {
	return b.Render(LetterGlyph)
}

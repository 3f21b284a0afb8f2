package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// Fixed seeds keep hashes stable across runs, so cached entries written by
// one process stay valid for the next.
const (
	zobristSeed1 = 0x6865786368657373
	zobristSeed2 = 0x7a6f627269737421
)

var (
	pieceKeys [chess.NumColours][chess.NumPieceValues][hex.NumTiles]uint64
	sideKeys  [chess.NumColours]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed1, zobristSeed2))
	for c := range pieceKeys {
		// Empty keeps zero keys so that empty tiles do not contribute.
		for piece := chess.Pawn; piece < chess.NumPieceValues; piece++ {
			for i := range pieceKeys[c][piece] {
				pieceKeys[c][piece][i] = rng.Uint64()
			}
		}
	}
	for c := range sideKeys {
		sideKeys[c] = rng.Uint64()
	}
}

// GenerateZobristHash returns the Zobrist hash of the piece placement.
// The last move is not part of the hash: no rule depends on it.
func GenerateZobristHash(board *chess.Board) uint64 {
	var h uint64
	for pl := range board.AllPiecePositions() {
		h ^= pieceKeys[pl.Colour][pl.Piece][pl.Position.Index()]
	}
	return h
}

// HashWithSide folds the side to move into the placement hash.
func HashWithSide(board *chess.Board, toMove chess.Colour) uint64 {
	return GenerateZobristHash(board) ^ sideKeys[toMove]
}

// UpdateHash returns h after m was played by colour, given the piece that
// moved and the piece it captured (Empty for a quiet move).
func UpdateHash(h uint64, m chess.Move, colour chess.Colour, moved, captured chess.Piece) uint64 {
	h ^= pieceKeys[colour][moved][m.From.Index()]
	h ^= pieceKeys[colour][moved][m.To.Index()]
	if captured != chess.Empty {
		h ^= pieceKeys[colour.Opposite()][captured][m.To.Index()]
	}
	return h
}

// WeakHash is a cheap secondary hash used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for pl := range board.AllPiecePositions() {
		v := uint32(pl.Piece)<<1 | uint32(pl.Colour)
		h = h*31 + v*uint32(pl.Position.Index()+1)
	}
	return h
}

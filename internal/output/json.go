package output

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hashing"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	ToMove   string         `json:"toMove"`
	Hash     uint64         `json:"hash"`
	Pieces   []JSONPiece    `json:"pieces"`
	LastMove *JSONMove      `json:"lastMove,omitempty"`
	Check    *JSONMove      `json:"check,omitempty"`
	Material map[string]int `json:"material"`
	Moves    []JSONMove     `json:"moves,omitempty"`
	Perft    *JSONPerft     `json:"perft,omitempty"`
}

// JSONPiece is one piece on the board.
type JSONPiece struct {
	Colour string `json:"colour"`
	Piece  string `json:"piece"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Rank   int    `json:"rank"`
	File   int    `json:"file"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Notation string `json:"notation"`
	Class    string `json:"class"`
	From     []int  `json:"from,omitempty"`
	To       []int  `json:"to,omitempty"`
	Captures bool   `json:"captures,omitempty"`
}

// JSONPerft represents a perft result.
type JSONPerft struct {
	Depth     int            `json:"depth"`
	Nodes     uint64         `json:"nodes"`
	Unique    int            `json:"unique,omitempty"`
	ElapsedMS int64          `json:"elapsedMs"`
	Divide    []JSONMoveNode `json:"divide,omitempty"`
}

// JSONMoveNode is the node count below one root move.
type JSONMoveNode struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// MoveToJSON converts a move.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{Notation: m.String(), Class: m.Class.String(), Captures: m.Captures}
	if from, to, err := m.Endpoints(); err == nil {
		jm.From = []int{from.X(), from.Y()}
		jm.To = []int{to.X(), to.Y()}
	}
	return jm
}

// ReportToJSON converts a report. Root move counts are included only when
// divide is set.
func ReportToJSON(r *Report, divide bool) *JSONReport {
	jr := &JSONReport{
		ToMove: r.Colour.String(),
		Hash:   hashing.HashWithSide(r.Board, r.Colour),
		Pieces: []JSONPiece{},
		Material: map[string]int{
			chess.White.String(): r.Material[chess.White],
			chess.Black.String(): r.Material[chess.Black],
		},
	}

	for pl := range r.Board.AllPiecePositions() {
		jr.Pieces = append(jr.Pieces, JSONPiece{
			Colour: pl.Colour.String(),
			Piece:  pl.Piece.String(),
			X:      pl.Position.X(),
			Y:      pl.Position.Y(),
			Rank:   pl.Position.Rank(),
			File:   pl.Position.File(),
		})
	}
	if m, ok := r.Board.LastMove(); ok {
		jm := MoveToJSON(m)
		jr.LastMove = &jm
	}
	if r.Check != nil {
		jm := MoveToJSON(*r.Check)
		jr.Check = &jm
	}
	if r.Moves != nil {
		jr.Moves = make([]JSONMove, 0, len(r.Moves))
		for _, m := range r.Moves {
			jr.Moves = append(jr.Moves, MoveToJSON(m))
		}
	}
	if r.Perft != nil {
		jp := &JSONPerft{
			Depth:     r.Perft.Depth,
			Nodes:     r.Perft.Nodes,
			Unique:    r.Perft.Unique,
			ElapsedMS: r.Perft.Elapsed.Milliseconds(),
		}
		if divide {
			for _, mc := range r.Perft.Moves {
				jp.Divide = append(jp.Divide, JSONMoveNode{Move: mc.Move.String(), Nodes: mc.Nodes})
			}
		}
		jr.Perft = jp
	}
	return jr
}

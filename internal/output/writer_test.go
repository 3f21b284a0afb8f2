package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/config"
	"github.com/lgbarn/hexchess-go/internal/engine"
	"github.com/lgbarn/hexchess-go/internal/perft"
	"github.com/lgbarn/hexchess-go/internal/testutil"
)

func checkReport(t *testing.T) *Report {
	t.Helper()
	board := testutil.BoardWith(t, testutil.P(5, 2), testutil.P(9, 7),
		testutil.Black(chess.Rook, testutil.P(5, 8)),
		testutil.White(chess.Knight, testutil.P(2, 2)),
	)
	return NewReport(board, chess.White, true)
}

// TestNewReport verifies the facts collected for a position
func TestNewReport(t *testing.T) {
	r := checkReport(t)

	if r.Check == nil {
		t.Fatal("Check = nil, want the rook capture")
	}
	testutil.AssertEqual(t, *r.Check, chess.NewRegularMove(testutil.P(5, 8), testutil.P(5, 2), true))
	testutil.AssertEqual(t, r.Material, [chess.NumColours]int{chess.Black: 5, chess.White: 3})
	testutil.AssertEqual(t, len(r.Moves), engine.CountLegalMoves(r.Board, chess.White))

	quiet := NewReport(chess.NewInitialBoard(), chess.Black, false)
	testutil.AssertNil(t, quiet.Check)
	testutil.AssertNil(t, quiet.Moves)
}

// TestTextWriter_WriteReport verifies the text layout
func TestTextWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().ShowMoves(true).Build()
	cfg.Output.ShowMaterial = true

	w := NewWriter(&buf, cfg)
	if _, ok := w.(*TextWriter); !ok {
		t.Fatalf("NewWriter() = %T, want *TextWriter", w)
	}
	testutil.AssertNoError(t, w.WriteReport(checkReport(t)))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertContains(t, out, "White to move")
	testutil.AssertContains(t, out, "in check: (5,8)x(5,2)")
	testutil.AssertContains(t, out, "material: White 3, Black 5")
	testutil.AssertContains(t, out, "legal moves")
	testutil.AssertNotContains(t, out, "perft")
}

// TestWriteMoves verifies that long move lists wrap at 80 columns
func TestWriteMoves(t *testing.T) {
	var moves []chess.Move
	for m := range engine.LegalMoves(chess.NewInitialBoard(), chess.White) {
		moves = append(moves, m)
	}

	var buf bytes.Buffer
	WriteMoves(&buf, moves)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("lines = %d, want wrapped output", len(lines))
	}
	var n int
	for _, line := range lines {
		if len(line) > 80 {
			t.Errorf("line of %d columns: %q", len(line), line)
		}
		n += len(strings.Fields(line))
	}
	testutil.AssertEqual(t, n, len(moves))
}

// TestWriteBoard verifies glyph selection
func TestWriteBoard(t *testing.T) {
	board := chess.NewInitialBoard()

	var letters, symbols bytes.Buffer
	WriteBoard(&letters, board, config.Letters)
	WriteBoard(&symbols, board, config.Symbols)

	testutil.AssertContains(t, letters.String(), "K")
	testutil.AssertContains(t, letters.String(), "k")
	testutil.AssertContains(t, symbols.String(), "♚")
	testutil.AssertNotContains(t, symbols.String(), "K")
}

func divideResult(t *testing.T) *perft.Result {
	t.Helper()
	quiet := &log.Logger{Handler: discard.Default, Level: log.ErrorLevel}
	res, err := perft.Divide(context.Background(), chess.NewInitialBoard(), chess.White, 1, perft.Options{Logger: quiet})
	testutil.AssertNoError(t, err)
	return &res
}

// TestWritePerft verifies the perft summary and divide lines
func TestWritePerft(t *testing.T) {
	res := divideResult(t)

	var plain, divided bytes.Buffer
	WritePerft(&plain, res, false)
	WritePerft(&divided, res, true)

	testutil.AssertContains(t, plain.String(), "perft(1) White:")
	testutil.AssertEqual(t, strings.Count(plain.String(), "\n"), 1)
	testutil.AssertEqual(t, strings.Count(divided.String(), ": 1\n"), len(res.Moves))
}

// TestJSONWriter verifies batched JSON output
func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSON).WithPerft(1, true).Build()

	w := NewWriter(&buf, cfg)
	if _, ok := w.(*JSONWriter); !ok {
		t.Fatalf("NewWriter() = %T, want *JSONWriter", w)
	}

	r := NewReport(chess.NewInitialBoard(), chess.White, true)
	r.Perft = divideResult(t)
	testutil.AssertNoError(t, w.WriteReport(r))
	testutil.AssertNoError(t, w.WriteReport(checkReport(t)))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(out.Reports))
	}

	first := out.Reports[0]
	testutil.AssertEqual(t, first.ToMove, "White")
	testutil.AssertEqual(t, len(first.Pieces), len(chess.InitialPlacements()))
	testutil.AssertEqual(t, first.Material["White"], 43)
	testutil.AssertEqual(t, len(first.Moves), len(r.Moves))
	if first.Perft == nil {
		t.Fatal("perft missing")
	}
	testutil.AssertEqual(t, len(first.Perft.Divide), len(r.Moves))
	testutil.AssertNil(t, first.Check)

	second := out.Reports[1]
	if second.Check == nil {
		t.Fatal("check missing")
	}
	testutil.AssertEqual(t, second.Check.From, []int{5, 8})
	testutil.AssertEqual(t, second.Check.To, []int{5, 2})
	testutil.AssertTrue(t, second.Check.Captures)
}

// TestJSONWriterSingle verifies immediate JSON output
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	w := NewJSONWriterSingle(&buf, cfg)

	testutil.AssertNoError(t, w.WriteReport(NewReport(chess.NewInitialBoard(), chess.Black, false)))
	if buf.Len() == 0 {
		t.Fatal("single mode did not write immediately")
	}

	var jr JSONReport
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, jr.ToMove, "Black")
	testutil.AssertNil(t, jr.Moves)
	testutil.AssertNil(t, jr.Perft)
	testutil.AssertNoError(t, w.Flush())
}

// TestMoveToJSON verifies move conversion for every move class
func TestMoveToJSON(t *testing.T) {
	tests := []struct {
		name     string
		move     chess.Move
		wantFrom []int
	}{
		{"regular", chess.NewRegularMove(testutil.P(4, 4), testutil.P(5, 5), false), []int{4, 4}},
		{"en passant", chess.NewEnPassantMove(3, chess.KingSide), nil},
		{"promotion", chess.NewPromotionMove(3, false, chess.QueenSide, chess.Queen), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jm := MoveToJSON(tt.move)
			testutil.AssertEqual(t, jm.From, tt.wantFrom)
			testutil.AssertEqual(t, jm.Notation, tt.move.String())
			testutil.AssertEqual(t, jm.Class, tt.move.Class.String())
		})
	}
}

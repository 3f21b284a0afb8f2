package chess

import (
	"fmt"

	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// Snapshot layout: magic, version, two piece tables of one byte per
// tile (White then Black), then the last-move record.
const (
	snapshotMagic   = 'H'
	snapshotVersion = 1
	moveRecordSize  = 8
	SnapshotSize    = 2 + NumColours*hex.NumTiles + moveRecordSize
)

// MarshalBinary encodes the piece tables and last move.
func (b *Board) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, SnapshotSize)
	buf = append(buf, snapshotMagic, snapshotVersion)
	for _, c := range [...]Colour{White, Black} {
		for _, piece := range b.pieces[c] {
			buf = append(buf, byte(piece))
		}
	}

	var rec [moveRecordSize]byte
	if b.hasLast {
		m := b.lastMove
		rec = [moveRecordSize]byte{
			1,
			byte(m.Class),
			byte(m.From.Index()),
			byte(m.To.Index()),
			boolByte(m.Captures),
			byte(m.File),
			byte(m.Towards),
			byte(m.PromoteTo),
		}
	}
	return append(buf, rec[:]...), nil
}

// UnmarshalBinary decodes a snapshot produced by MarshalBinary. The
// decoded board must satisfy the board invariants.
func (b *Board) UnmarshalBinary(data []byte) error {
	if len(data) != SnapshotSize {
		return errors.Wrapf(errors.ErrInvalidSnapshot, "length %d, want %d", len(data), SnapshotSize)
	}
	if data[0] != snapshotMagic || data[1] != snapshotVersion {
		return errors.Wrapf(errors.ErrInvalidSnapshot, "bad header %#x %d", data[0], data[1])
	}

	var decoded Board
	off := 2
	for _, c := range [...]Colour{White, Black} {
		for i := range decoded.pieces[c] {
			piece := Piece(data[off])
			if piece >= NumPieceValues {
				return errors.Wrapf(errors.ErrInvalidSnapshot, "unknown piece code %d", data[off])
			}
			decoded.pieces[c][i] = piece
			off++
		}
	}

	if err := decoded.validate(); err != nil {
		return err
	}

	rec := data[off:]
	if rec[0] != 0 {
		m, err := decodeMove(rec)
		if err != nil {
			return err
		}
		decoded.lastMove = m
		decoded.hasLast = true
	}

	*b = decoded
	return nil
}

func (b *Board) validate() error {
	for i := 0; i < hex.NumTiles; i++ {
		if b.pieces[White][i] != Empty && b.pieces[Black][i] != Empty {
			p, _ := hex.FromIndex(i)
			return errors.Wrapf(errors.ErrInvalidSnapshot, "tile %v holds both colours", p)
		}
	}
	for _, c := range [...]Colour{White, Black} {
		if n := b.Count(c, King); n != 1 {
			return errors.Wrapf(errors.ErrInvalidSnapshot, "%d %s kings", n, c)
		}
	}
	return nil
}

func decodeMove(rec []byte) (Move, error) {
	class := MoveClass(rec[1])
	if class > PromotionMove {
		return Move{}, errors.Wrapf(errors.ErrInvalidSnapshot, "unknown move class %d", rec[1])
	}
	from, ok1 := hex.FromIndex(int(rec[2]))
	to, ok2 := hex.FromIndex(int(rec[3]))
	if !ok1 || !ok2 {
		return Move{}, errors.Wrapf(errors.ErrInvalidSnapshot, "move tile index out of range")
	}
	if rec[4] > 1 || Side(rec[6]) > QueenSide || Piece(rec[7]) >= NumPieceValues || int(rec[5]) > hex.MaxFile {
		return Move{}, fmt.Errorf("%w: malformed move record %v", errors.ErrInvalidSnapshot, rec)
	}
	return Move{
		Class:     class,
		From:      from,
		To:        to,
		Captures:  rec[4] == 1,
		File:      int(rec[5]),
		Towards:   Side(rec[6]),
		PromoteTo: Piece(rec[7]),
	}, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

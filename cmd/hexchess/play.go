package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/engine"
	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// moveSpec is an origin and destination typed on the command line.
type moveSpec struct {
	from, to hex.Position
}

// parseMoveList parses space separated moves of the form "x,y-x,y".
// Parentheses around the coordinates are accepted.
func parseMoveList(s string) ([]moveSpec, error) {
	var specs []moveSpec
	for _, tok := range strings.Fields(s) {
		tok = strings.NewReplacer("(", "", ")", "").Replace(tok)
		from, to, ok := strings.Cut(tok, "-")
		if !ok {
			from, to, ok = strings.Cut(tok, "x")
		}
		if !ok {
			return nil, fmt.Errorf("move %q: want x,y-x,y: %w", tok, errors.ErrInvalidConfig)
		}
		origin, err := parsePosition(from)
		if err != nil {
			return nil, errors.Wrapf(err, "move %q", tok)
		}
		dest, err := parsePosition(to)
		if err != nil {
			return nil, errors.Wrapf(err, "move %q", tok)
		}
		specs = append(specs, moveSpec{from: origin, to: dest})
	}
	return specs, nil
}

func parsePosition(s string) (hex.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hex.Position{}, fmt.Errorf("tile %q: want x,y: %w", s, errors.ErrInvalidConfig)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return hex.Position{}, fmt.Errorf("tile %q: %w", s, errors.ErrInvalidConfig)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return hex.Position{}, fmt.Errorf("tile %q: %w", s, errors.ErrInvalidConfig)
	}
	return hex.New(x, y)
}

// playMoveList plays specs on board with sides alternating from first,
// and returns the side to move afterwards.
func playMoveList(board *chess.Board, specs []moveSpec, first chess.Colour) (chess.Colour, error) {
	colour := first
	for i, s := range specs {
		if _, err := engine.TryMove(board, s.from, s.to, colour); err != nil {
			return colour, errors.Wrapf(err, "move %d", i+1)
		}
		colour = colour.Opposite()
	}
	return colour, nil
}

// Package perft counts the leaf nodes of the legal move tree. The counts
// exercise the move enumerator end to end and are the usual way to
// compare two implementations of the same rules.
package perft

import (
	stderrors "errors"
	"slices"

	"github.com/apex/log"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/engine"
	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hashing"
)

// Cache stores node counts by position, side to move and depth. hash is
// the placement hash of board. *store.Store implements it.
type Cache interface {
	GetPerft(board *chess.Board, hash uint64, toMove chess.Colour, depth int) (uint64, error)
	PutPerft(board *chess.Board, hash uint64, toMove chess.Colour, depth int, nodes uint64) error
}

// Counter walks the move tree of one position. A Counter is not safe for
// concurrent use; Divide gives each worker its own.
type Counter struct {
	cache    Cache
	minDepth int
	unique   *hashing.ThreadSafeCounter
	log      log.Interface
}

// NewCounter creates a counter. cache may be nil. Subtrees shallower than
// minDepth are neither looked up nor stored.
func NewCounter(cache Cache, minDepth int, logger log.Interface) *Counter {
	if logger == nil {
		logger = log.Log
	}
	return &Counter{cache: cache, minDepth: minDepth, log: logger}
}

// TrackUnique makes the counter record every leaf position in u. Cached
// subtrees have no leaves to record, so tracking bypasses the cache.
func (c *Counter) TrackUnique(u *hashing.ThreadSafeCounter) {
	c.unique = u
}

// Count returns the number of leaf nodes depth plies below board with
// colour to move. The board is restored before Count returns.
func (c *Counter) Count(board *chess.Board, colour chess.Colour, depth int) uint64 {
	return c.count(board, colour, depth, hashing.GenerateZobristHash(board))
}

// count walks the tree keeping hash in step with board incrementally.
func (c *Counter) count(board *chess.Board, colour chess.Colour, depth int, hash uint64) uint64 {
	if depth <= 0 {
		if c.unique != nil {
			c.unique.CheckAndAdd(board, colour)
		}
		return 1
	}

	useCache := c.cache != nil && c.unique == nil && depth >= c.minDepth
	if useCache {
		n, err := c.cache.GetPerft(board, hash, colour, depth)
		if err == nil {
			return n
		}
		if !stderrors.Is(err, errors.ErrCacheMiss) {
			c.log.WithError(err).Warn("perft cache read")
		}
	}

	moves := slices.Collect(engine.LegalMoves(board, colour))
	var nodes uint64
	if depth == 1 && c.unique == nil {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			state := board.SaveState()
			moved := board.Get(m.From, colour)
			captured := board.ApplyMoveUnchecked(m, colour)
			next := hashing.UpdateHash(hash, m, colour, moved, captured)
			nodes += c.count(board, colour.Opposite(), depth-1, next)
			board.RestoreState(state)
		}
	}

	if useCache {
		if err := c.cache.PutPerft(board, hash, colour, depth, nodes); err != nil {
			c.log.WithError(err).Warn("perft cache write")
		}
	}
	return nodes
}

// Count is a convenience wrapper for an uncached Counter.
func Count(board *chess.Board, colour chess.Colour, depth int) uint64 {
	return NewCounter(nil, 0, nil).Count(board, colour, depth)
}

package perft

import (
	"context"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/engine"
	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hashing"
	"github.com/lgbarn/hexchess-go/internal/worker"
)

// Options configures Divide.
type Options struct {
	Workers    int
	BufferSize int
	// Cache is shared by all workers and must be safe for concurrent use.
	Cache         Cache
	CacheMinDepth int
	// CountUnique also counts distinct leaf positions.
	CountUnique bool
	Logger      log.Interface
}

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Result is the outcome of Divide.
type Result struct {
	Colour  chess.Colour
	Depth   int
	Nodes   uint64
	Moves   []MoveCount // in enumeration order
	Unique  int         // distinct leaf positions, when requested
	Elapsed time.Duration
}

// Divide counts the leaves below each legal root move, expanding root
// moves in parallel on private copies of board. The board is not
// modified. Cancelling ctx abandons the remaining root moves.
func Divide(ctx context.Context, board *chess.Board, colour chess.Colour, depth int, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Log
	}
	if depth < 1 {
		return Result{}, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	start := time.Now()
	var roots []chess.Move
	for m := range engine.LegalMoves(board, colour) {
		roots = append(roots, m)
	}

	var unique *hashing.ThreadSafeCounter
	if opts.CountUnique {
		unique = hashing.NewThreadSafeCounter(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	pool := worker.NewPool(expandFunc(ctx, opts, unique, logger),
		worker.WithWorkers(opts.Workers), worker.WithBufferSize(opts.BufferSize))
	pool.Start()

	g.Go(func() error {
		defer pool.Close()
		for i, m := range roots {
			item := worker.WorkItem{Board: board.Copy(), Move: m, Colour: colour, Depth: depth - 1, Index: i}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return err
			}
		}
		return nil
	})

	counts := make([]MoveCount, len(roots))
	g.Go(func() error {
		var first error
		for r := range pool.Results() {
			if r.Error != nil && first == nil {
				first = r.Error
				pool.Stop()
			}
			counts[r.Index] = MoveCount{Move: r.Move, Nodes: r.Nodes}
		}
		return first
	})

	if err := g.Wait(); err != nil {
		return Result{}, errors.Wrapf(err, "perft divide depth %d", depth)
	}

	res := Result{Colour: colour, Depth: depth, Moves: counts, Elapsed: time.Since(start)}
	for _, mc := range counts {
		res.Nodes += mc.Nodes
	}
	if unique != nil {
		res.Unique = unique.UniqueCount()
	}

	logger.WithFields(log.Fields{
		"colour":  colour.String(),
		"depth":   depth,
		"moves":   len(counts),
		"nodes":   res.Nodes,
		"elapsed": res.Elapsed.String(),
	}).Info("perft divide")
	return res, nil
}

// expandFunc returns the worker body: play the root move on the item's
// private board and count the subtree below it.
func expandFunc(ctx context.Context, opts Options, unique *hashing.ThreadSafeCounter, logger log.Interface) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Index: item.Index, Move: item.Move, Error: err}
		}
		c := NewCounter(opts.Cache, opts.CacheMinDepth, logger)
		if unique != nil {
			c.TrackUnique(unique)
		}
		item.Board.ApplyMoveUnchecked(item.Move, item.Colour)
		nodes := c.Count(item.Board, item.Colour.Opposite(), item.Depth)
		logger.WithFields(log.Fields{"move": item.Move.String(), "nodes": nodes}).Debug("root move done")
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes}
	}
}

// hexchess prints hexagonal chess positions, lists their legal moves and
// runs perft node counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/config"
	"github.com/lgbarn/hexchess-go/internal/output"
	"github.com/lgbarn/hexchess-go/internal/perft"
	"github.com/lgbarn/hexchess-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("hexchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := cfg.Log.NewLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if closeOutput := setupOutputFile(cfg, logger); closeOutput != nil {
		defer closeOutput()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *playMoves, logger); err != nil {
		logger.WithError(err).Error("hexchess failed")
		stop()
		os.Exit(1)
	}
}

// setupOutputFile opens the -o file and returns its closer.
func setupOutputFile(cfg *config.Config, logger log.Interface) func() {
	if *outputFile == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		logger.WithError(err).WithField("file", *outputFile).Fatal("cannot create output file")
	}
	cfg.OutputFile = file
	return func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("closing output file")
		}
	}
}

// run builds the position, reports on it and runs perft if requested.
func run(ctx context.Context, cfg *config.Config, moves string, logger log.Interface) error {
	var st *store.Store
	if cfg.Store.Enabled || cfg.Store.Position != "" || cfg.Store.SaveAs != "" || *listNames {
		var err error
		st, err = store.Open(store.Options{Dir: cfg.Store.Dir, Logger: logger})
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				logger.WithError(err).Warn("closing store")
			}
		}()
		logger.WithField("persistent", cfg.Store.Persistent()).Debug("store opened")
	}

	if *listNames && st != nil {
		names, err := st.Positions()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cfg.OutputFile, name)
		}
	}

	board, first, err := startBoard(cfg, st)
	if err != nil {
		return err
	}

	specs, err := parseMoveList(moves)
	if err != nil {
		return err
	}
	toMove, err := playMoveList(board, specs, first)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{"played": len(specs), "toMove": toMove.String()}).Debug("position ready")

	if cfg.Store.SaveAs != "" {
		if err := st.SavePosition(cfg.Store.SaveAs, board, toMove); err != nil {
			return err
		}
		logger.WithField("name", cfg.Store.SaveAs).Info("position saved")
	}

	report := output.NewReport(board, toMove, cfg.Output.ShowMoves)
	if cfg.Perft.Depth > 0 {
		opts := perft.Options{
			Workers:       cfg.Perft.Workers,
			BufferSize:    cfg.Perft.BufferSize,
			CacheMinDepth: cfg.Perft.CacheMinDepth,
			CountUnique:   cfg.Perft.CountUnique,
			Logger:        logger,
		}
		if cfg.Store.Enabled {
			opts.Cache = st
		}
		res, err := perft.Divide(ctx, board, toMove, cfg.Perft.Depth, opts)
		if err != nil {
			return err
		}
		report.Perft = &res
		if st != nil {
			hits, misses := st.Stats()
			logger.WithFields(log.Fields{"hits": hits, "misses": misses}).Info("perft cache")
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// startBoard returns the stored position named in cfg and its side to
// move, or the initial position with cfg.Colour to move.
func startBoard(cfg *config.Config, st *store.Store) (*chess.Board, chess.Colour, error) {
	if cfg.Store.Position == "" {
		return chess.NewInitialBoard(), cfg.Colour, nil
	}
	return st.LoadPosition(cfg.Store.Position)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hexchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Inspect hexagonal chess positions on the 91-tile board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nTiles are written x,y with 0 <= x,y <= 10 and |x-y| <= 5.\n")
	fmt.Fprintf(os.Stderr, "Moves are written x,y-x,y and alternate sides from -colour.\n")
	fmt.Fprintf(os.Stderr, "-load and -save need -cachedir; a loaded position keeps its stored side to move.\n")
}

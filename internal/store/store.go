// Package store caches perft node counts and named board snapshots in a
// badger database, in memory or on disk.
package store

import (
	"encoding/binary"
	stderrors "errors"
	"sync/atomic"

	"github.com/apex/log"
	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/errors"
)

// Key prefixes.
const (
	prefixPerft    = 'p'
	prefixPosition = 's'
)

// perftKeySize is prefix, hash, side to move and depth.
const perftKeySize = 1 + 8 + 1 + 1

// Options configures a Store.
type Options struct {
	// Dir is the database directory. Empty means in-memory.
	Dir string
	// Logger receives badger's internal messages and cache events.
	// Nil discards them.
	Logger log.Interface
}

// Store wraps a badger database.
type Store struct {
	db     *badger.DB
	log    log.Interface
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Open opens the database described by opts.
func Open(opts Options) (*Store, error) {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.Dir == "" {
		bopts = bopts.WithInMemory(true)
	}
	if opts.Logger != nil {
		bopts = bopts.WithLogger(badgerLogger{opts.Logger})
	} else {
		bopts.Logger = nil
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	l := opts.Logger
	if l == nil {
		l = discardLogger
	}
	return &Store{db: db, log: l}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// PerftKey identifies a cached node count.
type PerftKey struct {
	Hash   uint64
	ToMove chess.Colour
	Depth  int
}

func (k PerftKey) bytes() []byte {
	b := make([]byte, perftKeySize)
	b[0] = prefixPerft
	binary.BigEndian.PutUint64(b[1:9], k.Hash)
	b[9] = byte(k.ToMove)
	b[10] = byte(k.Depth)
	return b
}

// PutPerft records the node count of board at depth. hash is the
// placement hash of board (hashing.GenerateZobristHash). The board snapshot
// is stored alongside so that hash collisions are detected on read.
func (s *Store) PutPerft(board *chess.Board, hash uint64, toMove chess.Colour, depth int, nodes uint64) error {
	snap, err := board.MarshalBinary()
	if err != nil {
		return err
	}
	val := make([]byte, 8+len(snap))
	binary.BigEndian.PutUint64(val[:8], nodes)
	copy(val[8:], snap)

	key := PerftKey{Hash: hash, ToMove: toMove, Depth: depth}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key.bytes(), val)
	})
}

// GetPerft returns the cached node count of board at depth. A missing entry
// or one recorded for a different board reports errors.ErrCacheMiss.
func (s *Store) GetPerft(board *chess.Board, hash uint64, toMove chess.Colour, depth int) (uint64, error) {
	key := PerftKey{Hash: hash, ToMove: toMove, Depth: depth}

	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key.bytes())
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		s.misses.Add(1)
		return 0, errors.ErrCacheMiss
	}
	if err != nil {
		return 0, errors.Wrap(err, "read perft entry")
	}

	if len(val) < 8 || !sameSnapshot(board, val[8:]) {
		s.misses.Add(1)
		s.log.WithField("hash", key.Hash).Warn("perft cache collision")
		return 0, errors.ErrCacheMiss
	}
	s.hits.Add(1)
	return binary.BigEndian.Uint64(val[:8]), nil
}

// sameSnapshot compares piece placement only; the last move does not
// affect node counts.
func sameSnapshot(board *chess.Board, snap []byte) bool {
	var stored chess.Board
	if err := stored.UnmarshalBinary(snap); err != nil {
		return false
	}
	return stored.SaveState().Pieces == board.SaveState().Pieces
}

// Stats returns the cache hit and miss counts.
func (s *Store) Stats() (hits, misses uint64) {
	return s.hits.Load(), s.misses.Load()
}

func positionKey(name string) []byte {
	return append([]byte{prefixPosition}, name...)
}

// SavePosition stores a board snapshot under name together with the side
// to move. The value is one colour byte followed by the snapshot.
func (s *Store) SavePosition(name string, board *chess.Board, toMove chess.Colour) error {
	snap, err := board.MarshalBinary()
	if err != nil {
		return err
	}
	value := append([]byte{byte(toMove)}, snap...)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(positionKey(name), value)
	})
}

// LoadPosition restores the board stored under name and the side to move.
// A missing name reports errors.ErrCacheMiss.
func (s *Store) LoadPosition(name string) (*chess.Board, chess.Colour, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(name))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, chess.White, errors.Wrapf(errors.ErrCacheMiss, "position %q", name)
	}
	if err != nil {
		return nil, chess.White, errors.Wrapf(err, "load position %q", name)
	}

	if len(value) == 0 || (chess.Colour(value[0]) != chess.White && chess.Colour(value[0]) != chess.Black) {
		return nil, chess.White, errors.Wrapf(errors.ErrInvalidSnapshot, "position %q: side to move", name)
	}
	board := &chess.Board{}
	if err := board.UnmarshalBinary(value[1:]); err != nil {
		return nil, chess.White, errors.Wrapf(err, "position %q", name)
	}
	return board, chess.Colour(value[0]), nil
}

// Positions lists the names of the stored positions.
func (s *Store) Positions() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte{prefixPosition}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[1:]))
		}
		return nil
	})
	return names, err
}

// Package hashing provides Zobrist hashing of hex boards and counting of
// distinct positions.
package hashing

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
)

// PositionCounter tracks seen positions and counts transpositions.
type PositionCounter struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of repeated positions found
	duplicateCount int
	// signatureCount is the number of stored signatures
	signatureCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash including the side to move
	Hash uint64
	// WeakHash is a fast hash for confirming matches
	WeakHash uint32
	// Material is the material balance, White minus Black
	Material int
}

// NewPositionCounter creates a new position counter.
// maxCapacity of 0 means unlimited capacity.
func NewPositionCounter(maxCapacity int) *PositionCounter {
	return &PositionCounter{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// Signature computes the signature of board with toMove to play.
func Signature(board *chess.Board, toMove chess.Colour) PositionSignature {
	return PositionSignature{
		Hash:     HashWithSide(board, toMove),
		WeakHash: WeakHash(board),
		Material: board.MaterialValue(chess.White) - board.MaterialValue(chess.Black),
	}
}

// CheckAndAdd reports whether the position was seen before and records
// it otherwise. Once full, new positions are no longer recorded.
func (c *PositionCounter) CheckAndAdd(board *chess.Board, toMove chess.Colour) bool {
	if board == nil {
		return false
	}
	return c.checkAndAddSignature(Signature(board, toMove))
}

func (c *PositionCounter) checkAndAddSignature(sig PositionSignature) bool {
	for _, existing := range c.hashTable[sig.Hash] {
		if existing == sig {
			c.duplicateCount++
			return true
		}
	}

	if c.IsFull() {
		return false
	}
	c.hashTable[sig.Hash] = append(c.hashTable[sig.Hash], sig)
	c.signatureCount++
	return false
}

// DuplicateCount returns the number of repeated positions detected.
func (c *PositionCounter) DuplicateCount() int {
	return c.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (c *PositionCounter) UniqueCount() int {
	return c.signatureCount
}

// IsFull returns true if the counter has reached its capacity limit.
func (c *PositionCounter) IsFull() bool {
	return c.maxCapacity > 0 && c.signatureCount >= c.maxCapacity
}

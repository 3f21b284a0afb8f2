package hashing

import (
	"sync"

	"github.com/lgbarn/hexchess-go/internal/chess"
)

// ThreadSafeCounter wraps PositionCounter with mutex protection for concurrent access.
type ThreadSafeCounter struct {
	counter *PositionCounter
	mu      sync.RWMutex
}

// NewThreadSafeCounter creates a new thread-safe counter.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeCounter(maxCapacity int) *ThreadSafeCounter {
	return &ThreadSafeCounter{
		counter: NewPositionCounter(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether a position was seen and records it.
// The signature is computed outside the lock.
func (c *ThreadSafeCounter) CheckAndAdd(board *chess.Board, toMove chess.Colour) bool {
	if board == nil {
		return false
	}
	sig := Signature(board, toMove)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter.checkAndAddSignature(sig)
}

// DuplicateCount returns the number of repeated positions detected.
func (c *ThreadSafeCounter) DuplicateCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.DuplicateCount()
}

// UniqueCount returns the number of distinct positions recorded.
func (c *ThreadSafeCounter) UniqueCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.UniqueCount()
}

// IsFull returns true if the counter has reached its capacity limit.
func (c *ThreadSafeCounter) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.IsFull()
}

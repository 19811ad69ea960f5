// Package hashing provides position hashing and repetition counting.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// RepetitionTracker counts how often each position has been reached.
type RepetitionTracker struct {
	// hashTable maps a Zobrist hash to the number of times it was recorded
	hashTable map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		hashTable: make(map[uint64]int),
	}
}

// Record adds the board's position and returns how many times it has now
// been reached.
func (r *RepetitionTracker) Record(board *chess.Board) int {
	hash := GenerateZobristHash(board)
	r.hashTable[hash]++
	return r.hashTable[hash]
}

// Count returns how many times the board's position has been recorded.
func (r *RepetitionTracker) Count(board *chess.Board) int {
	return r.hashTable[GenerateZobristHash(board)]
}

// Forget removes one recording of the board's position, undoing a Record.
func (r *RepetitionTracker) Forget(board *chess.Board) {
	hash := GenerateZobristHash(board)
	n, ok := r.hashTable[hash]
	if !ok {
		return
	}
	if n <= 1 {
		delete(r.hashTable, hash)
	} else {
		r.hashTable[hash] = n - 1
	}
}

// Reset clears the hash table.
func (r *RepetitionTracker) Reset() {
	r.hashTable = make(map[uint64]int)
}

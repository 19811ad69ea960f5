package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the search depth accepted by cmd/perft.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// FEN is the root position.
	FEN string

	// Depth is the number of plies to count.
	Depth int

	// Divide reports the count below each root move.
	Divide bool

	// Workers is the number of goroutines splitting root moves.
	Workers int

	// PromoteTo is the single promotion kind generated for pawns.
	PromoteTo chess.Kind

	// Reference also counts the position with GooseEngineMG.
	Reference bool

	// CrossCheck compares root legal moves with dragontoothmg.
	CrossCheck bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:       engine.InitialFEN,
		Depth:     3,
		Workers:   runtime.NumCPU(),
		PromoteTo: chess.Queen,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if !p.PromoteTo.IsPromotionTarget() {
		return fmt.Errorf("promotion kind %v: %w", p.PromoteTo, errors.ErrInvalidConfig)
	}
	return nil
}

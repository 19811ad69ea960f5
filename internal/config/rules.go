package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds settings for how a game enforces the rules.
type RulesConfig struct {
	// PromotionKind is what a pawn reaching the last rank becomes.
	PromotionKind chess.Kind

	// OnPromotion, when set, is called once with each promoted piece.
	OnPromotion func(*chess.Piece)

	// StrictLegality rejects moves that leave the mover's king attacked and
	// ends the game on checkmate or stalemate. When false, a king can be
	// captured and the capture ends the game.
	StrictLegality bool
}

// NewRulesConfig creates a RulesConfig with default values: queen
// promotion, no callback, king capture allowed.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		PromotionKind: chess.Queen,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if !r.PromotionKind.IsPromotionTarget() {
		return fmt.Errorf("promotion kind %v: %w", r.PromotionKind, errors.ErrInvalidConfig)
	}
	return nil
}

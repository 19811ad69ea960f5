package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a source-destination pair, optionally carrying the kind a pawn
// promotes to. Promotion is Empty for ordinary moves.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String returns the move in coordinate form: "e2e4", or "e7e8q" with a
// promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses a move in coordinate form ("e2e4", "e7e8q").
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = KindFromLetter(text[4])
		if !m.Promotion.IsPromotionTarget() {
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrInvalidMove)
		}
	}
	return m, nil
}

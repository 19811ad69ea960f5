package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Promotion says what a pawn reaching the last rank becomes. Notify, when
// set, is called once with the promoted piece after it has been relocated and
// its kind rewritten.
type Promotion struct {
	Kind   chess.Kind
	Notify func(*chess.Piece)
}

// DefaultPromotion promotes to a queen without notification.
var DefaultPromotion = Promotion{Kind: chess.Queen}

// Capture removes p from the board. No legality check is made.
func Capture(board *chess.Board, p *chess.Piece) error {
	if !board.Holds(p) {
		return fmt.Errorf("capture %v: %w", p, errors.ErrNoPiece)
	}
	board.Remove(p.Square)
	return nil
}

// MovePiece relocates p to the given square, clearing its source square.
// Whatever stood on the destination is overwritten and returned. A pawn
// landing on the first or last rank is promoted in place according to promo.
// No legality check is made; see CanAttack and IsLegal.
func MovePiece(board *chess.Board, p *chess.Piece, to chess.Square, promo Promotion) (*chess.Piece, error) {
	captured, err := board.Relocate(p, to)
	if err != nil {
		return nil, err
	}

	// Promotion fires on either edge rank, whichever one the pawn reached.
	if p.Kind == chess.Pawn && (to.Y == 0 || to.Y == chess.BoardSize-1) {
		kind := promo.Kind
		if !kind.IsPromotionTarget() {
			kind = chess.Queen // Default to queen
		}
		p.Kind = kind
		if promo.Notify != nil {
			promo.Notify(p)
		}
	}

	return captured, nil
}

// ApplyMove plays m on the board: the piece on m.From moves to m.To, using
// m.Promotion (or promo.Kind when m.Promotion is Empty) for a promoting pawn.
// The side to move is not changed.
func ApplyMove(board *chess.Board, m chess.Move, promo Promotion) (*chess.Piece, error) {
	p := board.At(m.From)
	if p == nil {
		return nil, fmt.Errorf("move %s: %w", m, errors.ErrNoPiece)
	}
	if m.Promotion != chess.Empty {
		promo.Kind = m.Promotion
	}
	return MovePiece(board, p, m.To, promo)
}

// AdvanceTurn passes the move to the other side.
func AdvanceTurn(board *chess.Board) {
	board.ToMove = board.ToMove.Opposite()
}

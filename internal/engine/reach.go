package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CanAttack reports whether p can move to (and possibly capture on) to under
// the movement rules of its kind. It ignores whose turn it is and whether the
// move would expose the mover's own king; IsLegal adds that.
func CanAttack(b *chess.Board, p *chess.Piece, to chess.Square) bool {
	if !to.InBounds() || to == p.Square {
		return false
	}

	switch p.Kind {
	case chess.Pawn:
		return canPawnReach(b, p, to)

	case chess.Knight:
		if target := b.At(to); target != nil && target.Colour == p.Colour {
			return false
		}
		return KnightReach(p, to)

	case chess.Bishop:
		return DiagonalReach(b, p, to) > 0

	case chess.Rook:
		return StraightReach(b, p, to) > 0

	case chess.Queen:
		return DiagonalReach(b, p, to) > 0 || StraightReach(b, p, to) > 0

	case chess.King:
		return DiagonalReach(b, p, to) == 1 || StraightReach(b, p, to) == 1
	}

	return false
}

// canPawnReach applies the pawn rules: forward pushes onto empty squares
// (two from the start rank), diagonal steps only onto enemy pieces.
func canPawnReach(b *chess.Board, p *chess.Piece, to chess.Square) bool {
	dir := p.Colour.Forward()
	dx := to.X - p.Square.X
	dy := to.Y - p.Square.Y

	if dx == 0 {
		// Right in front must be clear for either push.
		if !b.IsEmpty(chess.Sq(p.Square.X, p.Square.Y+dir)) {
			return false
		}
		if dy == dir {
			return true
		}
		return dy == 2*dir && p.Square.Y == p.Colour.PawnRank() && b.IsEmpty(to)
	}

	if dy != dir || abs(dx) != 1 {
		return false
	}
	target := b.At(to)
	return target != nil && target.Colour != p.Colour
}

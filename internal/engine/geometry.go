// Package engine provides chess move generation, check detection and board
// mutation on top of the chess package's board storage.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Unreachable is the distance reported when a target cannot be reached.
const Unreachable = -1

// StraightReach returns the number of squares p travels along its file or
// rank to reach to, or Unreachable. Every square strictly between the two must
// be empty; the landing square may be empty or hold an enemy piece.
func StraightReach(b *chess.Board, p *chess.Piece, to chess.Square) int {
	dx := to.X - p.Square.X
	dy := to.Y - p.Square.Y
	if dx != 0 && dy != 0 {
		return Unreachable
	}
	return rayReach(b, p, to, dx, dy)
}

// DiagonalReach returns the number of squares p travels along a diagonal to
// reach to, or Unreachable. Blocking and landing rules are those of
// StraightReach.
func DiagonalReach(b *chess.Board, p *chess.Piece, to chess.Square) int {
	dx := to.X - p.Square.X
	dy := to.Y - p.Square.Y
	if abs(dx) != abs(dy) {
		return Unreachable
	}
	return rayReach(b, p, to, dx, dy)
}

// rayReach walks from p toward to in unit steps of (sign(dx), sign(dy)).
// The caller guarantees the delta is straight or diagonal.
func rayReach(b *chess.Board, p *chess.Piece, to chess.Square, dx, dy int) int {
	if !to.InBounds() || (dx == 0 && dy == 0) {
		return Unreachable
	}
	stepX, stepY := sign(dx), sign(dy)
	dist := abs(dx)
	if dist == 0 {
		dist = abs(dy)
	}

	for i := 1; i < dist; i++ {
		if b.Get(p.Square.X+i*stepX, p.Square.Y+i*stepY) != nil {
			return Unreachable
		}
	}

	// Still have to check the landing square.
	if target := b.At(to); target != nil && target.Colour == p.Colour {
		return Unreachable
	}
	return dist
}

// KnightReach reports whether to is a knight's leap away from p. Knights jump,
// so nothing between the squares matters, and the occupant of to is not
// inspected either.
func KnightReach(p *chess.Piece, to chess.Square) bool {
	if !to.InBounds() {
		return false
	}
	dx := abs(to.X - p.Square.X)
	dy := abs(to.Y - p.Square.Y)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

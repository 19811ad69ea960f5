package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Filter selects which destinations an enumeration reports. Combine with |.
type Filter uint8

const (
	// ExcludeEmpty drops empty destinations, leaving only captures. Used for
	// check and threat scans.
	ExcludeEmpty Filter = 1 << iota
	// ExcludeCaptures drops destinations holding an enemy piece, leaving only
	// quiet moves.
	ExcludeCaptures

	// AllSquares reports both empty and capture destinations.
	AllSquares Filter = 0
)

var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	knightMoves  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingMoves    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Reachable returns every square p can reach on b under the filter. It never
// mutates the board and does not look at whose turn it is.
func Reachable(b *chess.Board, p *chess.Piece, f Filter) []chess.Square {
	switch p.Kind {
	case chess.Pawn:
		return PawnSquares(b, p, f)
	case chess.Knight:
		return KnightSquares(b, p, f)
	case chess.Bishop:
		return DiagonalSquares(b, p, f)
	case chess.Rook:
		return StraightSquares(b, p, f)
	case chess.Queen:
		return append(StraightSquares(b, p, f), DiagonalSquares(b, p, f)...)
	case chess.King:
		return KingSquares(b, p, f)
	}
	return nil
}

// StraightSquares returns the squares reachable along the four files and ranks.
func StraightSquares(b *chess.Board, p *chess.Piece, f Filter) []chess.Square {
	return slide(b, p, f, straightDirs)
}

// DiagonalSquares returns the squares reachable along the four diagonals.
func DiagonalSquares(b *chess.Board, p *chess.Piece, f Filter) []chess.Square {
	return slide(b, p, f, diagonalDirs)
}

// slide walks each ray outward until the edge or the first occupied square.
func slide(b *chess.Board, p *chess.Piece, f Filter, dirs [][2]int) []chess.Square {
	var squares []chess.Square
	for _, dir := range dirs {
		sq, ok := p.Square.Offset(dir[0], dir[1])
		for ok && b.IsEmpty(sq) {
			if f&ExcludeEmpty == 0 {
				squares = append(squares, sq)
			}
			sq, ok = sq.Offset(dir[0], dir[1])
		}
		if !ok {
			continue
		}
		// Blocked: report the blocker only if it is an enemy.
		if b.At(sq).Colour != p.Colour && f&ExcludeCaptures == 0 {
			squares = append(squares, sq)
		}
	}
	return squares
}

// KnightSquares returns the knight-leap squares p can land on.
func KnightSquares(b *chess.Board, p *chess.Piece, f Filter) []chess.Square {
	return leap(b, p, f, knightMoves)
}

// KingSquares returns the adjacent squares p can step to.
func KingSquares(b *chess.Board, p *chess.Piece, f Filter) []chess.Square {
	return leap(b, p, f, kingMoves)
}

// leap checks each offset square on its own: no blocking, range of one step.
func leap(b *chess.Board, p *chess.Piece, f Filter, offsets [][2]int) []chess.Square {
	var squares []chess.Square
	for _, off := range offsets {
		sq, ok := p.Square.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if admits(b, p, sq, f) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// admits classifies an on-board landing square as empty, enemy or friendly
// and applies the filter.
func admits(b *chess.Board, p *chess.Piece, sq chess.Square, f Filter) bool {
	target := b.At(sq)
	switch {
	case target == nil:
		return f&ExcludeEmpty == 0
	case target.Colour != p.Colour:
		return f&ExcludeCaptures == 0
	default:
		return false
	}
}

// PawnSquares returns the pushes and captures available to pawn p.
//
// Pushes land on empty squares and are suppressed by ExcludeEmpty; the double
// push from the start rank needs both squares empty. Diagonal captures need an
// enemy piece on the target and are suppressed by ExcludeCaptures.
func PawnSquares(b *chess.Board, p *chess.Piece, f Filter) []chess.Square {
	var squares []chess.Square
	dir := p.Colour.Forward()

	if f&ExcludeEmpty == 0 {
		if one, ok := p.Square.Offset(0, dir); ok && b.IsEmpty(one) {
			squares = append(squares, one)
			if p.Square.Y == p.Colour.PawnRank() {
				if two, ok := p.Square.Offset(0, 2*dir); ok && b.IsEmpty(two) {
					squares = append(squares, two)
				}
			}
		}
	}

	if f&ExcludeCaptures == 0 {
		for _, dx := range []int{-1, 1} {
			sq, ok := p.Square.Offset(dx, dir)
			if !ok {
				continue
			}
			if target := b.At(sq); target != nil && target.Colour != p.Colour {
				squares = append(squares, sq)
			}
		}
	}
	return squares
}

// Package chess provides core chess types and board storage.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction along y).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the y coordinate pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// BackRank returns the y coordinate of this colour's first rank.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Kind is the type of a chess piece.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may be promoted to this kind.
func (k Kind) IsPromotionTarget() bool {
	return k >= Knight && k <= Queen
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns Empty for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. X=0 is the a-file, Y=0 is White's first rank.
type Square struct {
	X, Y int
}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

// Offset returns the square shifted by (dx, dy) and whether it is on the board.
func (s Square) Offset(dx, dy int) (Square, bool) {
	t := Square{X: s.X + dx, Y: s.Y + dy}
	return t, t.InBounds()
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.X, s.Y)
	}
	return string([]byte{byte('a' + s.X), byte('1' + s.Y)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	sq := Square{X: int(name[0]) - 'a', Y: int(name[1]) - '1'}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	return sq, nil
}

// Piece is a single piece on the board.
//
// ID is an opaque token for external collaborators (a display layer binds it
// to whatever represents the piece on screen). The rules core assigns it once
// and carries it through moves and promotions without interpreting it.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square
	ID     int
}

// String returns a short description such as "White Knight on g1".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Square)
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p *Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

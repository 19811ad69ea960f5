package testutil

import (
	"testing"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustBoard builds a board from piece specs such as "Ke1", "qd8", "Pe2":
// a piece letter (uppercase White, lowercase Black) followed by a square.
// Piece IDs are assigned row-major from zero. It calls t.Fatal on a bad spec.
func MustBoard(t *testing.T, toMove chess.Colour, specs ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	b.ToMove = toMove
	for _, spec := range specs {
		if len(spec) != 3 {
			t.Fatalf("bad piece spec %q", spec)
		}
		kind := chess.KindFromLetter(spec[0])
		if kind == chess.Empty {
			t.Fatalf("bad piece letter in %q", spec)
		}
		colour := chess.White
		if unicode.IsLower(rune(spec[0])) {
			colour = chess.Black
		}
		sq := MustSquare(t, spec[1:])
		if b.At(sq) != nil {
			t.Fatalf("square %s used twice", sq)
		}
		if err := b.Place(&chess.Piece{Kind: kind, Colour: colour, Square: sq}); err != nil {
			t.Fatalf("placing %q: %v", spec, err)
		}
	}
	b.AssignIDs()
	return b
}

// MustSquare parses an algebraic square name or calls t.Fatal.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// Squares parses a list of algebraic square names.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

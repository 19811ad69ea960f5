package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board holds the piece placement and side to move.
//
// The grid is the only source of truth for placement. The king table is a
// derived index: King re-checks it against the grid before returning it.
type Board struct {
	// squares[y][x]
	squares [BoardSize][BoardSize]*Piece

	// Who has the next move.
	ToMove Colour

	// Keep track of the two kings for check detection, indexed by Colour.
	kings [2]*Piece
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// At returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.squares[sq.Y][sq.X]
}

// Get returns the piece at (x, y), or nil.
func (b *Board) Get(x, y int) *Piece {
	return b.At(Square{X: x, Y: y})
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.InBounds() && b.squares[sq.Y][sq.X] == nil
}

// Place puts p on the board at p.Square. Any occupant is replaced.
func (b *Board) Place(p *Piece) error {
	if p == nil {
		return errors.ErrNoPiece
	}
	if !p.Square.InBounds() {
		return fmt.Errorf("place %s: %w", p.Square, errors.ErrOutOfBounds)
	}
	b.clearKing(b.squares[p.Square.Y][p.Square.X])
	b.squares[p.Square.Y][p.Square.X] = p
	if p.Kind == King {
		b.kings[p.Colour] = p
	}
	return nil
}

// Remove clears sq and returns the piece that was there, if any.
func (b *Board) Remove(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	p := b.squares[sq.Y][sq.X]
	b.squares[sq.Y][sq.X] = nil
	b.clearKing(p)
	return p
}

// Relocate moves p from its current square to the given square, keeping
// p.Square in step with the grid. The previous occupant of the destination
// is returned.
func (b *Board) Relocate(p *Piece, to Square) (*Piece, error) {
	if !to.InBounds() {
		return nil, fmt.Errorf("relocate to %s: %w", to, errors.ErrOutOfBounds)
	}
	if !b.Holds(p) {
		return nil, fmt.Errorf("relocate %v: %w", p, errors.ErrNoPiece)
	}
	if to == p.Square {
		return nil, nil
	}
	captured := b.squares[to.Y][to.X]
	b.clearKing(captured)
	b.squares[to.Y][to.X] = p
	b.squares[p.Square.Y][p.Square.X] = nil
	p.Square = to
	if p.Kind == King {
		b.kings[p.Colour] = p
	}
	return captured, nil
}

// Holds reports whether p is currently stored on the board at p.Square.
func (b *Board) Holds(p *Piece) bool {
	return p != nil && b.At(p.Square) == p
}

// King returns the king of the given colour, or nil if it is no longer on
// the board.
func (b *Board) King(colour Colour) *Piece {
	if k := b.kings[colour]; b.Holds(k) && k.Kind == King && k.Colour == colour {
		return k
	}
	b.kings[colour] = nil
	for _, p := range b.PiecesOf(colour) {
		if p.Kind == King {
			b.kings[colour] = p
			return p
		}
	}
	return nil
}

// clearKing drops p from the king table if it is cached there.
func (b *Board) clearKing(p *Piece) {
	if p == nil {
		return
	}
	if b.kings[p.Colour] == p {
		b.kings[p.Colour] = nil
	}
}

// Pieces returns every piece on the board in row-major order (rank 0 to 7,
// file 0 to 7).
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.squares[y][x]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PiecesOf returns the pieces of one colour in row-major order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var pieces []*Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// AssignIDs numbers the pieces 0, 1, 2, ... in row-major order.
func (b *Board) AssignIDs() {
	for i, p := range b.Pieces() {
		p.ID = i
	}
}

// Validate checks that every stored piece records the square it is stored
// on and that no piece is stored twice.
func (b *Board) Validate() error {
	seen := make(map[*Piece]Square)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := b.squares[y][x]
			if p == nil {
				continue
			}
			sq := Square{X: x, Y: y}
			if prev, ok := seen[p]; ok {
				return fmt.Errorf("%v stored on %s and %s: %w", p, prev, sq, errors.ErrInconsistentBoard)
			}
			seen[p] = sq
			if p.Square != sq {
				return fmt.Errorf("%v stored on %s: %w", p, sq, errors.ErrInconsistentBoard)
			}
		}
	}
	return nil
}

// Copy creates a deep copy of the board. Pieces are duplicated, so the copy
// can be mutated without touching the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{ToMove: b.ToMove}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.squares[y][x]; p != nil {
				cp := *p
				newBoard.squares[y][x] = &cp
				if cp.Kind == King && b.kings[cp.Colour] == p {
					newBoard.kings[cp.Colour] = &cp
				}
			}
		}
	}
	return newBoard
}

// savedPiece pairs a piece with its value at snapshot time.
type savedPiece struct {
	ptr *Piece
	val Piece
}

// BoardState captures all mutable board state for save/restore operations.
// Restoring writes the saved values back into the same Piece values, so
// references held by callers stay valid across a rollback.
type BoardState struct {
	pieces []savedPiece
	ToMove Colour
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	pieces := b.Pieces()
	s := BoardState{
		pieces: make([]savedPiece, len(pieces)),
		ToMove: b.ToMove,
	}
	for i, p := range pieces {
		s.pieces[i] = savedPiece{ptr: p, val: *p}
	}
	return s
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.squares = [BoardSize][BoardSize]*Piece{}
	b.kings = [2]*Piece{}
	for _, sp := range s.pieces {
		*sp.ptr = sp.val
		b.squares[sp.val.Square.Y][sp.val.Square.X] = sp.ptr
		if sp.val.Kind == King {
			b.kings[sp.val.Colour] = sp.ptr
		}
	}
	b.ToMove = s.ToMove
}

// SetupInitialPosition sets up the standard chess starting position with
// White to move and piece IDs 0..31 in row-major order.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]*Piece{}
	b.kings = [2]*Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < BoardSize; x++ {
		for _, colour := range []Colour{White, Black} {
			_ = b.Place(&Piece{Kind: backRank[x], Colour: colour, Square: Square{X: x, Y: colour.BackRank()}})
			_ = b.Place(&Piece{Kind: Pawn, Colour: colour, Square: Square{X: x, Y: colour.PawnRank()}})
		}
	}

	b.ToMove = White
	b.AssignIDs()
}

// String renders the board as eight FEN-style rows, rank 8 first.
func (b *Board) String() string {
	out := make([]byte, 0, (BoardSize+1)*BoardSize)
	for y := BoardSize - 1; y >= 0; y-- {
		for x := 0; x < BoardSize; x++ {
			if p := b.squares[y][x]; p != nil {
				out = append(out, p.Letter())
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

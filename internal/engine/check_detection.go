package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsInCheck returns true if the given colour's king is attacked. A colour
// with no king on the board is never in check; callers that care about a
// captured king must look at Board.King themselves.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king == nil {
		return false
	}
	return IsSquareAttacked(board, king.Square, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return len(scanAttackers(board, sq, byColour, true)) > 0
}

// Attackers returns the pieces of byColour that attack sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []*chess.Piece {
	return scanAttackers(board, sq, byColour, false)
}

// scanAttackers looks outward from sq with a probe piece of the defending
// colour. Each geometry is scanned for captures only; a reported square is an
// attacker when it holds a piece that moves along that geometry.
func scanAttackers(board *chess.Board, sq chess.Square, byColour chess.Colour, firstOnly bool) []*chess.Piece {
	if !sq.InBounds() {
		return nil
	}
	probe := &chess.Piece{Kind: chess.King, Colour: byColour.Opposite(), Square: sq}

	scans := []struct {
		squares []chess.Square
		kinds   []chess.Kind
	}{
		{StraightSquares(board, probe, ExcludeEmpty), []chess.Kind{chess.Rook, chess.Queen}},
		{DiagonalSquares(board, probe, ExcludeEmpty), []chess.Kind{chess.Bishop, chess.Queen}},
		{KnightSquares(board, probe, ExcludeEmpty), []chess.Kind{chess.Knight}},
		{KingSquares(board, probe, ExcludeEmpty), []chess.Kind{chess.King}},
		{pawnThreatSquares(board, probe), []chess.Kind{chess.Pawn}},
	}

	var attackers []*chess.Piece
	for _, scan := range scans {
		for _, s := range scan.squares {
			p := board.At(s)
			if p == nil || !slices.Contains(scan.kinds, p.Kind) {
				continue
			}
			attackers = append(attackers, p)
			if firstOnly {
				return attackers
			}
		}
	}
	return attackers
}

// pawnThreatSquares returns the squares from which an enemy pawn would attack
// the probe: one step forward from the probe's side, on either adjacent file.
func pawnThreatSquares(board *chess.Board, probe *chess.Piece) []chess.Square {
	return PawnSquares(board, probe, ExcludeEmpty)
}

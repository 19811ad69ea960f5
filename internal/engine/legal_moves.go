package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsLegal returns true if p can reach to and the move does not leave p's own
// king attacked. Castling and en passant are not generated.
func IsLegal(board *chess.Board, p *chess.Piece, to chess.Square) bool {
	if !board.Holds(p) || !CanAttack(board, p, to) {
		return false
	}
	return tryMove(board, p.Square, to, p.Colour)
}

// LegalMoves returns the squares p can legally move to.
func LegalMoves(board *chess.Board, p *chess.Piece) []chess.Square {
	if !board.Holds(p) {
		return nil
	}
	var squares []chess.Square
	for _, sq := range Reachable(board, p, AllSquares) {
		if tryMove(board, p.Square, sq, p.Colour) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// AllLegalMoves returns every legal move for colour. A promoting pawn move is
// listed once, carrying promoteTo.
func AllLegalMoves(board *chess.Board, colour chess.Colour, promoteTo chess.Kind) []chess.Move {
	var moves []chess.Move
	for _, p := range board.PiecesOf(colour) {
		for _, sq := range LegalMoves(board, p) {
			m := chess.Move{From: p.Square, To: sq}
			if p.Kind == chess.Pawn && (sq.Y == 0 || sq.Y == chess.BoardSize-1) {
				m.Promotion = promoteTo
			}
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.PiecesOf(colour) {
		for _, sq := range Reachable(board, p, AllSquares) {
			if tryMove(board, p.Square, sq, colour) {
				return true
			}
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in
// check. The live board is never touched.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()
	if _, err := MovePiece(testBoard, testBoard.At(from), to, DefaultPromotion); err != nil {
		return false
	}
	return !IsInCheck(testBoard, colour)
}

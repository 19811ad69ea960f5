package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate reports whether the side to move is in check and has no legal
// move. A side without a king is never in check, so it cannot be mated.
func IsCheckmate(board *chess.Board) bool {
	side := board.ToMove
	return IsInCheck(board, side) && !HasLegalMoves(board, side)
}

// IsStalemate reports whether the side to move has no legal move and is not
// in check. A side with no pieces left counts as stalemated.
func IsStalemate(board *chess.Board) bool {
	side := board.ToMove
	return !HasLegalMoves(board, side) && !IsInCheck(board, side)
}

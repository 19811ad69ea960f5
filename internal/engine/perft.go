package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth for
// the side to move. Pawns promote only to promoteTo, so counts differ from
// full-rules perft once promotions, castling or en passant appear.
func Perft(board *chess.Board, depth int, promoteTo chess.Kind) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, board.ToMove, promoteTo)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		saved := board.SaveState()
		if _, err := ApplyMove(board, m, Promotion{Kind: promoteTo}); err == nil {
			AdvanceTurn(board)
			nodes += Perft(board, depth-1, promoteTo)
		}
		board.RestoreState(saved)
	}
	return nodes
}

// Divide returns the perft count below each root move.
func Divide(board *chess.Board, depth int, promoteTo chess.Kind) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range AllLegalMoves(board, board.ToMove, promoteTo) {
		saved := board.SaveState()
		if _, err := ApplyMove(board, m, Promotion{Kind: promoteTo}); err == nil {
			AdvanceTurn(board)
			result[m] = Perft(board, depth-1, promoteTo)
		}
		board.RestoreState(saved)
	}
	return result
}

// Package crosscheck compares the legal moves generated by the rules core
// with those of the dragontoothmg move generator.
package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Report lists the moves on which the two generators disagree, in
// coordinate form and sorted.
type Report struct {
	Missing []string // Generated by the reference only
	Extra   []string // Generated by the rules core only
}

// OK returns true if both generators produced the same moves.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// String summarises the report on one line.
func (r Report) String() string {
	if r.OK() {
		return "move lists agree"
	}
	return fmt.Sprintf("missing %v, extra %v", r.Missing, r.Extra)
}

// Compare checks the board's legal moves for the side to move.
func Compare(board *chess.Board, promoteTo chess.Kind) (Report, error) {
	return CompareFEN(engine.ToFEN(board), promoteTo)
}

// CompareFEN checks the legal moves of a FEN position. The reference sees
// the full FEN, so its castling and en passant moves are dropped before
// comparing, as are promotions to kinds other than promoteTo.
func CompareFEN(fen string, promoteTo chess.Kind) (Report, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return Report{}, err
	}
	if board.King(chess.White) == nil || board.King(chess.Black) == nil {
		return Report{}, fmt.Errorf("reference needs both kings: %w", errors.ErrInvalidFEN)
	}

	ours := make(map[string]bool)
	for _, m := range engine.AllLegalMoves(board, board.ToMove, promoteTo) {
		ours[m.String()] = true
	}

	reference, err := referenceMoves(fen)
	if err != nil {
		return Report{}, err
	}
	theirs := make(map[string]bool)
	for _, text := range reference {
		m, err := chess.ParseMove(text)
		if err != nil {
			return Report{}, fmt.Errorf("reference move: %w", err)
		}
		if outsideRules(board, m, promoteTo) {
			continue
		}
		theirs[text] = true
	}

	var report Report
	for text := range theirs {
		if !ours[text] {
			report.Missing = append(report.Missing, text)
		}
	}
	for text := range ours {
		if !theirs[text] {
			report.Extra = append(report.Extra, text)
		}
	}
	slices.Sort(report.Missing)
	slices.Sort(report.Extra)
	return report, nil
}

// referenceMoves returns dragontoothmg's legal moves for the position.
func referenceMoves(fen string) (moves []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reference rejected %q: %v: %w", fen, r, errors.ErrInvalidFEN)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	generated := board.GenerateLegalMoves()
	moves = make([]string, 0, len(generated))
	for i := range generated {
		moves = append(moves, generated[i].String())
	}
	return moves, nil
}

// outsideRules reports whether a reference move is one the rules core never
// generates: castling, en passant, or an unselected promotion.
func outsideRules(board *chess.Board, m chess.Move, promoteTo chess.Kind) bool {
	p := board.At(m.From)
	if p == nil {
		return false
	}
	switch {
	case p.Kind == chess.King && abs(m.To.X-m.From.X) == 2:
		return true
	case p.Kind == chess.Pawn && m.To.X != m.From.X && board.At(m.To) == nil:
		return true
	case m.Promotion != chess.Empty && m.Promotion != promoteTo:
		return true
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPerftProcessor(t *testing.T) {
	board := engine.NewInitialBoard()
	m, err := chess.ParseMove("e2e4")
	testutil.AssertNoError(t, err)

	result := PerftProcessor(chess.Queen)(WorkItem{Board: board, Move: m, Depth: 2, Index: 7})
	testutil.AssertNoError(t, result.Error)
	testutil.AssertEqual(t, result.Nodes, uint64(20))
	testutil.AssertEqual(t, result.Index, 7)
	testutil.AssertEqual(t, result.Move, m)

	// Empty source square
	bad, err := chess.ParseMove("e4e5")
	testutil.AssertNoError(t, err)
	result = PerftProcessor(chess.Queen)(WorkItem{Board: engine.NewInitialBoard(), Move: bad, Depth: 1})
	testutil.AssertErrorIs(t, result.Error, errors.ErrNoPiece)
}

func TestDivide_MatchesSerial(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/3P1N2/PPP2PPP/RNBQK2R b - - 0 1",
	}
	for _, fen := range fens {
		board, err := engine.NewBoardFromFEN(fen)
		testutil.AssertNoError(t, err)
		before := engine.ToFEN(board)

		got, err := Divide(context.Background(), board, 2, chess.Queen, WithWorkers(4))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, engine.Divide(board, 2, chess.Queen), fen)
		testutil.AssertEqual(t, engine.ToFEN(board), before, "board untouched")
	}
}

func TestPerft(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		if tt.depth > 2 && testing.Short() {
			continue
		}
		got, err := Perft(context.Background(), engine.NewInitialBoard(), tt.depth, chess.Queen, WithWorkers(3))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want, "depth %d", tt.depth)
	}
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Divide(ctx, engine.NewInitialBoard(), 3, chess.Queen)
	testutil.AssertErrorIs(t, err, context.Canceled)
	if got != nil {
		t.Errorf("Divide() = %v after cancel, want nil", got)
	}
}

func TestDivide_NoMoves(t *testing.T) {
	board := testutil.MustBoard(t, chess.Black, "kh8", "Qg6", "Kf7")
	got, err := Divide(context.Background(), board, 3, chess.Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got), 0)
}

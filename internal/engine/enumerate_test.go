package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestReachable_RookEmptyBoard(t *testing.T) {
	b := testutil.MustBoard(t, chess.White, "Ra1")
	rook := b.At(chess.Sq(0, 0))

	got := Reachable(b, rook, AllSquares)
	want := testutil.Squares(t,
		"a2", "a3", "a4", "a5", "a6", "a7", "a8",
		"b1", "c1", "d1", "e1", "f1", "g1", "h1")
	testutil.AssertSquares(t, got, want)

	// Every square on the board agrees with the single-square test.
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			sq := chess.Sq(x, y)
			onLine := (x == 0) != (y == 0)
			if CanAttack(b, rook, sq) != onLine {
				t.Errorf("CanAttack(a1 -> %s) = %v, want %v", sq, !onLine, onLine)
			}
		}
	}
}

func TestReachable_RookObstruction(t *testing.T) {
	rank := testutil.Squares(t, "b1", "c1", "d1", "e1", "f1", "g1", "h1")

	t.Run("friendly blocker", func(t *testing.T) {
		b := testutil.MustBoard(t, chess.White, "Ra1", "Pa4")
		got := Reachable(b, b.At(chess.Sq(0, 0)), AllSquares)
		testutil.AssertSquares(t, got, append(testutil.Squares(t, "a2", "a3"), rank...))
	})

	t.Run("enemy blocker", func(t *testing.T) {
		b := testutil.MustBoard(t, chess.White, "Ra1", "pa4")
		got := Reachable(b, b.At(chess.Sq(0, 0)), AllSquares)
		testutil.AssertSquares(t, got, append(testutil.Squares(t, "a2", "a3", "a4"), rank...))
	})

	t.Run("captures only", func(t *testing.T) {
		b := testutil.MustBoard(t, chess.White, "Ra1", "pa4", "Pd1", "nh1")
		got := Reachable(b, b.At(chess.Sq(0, 0)), ExcludeEmpty)
		testutil.AssertSquares(t, got, testutil.Squares(t, "a4"))
	})

	t.Run("quiet only", func(t *testing.T) {
		b := testutil.MustBoard(t, chess.White, "Ra1", "pa4", "Pd1")
		got := Reachable(b, b.At(chess.Sq(0, 0)), ExcludeCaptures)
		testutil.AssertSquares(t, got, testutil.Squares(t, "a2", "a3", "b1", "c1"))
	})

	t.Run("both exclusions", func(t *testing.T) {
		b := testutil.MustBoard(t, chess.White, "Ra1", "pa4")
		got := Reachable(b, b.At(chess.Sq(0, 0)), ExcludeEmpty|ExcludeCaptures)
		testutil.AssertSquares(t, got, nil)
	})
}

func TestReachable_Bishop(t *testing.T) {
	b := testutil.MustBoard(t, chess.White, "Bc1", "Pd2", "pa3")
	got := Reachable(b, b.At(chess.Sq(2, 0)), AllSquares)
	testutil.AssertSquares(t, got, testutil.Squares(t, "b2", "a3"))
}

func TestReachable_QueenEmptyBoard(t *testing.T) {
	b := testutil.MustBoard(t, chess.White, "Qd4")
	got := Reachable(b, b.At(chess.Sq(3, 3)), AllSquares)
	if len(got) != 27 {
		t.Errorf("queen on d4 reaches %d squares, want 27", len(got))
	}
}

func TestReachable_Knight(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   string
		filter Filter
		want   []string
	}{
		{
			name:   "centre of empty board",
			pieces: []string{"Nd4"},
			from:   "d4",
			want:   []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"},
		},
		{
			name:   "corner",
			pieces: []string{"Na1"},
			from:   "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name:   "edge of board",
			pieces: []string{"Nh5"},
			from:   "h5",
			want:   []string{"g3", "g7", "f4", "f6"},
		},
		{
			name:   "each target checked on its own",
			pieces: []string{"Nd4", "Pb3", "pc2", "Pe6"},
			from:   "d4",
			want:   []string{"b5", "c2", "c6", "e2", "f3", "f5"},
		},
		{
			name:   "captures only",
			pieces: []string{"Nd4", "Pb3", "pc2", "pf5"},
			from:   "d4",
			filter: ExcludeEmpty,
			want:   []string{"c2", "f5"},
		},
		{
			name:   "quiet only",
			pieces: []string{"Nb1", "Pd2", "pc3"},
			from:   "b1",
			filter: ExcludeCaptures,
			want:   []string{"a3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, chess.White, tt.pieces...)
			got := Reachable(b, b.At(testutil.MustSquare(t, tt.from)), tt.filter)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestReachable_King(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   string
		filter Filter
		want   []string
	}{
		{"corner", []string{"kh8"}, "h8", AllSquares, []string{"g8", "g7", "h7"}},
		{"friendly and enemy neighbours", []string{"Ke1", "Pd2", "pf2"}, "e1", AllSquares, []string{"d1", "e2", "f1", "f2"}},
		{"captures only", []string{"Ke1", "Pd2", "pf2"}, "e1", ExcludeEmpty, []string{"f2"}},
		{"quiet only", []string{"Ke1", "Pd2", "pf2"}, "e1", ExcludeCaptures, []string{"d1", "e2", "f1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, chess.White, tt.pieces...)
			got := Reachable(b, b.At(testutil.MustSquare(t, tt.from)), tt.filter)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestReachable_Pawn(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   string
		filter Filter
		want   []string
	}{
		{"white double push", []string{"Pd2"}, "d2", AllSquares, []string{"d3", "d4"}},
		{"white single push off start rank", []string{"Pd3"}, "d3", AllSquares, []string{"d4"}},
		{"black double push", []string{"pe7"}, "e7", AllSquares, []string{"e6", "e5"}},
		{"second square blocked", []string{"Pd2", "pd4"}, "d2", AllSquares, []string{"d3"}},
		{"first square blocked", []string{"Pd2", "Nd3"}, "d2", AllSquares, nil},
		{"captures enemy only", []string{"Pd4", "pc5", "Pe5"}, "d4", AllSquares, []string{"d5", "c5"}},
		{"captures only filter", []string{"Pd4", "pc5", "pe5"}, "d4", ExcludeEmpty, []string{"c5", "e5"}},
		{"pushes only filter", []string{"Pd4", "pc5", "pe5"}, "d4", ExcludeCaptures, []string{"d5"}},
		{"h-file capture stays on board", []string{"Ph2", "pg3"}, "h2", AllSquares, []string{"h3", "h4", "g3"}},
		{"black captures downward", []string{"pe5", "Nd4", "Bf4", "Pe4"}, "e5", AllSquares, []string{"d4", "f4"}},
		{"last rank has no moves", []string{"Pa8"}, "a8", AllSquares, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, chess.White, tt.pieces...)
			got := Reachable(b, b.At(testutil.MustSquare(t, tt.from)), tt.filter)
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestReachable_PawnLosesDoublePushAfterMoving(t *testing.T) {
	b := testutil.MustBoard(t, chess.White, "Pd2")
	pawn := b.At(chess.Sq(3, 1))

	testutil.AssertSquares(t, Reachable(b, pawn, AllSquares), testutil.Squares(t, "d3", "d4"))

	if _, err := MovePiece(b, pawn, chess.Sq(3, 2), DefaultPromotion); err != nil {
		t.Fatalf("MovePiece() error: %v", err)
	}
	testutil.AssertSquares(t, Reachable(b, pawn, AllSquares), testutil.Squares(t, "d4"))
	if CanAttack(b, pawn, chess.Sq(3, 4)) {
		t.Error("pawn on d3 can still reach d5")
	}
}

func TestReachable_DoesNotMutate(t *testing.T) {
	b := NewInitialBoard()
	before := ToFEN(b)
	for _, p := range b.Pieces() {
		_ = Reachable(b, p, AllSquares)
		_ = Reachable(b, p, ExcludeEmpty)
	}
	testutil.AssertEqual(t, ToFEN(b), before)
	testutil.AssertNoError(t, b.Validate())
}

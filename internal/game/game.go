// Package game owns a chess game: the board, whose turn it is, the
// promotion policy and how the game ended.
//
// A Game is not safe for concurrent use.
package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Status is the state of play.
type Status int

const (
	Active       Status = iota // Game in progress
	Checkmate                  // Side to move is mated (strict legality only)
	Stalemate                  // Side to move has no legal move (strict legality only)
	KingCaptured               // A king was taken: brutality
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case KingCaptured:
		return "king captured"
	default:
		return "unknown"
	}
}

// Result describes one move made by Play.
type Result struct {
	Move     chess.Move
	Piece    *chess.Piece // The piece that moved
	Captured *chess.Piece // Nil for a quiet move
	Promoted bool
	Check    bool           // The side now to move is in check
	Checkers []*chess.Piece // Pieces giving check, when Check is set
	Status   Status         // Status after the move
}

// snapshot is what Undo needs to roll back one Play.
type snapshot struct {
	state     chess.BoardState
	status    Status
	winner    chess.Colour
	hasWinner bool
	brutality bool
}

// Game holds the board and game-level state.
type Game struct {
	cfg         *config.Config
	board       *chess.Board
	status      Status
	winner      chess.Colour
	hasWinner   bool
	brutality   bool
	history     []snapshot
	repetitions *hashing.RepetitionTracker
}

// New creates a game in the standard starting position. A nil cfg uses
// config.NewConfig.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:         cfg,
		repetitions: hashing.NewRepetitionTracker(),
	}
	g.Reset()
	return g, nil
}

// NewFromFEN creates a game from a FEN position instead of the starting
// position. Reset still returns to the standard start.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "load position")
	}
	g.start(board)
	g.cfg.Logf(2, "Loaded position %s", fen)
	return g, nil
}

// Reset sets up the standard starting position with White to move. Piece
// IDs are 0..31 in row-major order from a1.
func (g *Game) Reset() {
	g.cfg.Logf(2, "Resetting the board...")
	g.start(engine.NewInitialBoard())
}

func (g *Game) start(board *chess.Board) {
	g.board = board
	g.status = Active
	g.hasWinner = false
	g.brutality = false
	g.history = nil
	g.repetitions.Reset()
	g.repetitions.Record(board)
}

// Board returns the live board. Callers must not modify it directly.
func (g *Game) Board() *chess.Board {
	return g.board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// PieceAt returns the piece on sq, or nil if sq is empty or off the board.
func (g *Game) PieceAt(sq chess.Square) *chess.Piece {
	return g.board.At(sq)
}

// Pieces returns every piece on the board in row-major order.
func (g *Game) Pieces() []*chess.Piece {
	return g.board.Pieces()
}

// Status returns the state of play.
func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning colour once the game is decided. ok is false
// while the game is active or after a stalemate.
func (g *Game) Winner() (colour chess.Colour, ok bool) {
	return g.winner, g.hasWinner
}

// Brutality reports whether a king has been captured.
func (g *Game) Brutality() bool {
	return g.brutality
}

// Repetitions returns how many times the current position has occurred.
func (g *Game) Repetitions() int {
	return g.repetitions.Count(g.board)
}

// Ply returns the number of moves made with Play since the last reset.
func (g *Game) Ply() int {
	return len(g.history)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.ToFEN(g.board)
}

// Hints returns the squares the piece on sq can move to: legal squares under
// strict legality, reachable squares otherwise. It returns nil for an empty
// or off-board square.
func (g *Game) Hints(sq chess.Square) []chess.Square {
	p := g.board.At(sq)
	if p == nil {
		return nil
	}
	if g.cfg.Rules.StrictLegality {
		return engine.LegalMoves(g.board, p)
	}
	return engine.Reachable(g.board, p, engine.AllSquares)
}

// Play moves the piece on from to to for the side to move. The move must be
// reachable, and under strict legality must not leave the mover's king
// attacked. Errors wrap a *errors.MoveError.
func (g *Game) Play(from, to chess.Square) (Result, error) {
	moveErr := func(err error, p *chess.Piece) error {
		me := &errors.MoveError{Err: err, Ply: len(g.history) + 1, From: from.String(), To: to.String()}
		if p != nil {
			me.Piece = p.String()
		}
		return me
	}

	if g.status != Active {
		return Result{}, moveErr(errors.ErrGameOver, nil)
	}
	if !from.InBounds() || !to.InBounds() {
		return Result{}, moveErr(errors.ErrOutOfBounds, nil)
	}
	p := g.board.At(from)
	if p == nil {
		return Result{}, moveErr(errors.ErrNoPiece, nil)
	}
	if p.Colour != g.board.ToMove {
		return Result{}, moveErr(errors.ErrNotYourTurn, p)
	}
	if !engine.CanAttack(g.board, p, to) {
		return Result{}, moveErr(errors.ErrIllegalMove, p)
	}
	if g.cfg.Rules.StrictLegality && !engine.IsLegal(g.board, p, to) {
		return Result{}, moveErr(fmt.Errorf("king left in check: %w", errors.ErrIllegalMove), p)
	}

	saved := snapshot{
		state:     g.board.SaveState(),
		status:    g.status,
		winner:    g.winner,
		hasWinner: g.hasWinner,
		brutality: g.brutality,
	}
	mover := p.Colour
	result := Result{Move: chess.Move{From: from, To: to}, Piece: p}

	promo := engine.Promotion{
		Kind: g.cfg.Rules.PromotionKind,
		Notify: func(promoted *chess.Piece) {
			result.Promoted = true
			result.Move.Promotion = promoted.Kind
			g.cfg.Logf(2, "Promoted %v on %s", promoted, promoted.Square)
			if g.cfg.Rules.OnPromotion != nil {
				g.cfg.Rules.OnPromotion(promoted)
			}
		},
	}
	captured, err := engine.MovePiece(g.board, p, to, promo)
	if err != nil {
		g.board.RestoreState(saved.state)
		return Result{}, moveErr(err, p)
	}
	// The promotion callback runs mid-move and may have touched the board.
	if err := g.board.Validate(); err != nil {
		g.board.RestoreState(saved.state)
		return Result{}, moveErr(err, p)
	}
	result.Captured = captured
	g.history = append(g.history, saved)

	if captured != nil && captured.Kind == chess.King {
		g.endByCapture(mover, captured)
	}
	engine.AdvanceTurn(g.board)
	g.repetitions.Record(g.board)
	g.cfg.Logf(2, "Ply %d: %v %s", len(g.history), p, result.Move)

	if g.status == Active && g.cfg.Rules.StrictLegality {
		switch {
		case engine.IsCheckmate(g.board):
			g.finish(Checkmate, mover, true)
		case engine.IsStalemate(g.board):
			g.finish(Stalemate, 0, false)
		}
	}

	if king := g.board.King(g.board.ToMove); king != nil {
		result.Checkers = engine.Attackers(g.board, king.Square, mover)
		result.Check = len(result.Checkers) > 0
	}
	result.Status = g.status
	return result, nil
}

// Undo takes back the last move made with Play, restoring the board, the
// side to move and the game status.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.repetitions.Forget(g.board)
	g.board.RestoreState(last.state)
	g.status = last.status
	g.winner = last.winner
	g.hasWinner = last.hasWinner
	g.brutality = last.brutality
	g.cfg.Logf(2, "Undo to ply %d", len(g.history))
	return nil
}

// Move relocates p to the given square with no turn or legality check,
// applying the configured promotion. It returns the captured piece, if
// any. Taking a king ends the game in favour of the king's opponent. The
// board is re-validated after the promotion callback and rolled back on
// failure. Raw mutations clear the undo history and are counted for
// repetitions.
func (g *Game) Move(p *chess.Piece, to chess.Square) (*chess.Piece, error) {
	saved := g.board.SaveState()
	promo := engine.Promotion{Kind: g.cfg.Rules.PromotionKind, Notify: g.cfg.Rules.OnPromotion}
	captured, err := engine.MovePiece(g.board, p, to, promo)
	if err == nil {
		err = g.board.Validate()
	}
	if err != nil {
		g.board.RestoreState(saved)
		return nil, err
	}
	g.rawMutation()
	if captured != nil && captured.Kind == chess.King && g.status == Active {
		g.endByCapture(captured.Colour.Opposite(), captured)
	}
	return captured, nil
}

// Capture removes p from the board with no legality check. Taking a king
// ends the game in favour of the other side.
func (g *Game) Capture(p *chess.Piece) error {
	if err := engine.Capture(g.board, p); err != nil {
		return err
	}
	g.rawMutation()
	if p.Kind == chess.King && g.status == Active {
		g.endByCapture(p.Colour.Opposite(), p)
	}
	return nil
}

// AdvanceTurn passes the move to the other side without a move being made.
func (g *Game) AdvanceTurn() {
	engine.AdvanceTurn(g.board)
	g.rawMutation()
}

// rawMutation drops the undo history, which no longer matches the board,
// and counts the new position.
func (g *Game) rawMutation() {
	g.history = nil
	g.repetitions.Record(g.board)
}

func (g *Game) endByCapture(winner chess.Colour, king *chess.Piece) {
	g.brutality = true
	g.finish(KingCaptured, winner, true)
	g.cfg.Logf(1, "%v king captured, %v wins", king.Colour, winner)
}

func (g *Game) finish(status Status, winner chess.Colour, hasWinner bool) {
	g.status = status
	g.winner = winner
	g.hasWinner = hasWinner
	if status != KingCaptured {
		g.cfg.Logf(1, "Game over: %v", status)
	}
}

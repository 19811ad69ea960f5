package worker

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerftProcessor returns a ProcessFunc that plays the item's root move on
// its board and counts the tree below it.
func PerftProcessor(promoteTo chess.Kind) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Move: item.Move, Index: item.Index}
		if _, err := engine.ApplyMove(item.Board, item.Move, engine.Promotion{Kind: promoteTo}); err != nil {
			result.Error = errors.Wrapf(err, "root move %s", item.Move)
			return result
		}
		engine.AdvanceTurn(item.Board)
		result.Nodes = engine.Perft(item.Board, item.Depth-1, promoteTo)
		return result
	}
}

// Divide counts the tree below each legal root move in parallel. The
// caller's board is not modified. Cancelling ctx stops the pool and returns
// ctx.Err().
func Divide(ctx context.Context, board *chess.Board, depth int, promoteTo chess.Kind, opts ...PoolOption) (map[chess.Move]uint64, error) {
	result := make(map[chess.Move]uint64)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth <= 0 {
		return result, nil
	}

	moves := engine.AllLegalMoves(board, board.ToMove, promoteTo)
	pool := NewPool(PerftProcessor(promoteTo), opts...)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, m := range moves {
			if !pool.Submit(ctx, WorkItem{Board: board.Copy(), Move: m, Depth: depth, Index: i}) {
				return
			}
		}
	}()

	var firstErr error
	done := ctx.Done()
	results := pool.Results()
	for results != nil {
		select {
		case r, ok := <-results:
			if !ok {
				results = nil
				continue
			}
			if r.Error != nil && firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			result[r.Move] = r.Nodes
		case <-done:
			firstErr = ctx.Err()
			pool.Stop()
			done = nil
		}
	}

	if firstErr == nil && len(result) < len(moves) {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// Perft counts leaf nodes to the given depth, splitting root moves across
// the pool.
func Perft(ctx context.Context, board *chess.Board, depth int, promoteTo chess.Kind, opts ...PoolOption) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	divide, err := Divide(ctx, board, depth, promoteTo, opts...)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, n := range divide {
		nodes += n
	}
	return nodes, nil
}

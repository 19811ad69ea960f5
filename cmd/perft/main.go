// perft counts the move tree of a chess position with the rules core,
// optionally comparing it against reference move generators.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/crosscheck"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Exit codes.
const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}
	cfg.SetOutput(stdout)
	cfg.LogFile = stderr
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}

	board, err := engine.NewBoardFromFEN(cfg.Perft.FEN)
	if err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}

	code := exitOK
	if cfg.Perft.CrossCheck {
		report, err := crosscheck.CompareFEN(cfg.Perft.FEN, cfg.Perft.PromoteTo)
		if err != nil {
			fmt.Fprintf(stderr, "perft: crosscheck: %v\n", err)
			return exitMismatch
		}
		fmt.Fprintf(cfg.OutputFile, "crosscheck: %s\n", report)
		if !report.OK() {
			code = exitMismatch
		}
	}

	nodes, err := count(ctx, cfg, board)
	if err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitMismatch
	}

	if cfg.Perft.Reference {
		refNodes, err := referenceCount(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "perft: reference: %v\n", err)
			return exitMismatch
		}
		fmt.Fprintf(cfg.OutputFile, "reference: %d\n", refNodes)
		if refNodes != nodes {
			fmt.Fprintf(cfg.OutputFile, "note: counts differ by %d (the reference also plays castling, en passant and every promotion piece)\n",
				int64(refNodes)-int64(nodes))
		}
	}
	return code
}

// count runs perft or divide on the worker pool and prints the result.
func count(ctx context.Context, cfg *config.Config, board *chess.Board) (uint64, error) {
	p := cfg.Perft
	cfg.Logf(2, "Counting depth %d with %d workers", p.Depth, p.Workers)
	start := time.Now()

	var nodes uint64
	if p.Divide {
		divide, err := worker.Divide(ctx, board, p.Depth, p.PromoteTo, worker.WithWorkers(p.Workers))
		if err != nil {
			return 0, err
		}
		counts := make(map[string]uint64, len(divide))
		for m, n := range divide {
			counts[m.String()] = n
			nodes += n
		}
		printDivide(cfg.OutputFile, counts)
		if p.Depth == 0 {
			nodes = 1
		}
	} else {
		var err error
		nodes, err = worker.Perft(ctx, board, p.Depth, p.PromoteTo, worker.WithWorkers(p.Workers))
		if err != nil {
			return 0, err
		}
	}

	elapsed := time.Since(start)
	fmt.Fprintf(cfg.OutputFile, "Depth %d: %d nodes\n", p.Depth, nodes)
	if secs := elapsed.Seconds(); secs > 0 {
		cfg.Logf(2, "%s elapsed, %.0f nodes/s", elapsed, float64(nodes)/secs)
	}
	return nodes, nil
}

// printDivide writes one "move: count" line per root move in move order.
func printDivide(w io.Writer, counts map[string]uint64) {
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	slices.Sort(moves)
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, counts[m])
	}
}

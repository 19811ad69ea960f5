// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseFlags parses args into a configuration. Usage and flag errors are
// written to stderr.
func parseFlags(args []string, stderr io.Writer) (*config.Config, error) {
	defaults := config.NewPerftConfig()

	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }

	fen := fs.String("fen", defaults.FEN, "FEN of the root position")
	depth := fs.Int("depth", defaults.Depth, "Number of plies to count")
	divide := fs.Bool("divide", false, "Print the count below each root move")
	workers := fs.Int("workers", defaults.Workers, "Goroutines splitting root moves")
	promote := fs.String("promote", "q", "Promotion piece: q, r, b or n")
	reference := fs.Bool("reference", false, "Also count with GooseEngineMG and compare")
	crossCheck := fs.Bool("crosscheck", false, "Compare root legal moves with dragontoothmg")
	verbosity := fs.Int("v", 1, "Verbosity level (0 quiet, 2 timings)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %v: %w", fs.Args(), errors.ErrInvalidConfig)
	}

	kind, err := parsePromotion(*promote)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfigBuilder().
		WithPerft(*fen, *depth).
		WithWorkers(*workers).
		WithPromotion(kind).
		WithVerbosity(*verbosity).
		Build()
	cfg.Perft.Divide = *divide
	cfg.Perft.PromoteTo = kind
	cfg.Perft.Reference = *reference
	cfg.Perft.CrossCheck = *crossCheck
	return cfg, nil
}

// parsePromotion converts a one-letter piece name to a promotion kind.
func parsePromotion(s string) (chess.Kind, error) {
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind.IsPromotionTarget() {
			return kind, nil
		}
	}
	return chess.Empty, fmt.Errorf("promotion piece %q: %w", s, errors.ErrInvalidConfig)
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: perft [options]\n\n")
	fmt.Fprintf(w, "Counts the move tree of a position to a fixed depth.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
}

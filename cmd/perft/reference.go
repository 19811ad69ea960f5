// reference.go - Node counts from the GooseEngineMG move generator
package main

import (
	"fmt"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// referenceCount counts the configured position with GooseEngineMG. With
// divide enabled the per-move counts are printed as well.
func referenceCount(cfg *config.Config) (uint64, error) {
	p := cfg.Perft
	board, err := goosemg.ParseFEN(p.FEN)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	if p.Depth == 0 {
		return 1, nil
	}
	if !p.Divide {
		return goosemg.Perft(board, p.Depth), nil
	}

	counts := make(map[string]uint64)
	var nodes uint64
	for m, n := range goosemg.PerftDivide(board, p.Depth) {
		counts[m.String()] = n
		nodes += n
	}
	fmt.Fprintln(cfg.OutputFile, "reference divide:")
	printDivide(cfg.OutputFile, counts)
	return nodes, nil
}

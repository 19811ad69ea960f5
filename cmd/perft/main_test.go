package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const rookEndgame = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Kind
		wantErr bool
	}{
		{"q", chess.Queen, false},
		{"R", chess.Rook, false},
		{"b", chess.Bishop, false},
		{"n", chess.Knight, false},
		{"k", chess.Empty, true},
		{"p", chess.Empty, true},
		{"", chess.Empty, true},
		{"qq", chess.Empty, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePromotion(tt.in)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, &bytes.Buffer{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Perft.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, cfg.Perft.Depth, 3)
	testutil.AssertEqual(t, cfg.Perft.PromoteTo, chess.Queen)
	testutil.AssertFalse(t, cfg.Perft.Divide)
	testutil.AssertFalse(t, cfg.Perft.Reference)
	testutil.AssertFalse(t, cfg.Perft.CrossCheck)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-fen", rookEndgame, "-depth", "2", "-divide", "-workers", "3",
		"-promote", "n", "-reference", "-crosscheck", "-v", "0",
	}, &bytes.Buffer{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Perft.FEN, rookEndgame)
	testutil.AssertEqual(t, cfg.Perft.Depth, 2)
	testutil.AssertEqual(t, cfg.Perft.Workers, 3)
	testutil.AssertEqual(t, cfg.Perft.PromoteTo, chess.Knight)
	testutil.AssertEqual(t, cfg.Rules.PromotionKind, chess.Knight)
	testutil.AssertTrue(t, cfg.Perft.Divide)
	testutil.AssertTrue(t, cfg.Perft.Reference)
	testutil.AssertTrue(t, cfg.Perft.CrossCheck)
	testutil.AssertEqual(t, cfg.Verbosity, 0)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"bad depth value", []string{"-depth", "x"}},
		{"bad promotion", []string{"-promote", "k"}},
		{"stray argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, &bytes.Buffer{}); err == nil {
				t.Errorf("parseFlags(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  []string
		wantErr  string
	}{
		{
			name:     "start position",
			args:     []string{"-depth", "2", "-workers", "2"},
			wantCode: exitOK,
			wantOut:  []string{"Depth 2: 400 nodes"},
		},
		{
			name:     "depth zero",
			args:     []string{"-depth", "0"},
			wantCode: exitOK,
			wantOut:  []string{"Depth 0: 1 nodes"},
		},
		{
			name:     "divide",
			args:     []string{"-depth", "1", "-divide"},
			wantCode: exitOK,
			wantOut:  []string{"a2a3: 1\n", "g1h3: 1\n", "Depth 1: 20 nodes"},
		},
		{
			name:     "crosscheck agrees",
			args:     []string{"-fen", rookEndgame, "-depth", "1", "-crosscheck"},
			wantCode: exitOK,
			wantOut:  []string{"crosscheck: move lists agree", "Depth 1: 14 nodes"},
		},
		{
			name:     "reference agrees",
			args:     []string{"-fen", rookEndgame, "-depth", "1", "-reference"},
			wantCode: exitOK,
			wantOut:  []string{"Depth 1: 14 nodes", "reference: 14\n"},
		},
		{
			name:     "bad FEN",
			args:     []string{"-fen", "not a fen"},
			wantCode: exitUsage,
			wantErr:  "invalid FEN",
		},
		{
			name:     "depth too large",
			args:     []string{"-depth", "12"},
			wantCode: exitUsage,
			wantErr:  "invalid configuration",
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantCode: exitOK,
			wantErr:  "Usage: perft",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := run(context.Background(), tt.args, stdout, stderr)
			if code != tt.wantCode {
				t.Fatalf("run(%v) = %d, want %d\nstdout: %s\nstderr: %s", tt.args, code, tt.wantCode, stdout, stderr)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want it to contain %q", stdout.String(), want)
				}
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stderr := &bytes.Buffer{}
	code := run(ctx, []string{"-depth", "2"}, &bytes.Buffer{}, stderr)
	testutil.AssertEqual(t, code, exitMismatch)
	if !strings.Contains(stderr.String(), "context canceled") {
		t.Errorf("stderr = %q, want the cancellation", stderr.String())
	}
}

func TestPrintDivide(t *testing.T) {
	buf := &bytes.Buffer{}
	printDivide(buf, map[string]uint64{"e2e4": 20, "a2a3": 20, "b1c3": 20})
	testutil.AssertEqual(t, buf.String(), "a2a3: 20\nb1c3: 20\ne2e4: 20\n")
}

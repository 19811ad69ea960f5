package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys for each (colour, kind, square) and for Black to move.
var (
	zobristPiece [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	zobristSide  uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are the same on every run.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash computes the Zobrist hash of the board: piece
// placement and side to move. Piece IDs are ignored.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64
	for _, p := range board.Pieces() {
		key ^= zobristPiece[p.Colour][p.Kind][p.Square.Y*chess.BoardSize+p.Square.X]
	}
	if board.ToMove == chess.Black {
		key ^= zobristSide
	}
	return key
}

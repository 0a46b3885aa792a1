package mcts

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	xrand "golang.org/x/exp/rand"

	"hexmcts/hex"
	"hexmcts/hexerr"
	"hexmcts/mctslog"
)

// newRNG returns a generator seeded from a non-deterministic entropy
// source. Each playout goroutine owns its own instance; none is shared.
func newRNG() *xrand.Rand {
	var seedBytes [8]byte
	if _, err := rand.Read(seedBytes[:]); err != nil {
		// crypto/rand failing is a platform-level defect, not a situation
		// a playout can recover from.
		panic(fmt.Sprintf("mcts: failed to seed random source: %v", err))
	}
	seed := binary.LittleEndian.Uint64(seedBytes[:])
	return xrand.New(xrand.NewSource(seed))
}

// RandomPlayout plays firstMove for firstPlayer on board, then alternates
// uniformly random legal moves between sides until one wins, returning
// that winner. board is mutated in place and must already be a copy the
// caller owns exclusively.
func RandomPlayout(firstMove hex.Move, firstPlayer hex.CellState, board *hex.Board, rng *xrand.Rand, logger *mctslog.Logger) (hex.CellState, error) {
	current := firstPlayer
	if err := board.MakeMove(firstMove.Row, firstMove.Col, current); err != nil {
		return hex.Empty, err
	}
	logger.SimulationStep(current, firstMove)

	for {
		if winner := board.Winner(); winner != hex.Empty {
			return winner, nil
		}

		current = current.Opponent()
		moves := board.LegalMoves()
		if len(moves) == 0 {
			// Hex has no draws: a full board always has a winner, so this
			// can only mean a defect upstream (e.g. a corrupted board).
			return hex.Empty, fmt.Errorf("playout ran out of legal moves before a winner was detected: %w", hexerr.InvalidArgument)
		}

		move := moves[rng.Intn(len(moves))]
		if err := board.MakeMove(move.Row, move.Col, current); err != nil {
			return hex.Empty, err
		}
		logger.SimulationStep(current, move)
	}
}

// Package mcts implements the depth-1 Monte Carlo Tree Search controller:
// expand the root once, repeatedly select a child by UCT, run one or many
// random playouts from it, and backpropagate until a wall-clock deadline,
// then return the child with the best win ratio.
package mcts

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"hexmcts/hex"
	"hexmcts/hexerr"
	"hexmcts/mctslog"
)

// Config holds everything the controller needs for one decision. It is
// the only way configuration reaches the search core: no environment
// variables or files are consulted here.
type Config struct {
	// ExplorationFactor is the UCT exploration constant (typical 1.41).
	ExplorationFactor float64
	// MaxDecisionTime bounds how long ChooseMove may run.
	MaxDecisionTime time.Duration
	// Parallelized, when true, runs one playout per available CPU for
	// every selected child instead of a single playout.
	Parallelized bool
	// Verbose enables step-by-step tracing. Cannot be combined with
	// Parallelized: interleaved concurrent playout logs would be
	// unreadable.
	Verbose bool
}

func (c Config) validate() error {
	if c.ExplorationFactor <= 0 {
		return fmt.Errorf("exploration factor must be positive, got %v: %w", c.ExplorationFactor, hexerr.InvalidArgument)
	}
	if c.MaxDecisionTime <= 0 {
		return fmt.Errorf("max decision time must be positive, got %v: %w", c.MaxDecisionTime, hexerr.InvalidArgument)
	}
	if c.Parallelized && c.Verbose {
		return fmt.Errorf("parallel playouts and verbose logging cannot be combined: %w", hexerr.ConfigurationError)
	}
	return nil
}

// Controller orchestrates one decision. It is cheap to construct and is
// meant to be built fresh per move: there is no tree reuse between
// decisions.
type Controller struct {
	cfg    Config
	logger *mctslog.Logger

	// lastRoot is the root of the most recently completed decision, kept
	// only so tests can inspect per-child statistics after ChooseMove
	// returns; nothing in the package reads it otherwise.
	lastRoot *Node
}

// NewController validates cfg and returns a Controller. It fails with
// ConfigurationError if cfg combines parallel playouts with verbose
// logging, and with InvalidArgument for out-of-range numeric fields.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:    cfg,
		logger: mctslog.Acquire(cfg.Verbose),
	}, nil
}

// ChooseMove runs MCTS from board on behalf of side and returns the move
// it judges best. board is read-only: every playout operates on its own
// clone. It fails with InsufficientBudget if MaxDecisionTime expired
// before a single playout completed.
func (c *Controller) ChooseMove(board *hex.Board, side hex.CellState) (hex.Move, error) {
	c.logger.Thinking(side)

	root := newRoot(side)
	expandRoot(root, board)
	for _, child := range root.children {
		c.logger.ExpandedChild(child.move)
	}

	threadCount := 1
	if c.cfg.Parallelized {
		threadCount = runtime.NumCPU()
	}

	deadline := time.Now().Add(c.cfg.MaxDecisionTime)
	iterations := 0

	for time.Now().Before(deadline) {
		chosen, score, err := SelectChild(root, c.cfg.ExplorationFactor)
		if err != nil {
			return hex.Move{}, err
		}
		c.logger.SelectedChild(chosen.move, score)

		if c.cfg.Parallelized {
			if err := c.parallelPlayouts(chosen, board, threadCount); err != nil {
				return hex.Move{}, err
			}
		} else {
			winner, err := c.singlePlayout(chosen, board)
			if err != nil {
				return hex.Move{}, err
			}
			Backpropagate(chosen, winner)
			c.logger.BackpropagationStep(chosen.move, chosen.Wins(), chosen.Visits())
		}

		root.mu.Lock()
		visits, wins, childCount := root.visitCount, root.winCount, len(root.children)
		root.mu.Unlock()
		c.logger.RootStats(visits, wins, childCount)

		iterations++
	}

	best, ratio, err := SelectBestChild(root)
	if err != nil {
		return hex.Move{}, err
	}
	c.logger.DecisionEnd(iterations, best.move, ratio)
	c.lastRoot = root

	return best.move, nil
}

func (c *Controller) singlePlayout(chosen *Node, board *hex.Board) (hex.CellState, error) {
	rng := newRNG()
	boardCopy := board.Clone()
	return RandomPlayout(chosen.move, chosen.player, boardCopy, rng, c.logger)
}

// parallelPlayouts runs threadCount independent playouts from chosen,
// joins them, and backpropagates each result sequentially after the
// join; per-node locks guard against any future design that
// backpropagates concurrently, and against concurrent readers such as
// the logger.
func (c *Controller) parallelPlayouts(chosen *Node, board *hex.Board, threadCount int) error {
	results := make([]hex.CellState, threadCount)
	errs := make([]error, threadCount)

	var wg sync.WaitGroup
	for i := 0; i < threadCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rng := newRNG()
			boardCopy := board.Clone()
			winner, err := RandomPlayout(chosen.move, chosen.player, boardCopy, rng, c.logger)
			results[i] = winner
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return err
		}
		Backpropagate(chosen, results[i])
		c.logger.BackpropagationStep(chosen.move, chosen.Wins(), chosen.Visits())
	}
	return nil
}

package mcts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmcts/hex"
)

func TestNewControllerRejectsParallelizedAndVerbose(t *testing.T) {
	_, err := NewController(Config{
		ExplorationFactor: 1.41,
		MaxDecisionTime:   time.Millisecond,
		Parallelized:      true,
		Verbose:           true,
	})
	require.Error(t, err)
}

func TestNewControllerRejectsNonPositiveExplorationFactor(t *testing.T) {
	_, err := NewController(Config{
		ExplorationFactor: 0,
		MaxDecisionTime:   time.Millisecond,
	})
	require.Error(t, err)
}

// S6: forced win on a 2x2 board. Blue has already played (0,0); every
// remaining cell guarantees Blue a connecting path regardless of how the
// rest of the board fills in, so the search must converge on an
// overwhelmingly winning child, not just a legal one.
func TestChooseMoveFindsForcedWinOnTwoByTwo(t *testing.T) {
	board, err := hex.NewBoard(2)
	require.NoError(t, err)
	require.NoError(t, board.MakeMove(0, 0, hex.Blue))

	controller, err := NewController(Config{
		ExplorationFactor: 1.41,
		MaxDecisionTime:   200 * time.Millisecond,
	})
	require.NoError(t, err)

	move, err := controller.ChooseMove(board, hex.Blue)
	require.NoError(t, err)

	legal := map[hex.Move]bool{{Row: 0, Col: 1}: true, {Row: 1, Col: 0}: true, {Row: 1, Col: 1}: true}
	assert.True(t, legal[move], "move %v must be one of Blue's remaining cells", move)

	var chosenChild *Node
	for _, child := range controller.lastRoot.children {
		if child.move == move {
			chosenChild = child
		}
	}
	require.NotNil(t, chosenChild, "the chosen move must be one of the expanded children")
	ratio, visited := chosenChild.WinRatio()
	require.True(t, visited)
	assert.Greater(t, ratio, 0.9, "the chosen move's win ratio must be overwhelmingly winning")
}

func TestChooseMoveNeverReturnsAnIllegalMove(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)
	require.NoError(t, board.MakeMove(1, 1, hex.Red))

	controller, err := NewController(Config{
		ExplorationFactor: 1.41,
		MaxDecisionTime:   100 * time.Millisecond,
	})
	require.NoError(t, err)

	legalAtEntry := map[hex.Move]bool{}
	for _, m := range board.LegalMoves() {
		legalAtEntry[m] = true
	}

	move, err := controller.ChooseMove(board, hex.Blue)
	require.NoError(t, err)
	assert.True(t, legalAtEntry[move])
}

func TestChooseMoveFailsWithInsufficientBudgetWhenDeadlineTooShort(t *testing.T) {
	board, err := hex.NewBoard(11)
	require.NoError(t, err)

	controller, err := NewController(Config{
		ExplorationFactor: 1.41,
		MaxDecisionTime:   1 * time.Nanosecond,
	})
	require.NoError(t, err)

	_, err = controller.ChooseMove(board, hex.Blue)
	assert.Error(t, err)
}

func TestChooseMoveParallelizedRunsToCompletion(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)

	controller, err := NewController(Config{
		ExplorationFactor: 1.41,
		MaxDecisionTime:   50 * time.Millisecond,
		Parallelized:      true,
	})
	require.NoError(t, err)

	move, err := controller.ChooseMove(board, hex.Blue)
	require.NoError(t, err)
	assert.True(t, board.IsValidMove(move.Row, move.Col))
}

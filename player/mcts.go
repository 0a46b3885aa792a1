package player

import (
	"hexmcts/hex"
	"hexmcts/mcts"
)

// MCTS adapts the search controller to the Player capability. A fresh
// mcts.Controller is built for every call: there is no tree reuse
// between decisions.
type MCTS struct {
	Config mcts.Config
}

// NewMCTS builds an MCTS player using cfg for every decision.
func NewMCTS(cfg mcts.Config) *MCTS {
	return &MCTS{Config: cfg}
}

func (m *MCTS) ChooseMove(board *hex.Board, side hex.CellState) (hex.Move, error) {
	controller, err := mcts.NewController(m.Config)
	if err != nil {
		return hex.Move{}, err
	}
	return controller.ChooseMove(board, side)
}

// Package player defines the capability the game loop drives: given a
// board and the side to move, return a legal move. Human reads the move
// from a console; MCTS runs a fresh search and returns what it finds.
package player

import "hexmcts/hex"

// Player is the capability the game loop depends on.
type Player interface {
	ChooseMove(board *hex.Board, side hex.CellState) (hex.Move, error)
}

package main

import (
	"fmt"
	"io"

	"hexmcts/hex"
	"hexmcts/player"
)

// playGame drives the turn loop: print the board, ask the side to move
// for a move, apply it, check for a winner, alternate. This is the thin
// external game-loop collaborator the search core does not itself
// implement.
func playGame(board *hex.Board, players map[hex.CellState]player.Player, out io.Writer) (hex.CellState, error) {
	side := hex.Blue
	for {
		fmt.Fprintln(out, board.String())
		fmt.Fprintf(out, "%s to move.\n", side)

		move, err := players[side].ChooseMove(board, side)
		if err != nil {
			return hex.Empty, err
		}
		if err := board.MakeMove(move.Row, move.Col, side); err != nil {
			return hex.Empty, err
		}

		if winner := board.Winner(); winner != hex.Empty {
			fmt.Fprintln(out, board.String())
			fmt.Fprintf(out, "%s wins!\n", winner)
			return winner, nil
		}

		side = side.Opponent()
	}
}

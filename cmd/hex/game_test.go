package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmcts/hex"
	"hexmcts/player"
)

type scriptedPlayer struct {
	moves []hex.Move
	next  int
}

func (s *scriptedPlayer) ChooseMove(board *hex.Board, side hex.CellState) (hex.Move, error) {
	move := s.moves[s.next]
	s.next++
	return move, nil
}

func TestPlayGameAlternatesSidesAndStopsOnWinner(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)

	blue := &scriptedPlayer{moves: []hex.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}}
	red := &scriptedPlayer{moves: []hex.Move{{Row: 0, Col: 1}, {Row: 0, Col: 2}}}

	var out bytes.Buffer
	winner, err := playGame(board, map[hex.CellState]player.Player{
		hex.Blue: blue,
		hex.Red:  red,
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, hex.Blue, winner)
	assert.Contains(t, out.String(), "B wins!")
}

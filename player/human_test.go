package player

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmcts/hex"
)

func TestHumanChooseMoveParsesRowAndLetterColumn(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)

	in := strings.NewReader("2 b\n")
	var out bytes.Buffer
	h := NewHuman(in, &out)

	move, err := h.ChooseMove(board, hex.Blue)
	require.NoError(t, err)
	assert.Equal(t, hex.Move{Row: 1, Col: 1}, move)
}

func TestHumanChooseMoveRetriesOnMalformedInput(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)

	in := strings.NewReader("not a move\nzz\n1 a\n")
	var out bytes.Buffer
	h := NewHuman(in, &out)

	move, err := h.ChooseMove(board, hex.Blue)
	require.NoError(t, err)
	assert.Equal(t, hex.Move{Row: 0, Col: 0}, move)
	assert.Contains(t, out.String(), "try again")
}

func TestHumanChooseMoveRetriesOnOccupiedCell(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)
	require.NoError(t, board.MakeMove(0, 0, hex.Red))

	in := strings.NewReader("1 a\n1 b\n")
	var out bytes.Buffer
	h := NewHuman(in, &out)

	move, err := h.ChooseMove(board, hex.Blue)
	require.NoError(t, err)
	assert.Equal(t, hex.Move{Row: 0, Col: 1}, move)
}

func TestHumanChooseMoveErrorsWhenStreamCloses(t *testing.T) {
	board, err := hex.NewBoard(3)
	require.NoError(t, err)

	in := strings.NewReader("")
	var out bytes.Buffer
	h := NewHuman(in, &out)

	_, err = h.ChooseMove(board, hex.Blue)
	assert.Error(t, err)
}

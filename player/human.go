package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hexmcts/hex"
	"hexmcts/hexerr"
)

// Human reads a move from an interactive text stream: a 1-indexed row
// number and a lowercase column letter separated by whitespace, e.g.
// "3 b" for row 3, column b. ChooseMove retries locally: malformed or
// illegal input is reported to Out and the prompt repeats.
//
// The scanner is created once and kept across calls: a streaming reader
// like stdin must not be wrapped in a fresh bufio.Scanner on every move,
// since the previous scanner may have already buffered bytes past the
// current line.
type Human struct {
	scanner *bufio.Scanner
	Out     io.Writer
}

// NewHuman builds a Human player reading from in and writing prompts and
// error messages to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{scanner: bufio.NewScanner(in), Out: out}
}

// NewHumanFromScanner builds a Human player that reads from an
// already-constructed scanner, so it can share a console's input stream
// with other prompts without double-buffering.
func NewHumanFromScanner(scanner *bufio.Scanner, out io.Writer) *Human {
	return &Human{scanner: scanner, Out: out}
}

// ChooseMove prompts until it reads a legal move for board.
func (h *Human) ChooseMove(board *hex.Board, side hex.CellState) (hex.Move, error) {
	for {
		fmt.Fprint(h.Out, "Enter the row as a number and the column as a letter, separated by a space: ")
		if !h.scanner.Scan() {
			return hex.Move{}, fmt.Errorf("input stream closed: %w", hexerr.HumanInputError)
		}

		move, err := parseMove(h.scanner.Text(), board.Size())
		if err != nil {
			fmt.Fprintf(h.Out, "%v, try again\n", err)
			continue
		}
		if !board.IsValidMove(move.Row, move.Col) {
			fmt.Fprintln(h.Out, "that cell is already taken, try again")
			continue
		}
		return move, nil
	}
}

func parseMove(line string, boardSize int) (hex.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return hex.Move{}, fmt.Errorf("expected a row and a column, e.g. \"3 b\": %w", hexerr.HumanInputError)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return hex.Move{}, fmt.Errorf("row must be a number: %w", hexerr.HumanInputError)
	}
	if row < 1 || row > boardSize {
		return hex.Move{}, fmt.Errorf("row must be between 1 and %d: %w", boardSize, hexerr.HumanInputError)
	}

	col := strings.ToLower(fields[1])
	if len(col) != 1 || col[0] < 'a' || int(col[0]-'a') >= boardSize {
		return hex.Move{}, fmt.Errorf("column must be a letter between a and %c: %w", byte('a'+boardSize-1), hexerr.HumanInputError)
	}

	return hex.Move{Row: row - 1, Col: int(col[0] - 'a')}, nil
}

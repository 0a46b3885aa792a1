package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hexmcts/hex"
	"hexmcts/player"
)

type console struct {
	scanner *bufio.Scanner
	out     io.Writer
	presets []preset
}

func newConsole(in io.Reader, out io.Writer, presets []preset) *console {
	return &console{scanner: bufio.NewScanner(in), out: out, presets: presets}
}

// run is the top-level console loop. Every fatal error from a match
// prints a single line and returns control here, per the "fatal errors
// print a single line; the console menu then returns to its top-level
// prompt" user-visible failure behavior.
func (c *console) run() {
	fmt.Fprint(c.out, welcomeBanner)

	for {
		fmt.Fprint(c.out, "\n1) Play against the robot\n2) Robot vs robot\n3) Human vs human\n4) Rules\n5) Quit\n> ")
		choice := c.promptIntBounded("", 1, 5)

		switch choice {
		case 1:
			c.runMatch(map[hex.CellState]player.Player{
				hex.Blue: player.NewHumanFromScanner(c.scanner, c.out),
				hex.Red:  player.NewMCTS(c.choosePreset().toConfig()),
			})
		case 2:
			cfg := c.choosePreset().toConfig()
			c.runMatch(map[hex.CellState]player.Player{
				hex.Blue: player.NewMCTS(cfg),
				hex.Red:  player.NewMCTS(cfg),
			})
		case 3:
			c.runMatch(map[hex.CellState]player.Player{
				hex.Blue: player.NewHumanFromScanner(c.scanner, c.out),
				hex.Red:  player.NewHumanFromScanner(c.scanner, c.out),
			})
		case 4:
			fmt.Fprint(c.out, rulesText)
		case 5:
			fmt.Fprint(c.out, exitBanner)
			return
		}
	}
}

func (c *console) runMatch(players map[hex.CellState]player.Player) {
	size := c.promptIntBounded("Board size", hex.MinSize, hex.MaxSize)
	board, err := hex.NewBoard(size)
	if err != nil {
		fmt.Fprintln(c.out, err.Error())
		return
	}

	if _, err := playGame(board, players, c.out); err != nil {
		fmt.Fprintln(c.out, err.Error())
	}
}

// Bounds for the custom-agent prompts: at least a tenth of a second to
// think, and an exploration constant between 0.1 and 2.0.
const (
	minCustomDecisionTimeMS = 100
	maxCustomDecisionTimeMS = 3600000
	minCustomExploration    = 0.1
	maxCustomExploration    = 2.0
)

// choosePreset offers the named difficulty presets plus a "custom" entry
// that builds an mcts.Config from bounded, re-prompting console input
// instead of a fixed profile.
func (c *console) choosePreset() preset {
	fmt.Fprintln(c.out, "Choose a difficulty:")
	for i, p := range c.presets {
		fmt.Fprintf(c.out, "%d) %s\n", i+1, p.Name)
	}
	customChoice := len(c.presets) + 1
	fmt.Fprintf(c.out, "%d) custom\n", customChoice)

	idx := c.promptIntBounded("> ", 1, customChoice)
	if idx == customChoice {
		return c.customPreset()
	}
	return c.presets[idx-1]
}

// customPreset prompts for each MCTS parameter in turn, re-prompting on
// unparsable or out-of-range input, matching the bounded-parameter agent
// setup prompts.
func (c *console) customPreset() preset {
	decisionTimeMS := c.promptIntBounded("Max decision time in ms", minCustomDecisionTimeMS, maxCustomDecisionTimeMS)
	exploration := c.promptFloatBounded("Exploration constant", minCustomExploration, maxCustomExploration)
	parallelized := c.promptYesNo("Parallelize the agent? (y/n): ")

	verbose := false
	if !parallelized {
		verbose = c.promptYesNo("Enable verbose mode? (y/n): ")
	}

	return preset{
		Name:              "custom",
		ExplorationFactor: exploration,
		DecisionTimeMS:    decisionTimeMS,
		Parallelized:      parallelized,
		Verbose:           verbose,
	}
}

// promptIntBounded re-prompts on unparsable or out-of-range input, so a
// malformed console entry is recovered locally (as in promptFloatBounded
// and promptYesNo).
func (c *console) promptIntBounded(label string, lower, upper int) int {
	for {
		if label != "" {
			fmt.Fprintf(c.out, "%s (%d-%d): ", label, lower, upper)
		}
		if !c.scanner.Scan() {
			// Input stream closed: fall back to the lower bound rather
			// than loop forever against an exhausted reader.
			return lower
		}
		text := strings.TrimSpace(c.scanner.Text())
		value, err := strconv.Atoi(text)
		if err != nil || value < lower || value > upper {
			fmt.Fprintf(c.out, "enter a number between %d and %d\n", lower, upper)
			continue
		}
		return value
	}
}

// promptFloatBounded is promptIntBounded's floating-point counterpart,
// used for the exploration constant.
func (c *console) promptFloatBounded(label string, lower, upper float64) float64 {
	for {
		fmt.Fprintf(c.out, "%s (%v-%v): ", label, lower, upper)
		if !c.scanner.Scan() {
			return lower
		}
		text := strings.TrimSpace(c.scanner.Text())
		value, err := strconv.ParseFloat(text, 64)
		if err != nil || value < lower || value > upper {
			fmt.Fprintf(c.out, "enter a number between %v and %v\n", lower, upper)
			continue
		}
		return value
	}
}

// promptYesNo re-prompts until it sees a leading 'y' or 'n' (case
// insensitive).
func (c *console) promptYesNo(label string) bool {
	for {
		fmt.Fprint(c.out, label)
		if !c.scanner.Scan() {
			return false
		}
		text := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
		if strings.HasPrefix(text, "y") {
			return true
		}
		if strings.HasPrefix(text, "n") {
			return false
		}
		fmt.Fprintln(c.out, "please answer y or n")
	}
}

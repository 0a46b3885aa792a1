// Command hex is the console front-end around the MCTS engine: the
// interactive menu, human input parsing, ASCII banners, and the
// turn-alternation game loop. The search itself lives in package mcts;
// this binary only wires players together and drives the game loop.
package main

import (
	"fmt"
	"os"
)

func main() {
	presets, err := loadPresets()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	newConsole(os.Stdin, os.Stdout, presets).run()
}

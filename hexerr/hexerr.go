// Package hexerr defines the error taxonomy shared by hex and mcts.
//
// Callers distinguish kinds with errors.Is against the sentinels below;
// constructors wrap them with context via fmt.Errorf's %w verb.
package hexerr

import "errors"

var (
	// InvalidArgument marks a programming defect: an out-of-range board
	// size, an out-of-bounds move, or a move onto an occupied cell.
	InvalidArgument = errors.New("invalid argument")

	// ConfigurationError marks a search configuration that cannot be
	// honored, such as combining parallel playouts with verbose logging.
	ConfigurationError = errors.New("configuration error")

	// InsufficientBudget marks a decision deadline too short for even one
	// playout to complete, so no child of the root carries a statistic.
	InsufficientBudget = errors.New("insufficient budget")

	// HumanInputError marks malformed console input. player.Human's
	// input-reading loop recovers from it locally; only when the input
	// stream closes does Human.ChooseMove return it to the caller.
	HumanInputError = errors.New("invalid input")
)

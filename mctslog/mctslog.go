// Package mctslog provides the process-wide, thread-safe trace sink the
// MCTS controller writes to. It is a singleton guarded by sync.Once:
// verbosity is fixed at whichever Acquire call happens first and is
// immutable afterward, rather than something a caller can reconfigure
// later.
package mctslog

import (
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"hexmcts/hex"
)

var (
	once     sync.Once
	instance *Logger
)

// Logger serializes every write with a mutex, in addition to whatever
// atomicity zerolog's own writer already offers, so a multi-field
// decision summary never interleaves with another goroutine's line.
type Logger struct {
	mu      sync.Mutex
	zl      zerolog.Logger
	verbose bool
}

// Acquire returns the process-wide Logger, creating it on first call with
// the given verbosity. Later calls ignore their verbose argument and
// return the already-constructed instance.
func Acquire(verbose bool) *Logger {
	once.Do(func() {
		var writer zerolog.ConsoleWriter
		if isatty.IsTerminal(os.Stdout.Fd()) {
			writer = zerolog.ConsoleWriter{Out: colorable.NewColorableStdout()}
		} else {
			writer = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}
		}
		instance = &Logger{
			zl:      zerolog.New(writer).With().Timestamp().Logger(),
			verbose: verbose,
		}
	})
	return instance
}

// Verbose reports the verbosity captured at first acquisition.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Thinking emits the "thinking" breadcrumb at the start of a decision.
// Unlike every other method here, it always prints: it is a user-facing
// signal that a decision is underway, not a diagnostic.
func (l *Logger) Thinking(side hex.CellState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose {
		l.zl.Info().Str("side", side.String()).Msg("MCTS thinking")
	} else {
		l.zl.Info().Msg("Thinking silently...")
	}
}

func (l *Logger) ExpandedChild(move hex.Move) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Debug().Int("row", move.Row).Int("col", move.Col).Msg("expanded root child")
}

func (l *Logger) SelectedChild(move hex.Move, uctScore float64) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Debug().Int("row", move.Row).Int("col", move.Col).Float64("uct", uctScore).Msg("selected child for playout")
}

func (l *Logger) SimulationStep(player hex.CellState, move hex.Move) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Debug().Str("player", player.String()).Int("row", move.Row).Int("col", move.Col).Msg("random playout step")
}

func (l *Logger) BackpropagationStep(move hex.Move, winCount, visitCount int) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Debug().Int("row", move.Row).Int("col", move.Col).Int("wins", winCount).Int("visits", visitCount).Msg("backpropagated result")
}

func (l *Logger) RootStats(visitCount, winCount, childCount int) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Debug().Int("visits", visitCount).Int("wins", winCount).Int("children", childCount).Msg("root stats after backpropagation")
}

func (l *Logger) DecisionEnd(iterations int, move hex.Move, winRatio float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose {
		l.zl.Info().Int("iterations", iterations).Int("row", move.Row).Int("col", move.Col).Float64("winRatio", winRatio).Msg("chose move")
	}
}

// Package alphabeta finds the best Kalah move with a depth-limited minimax
// search and alpha-beta pruning. The root moves are searched in parallel.
package alphabeta

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/domino14/mancala/config"
	"github.com/domino14/mancala/equity"
)

// Infinity bounds every score; evaluations never get close to it.
const Infinity = int16(math.MaxInt16)

var (
	ErrInvalidDepth = errors.New("search depth must not be negative")
	ErrNoMoves      = errors.New("side to move has no legal move")
	ErrTaskFailed   = errors.New("root search task failed")
)

// Result is the move chosen at the root and the score it leads to.
type Result struct {
	Pit   int
	Score int16
}

// Solver searches Kalah positions. Side B maximizes the evaluation and side A
// minimizes it.
type Solver struct {
	evaluator      equity.Evaluator
	threads        int
	disablePruning bool

	nodes atomic.Uint64
}

// NewSolver returns a solver set up from cfg. It evaluates positions by store
// difference.
func NewSolver(cfg *config.Config) *Solver {
	s := &Solver{
		evaluator: equity.StoreDifference{},
		threads:   config.MaxThreads,
	}
	if cfg != nil {
		s.threads = cfg.Threads()
		s.disablePruning = !cfg.GetBool(config.ConfigPrune)
	}
	return s
}

func (s *Solver) SetEvaluator(e equity.Evaluator) {
	s.evaluator = e
}

// SetThreads sets how many root moves are searched at once.
func (s *Solver) SetThreads(threads int) {
	s.threads = min(max(threads, 1), config.MaxThreads)
}

// SetPruning turns alpha-beta cutoffs on or off. With pruning off the solver
// does a plain full-width minimax, which returns the same scores.
func (s *Solver) SetPruning(on bool) {
	s.disablePruning = !on
}

// Nodes is the number of positions visited since the solver was created.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

package turnplayer

import (
	"context"

	"github.com/domino14/mancala/alphabeta"
	"github.com/domino14/mancala/board"
	"github.com/domino14/mancala/config"
)

// SearchPlayer asks the solver for the best move.
type SearchPlayer struct {
	solver *alphabeta.Solver
	depth  int
}

func NewSearchPlayer(solver *alphabeta.Solver, depth int) *SearchPlayer {
	return &SearchPlayer{solver: solver, depth: depth}
}

// SearchPlayerFromConfig builds a solver and depth from cfg.
func SearchPlayerFromConfig(cfg *config.Config) *SearchPlayer {
	return NewSearchPlayer(alphabeta.NewSolver(cfg), cfg.GetInt(config.ConfigDepth))
}

func (p *SearchPlayer) ProposeMove(ctx context.Context, b board.Board, side board.Side) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := p.solver.BestMove(b, side, p.depth)
	if err != nil {
		return 0, err
	}
	return res.Pit, nil
}

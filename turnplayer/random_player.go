package turnplayer

import (
	"context"

	"lukechampine.com/frand"

	"github.com/domino14/mancala/alphabeta"
	"github.com/domino14/mancala/board"
)

// RandomPlayer picks uniformly among the legal pits.
type RandomPlayer struct {
	rng *frand.RNG
}

// NewRandomPlayer uses rng for its choices, or the global frand source if
// rng is nil.
func NewRandomPlayer(rng *frand.RNG) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

func (p *RandomPlayer) ProposeMove(ctx context.Context, b board.Board, side board.Side) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	legal := b.LegalPits(side)
	if len(legal) == 0 {
		return 0, alphabeta.ErrNoMoves
	}
	if p.rng == nil {
		return legal[frand.Intn(len(legal))], nil
	}
	return legal[p.rng.Intn(len(legal))], nil
}

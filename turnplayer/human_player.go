package turnplayer

import (
	"context"
	"fmt"

	"github.com/domino14/mancala/board"
)

// PitSource supplies a pit chosen outside the program, e.g. typed by a
// person. Turning their input into a pit index is up to the source.
type PitSource interface {
	NextPit(ctx context.Context, b board.Board, side board.Side) (int, error)
}

// HumanPlayer relays moves from a PitSource. A move that is not legal is
// returned as an error rather than replaced by another pit.
type HumanPlayer struct {
	source PitSource
}

func NewHumanPlayer(source PitSource) *HumanPlayer {
	return &HumanPlayer{source: source}
}

func (p *HumanPlayer) ProposeMove(ctx context.Context, b board.Board, side board.Side) (int, error) {
	pit, err := p.source.NextPit(ctx, b, side)
	if err != nil {
		return 0, err
	}
	// b is a copy; the caller's board is not touched.
	if _, err := b.ApplyMove(pit, side); err != nil {
		return 0, fmt.Errorf("human move rejected: %w", err)
	}
	return pit, nil
}

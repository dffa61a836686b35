// Package turnplayer has the things that can pick a move for one side: a
// searching bot, a random mover and a human behind some input source.
package turnplayer

import (
	"context"

	"github.com/domino14/mancala/board"
)

// MoveProposer picks the pit that side should sow from on b.
type MoveProposer interface {
	ProposeMove(ctx context.Context, b board.Board, side board.Side) (int, error)
}

var (
	_ MoveProposer = (*SearchPlayer)(nil)
	_ MoveProposer = (*RandomPlayer)(nil)
	_ MoveProposer = (*HumanPlayer)(nil)
)

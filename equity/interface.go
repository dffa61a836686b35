package equity

import "github.com/domino14/mancala/board"

// Evaluator scores a position without searching any further. Positive scores
// favour side B and negative scores favour side A.
type Evaluator interface {
	Evaluate(b board.Board) int16
}

package equity

import "github.com/domino14/mancala/board"

// StoreDifference is the material count: side B's store minus side A's.
type StoreDifference struct{}

func (StoreDifference) Evaluate(b board.Board) int16 {
	return int16(b[board.StoreB]) - int16(b[board.StoreA])
}

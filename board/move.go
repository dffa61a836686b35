package board

import "fmt"

// Opposite returns the pit facing idx across the board.
func Opposite(idx int) int {
	return 2*NumPits - idx
}

// ApplyMove sows the stones from pit for side turn and returns the side that
// moves next. The board is left untouched if the move is illegal or the board
// holds more than MaxStones.
//
// Stones are dropped one per slot going around the board, skipping the
// opponent's store. A last stone in the mover's store earns another turn. A
// last stone in one of the mover's empty pits captures it together with the
// opposite pit, provided the opposite pit is not empty.
func (b *Board) ApplyMove(pit int, turn Side) (Side, error) {
	if err := b.Validate(); err != nil {
		return turn, err
	}
	if !turn.Owns(pit) {
		return turn, fmt.Errorf("%w: pit %d does not belong to side %v", ErrInvalidMove, pit, turn)
	}
	if b[pit] == 0 {
		return turn, fmt.Errorf("%w: pit %d is empty", ErrInvalidMove, pit)
	}
	skip := turn.Other().Store()

	count := b[pit]
	b[pit] = 0
	idx := pit
	for count > 0 {
		idx = (idx + 1) % Length
		if idx == skip {
			continue
		}
		b[idx]++
		count--
	}

	if idx == turn.Store() {
		return turn, nil
	}
	if turn.Owns(idx) && b[idx] == 1 {
		opp := Opposite(idx)
		if b[opp] > 0 {
			b[turn.Store()] += b[opp] + 1
			b[idx] = 0
			b[opp] = 0
		}
	}
	return turn.Other(), nil
}

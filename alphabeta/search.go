package alphabeta

import (
	"github.com/domino14/mancala/board"
)

/*
function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, next))
            if value ≥ β then
                break (* β cut-off *)
            α := max(α, value)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, next))
            if value ≤ α then
                break (* α cut-off *)
            β := min(β, value)
        return value

"next" is whoever moves after the child move; an extra turn keeps the same
player.
*/

// Search returns the minimax value of b with turn to move, looking depth
// plies ahead. b is passed by value and every child is played on its own
// copy, so the caller's board is never touched.
//
// A finished game is swept and scored before depth is looked at.
func (s *Solver) Search(b board.Board, turn board.Side, depth int, α, β int16) int16 {
	s.nodes.Add(1)

	if b.IsTerminal() {
		return s.evaluator.Evaluate(b.SweepRemaining())
	}
	if depth == 0 {
		return s.evaluator.Evaluate(b)
	}

	first := turn.FirstPit()
	if turn == board.SideA {
		value := Infinity
		for pit := first; pit < first+board.NumPits; pit++ {
			if b[pit] == 0 {
				continue
			}
			child := b
			next := mustApply(&child, pit, turn)
			value = min(value, s.Search(child, next, depth-1, α, β))
			if !s.disablePruning && value <= α {
				break // α cut-off
			}
			β = min(β, value)
		}
		return value
	}

	value := -Infinity
	for pit := first; pit < first+board.NumPits; pit++ {
		if b[pit] == 0 {
			continue
		}
		child := b
		next := mustApply(&child, pit, turn)
		value = max(value, s.Search(child, next, depth-1, α, β))
		if !s.disablePruning && value >= β {
			break // β cut-off
		}
		α = max(α, value)
	}
	return value
}

// mustApply plays a move the search already knows to be legal. A failure
// here is a bug; the panic is turned into an error by the root task.
func mustApply(b *board.Board, pit int, turn board.Side) board.Side {
	next, err := b.ApplyMove(pit, turn)
	if err != nil {
		panic(err)
	}
	return next
}

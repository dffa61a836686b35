package alphabeta

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/mancala/board"
)

// BestMove picks the move for turn by searching depth plies. Each legal root
// move gets its own goroutine and its own copy of b, and searches with the
// full (-Infinity, Infinity) window; siblings do not share bounds. Once every
// goroutine is done, the best score wins and ties go to the lowest pit.
//
// With depth 0 nothing is searched: the lowest legal pit is returned along
// with the depth-0 value of b, which is swept first if the game is over.
//
// A position where the opponent has run out of stones is still searched as
// long as turn has a legal pit.
func (s *Solver) BestMove(b board.Board, turn board.Side, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	legal := b.LegalPits(turn)
	if len(legal) == 0 {
		return Result{}, fmt.Errorf("%w: side %v on %v", ErrNoMoves, turn, b)
	}
	if depth == 0 {
		return Result{Pit: legal[0], Score: s.Search(b, turn, 0, -Infinity, Infinity)}, nil
	}

	tstart := time.Now()
	nodesBefore := s.nodes.Load()
	scores := make([]int16, len(legal))

	g := errgroup.Group{}
	g.SetLimit(s.threads)
	for i, pit := range legal {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: pit %d: %v", ErrTaskFailed, pit, r)
				}
			}()
			child := b
			next, err := child.ApplyMove(pit, turn)
			if err != nil {
				return err
			}
			scores[i] = s.Search(child, next, depth-1, -Infinity, Infinity)
			log.Debug().Int("pit", pit).Int16("score", scores[i]).Int("depth", depth).
				Msg("root-move-searched")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := Result{Pit: legal[0], Score: scores[0]}
	for i := 1; i < len(legal); i++ {
		if better(turn, scores[i], best.Score) {
			best = Result{Pit: legal[i], Score: scores[i]}
		}
	}
	log.Info().Str("side", turn.String()).Int("pit", best.Pit).Int16("score", best.Score).
		Int("depth", depth).Uint64("nodes", s.nodes.Load()-nodesBefore).
		Dur("elapsed", time.Since(tstart)).Msg("best-move")
	return best, nil
}

// better reports whether score a strictly beats b for the side to move.
func better(turn board.Side, a, b int16) bool {
	if turn == board.SideA {
		return a < b
	}
	return a > b
}

package turnplayer

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/domino14/mancala/alphabeta"
	"github.com/domino14/mancala/board"
	"github.com/domino14/mancala/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

type fixedSource struct {
	pits []int
	err  error
}

func (f *fixedSource) NextPit(ctx context.Context, b board.Board, side board.Side) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	p := f.pits[0]
	f.pits = f.pits[1:]
	return p, nil
}

func TestSearchPlayer(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDepth, 1)
	p := SearchPlayerFromConfig(&cfg)

	b, err := board.Parse("0 0 0 0 5 0 / 0 / 1 0 0 0 0 1 / 0")
	is.NoErr(err)
	pit, err := p.ProposeMove(context.Background(), b, board.SideB)
	is.NoErr(err)
	is.Equal(pit, 7)

	// A is out of stones; B still plays its last pit.
	done := board.Board{0, 0, 0, 0, 0, 0, 20, 3, 0, 0, 0, 0, 0, 25}
	pit, err = p.ProposeMove(context.Background(), done, board.SideB)
	is.NoErr(err)
	is.Equal(pit, 7)
	_, err = p.ProposeMove(context.Background(), done, board.SideA)
	is.True(errors.Is(err, alphabeta.ErrNoMoves))
}

func TestSearchPlayerHonoursCanceledContext(t *testing.T) {
	is := is.New(t)
	p := NewSearchPlayer(alphabeta.NewSolver(nil), 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, _ := board.NewBoard(4)
	_, err := p.ProposeMove(ctx, b, board.SideA)
	is.True(errors.Is(err, context.Canceled))
}

func TestRandomPlayerOnlyPicksLegalPits(t *testing.T) {
	is := is.New(t)
	seed := make([]byte, 32)
	p := NewRandomPlayer(frand.NewCustom(seed, 1024, 12))
	b, err := board.Parse("0 3 0 0 1 0 / 0 / 1 1 1 1 1 1 / 0")
	is.NoErr(err)

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		pit, err := p.ProposeMove(context.Background(), b, board.SideA)
		is.NoErr(err)
		is.True(pit == 1 || pit == 4)
		seen[pit] = true
	}
	is.Equal(len(seen), 2) // both pits get picked eventually
}

func TestRandomPlayerGlobalSource(t *testing.T) {
	is := is.New(t)
	p := NewRandomPlayer(nil)
	b, _ := board.NewBoard(4)
	pit, err := p.ProposeMove(context.Background(), b, board.SideB)
	is.NoErr(err)
	is.True(board.SideB.Owns(pit))

	_, err = p.ProposeMove(context.Background(), board.Board{}, board.SideB)
	is.True(errors.Is(err, alphabeta.ErrNoMoves))
}

func TestHumanPlayer(t *testing.T) {
	is := is.New(t)
	b, err := board.Parse("0 3 0 0 1 0 / 0 / 1 1 1 1 1 1 / 0")
	is.NoErr(err)
	src := &fixedSource{pits: []int{4, 0, 8}}
	p := NewHumanPlayer(src)

	pit, err := p.ProposeMove(context.Background(), b, board.SideA)
	is.NoErr(err)
	is.Equal(pit, 4)

	// empty pit
	_, err = p.ProposeMove(context.Background(), b, board.SideA)
	is.True(errors.Is(err, board.ErrInvalidMove))
	// other side's pit
	_, err = p.ProposeMove(context.Background(), b, board.SideA)
	is.True(errors.Is(err, board.ErrInvalidMove))

	// the board handed in is not changed by the check
	is.Equal(b.String(), "0 3 0 0 1 0 / 0 / 1 1 1 1 1 1 / 0")

	boom := errors.New("stdin closed")
	_, err = NewHumanPlayer(&fixedSource{err: boom}).ProposeMove(context.Background(), b, board.SideA)
	is.True(errors.Is(err, boom))
}

// Plays whole games between the proposers, the way a driving loop would.
func TestProposersPlayFullGames(t *testing.T) {
	is := is.New(t)
	seed := make([]byte, 32)
	seed[0] = 3
	players := map[board.Side]MoveProposer{
		board.SideA: NewRandomPlayer(frand.NewCustom(seed, 1024, 12)),
		board.SideB: NewSearchPlayer(alphabeta.NewSolver(nil), 3),
	}
	for game := 0; game < 5; game++ {
		b, err := board.NewBoard(3)
		is.NoErr(err)
		turn := board.SideA
		for !b.IsTerminal() {
			pit, err := players[turn].ProposeMove(context.Background(), b, turn)
			is.NoErr(err)
			turn, err = b.ApplyMove(pit, turn)
			is.NoErr(err)
		}
		final := b.SweepRemaining()
		is.Equal(final.Store(board.SideA)+final.Store(board.SideB), 36)
	}
}

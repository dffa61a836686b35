package equity

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/mancala/board"
)

func TestOpeningIsEven(t *testing.T) {
	is := is.New(t)
	b, err := board.NewBoard(4)
	is.NoErr(err)
	is.Equal(StoreDifference{}.Evaluate(b), int16(0))
}

func TestStoreDifferenceSign(t *testing.T) {
	is := is.New(t)
	var e Evaluator = StoreDifference{}

	b := board.Board{0, 0, 0, 0, 0, 0, 30, 0, 0, 0, 0, 0, 0, 18}
	is.Equal(e.Evaluate(b), int16(-12))

	b = board.Board{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 255 - 1}
	is.Equal(e.Evaluate(b), int16(254))

	b = board.Board{0, 0, 0, 0, 0, 0, 255}
	is.Equal(e.Evaluate(b), int16(-255))
}

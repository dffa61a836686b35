// Package board holds the Kalah position and the rules for changing it.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	// NumPits is the number of playing pits per side.
	NumPits = 6
	// Length is the number of counters on the board: two rows of pits
	// plus a store for each side.
	Length = 2*NumPits + 2

	StoreA = NumPits
	StoreB = Length - 1

	// MaxStones is the most stones a board may hold in total. Every stone can
	// end up in a single store, so the total has to fit in one counter.
	MaxStones = 255
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrScoreOverflow = errors.New("too many stones on the board")
	ErrBadNotation   = errors.New("bad board notation")
)

// Side is one of the two players. Side A sits on pits 0-5 and minimizes the
// evaluation; side B sits on pits 7-12 and maximizes it.
type Side uint8

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "a"
	}
	return "b"
}

// Other returns the opponent.
func (s Side) Other() Side {
	return 1 - s
}

// Store returns the index of this side's store.
func (s Side) Store() int {
	if s == SideA {
		return StoreA
	}
	return StoreB
}

// FirstPit returns the index of this side's lowest pit. The side owns
// FirstPit() through FirstPit()+NumPits-1.
func (s Side) FirstPit() int {
	if s == SideA {
		return 0
	}
	return StoreA + 1
}

// Owns reports whether idx is one of this side's playing pits.
func (s Side) Owns(idx int) bool {
	first := s.FirstPit()
	return idx >= first && idx < first+NumPits
}

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "0":
		return SideA, nil
	case "b", "1":
		return SideB, nil
	}
	return SideA, fmt.Errorf("unknown side %q", s)
}

// Board is a Kalah position. It is an array, so a plain assignment makes an
// independent copy.
type Board [Length]uint8

// NewBoard returns an opening position with stonesPerPit stones in every
// playing pit.
func NewBoard(stonesPerPit int) (Board, error) {
	var b Board
	if stonesPerPit < 0 {
		return b, fmt.Errorf("negative stones per pit: %d", stonesPerPit)
	}
	if 2*NumPits*stonesPerPit > MaxStones {
		return b, fmt.Errorf("%w: %d per pit is %d in total, limit is %d",
			ErrScoreOverflow, stonesPerPit, 2*NumPits*stonesPerPit, MaxStones)
	}
	for i := 0; i < NumPits; i++ {
		b[SideA.FirstPit()+i] = uint8(stonesPerPit)
		b[SideB.FirstPit()+i] = uint8(stonesPerPit)
	}
	return b, nil
}

// FromCounts builds a board from 14 counters laid out in board order.
func FromCounts(counts []int) (Board, error) {
	var b Board
	if len(counts) != Length {
		return b, fmt.Errorf("%w: need %d counters, got %d", ErrBadNotation, Length, len(counts))
	}
	total := 0
	for i, c := range counts {
		if c < 0 {
			return b, fmt.Errorf("%w: negative count %d at index %d", ErrBadNotation, c, i)
		}
		total += c
		if total > MaxStones {
			return b, fmt.Errorf("%w: limit is %d", ErrScoreOverflow, MaxStones)
		}
		b[i] = uint8(c)
	}
	return b, nil
}

// Total is the number of stones on the board, stores included.
func (b Board) Total() int {
	return lo.SumBy(b[:], func(c uint8) int { return int(c) })
}

// Store returns the number of stones in a side's store.
func (b Board) Store(s Side) int {
	return int(b[s.Store()])
}

// LegalPits returns the board indices a side may sow from, in ascending
// order.
func (b Board) LegalPits(s Side) []int {
	first := s.FirstPit()
	return lo.Filter(lo.RangeFrom(first, NumPits), func(idx int, _ int) bool {
		return b[idx] > 0
	})
}

// Empty reports whether every playing pit of a side is empty.
func (b Board) Empty(s Side) bool {
	first := s.FirstPit()
	for i := first; i < first+NumPits; i++ {
		if b[i] != 0 {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the game is over, i.e. either side has no
// stones left in its pits.
func (b Board) IsTerminal() bool {
	return b.Empty(SideA) || b.Empty(SideB)
}

// sweep moves every stone in a side's pits into its own store.
func (b *Board) sweep(s Side) {
	first := s.FirstPit()
	store := s.Store()
	for i := first; i < first+NumPits; i++ {
		b[store] += b[i]
		b[i] = 0
	}
}

// SweepRemaining finalises a finished game. If side A has run out of stones,
// side B collects everything left in its pits, and vice versa. A board that
// is not terminal comes back unchanged.
func (b Board) SweepRemaining() Board {
	switch {
	case b.Empty(SideA):
		b.sweep(SideB)
	case b.Empty(SideB):
		b.sweep(SideA)
	}
	return b
}

// Validate checks that the board can be searched without overflowing a
// counter or the evaluation.
func (b Board) Validate() error {
	if t := b.Total(); t > MaxStones {
		return fmt.Errorf("%w: %d stones, limit is %d", ErrScoreOverflow, t, MaxStones)
	}
	return nil
}

// String returns the board in the notation accepted by Parse:
// side A's pits, side A's store, side B's pits, side B's store.
func (b Board) String() string {
	var sb strings.Builder
	writeRun := func(from, to int) {
		for i := from; i < to; i++ {
			if i > from {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(b[i])))
		}
	}
	writeRun(0, StoreA)
	sb.WriteString(" / ")
	writeRun(StoreA, StoreA+1)
	sb.WriteString(" / ")
	writeRun(StoreA+1, StoreB)
	sb.WriteString(" / ")
	writeRun(StoreB, Length)
	return sb.String()
}

// Parse reads a board written as
//
//	4 4 4 4 4 4 / 0 / 4 4 4 4 4 4 / 0
//
// which is side A's six pits, side A's store, side B's six pits and side B's
// store.
func Parse(notation string) (Board, error) {
	var b Board
	groups := strings.Split(notation, "/")
	if len(groups) != 4 {
		return b, fmt.Errorf("%w: expected 4 groups separated by '/', got %d", ErrBadNotation, len(groups))
	}
	wantLen := []int{NumPits, 1, NumPits, 1}
	counts := make([]int, 0, Length)
	for gi, g := range groups {
		fields := strings.Fields(g)
		if len(fields) != wantLen[gi] {
			return b, fmt.Errorf("%w: group %d has %d counters, expected %d",
				ErrBadNotation, gi+1, len(fields), wantLen[gi])
		}
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return b, fmt.Errorf("%w: %q is not a number", ErrBadNotation, f)
			}
			counts = append(counts, n)
		}
	}
	return FromCounts(counts)
}

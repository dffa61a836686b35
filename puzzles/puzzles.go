// Package puzzles loads suites of positions with known answers and solves
// them in a batch.
package puzzles

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/mancala/alphabeta"
	"github.com/domino14/mancala/board"
	"github.com/domino14/mancala/stats"
)

var ErrBadSuite = errors.New("bad puzzle suite")

// Position is one entry of a suite. Depth overrides the suite depth when
// set; ExpectPit and ExpectScore are checked when present.
type Position struct {
	Name        string `yaml:"name"`
	Board       string `yaml:"board"`
	Turn        string `yaml:"turn"`
	Depth       *int   `yaml:"depth,omitempty"`
	ExpectPit   *int   `yaml:"expect_pit,omitempty"`
	ExpectScore *int   `yaml:"expect_score,omitempty"`

	board board.Board
	side  board.Side
}

type Suite struct {
	Depth     int        `yaml:"depth"`
	Positions []Position `yaml:"positions"`
}

// Load reads a YAML suite and checks every position in it.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	suite := &Suite{}
	if err := dec.Decode(suite); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSuite, err)
	}
	if suite.Depth < 0 {
		return nil, fmt.Errorf("%w: negative depth %d", ErrBadSuite, suite.Depth)
	}
	if len(suite.Positions) == 0 {
		return nil, fmt.Errorf("%w: no positions", ErrBadSuite)
	}
	for i := range suite.Positions {
		p := &suite.Positions[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("position-%d", i+1)
		}
		var err error
		if p.board, err = board.Parse(p.Board); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadSuite, p.Name, err)
		}
		if p.side, err = board.ParseSide(p.Turn); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadSuite, p.Name, err)
		}
		if p.Depth != nil && *p.Depth < 0 {
			return nil, fmt.Errorf("%w: %s: negative depth %d", ErrBadSuite, p.Name, *p.Depth)
		}
	}
	return suite, nil
}

func (p *Position) depth(suiteDepth int) int {
	if p.Depth != nil {
		return *p.Depth
	}
	return suiteDepth
}

// Outcome is what the solver answered for one position.
type Outcome struct {
	Name    string
	Pit     int
	Score   int16
	Nodes   uint64
	Elapsed time.Duration
	// Checked is false when the position carries no expectations.
	Checked bool
	Passed  bool
}

type Report struct {
	Outcomes []Outcome
	Failed   int
	Scores   stats.Statistic
	Nodes    stats.Statistic
	Seconds  stats.Statistic
}

// Run solves every position in order. A position the solver cannot handle
// stops the run.
func Run(solver *alphabeta.Solver, suite *Suite) (*Report, error) {
	report := &Report{}
	for i := range suite.Positions {
		p := &suite.Positions[i]
		nodesBefore := solver.Nodes()
		tstart := time.Now()
		res, err := solver.BestMove(p.board, p.side, p.depth(suite.Depth))
		if err != nil {
			return report, fmt.Errorf("%s: %w", p.Name, err)
		}
		out := Outcome{
			Name:    p.Name,
			Pit:     res.Pit,
			Score:   res.Score,
			Nodes:   solver.Nodes() - nodesBefore,
			Elapsed: time.Since(tstart),
			Passed:  true,
		}
		if p.ExpectPit != nil {
			out.Checked = true
			out.Passed = out.Passed && *p.ExpectPit == res.Pit
		}
		if p.ExpectScore != nil {
			out.Checked = true
			out.Passed = out.Passed && *p.ExpectScore == int(res.Score)
		}
		if !out.Passed {
			report.Failed++
			log.Warn().Str("name", p.Name).Int("pit", res.Pit).Int16("score", res.Score).
				Msg("puzzle-failed")
		}
		report.Outcomes = append(report.Outcomes, out)
		report.Scores.Push(float64(out.Score))
		report.Nodes.Push(float64(out.Nodes))
		report.Seconds.Push(out.Elapsed.Seconds())
	}
	return report, nil
}

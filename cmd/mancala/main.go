package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/mancala/alphabeta"
	"github.com/domino14/mancala/board"
	"github.com/domino14/mancala/config"
	"github.com/domino14/mancala/puzzles"
)

var (
	GitVersion string
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("Debug logging is on")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run does all the work so that deferred cleanup, the CPU profile included,
// happens before main exits.
func run(args []string) error {
	cfg := &config.Config{}
	fs := config.FlagSet("mancala")
	boardFlag := fs.String("board", "", `position to solve, e.g. "4 4 4 4 4 4 / 0 / 4 4 4 4 4 4 / 0"; defaults to the opening`)
	turnFlag := fs.String("turn", "a", "side to move: a or b")
	suiteFlag := fs.String("suite", "", "YAML file with positions to solve")
	if err := cfg.Load(fs, args); err != nil {
		return err
	}
	setupLogging(cfg)
	log.Info().Str("version", GitVersion).Int("depth", cfg.GetInt(config.ConfigDepth)).
		Int("threads", cfg.Threads()).Bool("prune", cfg.GetBool(config.ConfigPrune)).
		Msg("mancala-solver")

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	solver := alphabeta.NewSolver(cfg)
	var err error
	if *suiteFlag != "" {
		err = solveSuite(solver, *suiteFlag)
	} else {
		err = solvePosition(solver, cfg, *boardFlag, *turnFlag)
	}
	if err != nil {
		log.Error().Err(err).Msg("solve-failed")
	}
	return err
}

func solvePosition(solver *alphabeta.Solver, cfg *config.Config, notation, turn string) error {
	var b board.Board
	var err error
	if notation == "" {
		b, err = board.NewBoard(cfg.GetInt(config.ConfigStonesPerPit))
	} else {
		b, err = board.Parse(notation)
	}
	if err != nil {
		return err
	}
	side, err := board.ParseSide(turn)
	if err != nil {
		return err
	}
	res, err := solver.BestMove(b, side, cfg.GetInt(config.ConfigDepth))
	if err != nil {
		return err
	}
	fmt.Printf("position: %s\nside:     %s\nbest pit: %d\nscore:    %d\n", b, side, res.Pit, res.Score)
	return nil
}

func solveSuite(solver *alphabeta.Solver, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	suite, err := puzzles.Load(f)
	if err != nil {
		return err
	}
	report, err := puzzles.Run(solver, suite)
	if err != nil {
		return err
	}
	for _, o := range report.Outcomes {
		status := "-"
		if o.Checked && o.Passed {
			status = "ok"
		} else if o.Checked {
			status = "FAIL"
		}
		fmt.Printf("%-24s pit %2d  score %4d  nodes %10d  %8s  %s\n",
			o.Name, o.Pit, o.Score, o.Nodes, o.Elapsed.Round(time.Millisecond), status)
	}
	lo, hi := report.Seconds.Interval(95)
	fmt.Printf("\n%d positions, %d failed; mean nodes %.0f; mean time %.3fs (95%% CI %.3f-%.3f)\n",
		len(report.Outcomes), report.Failed, report.Nodes.Mean(), report.Seconds.Mean(), lo, hi)
	if report.Failed > 0 {
		return fmt.Errorf("%d positions failed", report.Failed)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/game"
	"github.com/katalvlaran/salesman/report"
)

type playOptions struct {
	seed    int64
	targets string
	k       int
	route   string
	player  string
	format  string
	budget  float64
}

func newPlayCmd(a *app) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Generate a round, compare all algorithms and grade a route",
		Long: `Generate a board (seeded), pick or accept target cities, run every
configured algorithm and print the comparison. With --route the given
route is graded: it must start and end at the home city and visit every
target exactly once.`,
		Example: `  tspround play --seed 7 --k 5
  tspround play --seed 7 --targets B,E,H --route A,B,E,H,A --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("seed") {
				a.cfg.Round.Seed = opts.seed
			}
			if flags.Changed("k") {
				a.cfg.Round.Targets = opts.k
			}
			if flags.Changed("format") {
				a.cfg.Output.Format = opts.format
			}
			if flags.Changed("budget") {
				a.cfg.Solver.OpsBudget = opts.budget
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.play(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "board seed (0: derived from the clock)")
	f.StringVar(&opts.targets, "targets", "", "comma-separated target cities, e.g. B,C,D")
	f.IntVar(&opts.k, "k", 0, "number of random targets when --targets is empty")
	f.StringVar(&opts.route, "route", "", "route to grade, e.g. A,B,D,C,A")
	f.StringVar(&opts.player, "player", "", "player name recorded in the report")
	f.StringVar(&opts.format, "format", "", "output format: table, yaml or json")
	f.Float64Var(&opts.budget, "budget", 0, "skip algorithms estimated above this many operations (0: unlimited)")

	return cmd
}

func (a *app) play(cmd *cobra.Command, opts playOptions) error {
	cfg := a.cfg

	seed := cfg.Round.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	round, err := game.NewRound(
		game.WithSeed(seed),
		game.WithLabels(cfg.Round.Labels...),
		game.WithDistanceRange(cfg.Round.MinDistance, cfg.Round.MaxDistance),
	)
	if err != nil {
		return err
	}
	a.logger.Info().Int64("seed", seed).Str("home", round.Home).Msg("round generated")

	targets := game.ParseList(opts.targets)
	if len(targets) == 0 {
		if targets, err = round.PickTargets(cfg.Round.Targets); err != nil {
			return err
		}
	}

	algos, err := cfg.Algorithms()
	if err != nil {
		return err
	}
	agg := game.NewAggregator(
		game.WithLogger(a.logger),
		game.WithOpsBudget(cfg.Solver.OpsBudget),
		game.WithAlgorithms(algos...),
	)
	cmp, err := agg.Compare(round.Dist, round.Labels, round.Home, targets)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	var grade *game.Grade
	if opts.route != "" {
		g, err := cmp.Grade(game.ParseList(opts.route))
		if err != nil {
			return fmt.Errorf("grade: %w", err)
		}
		grade = &g
		a.logger.Info().Str("verdict", g.Verdict.String()).Float64("distance", g.Distance).
			Float64("optimal", g.Optimal).Msg("route graded")
	}

	doc, err := report.New(report.Meta{Player: opts.player, Seed: seed}, cmp, grade)
	if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case "yaml":
		b, err := doc.YAML()
		if err != nil {
			return err
		}
		printf(cmd, "%s", b)
	case "json":
		b, err := doc.JSON()
		if err != nil {
			return err
		}
		printf(cmd, "%s\n", b)
	default:
		board, err := report.Board(round.Labels, round.Dist, round.Home)
		if err != nil {
			return err
		}
		printf(cmd, "%s\n\n%s\n", board, report.Table(cmp))
		if grade != nil {
			printf(cmd, "\n%s\n", report.Verdict(*grade))
		}
	}
	if doc.Saveable() {
		a.logger.Info().Str("player", doc.Player).Str("id", doc.ID).Msg("winning round ready to record")
	}

	return nil
}

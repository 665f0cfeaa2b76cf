package game

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
)

// AlgorithmResult is one row of a comparison: a solver outcome expressed in
// labels. It is built once by the aggregator and never modified.
type AlgorithmResult struct {
	Algorithm  tsp.Algorithm
	Route      []string
	Distance   float64
	Elapsed    time.Duration
	Complexity string
}

// Seconds returns Elapsed in seconds, the unit the round UI displays.
func (r AlgorithmResult) Seconds() float64 { return r.Elapsed.Seconds() }

// Comparison is the aggregator output for one request.
type Comparison struct {
	// Home and Targets echo the request in labels.
	Home    string
	Targets []string

	// Results holds one entry per algorithm that ran.
	Results map[tsp.Algorithm]AlgorithmResult

	// Skipped lists algorithms refused by the ops budget, with the reason.
	Skipped map[tsp.Algorithm]error

	// Optimal is the exact minimum distance, used to grade player routes.
	Optimal float64

	// OptimalBy names the exact algorithm Optimal was taken from.
	OptimalBy tsp.Algorithm

	dist    matrix.Matrix
	labels  Labels
	home    int
	targets []int
}

// Ordered returns the results in canonical algorithm order.
func (c *Comparison) Ordered() []AlgorithmResult {
	out := make([]AlgorithmResult, 0, len(c.Results))
	for _, a := range tsp.Algorithms() {
		if r, ok := c.Results[a]; ok {
			out = append(out, r)
		}
	}

	return out
}

// Result returns the row for algo, if it ran.
func (c *Comparison) Result(algo tsp.Algorithm) (AlgorithmResult, bool) {
	r, ok := c.Results[algo]

	return r, ok
}

// Aggregator runs the selected strategies over one request. The zero value
// is not usable; build it with NewAggregator.
type Aggregator struct {
	logger zerolog.Logger
	budget float64
	algos  []tsp.Algorithm
}

// Option customizes an Aggregator. Constructors panic on meaningless
// arguments; Compare itself never panics.
type Option func(*Aggregator)

// WithLogger attaches a logger. Each solver run emits one debug event and
// each budget refusal one warn event.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// WithOpsBudget refuses any algorithm whose tsp.EstimateOps for the
// request exceeds budget. 0 disables the guard. Panics on negative or NaN.
func WithOpsBudget(budget float64) Option {
	if budget < 0 || math.IsNaN(budget) {
		panic(fmt.Sprintf("game: WithOpsBudget(%g)", budget))
	}

	return func(a *Aggregator) { a.budget = budget }
}

// WithAlgorithms restricts the run to algos (in canonical order, duplicates
// ignored). Panics on an empty list or an unknown algorithm.
func WithAlgorithms(algos ...tsp.Algorithm) Option {
	if len(algos) == 0 {
		panic("game: WithAlgorithms()")
	}
	for _, al := range algos {
		if !al.Valid() {
			panic(fmt.Sprintf("game: WithAlgorithms(%s)", al))
		}
	}

	return func(a *Aggregator) {
		a.algos = a.algos[:0]
		for _, al := range tsp.Algorithms() {
			for _, want := range algos {
				if al == want {
					a.algos = append(a.algos, al)
					break
				}
			}
		}
	}
}

// NewAggregator returns an Aggregator running all four strategies with no
// budget and a no-op logger, then applies opts.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		logger: zerolog.Nop(),
		algos:  tsp.Algorithms(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Compare runs all four strategies with default settings.
// See Aggregator.Compare.
func Compare(dist matrix.Matrix, labels Labels, home string, targets []string) (*Comparison, error) {
	return NewAggregator().Compare(dist, labels, home, targets)
}

// Compare translates the labelled request to indices, runs every selected
// strategy and collects the results with routes translated back to labels.
//
// The request is checked before any solver runs: a nil table, a label count
// that does not match the table, an unknown label, home among the targets
// or a repeated target all fail with tsp.ErrInvalidInput (wrapped with the
// specific sentinel). The request is never repaired.
//
// With an ops budget, algorithms over budget are skipped and listed in
// Comparison.Skipped; if that leaves no exact algorithm the call fails with
// tsp.ErrInfeasibleSize.
//
// An empty target set is valid: every route is [home, home], distance 0.
func (a *Aggregator) Compare(dist matrix.Matrix, labels Labels, home string, targets []string) (*Comparison, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return nil, fmt.Errorf("Compare: %w: %w", tsp.ErrInvalidInput, err)
	}
	if labels.Len() != dist.Rows() {
		return nil, fmt.Errorf("Compare: %d labels for a %d×%d table: %w", labels.Len(), dist.Rows(), dist.Cols(), tsp.ErrInvalidInput)
	}
	homeIdx, err := labels.Index(home)
	if err != nil {
		return nil, fmt.Errorf("Compare: home: %w", err)
	}
	targetIdx, err := labels.Indices(targets)
	if err != nil {
		return nil, fmt.Errorf("Compare: targets: %w", err)
	}
	if err = checkTargetLabels(home, targets); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	var (
		k   = len(targetIdx)
		cmp = &Comparison{
			Home:    home,
			Targets: append([]string(nil), targets...),
			Results: make(map[tsp.Algorithm]AlgorithmResult, len(a.algos)),
			Skipped: make(map[tsp.Algorithm]error),
			dist:    dist,
			labels:  labels,
			home:    homeIdx,
			targets: targetIdx,
		}
		run []tsp.Algorithm
	)
	for _, algo := range a.algos {
		if err = tsp.CheckBudget(algo, k, a.budget); err != nil {
			a.logger.Warn().Str("algorithm", algo.String()).Int("k", k).
				Float64("ops", tsp.EstimateOps(algo, k)).Float64("budget", a.budget).
				Msg("solver skipped: over budget")
			cmp.Skipped[algo] = err
			continue
		}
		run = append(run, algo)
	}
	if !anyExact(run) {
		if len(cmp.Skipped) > 0 {
			return nil, fmt.Errorf("Compare: k=%d: no exact algorithm within budget: %w", k, tsp.ErrInfeasibleSize)
		}

		return nil, fmt.Errorf("Compare: %w", ErrNoExactSolver)
	}

	var res tsp.Result
	for _, algo := range run {
		if res, err = tsp.Solve(algo, dist, homeIdx, targetIdx); err != nil {
			return nil, fmt.Errorf("Compare: %s: %w", algo, err)
		}
		a.logger.Debug().Str("algorithm", algo.String()).Int("k", k).
			Float64("distance", res.Cost).Dur("elapsed", res.Elapsed).
			Msg("solver finished")

		cmp.Results[algo] = AlgorithmResult{
			Algorithm:  algo,
			Route:      labels.Route(res.Route),
			Distance:   res.Cost,
			Elapsed:    res.Elapsed,
			Complexity: algo.Complexity(),
		}
	}
	cmp.OptimalBy = optimalSource(run)
	cmp.Optimal = cmp.Results[cmp.OptimalBy].Distance

	return cmp, nil
}

// checkTargetLabels rejects home among the targets and repeated targets,
// naming the offending label.
func checkTargetLabels(home string, targets []string) error {
	seen := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		if t == home {
			return fmt.Errorf("target %q: %w", t, tsp.ErrTargetIsHome)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("target %q: %w", t, tsp.ErrDuplicateTarget)
		}
		seen[t] = struct{}{}
	}

	return nil
}

// anyExact reports whether algos holds at least one exact strategy.
func anyExact(algos []tsp.Algorithm) bool {
	for _, a := range algos {
		if a.Exact() {
			return true
		}
	}

	return false
}

// optimalSource prefers Held-Karp (the cheapest exact strategy), then the
// first exact strategy in canonical order. run must hold an exact one.
func optimalSource(run []tsp.Algorithm) tsp.Algorithm {
	var first = tsp.Algorithm(-1)
	for _, a := range run {
		if a == tsp.HeldKarp {
			return a
		}
		if a.Exact() && first < 0 {
			first = a
		}
	}

	return first
}

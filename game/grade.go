package game

import (
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
)

// WinTolerance is the largest |distance - optimum| still graded as a win.
// Distances are already rounded to 1e-9 by package tsp.
const WinTolerance = 1e-6

// Verdict is the outcome of grading a player route.
type Verdict int

const (
	// Lose: the route is valid but longer than the optimum.
	Lose Verdict = iota
	// Win: the route matches the optimum within WinTolerance.
	Win
)

// String returns "win" or "lose".
func (v Verdict) String() string {
	if v == Win {
		return "win"
	}

	return "lose"
}

// Grade is the result of checking a player route against a Comparison.
type Grade struct {
	Route    []string
	Distance float64
	Optimal  float64
	// Gap is Distance - Optimal, never negative for a valid route.
	Gap     float64
	Verdict Verdict
}

// RouteDistance sums dist along a labelled route. It only checks labels
// and the table, not that the route is a tour; see Comparison.Grade.
func RouteDistance(dist matrix.Matrix, labels Labels, route []string) (float64, error) {
	idx, err := labels.Indices(route)
	if err != nil {
		return 0, fmt.Errorf("RouteDistance: %w", err)
	}
	d, err := tsp.RouteCost(dist, idx)
	if err != nil {
		return 0, fmt.Errorf("RouteDistance: %w", err)
	}

	return d, nil
}

// Grade checks that route is a closed tour over the compared request
// (home first and last, every target exactly once) and compares its
// distance with c.Optimal.
//
// Errors: ErrUnknownLabel for a label outside the round, tsp.ErrInvalidRoute
// for any tour violation.
func (c *Comparison) Grade(route []string) (Grade, error) {
	idx, err := c.labels.Indices(route)
	if err != nil {
		return Grade{}, fmt.Errorf("Grade: %w", err)
	}
	if err = tsp.ValidateRoute(idx, c.home, c.targets); err != nil {
		return Grade{}, fmt.Errorf("Grade: %w", err)
	}
	d, err := tsp.RouteCost(c.dist, idx)
	if err != nil {
		return Grade{}, fmt.Errorf("Grade: %w", err)
	}

	g := Grade{
		Route:    append([]string(nil), route...),
		Distance: d,
		Optimal:  c.Optimal,
		Gap:      d - c.Optimal,
		Verdict:  Lose,
	}
	if math.Abs(g.Gap) < WinTolerance {
		g.Verdict = Win
	}

	return g, nil
}

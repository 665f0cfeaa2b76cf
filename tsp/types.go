package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInput is the root class for every structural problem with a
// solve request: a bad distance table, a home index out of range, or a
// target set that is not a set of distinct non-home cities. Specific
// sentinels below wrap it, so errors.Is(err, ErrInvalidInput) matches all.
var ErrInvalidInput = errors.New("tsp: invalid input")

var (
	// ErrHomeOutOfRange is returned when home ∉ [0, n).
	ErrHomeOutOfRange = fmt.Errorf("%w: home city out of range", ErrInvalidInput)

	// ErrTargetOutOfRange is returned when a target index ∉ [0, n).
	ErrTargetOutOfRange = fmt.Errorf("%w: target city out of range", ErrInvalidInput)

	// ErrTargetIsHome is returned when the target set contains home.
	ErrTargetIsHome = fmt.Errorf("%w: target set contains home city", ErrInvalidInput)

	// ErrDuplicateTarget is returned when a target appears more than once.
	ErrDuplicateTarget = fmt.Errorf("%w: duplicate target city", ErrInvalidInput)

	// ErrInvalidRoute is returned by ValidateRoute and RouteCost when a
	// route is not a closed tour over exactly the requested targets.
	ErrInvalidRoute = fmt.Errorf("%w: invalid route", ErrInvalidInput)
)

// ErrInfeasibleSize reports that a target set is too large for the chosen
// exact strategy under the caller's operation budget (see CheckBudget), or
// beyond MaxHeldKarpTargets for the DP tables.
var ErrInfeasibleSize = errors.New("tsp: target set too large for algorithm")

// ErrUnsupportedAlgorithm is returned by Solve and ParseAlgorithm for an
// Algorithm value outside the known set.
var ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

// MaxHeldKarpTargets bounds k for TSPHeldKarp. Beyond it the k·2^k tables
// no longer fit in memory on commodity machines.
const MaxHeldKarpTargets = 24

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-9

// Algorithm selects one of the four route strategies. Dispatch is an
// explicit switch in Solve; there is no solver interface.
type Algorithm int

const (
	// BruteForce enumerates every permutation of the targets.
	BruteForce Algorithm = iota
	// Recursive evaluates best(cur, remaining) without memoization.
	Recursive
	// NearestNeighbor greedily walks to the closest unvisited target.
	NearestNeighbor
	// HeldKarp runs the bitmask subset dynamic program.
	HeldKarp
)

// algorithmCount is the number of declared Algorithm values.
const algorithmCount = 4

var algorithmNames = [algorithmCount]string{
	BruteForce:      "Brute Force",
	Recursive:       "Recursive",
	NearestNeighbor: "Nearest Neighbour",
	HeldKarp:        "Held-Karp (DP)",
}

var algorithmKeys = [algorithmCount]string{
	BruteForce:      "bruteforce",
	Recursive:       "recursive",
	NearestNeighbor: "nearest",
	HeldKarp:        "heldkarp",
}

var algorithmComplexity = [algorithmCount]string{
	BruteForce:      "O(n!)",
	Recursive:       "O(n!)",
	NearestNeighbor: "O(n^2)",
	HeldKarp:        "O(n^2 * 2^n)",
}

// Algorithms returns all strategies in canonical report order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, Recursive, NearestNeighbor, HeldKarp}
}

// Valid reports whether a names a declared strategy.
func (a Algorithm) Valid() bool { return a >= 0 && a < algorithmCount }

// String returns the display name, e.g. "Held-Karp (DP)".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Key returns the short lowercase identifier used in flags and configs.
func (a Algorithm) Key() string {
	if !a.Valid() {
		return ""
	}

	return algorithmKeys[a]
}

// Complexity returns the asymptotic time tag in terms of the target count.
func (a Algorithm) Complexity() string {
	if !a.Valid() {
		return ""
	}

	return algorithmComplexity[a]
}

// Exact reports whether the strategy guarantees the optimum.
func (a Algorithm) Exact() bool {
	return a == BruteForce || a == Recursive || a == HeldKarp
}

// ParseAlgorithm accepts either a Key ("heldkarp") or a display name
// ("Held-Karp (DP)"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)
	for _, a := range Algorithms() {
		if strings.EqualFold(s, a.Key()) || strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnsupportedAlgorithm)
}

// Result holds the outcome of one solver invocation.
// It is built once and never modified; Route is owned by the caller.
type Result struct {
	// Algorithm is the strategy that produced this result.
	Algorithm Algorithm

	// Route starts and ends at home; its interior is exactly the target
	// set. len(Route) == k+2, and Route == [home, home] when k == 0.
	Route []int

	// Cost is the total route distance, rounded to 1e-9.
	Cost float64

	// Elapsed is the wall-clock search time. Reporting only.
	Elapsed time.Duration
}

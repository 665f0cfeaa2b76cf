package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/tsp"
)

// ErrUnknownLabel is returned when a label is not part of the round's
// label list. It wraps tsp.ErrInvalidInput.
var ErrUnknownLabel = fmt.Errorf("%w: unknown city label", tsp.ErrInvalidInput)

// ErrBadLabels is returned by NewLabels for an empty list, an empty label
// or a repeated label.
var ErrBadLabels = errors.New("game: invalid label list")

// ErrNoExactSolver is returned when an Aggregator is configured without any
// exact strategy, leaving no optimum to grade against.
var ErrNoExactSolver = errors.New("game: no exact algorithm selected")

// ErrBadRoundConfig is returned by NewRound when options cannot produce a
// valid round (too few labels, inverted distance range, …).
var ErrBadRoundConfig = errors.New("game: invalid round configuration")

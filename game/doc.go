// Package game glues the route solvers to a Travelling Salesman round.
//
// It owns the label side of the contract: a round names cities with an
// ordered list of labels ("A".."J"), while package tsp only sees indices.
//
//   - Labels maps label ↔ index in both directions.
//   - Compare (and the configurable Aggregator) runs the four strategies on
//     one request and returns a Comparison with label routes, timings,
//     complexity tags and the optimal distance.
//   - Comparison.Grade checks a player-built route and decides Win/Lose by
//     comparing its distance with the optimum.
//   - NewRound draws a seeded random distance table and home city.
//
// Everything is passed explicitly; there is no package-level state.
package game

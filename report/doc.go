// Package report turns a game.Comparison (and an optional player grade)
// into output: a terminal table rendered with lipgloss, and a Report
// document that serializes to YAML or JSON.
//
// The Report fields mirror the result record the round has always stored
// for a winning player (player, home_city, selected_cities, shortest_route,
// total_distance, algorithm, time_taken), extended with every algorithm row
// and the verdict. Writing the document anywhere is the caller's business.
package report

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/salesman/game"
	"github.com/katalvlaran/salesman/tsp"
)

// ErrNilComparison is returned by New when there is nothing to report.
var ErrNilComparison = errors.New("report: nil comparison")

// Meta carries the round context that the comparison itself does not hold.
type Meta struct {
	// ID identifies the round; uuid.Nil means "generate one".
	ID        uuid.UUID
	Player    string
	Seed      int64
	CreatedAt time.Time
}

// Row is one algorithm line of a Report.
type Row struct {
	Algorithm  string   `yaml:"algorithm" json:"algorithm"`
	Route      []string `yaml:"route" json:"route"`
	Distance   float64  `yaml:"distance" json:"distance"`
	TimeTaken  float64  `yaml:"time_taken" json:"time_taken"`
	Complexity string   `yaml:"complexity" json:"complexity"`
}

// Report is the serializable summary of one round.
//
// ShortestRoute is the player's route when a grade was given, otherwise the
// route of the algorithm that fixed the optimum. Algorithm and TimeTaken
// always describe that algorithm.
type Report struct {
	ID             string    `yaml:"id" json:"id"`
	CreatedAt      time.Time `yaml:"created_at" json:"created_at"`
	Seed           int64     `yaml:"seed,omitempty" json:"seed,omitempty"`
	Player         string    `yaml:"player,omitempty" json:"player,omitempty"`
	HomeCity       string    `yaml:"home_city" json:"home_city"`
	SelectedCities []string  `yaml:"selected_cities" json:"selected_cities"`
	ShortestRoute  []string  `yaml:"shortest_route" json:"shortest_route"`
	TotalDistance  float64   `yaml:"total_distance" json:"total_distance"`
	Algorithm      string    `yaml:"algorithm" json:"algorithm"`
	TimeTaken      float64   `yaml:"time_taken" json:"time_taken"`

	Verdict string   `yaml:"verdict,omitempty" json:"verdict,omitempty"`
	Optimal float64  `yaml:"optimal" json:"optimal"`
	Results []Row    `yaml:"results" json:"results"`
	Skipped []string `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	grade   *game.Grade
}

// New builds a Report from cmp and an optional grade.
// A zero CreatedAt is replaced by the current UTC time.
func New(meta Meta, cmp *game.Comparison, grade *game.Grade) (*Report, error) {
	if cmp == nil {
		return nil, ErrNilComparison
	}
	id := meta.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	created := meta.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	best, _ := cmp.Result(cmp.OptimalBy)
	r := &Report{
		ID:             id.String(),
		CreatedAt:      created,
		Seed:           meta.Seed,
		Player:         meta.Player,
		HomeCity:       cmp.Home,
		SelectedCities: append([]string{}, cmp.Targets...),
		ShortestRoute:  best.Route,
		TotalDistance:  best.Distance,
		Algorithm:      best.Algorithm.String(),
		TimeTaken:      best.Seconds(),
		Optimal:        cmp.Optimal,
	}
	for _, res := range cmp.Ordered() {
		r.Results = append(r.Results, Row{
			Algorithm:  res.Algorithm.String(),
			Route:      res.Route,
			Distance:   res.Distance,
			TimeTaken:  res.Seconds(),
			Complexity: res.Complexity,
		})
	}
	for _, algo := range tsp.Algorithms() {
		if _, ok := cmp.Skipped[algo]; ok {
			r.Skipped = append(r.Skipped, algo.String())
		}
	}

	if grade != nil {
		r.grade = grade
		r.ShortestRoute = grade.Route
		r.TotalDistance = grade.Distance
		r.Verdict = grade.Verdict.String()
	}

	return r, nil
}

// Saveable reports whether the round should be recorded: a named player
// whose route matched the optimum.
func (r *Report) Saveable() bool {
	return r.grade != nil && r.grade.Verdict == game.Win && r.Player != ""
}

// YAML encodes the report as a YAML document.
func (r *Report) YAML() ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("report: yaml: %w", err)
	}

	return b, nil
}

// JSON encodes the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: json: %w", err)
	}

	return b, nil
}

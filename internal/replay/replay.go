// Package replay re-executes recorded selection ticks from JSON fixtures
// with a fixed seed, so weight-pipeline changes can be validated against
// known-good outcomes.
package replay

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/thought"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description   string              `json:"description"`
	Thoughts      []thought.Thought   `json:"thoughts"`
	Mood          *mood.Disposition   `json:"mood,omitempty"`
	StreakWeights map[string]float64  `json:"streak_weights,omitempty"`
	Affect        *thought.AffectHint `json:"human_mood,omitempty"`
	Seed          int64               `json:"seed"`
	Draws         int                 `json:"draws,omitempty"`
	Expect        Expectation         `json:"expect"`
}

// Expectation declares what a fixture run must produce. ChosenID checks a
// single-draw run; the share bounds check the empirical distribution over
// multiple draws.
type Expectation struct {
	ChosenID string             `json:"chosen_id,omitempty"`
	MinShare map[string]float64 `json:"min_share,omitempty"`
	MaxShare map[string]float64 `json:"max_share,omitempty"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and validates a fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Thoughts) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s: no thoughts", path)
	}
	return f, nil
}

// #endregion load

// #region run

// Result is the outcome of replaying one fixture.
type Result struct {
	Pass     bool               `json:"pass"`
	Failures []string           `json:"failures,omitempty"`
	Chosen   string             `json:"chosen,omitempty"`
	Shares   map[string]float64 `json:"shares,omitempty"`
}

// Run replays a fixture deterministically and checks its expectations.
func Run(f Fixture) (Result, error) {
	rng := rand.New(rand.NewSource(f.Seed))
	draws := f.Draws
	if draws < 1 {
		draws = 1
	}

	counts := map[string]int{}
	var lastChosen string
	for i := 0; i < draws; i++ {
		sel, err := thought.Select(f.Thoughts, f.Mood, f.StreakWeights, f.Affect, rng)
		if err != nil {
			return Result{}, fmt.Errorf("draw %d: %w", i+1, err)
		}
		counts[sel.Chosen.ID]++
		lastChosen = sel.Chosen.ID
	}

	shares := make(map[string]float64, len(counts))
	for id, n := range counts {
		shares[id] = float64(n) / float64(draws)
	}

	res := Result{Pass: true, Chosen: lastChosen, Shares: shares}
	if f.Expect.ChosenID != "" && lastChosen != f.Expect.ChosenID {
		res.Pass = false
		res.Failures = append(res.Failures,
			fmt.Sprintf("chosen %q, expected %q", lastChosen, f.Expect.ChosenID))
	}
	for id, min := range f.Expect.MinShare {
		if shares[id] < min {
			res.Pass = false
			res.Failures = append(res.Failures,
				fmt.Sprintf("share of %q = %.3f, expected >= %.3f", id, shares[id], min))
		}
	}
	for id, max := range f.Expect.MaxShare {
		if shares[id] > max {
			res.Pass = false
			res.Failures = append(res.Failures,
				fmt.Sprintf("share of %q = %.3f, expected <= %.3f", id, shares[id], max))
		}
	}
	return res, nil
}

// #endregion run

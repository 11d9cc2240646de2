package thought

import (
	"errors"
	"math"
	"math/rand"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
)

// errNoThoughts is the one hard failure in this package: selection cannot
// run without at least one candidate. Guaranteeing a usable catalog is the
// caller's design invariant.
var errNoThoughts = errors.New("no thoughts to select from")

// #region pool

// BuildPool expands candidates into the selection pool: each candidate
// repeats max(1, floor(weight*10)) times, so even a zero-weight candidate
// keeps a nonzero selection probability.
func BuildPool(candidates []Candidate) []Candidate {
	var pool []Candidate
	for _, c := range candidates {
		repeats := int(math.Floor(c.FinalWeight * 10))
		if repeats < 1 {
			repeats = 1
		}
		for i := 0; i < repeats; i++ {
			pool = append(pool, c)
		}
	}
	return pool
}

// #endregion pool

// #region select

// heavilyDampenedFactor marks candidates worth surfacing in the skip
// report: final weight under 60% of original with at least one skip reason.
const heavilyDampenedFactor = 0.6

// Select runs one full selection tick: bias pipeline, pool expansion, and a
// uniform draw from the pool.
func Select(thoughts []Thought, disp *mood.Disposition, streakWeights map[string]float64, hint *AffectHint, rng *rand.Rand) (Selection, error) {
	if len(thoughts) == 0 {
		return Selection{}, errNoThoughts
	}

	candidates := CalculateWeights(thoughts, disp, streakWeights, hint)
	pool := BuildPool(candidates)
	if len(pool) == 0 {
		return Selection{}, errNoThoughts
	}

	chosen := pool[rng.Intn(len(pool))]

	var skipped []SkippedThought
	for _, c := range candidates {
		if c.FinalWeight < c.OriginalWeight*heavilyDampenedFactor && len(c.SkipReasons) > 0 {
			skipped = append(skipped, SkippedThought{
				ID:             c.ID,
				OriginalWeight: c.OriginalWeight,
				FinalWeight:    c.FinalWeight,
				Reasons:        c.SkipReasons,
			})
		}
	}

	return Selection{
		Chosen:          chosen,
		AllCandidates:   candidates,
		SkippedThoughts: skipped,
		PoolSize:        len(pool),
		TotalCandidates: len(candidates),
	}, nil
}

// #endregion select

// #region distribution

// Distribution returns each thought's effective selection probability after
// all biases and pool expansion.
func Distribution(thoughts []Thought, disp *mood.Disposition, streakWeights map[string]float64, hint *AffectHint) map[string]float64 {
	candidates := CalculateWeights(thoughts, disp, streakWeights, hint)
	pool := BuildPool(candidates)
	if len(pool) == 0 {
		return map[string]float64{}
	}

	counts := map[string]int{}
	for _, c := range pool {
		counts[c.ID]++
	}
	probs := make(map[string]float64, len(counts))
	for id, n := range counts {
		probs[id] = float64(n) / float64(len(pool))
	}
	return probs
}

// #endregion distribution

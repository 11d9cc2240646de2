package thought

import (
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region thought

// Thought is one candidate action from the thoughts catalog.
type Thought struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Prompt string  `json:"prompt"`
}

// ThoughtsConfig is the thoughts.json file.
type ThoughtsConfig struct {
	Thoughts []Thought `json:"thoughts"`
}

// #endregion thought

// #region candidate

// Candidate is a thought with its weight calculation fully traced.
type Candidate struct {
	ID             string   `json:"id"`
	Prompt         string   `json:"prompt"`
	OriginalWeight float64  `json:"original_weight"`
	FinalWeight    float64  `json:"final_weight"`
	BoostReasons   []string `json:"boost_reasons"`
	SkipReasons    []string `json:"skip_reasons"`
}

// SkippedThought surfaces a heavily dampened candidate in the decision
// trace. Reporting only: the candidate stays in the pool.
type SkippedThought struct {
	ID             string   `json:"id"`
	OriginalWeight float64  `json:"original_weight"`
	FinalWeight    float64  `json:"final_weight"`
	Reasons        []string `json:"reasons"`
}

// Selection is one tick's full decision.
type Selection struct {
	Chosen          Candidate        `json:"chosen"`
	AllCandidates   []Candidate      `json:"all_candidates"`
	SkippedThoughts []SkippedThought `json:"skipped_thoughts"`
	PoolSize        int              `json:"pool_size"`
	TotalCandidates int              `json:"total_candidates"`
}

// #endregion candidate

// #region affect

// AffectHint is the external affect subsystem's read of the human's state.
type AffectHint struct {
	Mood       string  `json:"mood"`
	Confidence float64 `json:"confidence"`
	Energy     string  `json:"energy,omitempty"`
	Vibe       string  `json:"vibe,omitempty"`
}

// #endregion affect

// #region files

const (
	ThoughtsFile      = "thoughts.json"
	StreakWeightsFile = "streak_weights.json"
	AffectFile        = "human_mood.json"
)

// LoadThoughts reads the thoughts catalog. An absent or empty catalog is a
// configuration error: selection cannot run without candidates.
func LoadThoughts(store statefile.Store) ([]Thought, error) {
	var cfg ThoughtsConfig
	status, err := store.Load(ThoughtsFile, &cfg)
	if status != statefile.Found {
		if err != nil {
			return nil, err
		}
		return nil, errNoThoughts
	}
	if len(cfg.Thoughts) == 0 {
		return nil, errNoThoughts
	}
	return cfg.Thoughts, nil
}

// LoadStreakWeights reads the anti-rut multipliers. Missing or corrupt
// content degrades to no streak influence.
func LoadStreakWeights(store statefile.Store) (map[string]float64, statefile.Status) {
	var w map[string]float64
	status, _ := store.Load(StreakWeightsFile, &w)
	if status != statefile.Found {
		return nil, status
	}
	return w, status
}

// LoadAffect reads the human affect hint. Missing or corrupt content
// degrades to no affect influence.
func LoadAffect(store statefile.Store) (*AffectHint, statefile.Status) {
	var h AffectHint
	status, _ := store.Load(AffectFile, &h)
	if status != statefile.Found {
		return nil, status
	}
	return &h, status
}

// #endregion files

package thought

import (
	"fmt"
	"strings"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
)

// #region mood-bias

const (
	moodBoostFactor  = 1.8
	moodDampenFactor = 0.5
	moodDampenFloor  = 0.2
)

// applyMoodBias adjusts a weight from the current disposition. A boosted id
// multiplies by 1.8; a dampened id halves with a 0.2 floor so nothing gets
// starved entirely.
func applyMoodBias(weight float64, id string, disp *mood.Disposition) (float64, []string, []string) {
	if disp == nil {
		return weight, nil, nil
	}

	if contains(disp.BoostedTraits, id) {
		weight *= moodBoostFactor
		return weight, []string{fmt.Sprintf("Boosted by current mood (%s): %s", disp.Name, disp.Description)}, nil
	}
	if contains(disp.DampenedTraits, id) {
		weight *= moodDampenFactor
		if weight < moodDampenFloor {
			weight = moodDampenFloor
		}
		desc := disp.Description
		if desc == "" {
			desc = "something else"
		}
		return weight, nil, []string{fmt.Sprintf("Current mood (%s) dampens %s thoughts - feeling more like %s", disp.Name, id, desc)}
	}
	return weight, nil, nil
}

// #endregion mood-bias

// #region streak-bias

// applyStreakBias applies an anti-rut multiplier. Mild adjustments
// (0.8-1.2) change the weight silently; stronger ones record a reason.
func applyStreakBias(weight float64, id string, streakWeights map[string]float64) (float64, []string, []string) {
	mult, ok := streakWeights[id]
	if !ok {
		return weight, nil, nil
	}
	weight *= mult

	if mult < 0.8 {
		return weight, nil, []string{fmt.Sprintf("Anti-rut system dampening %s - you've been doing this too much lately", id)}
	}
	if mult > 1.2 {
		return weight, []string{fmt.Sprintf("Anti-rut system boosting %s - haven't done this in a while", id)}, nil
	}
	return weight, nil, nil
}

// #endregion streak-bias

// #region affect-bias

// affectRule maps one human affect label to the thought ids it boosts or
// dampens.
type affectRule struct {
	Boost      []string
	Dampen     []string
	Multiplier float64
	Reason     string
}

var affectRules = map[string]affectRule{
	"stressed": {
		Dampen:     []string{"random-thought", "ask-opinion", "ask-preference"},
		Multiplier: 0.5,
		Reason:     "Your human seems stressed - avoiding {thought_id} to give them space",
	},
	"excited": {
		Boost:      []string{"share-discovery", "pitch-idea", "moltbook-post"},
		Multiplier: 1.5,
		Reason:     "Boosted to match human's excited energy",
	},
	"frustrated": {
		Dampen:     []string{"ask-feedback", "random-thought"},
		Multiplier: 0.3,
		Reason:     "Your human seems frustrated - staying away from {thought_id} for now",
	},
	"curious": {
		Boost:      []string{"share-discovery", "ask-opinion", "learn"},
		Multiplier: 1.4,
		Reason:     "Boosted to feed human's curiosity",
	},
	"focused": {
		Dampen:     []string{"random-thought", "ask-opinion"},
		Multiplier: 0.4,
		Reason:     "Your human is in the zone - not interrupting with {thought_id}",
	},
	"happy": {
		Boost:      []string{"moltbook-social", "share-discovery", "creative-chaos"},
		Multiplier: 1.3,
		Reason:     "Boosted to amplify good vibes",
	},
}

// applyAffectBias adjusts a weight from the human affect hint. Hints at or
// below 0.4 confidence are ignored; unmatched labels and ids pass through.
func applyAffectBias(weight float64, id string, hint *AffectHint) (float64, []string, []string) {
	if hint == nil || hint.Confidence <= 0.4 {
		return weight, nil, nil
	}
	rule, ok := affectRules[hint.Mood]
	if !ok {
		return weight, nil, nil
	}

	reason := strings.ReplaceAll(rule.Reason, "{thought_id}", id)
	if contains(rule.Dampen, id) {
		return weight * rule.Multiplier, nil, []string{reason}
	}
	if contains(rule.Boost, id) {
		return weight * rule.Multiplier, []string{reason}, nil
	}
	return weight, nil, nil
}

// #endregion affect-bias

// #region calculate

// CalculateWeights runs the fixed bias pipeline (mood, streak, affect) over
// every thought and returns fully traced candidates.
func CalculateWeights(thoughts []Thought, disp *mood.Disposition, streakWeights map[string]float64, hint *AffectHint) []Candidate {
	candidates := make([]Candidate, 0, len(thoughts))

	for _, t := range thoughts {
		original := t.Weight
		weight := original
		var boostReasons, skipReasons []string

		var b, s []string
		weight, b, s = applyMoodBias(weight, t.ID, disp)
		boostReasons = append(boostReasons, b...)
		skipReasons = append(skipReasons, s...)

		weight, b, s = applyStreakBias(weight, t.ID, streakWeights)
		boostReasons = append(boostReasons, b...)
		skipReasons = append(skipReasons, s...)

		weight, b, s = applyAffectBias(weight, t.ID, hint)
		boostReasons = append(boostReasons, b...)
		skipReasons = append(skipReasons, s...)

		candidates = append(candidates, Candidate{
			ID:             t.ID,
			Prompt:         t.Prompt,
			OriginalWeight: original,
			FinalWeight:    weight,
			BoostReasons:   boostReasons,
			SkipReasons:    skipReasons,
		})
	}
	return candidates
}

// #endregion calculate

// #region helpers

func contains(items []string, id string) bool {
	for _, it := range items {
		if it == id {
			return true
		}
	}
	return false
}

// #endregion helpers

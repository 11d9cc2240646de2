// Package drift computes intraday mood drift from the day's activity log:
// running energy/vibe scores over the whole log, trait boost/dampen shifts
// from the latest event, and threshold-based mood renames.
package drift

import (
	"sort"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
)

// #region drift-table

// TraitShift lists the traits one (energy, vibe) combination boosts and
// dampens.
type TraitShift struct {
	Boost  []string
	Dampen []string
}

// driftTable keys are "<energy>_<vibe>". A neutral value on either axis
// produces no trait drift, so only the four non-neutral combinations exist.
var driftTable = map[string]TraitShift{
	"high_positive": {
		Boost:  []string{"hyperfocus", "chaotic", "social"},
		Dampen: []string{"cozy", "philosophical"},
	},
	"high_negative": {
		Boost:  []string{"restless", "determined"},
		Dampen: []string{"cozy", "social"},
	},
	"low_positive": {
		Boost:  []string{"cozy", "philosophical", "social"},
		Dampen: []string{"hyperfocus", "chaotic"},
	},
	"low_negative": {
		Boost:  []string{"cozy", "philosophical"},
		Dampen: []string{"chaotic", "social", "restless"},
	},
}

// Table exposes a copy of the drift table for inspection tooling.
func Table() map[string]TraitShift {
	out := make(map[string]TraitShift, len(driftTable))
	for k, v := range driftTable {
		out[k] = v
	}
	return out
}

// #endregion drift-table

// #region scores

// Scores sums energy and vibe over the entire activity log. Order never
// matters: energy = count(high) - count(low), vibe = count(positive) -
// count(negative).
func Scores(log []mood.ActivityEvent) (energy, vibe int) {
	for _, a := range log {
		switch a.Energy {
		case mood.EnergyHigh:
			energy++
		case mood.EnergyLow:
			energy--
		}
		switch a.Vibe {
		case mood.VibePositive:
			vibe++
		case mood.VibeNegative:
			vibe--
		}
	}
	return energy, vibe
}

// #endregion scores

// #region trait-drift

// ApplyShift merges the drift for one (energy, vibe) pair into existing
// boost/dampen sets. Contradictions resolve latest-wins: a trait boosted by
// this shift leaves the dampen set and vice versa. Returned slices are
// sorted for stable output.
func ApplyShift(boosted, dampened []string, energy mood.EnergyLevel, vibe mood.VibeLevel) (newBoost, newDampen []string) {
	boost := toSet(boosted)
	dampen := toSet(dampened)

	if energy != mood.EnergyNeutral && vibe != mood.VibeNeutral {
		if shift, ok := driftTable[string(energy)+"_"+string(vibe)]; ok {
			for _, b := range shift.Boost {
				boost[b] = true
				delete(dampen, b)
			}
			for _, d := range shift.Dampen {
				dampen[d] = true
				delete(boost, d)
			}
		}
	}

	return toSorted(boost), toSorted(dampen)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func toSorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for it := range set {
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}

// #endregion trait-drift

// #region calculate

// Result is the full drift outcome for one step.
type Result struct {
	EnergyScore    int      `json:"energy_score"`
	VibeScore      int      `json:"vibe_score"`
	BoostedTraits  []string `json:"boosted_traits"`
	DampenedTraits []string `json:"dampened_traits"`
}

// Calculate runs the complete drift computation: scores over the whole log,
// trait drift from only the most recent event.
func Calculate(log []mood.ActivityEvent, initialBoost, initialDampen []string) Result {
	energy, vibe := Scores(log)

	boosted := append([]string(nil), initialBoost...)
	dampened := append([]string(nil), initialDampen...)
	if len(log) > 0 {
		latest := log[len(log)-1]
		boosted, dampened = ApplyShift(boosted, dampened, latest.Energy, latest.Vibe)
	} else {
		sort.Strings(boosted)
		sort.Strings(dampened)
	}

	return Result{
		EnergyScore:    energy,
		VibeScore:      vibe,
		BoostedTraits:  boosted,
		DampenedTraits: dampened,
	}
}

// #endregion calculate

// #region rename

// Rename is a mood-name change triggered by accumulated scores.
type Rename struct {
	DriftedTo string `json:"drifted_to"`
	DriftNote string `json:"drift_note"`
}

// RenameFor evaluates the ordered rename rules. Requires at least 3 logged
// activities; first matching rule wins.
func RenameFor(energyScore, vibeScore, activityCount int) (Rename, bool) {
	if activityCount < 3 {
		return Rename{}, false
	}

	switch {
	case energyScore >= 2 && vibeScore >= 2:
		return Rename{
			DriftedTo: "hyperfocus",
			DriftNote: "Riding high — everything is clicking today",
		}, true
	case energyScore <= -2 && vibeScore <= -2:
		return Rename{
			DriftedTo: "cozy",
			DriftNote: "Low energy day — pulling back to recharge",
		}, true
	case energyScore >= 2 && vibeScore <= -1:
		return Rename{
			DriftedTo: "restless",
			DriftNote: "High energy but frustrated — need to channel this",
		}, true
	case vibeScore >= 2:
		return Rename{
			DriftedTo: "social",
			DriftNote: "Good vibes — feeling chatty",
		}, true
	}
	return Rename{}, false
}

// #endregion rename

// #region update-disposition

// UpdateDisposition recomputes scores, trait sets, and the optional rename
// on a disposition after its activity log changed.
func UpdateDisposition(d *mood.Disposition, now time.Time) {
	res := Calculate(d.ActivityLog, d.BoostedTraits, d.DampenedTraits)
	d.EnergyScore = res.EnergyScore
	d.VibeScore = res.VibeScore
	d.BoostedTraits = res.BoostedTraits
	d.DampenedTraits = res.DampenedTraits
	d.LastDrift = now.UTC().Format(time.RFC3339)

	if rename, ok := RenameFor(d.EnergyScore, d.VibeScore, len(d.ActivityLog)); ok {
		d.DriftedTo = rename.DriftedTo
		d.DriftNote = rename.DriftNote
	}
}

// #endregion update-disposition

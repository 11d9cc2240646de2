// Package selector picks the day's disposition: catalog base weights shaped
// by entropy targeting, spiral prevention, and contextual influences, then a
// categorical weighted draw with a generated reason.
package selector

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/night"
	"github.com/kittleik/intrusive-thoughts/internal/reason"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region inputs

// Inputs bundles the day's context signals.
type Inputs struct {
	Weather   string
	Headlines []string
	Location  string
	Now       time.Time
	Rand      *rand.Rand
}

// Trace records how the final weights came to be, for the decision log.
type Trace struct {
	RecentMoods  []string           `json:"recent_moods"`
	Notes        []string           `json:"notes"`
	NightFactors []string           `json:"night_factors,omitempty"`
	Spiral       *mood.SpiralInfo   `json:"spiral,omitempty"`
	FinalWeights map[string]float64 `json:"final_weights"`
}

// #endregion inputs

// #region entropy

// recentMoods returns mood ids recorded in the trailing N days.
func recentMoods(history []mood.HistoryEntry, now time.Time, days int) []string {
	cutoff := now.AddDate(0, 0, -days)
	cutoffStr := cutoff.Format("2006-01-02")
	var out []string
	for _, e := range history {
		if e.Date >= cutoffStr && e.MoodID != "" {
			out = append(out, e.MoodID)
		}
	}
	return out
}

// applyEntropyTarget halves the weight of any mood that appeared 3+ times
// in the recent window, preserving variety.
func applyEntropyTarget(weights map[string]float64, recent []string, notes *[]string) {
	counts := map[string]int{}
	for _, id := range recent {
		counts[id]++
	}
	for _, id := range sortedKeys(weights) {
		if counts[id] >= 3 {
			weights[id] *= 0.5
			*notes = append(*notes, fmt.Sprintf("entropy target: %s appeared %d times recently, weight halved", id, counts[id]))
		}
	}
}

// #endregion entropy

// #region spiral

// DetectSpiral scans up to the last 5 history entries for a run of
// identical consecutive moods ending at the most recent entry. Runs of 2+
// are reported.
func DetectSpiral(history []mood.HistoryEntry) (string, int) {
	if len(history) < 2 {
		return "", 0
	}
	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	current := recent[len(recent)-1].MoodID
	if current == "" {
		return "", 0
	}
	run := 1
	for i := len(recent) - 2; i >= 0; i-- {
		if recent[i].MoodID != current {
			break
		}
		run++
	}
	if run >= 2 {
		return current, run
	}
	return "", 0
}

func spiralWarning(spiralMood string, days int) string {
	if days == 2 {
		return fmt.Sprintf("Careful, this is day 2 of %s — might be a spiral", spiralMood)
	}
	if days >= 3 {
		return fmt.Sprintf("Day %d of %s — definitely a spiral, but we're rolling with it", days, spiralMood)
	}
	return ""
}

// #endregion spiral

// #region draw

// drawWeighted makes a categorical draw over the weights. If any weight is
// non-positive, every weight shifts up by |min|+0.1 first so the draw stays
// well defined.
func drawWeighted(weights map[string]float64, rng *rand.Rand) string {
	ids := sortedKeys(weights)
	vals := make([]float64, len(ids))
	min := weights[ids[0]]
	for i, id := range ids {
		vals[i] = weights[id]
		if vals[i] < min {
			min = vals[i]
		}
	}
	if min <= 0 {
		for i := range vals {
			vals[i] += -min + 0.1
		}
	}

	total := 0.0
	for _, v := range vals {
		total += v
	}
	r := rng.Float64() * total
	for i, v := range vals {
		r -= v
		if r < 0 {
			return ids[i]
		}
	}
	return ids[len(ids)-1]
}

// #endregion draw

// #region select

// Select runs the full daily selection pipeline and returns the new
// disposition with a weight trace. The catalog is required; history,
// streaks, and the night summary are optional influences.
func Select(cat mood.Catalog, history []mood.HistoryEntry, streaks map[string]int, nightSummary *night.Summary, in Inputs) (mood.Disposition, Trace, error) {
	if len(cat.BaseMoods) == 0 {
		return mood.Disposition{}, Trace{}, fmt.Errorf("mood catalog is empty")
	}
	rng := in.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(in.Now.UnixNano()))
	}

	weights := cat.BaseWeights()
	var notes []string

	recent := recentMoods(history, in.Now, 7)
	applyEntropyTarget(weights, recent, &notes)

	spiralMood, spiralDays := DetectSpiral(history)
	if spiralMood != "" && spiralDays >= 3 {
		if _, ok := weights[spiralMood]; ok {
			// Near-eliminate rather than zero to avoid division issues.
			weights[spiralMood] = 0.01
			notes = append(notes, fmt.Sprintf("spiral: %d days of %s, forcing change", spiralDays, spiralMood))
		}
	}

	dayOfWeek := in.Now.Weekday().String()
	applyDayOfWeek(weights, cat, dayOfWeek, &notes)
	applyWeather(weights, cat, in.Weather, &notes)
	applyNews(weights, cat, in.Headlines, &notes)
	nightFactors := applyNight(weights, nightSummary)

	selectedID := drawWeighted(weights, rng)
	selected, _ := cat.Find(selectedID)

	moodReason := reason.Generate(reason.Params{
		Mood:      selectedID,
		Weather:   in.Weather,
		DayOfWeek: dayOfWeek,
		Location:  in.Location,
		Streaks:   streaks,
		Date:      in.Now,
		Rand:      rng,
	})
	if len(nightFactors) > 0 {
		moodReason = fmt.Sprintf("%s (boosted by %s)", moodReason, strings.Join(nightFactors, ", "))
	}

	var spiralInfo *mood.SpiralInfo
	if spiralMood != "" && spiralDays >= 2 {
		spiralInfo = &mood.SpiralInfo{
			Mood:            spiralMood,
			ConsecutiveDays: spiralDays,
			Warning:         spiralWarning(spiralMood, spiralDays),
		}
		if spiralMood == selectedID {
			moodReason = moodReason + " " + spiralInfo.Warning
		}
	}

	newsVibes := in.Headlines
	if len(newsVibes) > 5 {
		newsVibes = newsVibes[:5]
	}
	if newsVibes == nil {
		newsVibes = []string{}
	}
	boosted := selected.Traits
	if boosted == nil {
		boosted = []string{}
	}

	disp := mood.Disposition{
		ID:             selected.ID,
		Name:           selected.Name,
		Emoji:          selected.Emoji,
		Description:    selected.Description,
		Date:           in.Now.Format("2006-01-02"),
		Weather:        in.Weather,
		MoodReason:     moodReason,
		NewsVibes:      newsVibes,
		BoostedTraits:  boosted,
		DampenedTraits: []string{},
		ActivityLog:    []mood.ActivityEvent{},
		EnergyScore:    0,
		VibeScore:      0,
		LastDrift:      in.Now.UTC().Format(time.RFC3339),
		SpiralInfo:     spiralInfo,
	}

	trace := Trace{
		RecentMoods:  recent,
		Notes:        notes,
		NightFactors: nightFactors,
		Spiral:       spiralInfo,
		FinalWeights: weights,
	}
	return disp, trace, nil
}

// #endregion select

// #region streaks

// StreaksFile holds per-thought day-streak counts maintained by the
// anti-rut collaborator.
const StreaksFile = "streaks.json"

// LoadStreaks reads streaks.json. Missing or corrupt content degrades to no
// streak influence.
func LoadStreaks(store statefile.Store) (map[string]int, statefile.Status) {
	var s map[string]int
	status, _ := store.Load(StreaksFile, &s)
	if status != statefile.Found {
		return nil, status
	}
	return s, status
}

// #endregion streaks

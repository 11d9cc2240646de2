package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/night"
)

// #region day-of-week

// applyDayOfWeek multiplies weights by the catalog's per-weekday table.
func applyDayOfWeek(weights map[string]float64, cat mood.Catalog, dayOfWeek string, notes *[]string) {
	multipliers := cat.DayOfWeek.Multipliers[strings.ToLower(dayOfWeek)]
	if len(multipliers) == 0 {
		return
	}
	*notes = append(*notes, fmt.Sprintf("day of week: %s", dayOfWeek))
	for _, id := range sortedKeys(multipliers) {
		if _, ok := weights[id]; ok {
			weights[id] *= multipliers[id]
		}
	}
}

// #endregion day-of-week

// #region weather

const (
	weatherBoost  = 1.3
	weatherDampen = 0.7
)

// matchWeatherCondition resolves the configured condition for a weather
// string. Conditions are tried in sorted order; a condition matches when it
// equals a whitespace-delimited token of the report or is a prefix of the
// whole report, both case-folded. Exact token beats prefix.
func matchWeatherCondition(weather string, conditions []string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(weather))
	if lower == "" {
		return "", false
	}
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})

	sorted := append([]string(nil), conditions...)
	sort.Strings(sorted)

	for _, cond := range sorted {
		c := strings.ToLower(cond)
		for _, tok := range tokens {
			if tok == c {
				return cond, true
			}
		}
	}
	for _, cond := range sorted {
		if strings.HasPrefix(lower, strings.ToLower(cond)) {
			return cond, true
		}
	}
	return "", false
}

// applyWeather applies the matched weather condition's boost/dampen lists.
func applyWeather(weights map[string]float64, cat mood.Catalog, weather string, notes *[]string) {
	conditions := make([]string, 0, len(cat.WeatherInfluence))
	for cond := range cat.WeatherInfluence {
		conditions = append(conditions, cond)
	}
	cond, ok := matchWeatherCondition(weather, conditions)
	if !ok {
		return
	}
	*notes = append(*notes, fmt.Sprintf("weather: %s", cond))
	influence := cat.WeatherInfluence[cond]
	for _, id := range influence.Boost {
		if _, ok := weights[id]; ok {
			weights[id] *= weatherBoost
		}
	}
	for _, id := range influence.Dampen {
		if _, ok := weights[id]; ok {
			weights[id] *= weatherDampen
		}
	}
}

// #endregion weather

// #region news

const (
	newsBoost  = 1.2
	newsDampen = 0.8

	// defaultNewsCategory applies when no headline matches anything.
	defaultNewsCategory = "boring_day"
)

// newsCategories is the fixed keyword table in resolution order. The first
// matching category claims a headline, so classification never depends on
// map iteration order.
var newsCategories = []struct {
	Name     string
	Keywords []string
}{
	{"tech_breakthrough", []string{"breakthrough", "innovation", "discovered", "invented"}},
	{"ai_news", []string{"ai", "artificial intelligence", "machine learning", "openai", "chatgpt"}},
	{"political_drama", []string{"election", "political", "government", "policy", "vote"}},
	{"crisis_conflict", []string{"war", "conflict", "crisis", "attack", "emergency"}},
	{"crypto_market_move", []string{"bitcoin", "crypto", "blockchain", "ethereum", "trading"}},
	{"feel_good", []string{"rescued", "helped", "charity", "positive", "celebration", "achievement"}},
}

// classifyHeadline returns the first category whose keyword appears in the
// headline, case-folded.
func classifyHeadline(headline string) (string, bool) {
	lower := strings.ToLower(headline)
	for _, cat := range newsCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name, true
			}
		}
	}
	return "", false
}

// applyNews classifies headlines and applies each matched category's
// influence once. With no matches the default category applies.
func applyNews(weights map[string]float64, cat mood.Catalog, headlines []string, notes *[]string) {
	matched := map[string]bool{}
	for _, h := range headlines {
		if name, ok := classifyHeadline(h); ok {
			matched[name] = true
		}
	}
	if len(matched) == 0 {
		matched[defaultNewsCategory] = true
	}

	for _, name := range sortedKeySet(matched) {
		influence, ok := cat.NewsInfluence[name]
		if !ok {
			continue
		}
		*notes = append(*notes, fmt.Sprintf("news: %s", name))
		for _, id := range influence.Boost {
			if _, ok := weights[id]; ok {
				weights[id] *= newsBoost
			}
		}
		for _, id := range influence.Dampen {
			if _, ok := weights[id]; ok {
				weights[id] *= newsDampen
			}
		}
	}
}

// #endregion news

// #region night

// applyNight biases morning weights from the night summary: momentum moods
// after a productive night, recovery moods after a rough one. Returns the
// human-readable factors woven into the mood reason.
func applyNight(weights map[string]float64, summary *night.Summary) []string {
	if summary == nil || summary.Sessions == 0 {
		return nil
	}

	var factors []string
	switch {
	case summary.Productive && summary.Sessions >= 3 &&
		(summary.EnergyAvg == "high" || summary.EnergyAvg == "medium"):
		if _, ok := weights["determined"]; ok {
			weights["determined"] *= 1.3
		}
		if _, ok := weights["hyperfocus"]; ok {
			weights["hyperfocus"] *= 1.2
		}
		factors = append(factors, "productive night momentum")
	case summary.EnergyAvg == "low" || (summary.Sessions < 3 && summary.EnergyAvg != "high"):
		if _, ok := weights["cozy"]; ok {
			weights["cozy"] *= 1.3
		}
		if _, ok := weights["curious"]; ok {
			weights["curious"] *= 1.2
		}
		factors = append(factors, "recovering from rough night")
	}
	return factors
}

// #endregion night

// #region helpers

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeySet(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion helpers

package mood

// #region levels

// EnergyLevel classifies how much energy an activity took or produced.
type EnergyLevel string

const (
	EnergyHigh    EnergyLevel = "high"
	EnergyNeutral EnergyLevel = "neutral"
	EnergyLow     EnergyLevel = "low"
)

// VibeLevel classifies how an activity felt.
type VibeLevel string

const (
	VibePositive VibeLevel = "positive"
	VibeNeutral  VibeLevel = "neutral"
	VibeNegative VibeLevel = "negative"
)

// #endregion levels

// #region activity-event

// ActivityEvent is one executed action's outcome. Appended to the day's
// activity log, never mutated or removed.
type ActivityEvent struct {
	ThoughtID string      `json:"thought_id"`
	Energy    EnergyLevel `json:"energy"`
	Vibe      VibeLevel   `json:"vibe"`
	Timestamp string      `json:"timestamp"`
}

// #endregion activity-event

// #region spiral-info

// SpiralInfo reports a run of identical consecutive daily moods.
type SpiralInfo struct {
	Mood            string `json:"mood"`
	ConsecutiveDays int    `json:"consecutive_days"`
	Warning         string `json:"warning"`
}

// #endregion spiral-info

// #region disposition

// Disposition is the live mood record: created once per day by the selector,
// mutated by the drift engine after each event, replaced by the override
// controller while an override is active, superseded at the next day's
// selection.
type Disposition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Weather     string `json:"weather"`
	MoodReason  string `json:"mood_reason"`

	NewsVibes      []string        `json:"news_vibes"`
	BoostedTraits  []string        `json:"boosted_traits"`
	DampenedTraits []string        `json:"dampened_traits"`
	ActivityLog    []ActivityEvent `json:"activity_log"`

	EnergyScore int    `json:"energy_score"`
	VibeScore   int    `json:"vibe_score"`
	LastDrift   string `json:"last_drift"`

	DriftedTo string `json:"drifted_to,omitempty"`
	DriftNote string `json:"drift_note,omitempty"`

	PriorityOverride bool   `json:"priority_override,omitempty"`
	OverrideExpires  string `json:"override_expires,omitempty"`

	SpiralInfo *SpiralInfo `json:"spiral_info,omitempty"`
}

// #endregion disposition

// #region definition

// Definition is one immutable catalog entry.
type Definition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Weight      float64  `json:"weight"`
	Traits      []string `json:"traits"`
	FlavorText  []string `json:"flavor_text"`
}

// #endregion definition

// #region catalog

// Influence lists mood ids a condition boosts and dampens.
type Influence struct {
	Boost  []string `json:"boost"`
	Dampen []string `json:"dampen"`
}

// DayOfWeekConfig holds per-weekday weight multipliers keyed by lowercase
// weekday name, then mood id.
type DayOfWeekConfig struct {
	Multipliers map[string]map[string]float64 `json:"multipliers"`
}

// Catalog is the full mood configuration file (moods.json).
type Catalog struct {
	BaseMoods        []Definition         `json:"base_moods"`
	WeatherInfluence map[string]Influence `json:"weather_influence"`
	NewsInfluence    map[string]Influence `json:"news_influence"`
	DayOfWeek        DayOfWeekConfig      `json:"day_of_week"`
}

// Find returns the definition for id, if present.
func (c Catalog) Find(id string) (Definition, bool) {
	for _, m := range c.BaseMoods {
		if m.ID == id {
			return m, true
		}
	}
	return Definition{}, false
}

// BaseWeights returns the catalog's starting weight per mood id.
// Unset weights default to 1.
func (c Catalog) BaseWeights() map[string]float64 {
	weights := make(map[string]float64, len(c.BaseMoods))
	for _, m := range c.BaseMoods {
		w := m.Weight
		if w == 0 {
			w = 1.0
		}
		weights[m.ID] = w
	}
	return weights
}

// #endregion catalog

// #region history

// HistoryEntry is one day's recorded mood pick.
type HistoryEntry struct {
	Date      string   `json:"date"`
	MoodID    string   `json:"mood_id"`
	Weather   string   `json:"weather,omitempty"`
	NewsVibes []string `json:"news_vibes,omitempty"`
}

// OverrideEvent records a priority override activation or deactivation in
// the history file.
type OverrideEvent struct {
	Type         string `json:"type"` // "activated" | "deactivated"
	Level        string `json:"level"`
	Trigger      string `json:"trigger"`
	Pattern      string `json:"pattern,omitempty"`
	OverrideMood string `json:"override_mood"`
	PreviousMood string `json:"previous_mood"`
	Source       string `json:"source,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Timestamp    string `json:"timestamp"`
	Expires      string `json:"expires,omitempty"`
}

// History is the whole mood_history.json file.
type History struct {
	History   []HistoryEntry  `json:"history"`
	Overrides []OverrideEvent `json:"overrides,omitempty"`
}

// #endregion history

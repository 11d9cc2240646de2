package override

import "time"

// #region levels

// Level is an override severity. Escalation is only permitted upward, from
// high to critical.
type Level string

const (
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// #endregion levels

// #region config

// Pattern is one configured trigger: keywords and an optional regex that
// force the target mood for a bounded duration.
type Pattern struct {
	Level           Level    `json:"level"`
	Keywords        []string `json:"keywords"`
	Regex           string   `json:"regex,omitempty"`
	OverrideMood    string   `json:"override_mood"`
	DurationMinutes int      `json:"duration_minutes"`
}

// Config is the priorities.json file.
type Config struct {
	Patterns map[string]Pattern `json:"patterns"`
}

// #endregion config

// #region trigger

// Trigger is a detected priority match.
type Trigger struct {
	Level           Level  `json:"level"`
	Trigger         string `json:"trigger"`
	Pattern         string `json:"pattern"`
	OverrideMood    string `json:"override_mood"`
	DurationMinutes int    `json:"duration_minutes"`
}

// #endregion trigger

// #region override-record

// Override is the single active override record (active_override.json).
// Previous-mood fields snapshot the disposition at activation time; restore
// always targets exactly that snapshot.
type Override struct {
	Active           bool   `json:"active"`
	Level            Level  `json:"level"`
	Trigger          string `json:"trigger"`
	Pattern          string `json:"pattern"`
	OverrideMood     string `json:"override_mood"`
	PreviousMoodID   string `json:"previous_mood_id"`
	PreviousMoodName string `json:"previous_mood_name"`
	Source           string `json:"source"`
	ActivatedAt      string `json:"activated_at"`
	Expires          string `json:"expires"`
	DurationMinutes  int    `json:"duration_minutes"`
}

// Expired reports whether the override's TTL has passed. Expiry is a pure
// function of (now, stored expiry); there is no timer anywhere.
func (o Override) Expired(now time.Time) bool {
	exp, err := time.Parse(time.RFC3339, o.Expires)
	if err != nil {
		return false
	}
	return now.After(exp)
}

// #endregion override-record

// #region defaults

const (
	defaultOverrideMood    = "determined"
	defaultDurationMinutes = 60
	defaultLevel           = LevelHigh
)

// Urgent-work trait sets applied when the override mood has no traits of
// its own in the catalog.
var (
	defaultBoostedTraits = []string{
		"determined", "ship features", "close issues", "hyperfocus",
		"long focus sessions", "build complex things",
	}
	defaultDampenedTraits = []string{
		"shitposts on Moltbook", "philosophical", "cozy",
		"weird projects", "rapid task switching",
	}
)

// #endregion defaults

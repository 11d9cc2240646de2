// Package override is the priority-interrupt layer above normal mood
// selection. Detected high/critical text patterns force a different
// disposition for a bounded duration; expiry is checked lazily on load and
// restoration returns to the exact mood snapshotted at activation.
package override

import (
	"fmt"
	"strings"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region files

const (
	ConfigFile = "priorities.json"
	ActiveFile = "active_override.json"
)

// #endregion files

// #region controller

// Controller manages the single active override against a state store.
type Controller struct {
	store statefile.Store

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

// NewController creates a controller over the given store.
func NewController(store statefile.Store) *Controller {
	return &Controller{store: store, Now: time.Now}
}

// LoadConfig reads priorities.json. A missing or unparseable config yields
// an empty pattern set: detection reports "no trigger", never an error.
func (c *Controller) LoadConfig() Config {
	var cfg Config
	status, _ := c.store.Load(ConfigFile, &cfg)
	if status != statefile.Found {
		return Config{}
	}
	return cfg
}

// #endregion controller

// #region active

// Active returns the currently active override, clearing one whose TTL has
// passed (reason "expired") before reporting none.
func (c *Controller) Active() (Override, bool) {
	var o Override
	status, _ := c.store.Load(ActiveFile, &o)
	if status != statefile.Found || !o.Active {
		return Override{}, false
	}
	if o.Expired(c.Now().UTC()) {
		c.Clear("expired")
		return Override{}, false
	}
	return o, true
}

// #endregion active

// #region activate

// Activate applies a detected trigger: snapshot the current disposition,
// rewrite it as the override mood, persist the marker, and append an
// "activated" record to the history log.
func (c *Controller) Activate(t Trigger, source string) (Override, error) {
	now := c.Now().UTC()
	expires := now.Add(time.Duration(t.DurationMinutes) * time.Minute)

	current, _ := mood.LoadDisposition(c.store)
	prevID := current.ID
	if prevID == "" {
		prevID = "unknown"
	}
	prevName := current.Name
	if prevName == "" {
		prevName = "Unknown"
	}

	o := Override{
		Active:           true,
		Level:            t.Level,
		Trigger:          t.Trigger,
		Pattern:          t.Pattern,
		OverrideMood:     t.OverrideMood,
		PreviousMoodID:   prevID,
		PreviousMoodName: prevName,
		Source:           source,
		ActivatedAt:      now.Format(time.RFC3339),
		Expires:          expires.Format(time.RFC3339),
		DurationMinutes:  t.DurationMinutes,
	}

	if err := c.store.Save(ActiveFile, o); err != nil {
		return Override{}, fmt.Errorf("save override: %w", err)
	}
	if err := c.applyMood(current, o); err != nil {
		return Override{}, err
	}
	c.logEvent(mood.OverrideEvent{
		Type:         "activated",
		Level:        string(o.Level),
		Trigger:      o.Trigger,
		Pattern:      o.Pattern,
		OverrideMood: o.OverrideMood,
		PreviousMood: o.PreviousMoodID,
		Source:       o.Source,
		Timestamp:    o.ActivatedAt,
		Expires:      o.Expires,
	})
	return o, nil
}

// applyMood rewrites the disposition as the override mood, keeping the
// activity log and scores intact. An override mood absent from the catalog
// falls back to an id-derived name and a stock emoji.
func (c *Controller) applyMood(current mood.Disposition, o Override) error {
	var def mood.Definition
	found := false
	if cat, err := mood.LoadCatalog(c.store); err == nil {
		def, found = cat.Find(o.OverrideMood)
	}

	current.ID = o.OverrideMood
	if found {
		current.Name = def.Name
		current.Emoji = def.Emoji
	} else {
		current.Name = titleCase(o.OverrideMood)
		current.Emoji = "⚡"
	}
	current.Description = fmt.Sprintf(
		"Priority override (%s): %s. Previous mood: %s. Auto-reverts in %dmin.",
		o.Level, o.Trigger, o.PreviousMoodName, o.DurationMinutes,
	)
	current.PriorityOverride = true
	current.OverrideExpires = o.Expires

	if found && len(def.Traits) > 0 {
		current.BoostedTraits = def.Traits
	} else {
		current.BoostedTraits = defaultBoostedTraits
	}
	current.DampenedTraits = defaultDampenedTraits

	return mood.SaveDisposition(c.store, current)
}

// #endregion activate

// #region check-and-apply

// CheckAndApply is the main entry point: detect a trigger in text and
// activate when appropriate. While an override is active, only a critical
// trigger over a non-critical override escalates; everything else is a
// no-op. Note: escalation re-snapshots the current (already overridden)
// disposition as the restoration target.
func (c *Controller) CheckAndApply(text, source string) (Override, bool, error) {
	if existing, ok := c.Active(); ok {
		trig, hit := Detect(text, c.LoadConfig())
		if hit && trig.Level == LevelCritical && existing.Level != LevelCritical {
			o, err := c.Activate(trig, source)
			return o, err == nil, err
		}
		return Override{}, false, nil
	}

	trig, hit := Detect(text, c.LoadConfig())
	if !hit {
		return Override{}, false, nil
	}
	o, err := c.Activate(trig, source)
	return o, err == nil, err
}

// #endregion check-and-apply

// #region clear-restore

// Clear removes the active override marker, appending a "deactivated"
// record. Returns the cleared override, if there was one.
func (c *Controller) Clear(reason string) (Override, bool) {
	var old Override
	status, _ := c.store.Load(ActiveFile, &old)
	had := status == statefile.Found && old.Active

	c.store.Save(ActiveFile, nil)

	if had {
		c.logEvent(mood.OverrideEvent{
			Type:         "deactivated",
			Level:        string(old.Level),
			Trigger:      old.Trigger,
			OverrideMood: old.OverrideMood,
			PreviousMood: old.PreviousMoodID,
			Reason:       reason,
			Timestamp:    c.Now().UTC().Format(time.RFC3339),
		})
	}
	return old, had
}

// Restore clears the override and rewrites the disposition back to the
// previous-mood id captured at activation. Returns the restored mood id.
func (c *Controller) Restore() (string, bool) {
	o, ok := c.Active()
	if !ok {
		return "", false
	}

	prevID := o.PreviousMoodID
	c.Clear("resolved")

	if prevID == "" || prevID == "unknown" {
		return prevID, prevID != ""
	}

	current, _ := mood.LoadDisposition(c.store)

	var def mood.Definition
	found := false
	if cat, err := mood.LoadCatalog(c.store); err == nil {
		def, found = cat.Find(prevID)
	}

	current.ID = prevID
	if found {
		current.Name = def.Name
		current.Emoji = def.Emoji
	} else {
		current.Name = titleCase(prevID)
		current.Emoji = "🎭"
	}
	current.Description = "Restored after priority override resolved."
	current.PriorityOverride = false
	current.OverrideExpires = ""

	mood.SaveDisposition(c.store, current)
	return prevID, true
}

// #endregion clear-restore

// #region history-log

func (c *Controller) logEvent(ev mood.OverrideEvent) {
	h, _ := mood.LoadHistory(c.store)
	h.Overrides = append(h.Overrides, ev)
	mood.SaveHistory(c.store, h)
}

// #endregion history-log

// #region helpers

func titleCase(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// #endregion helpers

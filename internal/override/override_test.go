package override

import (
	"testing"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

func testConfig() Config {
	return Config{Patterns: map[string]Pattern{
		"prod_incident": {
			Level:           LevelCritical,
			Keywords:        []string{"production down", "outage"},
			OverrideMood:    "determined",
			DurationMinutes: 120,
		},
		"urgent_request": {
			Level:        LevelHigh,
			Keywords:     []string{"urgent"},
			Regex:        `asap|right now`,
			OverrideMood: "determined",
		},
	}}
}

func newTestController(t *testing.T) (*Controller, *statefile.Mem) {
	t.Helper()
	store := statefile.NewMem()
	if err := store.Save(ConfigFile, testConfig()); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	if err := store.Save(mood.CatalogFile, mood.Catalog{
		BaseMoods: []mood.Definition{
			{ID: "determined", Name: "Determined", Emoji: "🎯", Traits: []string{"ship features"}},
			{ID: "curious", Name: "Curious", Emoji: "🔍"},
		},
	}); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	if err := mood.SaveDisposition(store, mood.Disposition{
		ID:   "curious",
		Name: "Curious",
		Date: "2026-03-10",
	}); err != nil {
		t.Fatalf("seed disposition: %v", err)
	}

	c := NewController(store)
	c.Now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return c, store
}

func TestDetectKeyword(t *testing.T) {
	trig, ok := Detect("Heads up: PRODUCTION DOWN in eu-west", testConfig())
	if !ok {
		t.Fatal("expected a trigger")
	}
	if trig.Pattern != "prod_incident" || trig.Level != LevelCritical {
		t.Fatalf("unexpected trigger %+v", trig)
	}
	if trig.Trigger != "production down" {
		t.Fatalf("trigger should name the keyword, got %q", trig.Trigger)
	}
}

func TestDetectRegex(t *testing.T) {
	trig, ok := Detect("need this fixed ASAP please", testConfig())
	if !ok {
		t.Fatal("expected a trigger")
	}
	if trig.Pattern != "urgent_request" {
		t.Fatalf("unexpected pattern %q", trig.Pattern)
	}
	if trig.Trigger != "regex:asap|right now" {
		t.Fatalf("unexpected trigger %q", trig.Trigger)
	}
}

func TestDetectDefaults(t *testing.T) {
	cfg := Config{Patterns: map[string]Pattern{
		"bare": {Keywords: []string{"help"}},
	}}
	trig, ok := Detect("help me", cfg)
	if !ok {
		t.Fatal("expected a trigger")
	}
	if trig.Level != LevelHigh || trig.OverrideMood != "determined" || trig.DurationMinutes != 60 {
		t.Fatalf("defaults not applied: %+v", trig)
	}
}

func TestDetectEmptyConfig(t *testing.T) {
	if _, ok := Detect("production down", Config{}); ok {
		t.Fatal("empty config must never match")
	}
}

func TestActivateSnapshotsAndRewrites(t *testing.T) {
	c, store := newTestController(t)

	trig, _ := Detect("urgent: review this", c.LoadConfig())
	o, err := c.Activate(trig, "telegram")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	if o.PreviousMoodID != "curious" || o.PreviousMoodName != "Curious" {
		t.Fatalf("snapshot wrong: %+v", o)
	}
	if o.Expires != "2026-03-10T13:00:00Z" {
		t.Fatalf("unexpected expiry %q", o.Expires)
	}

	d, status := mood.LoadDisposition(store)
	if status != statefile.Found {
		t.Fatal("disposition missing after activate")
	}
	if d.ID != "determined" || !d.PriorityOverride {
		t.Fatalf("disposition not overridden: %+v", d)
	}
	if len(d.BoostedTraits) != 1 || d.BoostedTraits[0] != "ship features" {
		t.Fatalf("expected catalog traits, got %v", d.BoostedTraits)
	}

	h, _ := mood.LoadHistory(store)
	if len(h.Overrides) != 1 || h.Overrides[0].Type != "activated" {
		t.Fatalf("expected one activated event, got %v", h.Overrides)
	}
}

func TestActivateUnknownMoodFallback(t *testing.T) {
	c, store := newTestController(t)

	o, err := c.Activate(Trigger{
		Level:           LevelHigh,
		Trigger:         "test",
		OverrideMood:    "battle-mode",
		DurationMinutes: 30,
	}, "test")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if o.OverrideMood != "battle-mode" {
		t.Fatalf("unexpected override %+v", o)
	}

	d, _ := mood.LoadDisposition(store)
	if d.Name != "Battle Mode" || d.Emoji != "⚡" {
		t.Fatalf("fallback naming wrong: %q %q", d.Name, d.Emoji)
	}
	if len(d.BoostedTraits) == 0 {
		t.Fatal("fallback traits missing")
	}
}

func TestActiveLazyExpiry(t *testing.T) {
	c, store := newTestController(t)

	trig, _ := Detect("urgent", c.LoadConfig())
	if _, err := c.Activate(trig, "test"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, ok := c.Active(); !ok {
		t.Fatal("override should be active")
	}

	// Jump past the 60-minute TTL.
	c.Now = func() time.Time { return time.Date(2026, 3, 10, 13, 1, 0, 0, time.UTC) }
	if _, ok := c.Active(); ok {
		t.Fatal("expired override still reported active")
	}

	h, _ := mood.LoadHistory(store)
	if len(h.Overrides) != 2 {
		t.Fatalf("expected activated+deactivated, got %d events", len(h.Overrides))
	}
	last := h.Overrides[1]
	if last.Type != "deactivated" || last.Reason != "expired" {
		t.Fatalf("unexpected deactivation event %+v", last)
	}

	// The clear is persisted: a fresh look also finds nothing.
	if _, ok := c.Active(); ok {
		t.Fatal("expiry should persist")
	}
}

func TestCheckAndApplyEscalationOnly(t *testing.T) {
	c, _ := newTestController(t)

	// High activates.
	o, applied, err := c.CheckAndApply("urgent thing", "chat")
	if err != nil || !applied || o.Level != LevelHigh {
		t.Fatalf("expected high activation, got %+v applied=%v err=%v", o, applied, err)
	}

	// A second high trigger while active is a no-op.
	if _, applied, _ := c.CheckAndApply("another urgent thing", "chat"); applied {
		t.Fatal("high must not replace an active override")
	}

	// Critical escalates over high.
	o, applied, err = c.CheckAndApply("production down!", "chat")
	if err != nil || !applied || o.Level != LevelCritical {
		t.Fatalf("expected escalation, got %+v applied=%v err=%v", o, applied, err)
	}

	// Nothing escalates over critical.
	if _, applied, _ := c.CheckAndApply("another outage", "chat"); applied {
		t.Fatal("critical must not be replaced")
	}
}

func TestCheckAndApplyNoTrigger(t *testing.T) {
	c, _ := newTestController(t)
	if _, applied, err := c.CheckAndApply("lovely weather today", "chat"); applied || err != nil {
		t.Fatalf("benign text should not trigger, applied=%v err=%v", applied, err)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	c, store := newTestController(t)

	trig, _ := Detect("urgent", c.LoadConfig())
	if _, err := c.Activate(trig, "test"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	prevID, ok := c.Restore()
	if !ok || prevID != "curious" {
		t.Fatalf("expected restore to curious, got %q ok=%v", prevID, ok)
	}

	d, _ := mood.LoadDisposition(store)
	if d.ID != "curious" || d.Name != "Curious" {
		t.Fatalf("disposition not restored: %+v", d)
	}
	if d.PriorityOverride || d.OverrideExpires != "" {
		t.Fatalf("override flags not cleared: %+v", d)
	}

	if _, ok := c.Active(); ok {
		t.Fatal("override still active after restore")
	}
	h, _ := mood.LoadHistory(store)
	last := h.Overrides[len(h.Overrides)-1]
	if last.Type != "deactivated" || last.Reason != "resolved" {
		t.Fatalf("unexpected final event %+v", last)
	}
}

func TestRestoreWithoutActiveOverride(t *testing.T) {
	c, _ := newTestController(t)
	if _, ok := c.Restore(); ok {
		t.Fatal("restore with no override should report false")
	}
}

func TestExpiredPureFunction(t *testing.T) {
	o := Override{Expires: "2026-03-10T13:00:00Z"}
	if o.Expired(time.Date(2026, 3, 10, 12, 59, 0, 0, time.UTC)) {
		t.Fatal("not yet expired")
	}
	if !o.Expired(time.Date(2026, 3, 10, 13, 1, 0, 0, time.UTC)) {
		t.Fatal("should be expired")
	}
	// Unparseable expiry never expires on its own.
	if (Override{Expires: "garbage"}).Expired(time.Now()) {
		t.Fatal("bad expiry string should not expire")
	}
}

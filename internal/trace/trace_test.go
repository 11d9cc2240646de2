package trace

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/kittleik/intrusive-thoughts/internal/selector"
	"github.com/kittleik/intrusive-thoughts/internal/thought"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trace.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSelection() thought.Selection {
	chosen := thought.Candidate{
		ID:             "learn",
		Prompt:         "Learn something",
		OriginalWeight: 1.0,
		FinalWeight:    1.8,
		BoostReasons:   []string{"Boosted by current mood (Curious): exploring"},
	}
	return thought.Selection{
		Chosen:        chosen,
		AllCandidates: []thought.Candidate{chosen, {ID: "rest", OriginalWeight: 1.0, FinalWeight: 0.5}},
		SkippedThoughts: []thought.SkippedThought{
			{ID: "rest", OriginalWeight: 1.0, FinalWeight: 0.5, Reasons: []string{"dampened"}},
		},
		PoolSize:        23,
		TotalCandidates: 2,
	}
}

func TestRecordAndListTicks(t *testing.T) {
	s := tempStore(t)

	rec, err := s.RecordTick("curious", sampleSelection())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.DecisionID == "" {
		t.Fatal("decision id not assigned")
	}
	if rec.ChosenID != "learn" || rec.FinalWeight != 1.8 || rec.PoolSize != 23 {
		t.Fatalf("unexpected record %+v", rec)
	}

	ticks, err := s.RecentTicks(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ticks) != 1 {
		t.Fatalf("expected 1 tick, got %d", len(ticks))
	}
	got := ticks[0]
	if got.DecisionID != rec.DecisionID || got.MoodID != "curious" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	var candidates []thought.Candidate
	if err := json.Unmarshal([]byte(got.CandidatesJSON), &candidates); err != nil {
		t.Fatalf("candidates json: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	var skipped []thought.SkippedThought
	if err := json.Unmarshal([]byte(got.SkippedJSON), &skipped); err != nil {
		t.Fatalf("skipped json: %v", err)
	}
	if len(skipped) != 1 || skipped[0].ID != "rest" {
		t.Fatalf("unexpected skipped %v", skipped)
	}
}

func TestRecordTickNoMood(t *testing.T) {
	s := tempStore(t)

	if _, err := s.RecordTick("", sampleSelection()); err != nil {
		t.Fatalf("record: %v", err)
	}
	ticks, err := s.RecentTicks(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if ticks[0].MoodID != "" {
		t.Fatalf("expected empty mood id, got %q", ticks[0].MoodID)
	}
}

func TestFindByChosen(t *testing.T) {
	s := tempStore(t)

	sel := sampleSelection()
	first, err := s.RecordTick("curious", sel)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	second, err := s.RecordTick("cozy", sel)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	rec, ok, err := s.FindByChosen("learn")
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	// Most recent decision wins.
	if rec.DecisionID != second.DecisionID {
		t.Fatalf("expected %s, got %s (first was %s)", second.DecisionID, rec.DecisionID, first.DecisionID)
	}

	if _, ok, err := s.FindByChosen("never-chosen"); ok || err != nil {
		t.Fatalf("expected no match, ok=%v err=%v", ok, err)
	}
}

func TestRecordAndListMoods(t *testing.T) {
	s := tempStore(t)

	tr := selector.Trace{
		RecentMoods:  []string{"cozy", "cozy"},
		Notes:        []string{"entropy target: cozy appeared 3 times recently, weight halved"},
		FinalWeights: map[string]float64{"cozy": 0.5, "curious": 1.0},
	}
	rec, err := s.RecordMood("curious", "felt like exploring", tr)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.PickID == "" {
		t.Fatal("pick id not assigned")
	}

	moods, err := s.RecentMoods(5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(moods) != 1 {
		t.Fatalf("expected 1 mood, got %d", len(moods))
	}
	got := moods[0]
	if got.MoodID != "curious" || got.Reason != "felt like exploring" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	var gotTrace selector.Trace
	if err := json.Unmarshal([]byte(got.WeightsJSON), &gotTrace); err != nil {
		t.Fatalf("trace json: %v", err)
	}
	if gotTrace.FinalWeights["curious"] != 1.0 {
		t.Fatalf("unexpected trace %+v", gotTrace)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trace.db")
	s1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s1.RecordTick("curious", sampleSelection()); err != nil {
		t.Fatalf("record: %v", err)
	}
	s1.Close()

	// Reopening runs migrations again and keeps existing rows.
	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	ticks, err := s2.RecentTicks(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ticks) != 1 {
		t.Fatalf("expected 1 surviving tick, got %d", len(ticks))
	}
}

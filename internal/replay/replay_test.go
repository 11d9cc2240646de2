package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/thought"
)

func baseFixture() Fixture {
	return Fixture{
		Description: "two thoughts, no biases",
		Thoughts: []thought.Thought{
			{ID: "heavy", Weight: 3.0},
			{ID: "light", Weight: 0.3},
		},
		Seed:  42,
		Draws: 1000,
	}
}

func TestRunShareBounds(t *testing.T) {
	f := baseFixture()
	// heavy holds 30 of 33 pool slots.
	f.Expect = Expectation{
		MinShare: map[string]float64{"heavy": 0.8},
		MaxShare: map[string]float64{"light": 0.2},
	}
	res, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Pass {
		t.Fatalf("expected pass, failures: %v", res.Failures)
	}
	if res.Shares["heavy"]+res.Shares["light"] != 1.0 {
		t.Fatalf("shares do not sum to 1: %v", res.Shares)
	}
}

func TestRunFailsImpossibleBound(t *testing.T) {
	f := baseFixture()
	f.Expect = Expectation{MinShare: map[string]float64{"light": 0.9}}
	res, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Pass || len(res.Failures) == 0 {
		t.Fatalf("expected failure, got %+v", res)
	}
}

func TestRunDeterministic(t *testing.T) {
	f := baseFixture()
	r1, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	r2, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for id, share := range r1.Shares {
		if r2.Shares[id] != share {
			t.Fatalf("share of %q differs between runs: %f vs %f", id, share, r2.Shares[id])
		}
	}
	if r1.Chosen != r2.Chosen {
		t.Fatalf("last chosen differs: %q vs %q", r1.Chosen, r2.Chosen)
	}
}

func TestRunSingleDrawChosenCheck(t *testing.T) {
	f := Fixture{
		Thoughts: []thought.Thought{{ID: "only", Weight: 1.0}},
		Seed:     1,
	}
	f.Expect = Expectation{ChosenID: "only"}
	res, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Pass || res.Chosen != "only" {
		t.Fatalf("unexpected result %+v", res)
	}

	f.Expect.ChosenID = "other"
	res, _ = Run(f)
	if res.Pass {
		t.Fatal("wrong chosen id should fail")
	}
}

func TestRunAppliesMoodBias(t *testing.T) {
	f := baseFixture()
	f.Thoughts = []thought.Thought{
		{ID: "a", Weight: 1.0},
		{ID: "b", Weight: 1.0},
	}
	f.Mood = &mood.Disposition{Name: "Curious", BoostedTraits: []string{"b"}}
	// b holds 18 of 28 slots (~0.64); with biases off it would sit near 0.5.
	f.Expect = Expectation{MinShare: map[string]float64{"b": 0.56}}
	res, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Pass {
		t.Fatalf("mood bias not reflected in shares: %v (failures %v)", res.Shares, res.Failures)
	}
}

func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "good.json")
	content := `{
		"description": "minimal",
		"thoughts": [{"id": "learn", "weight": 1.0}],
		"seed": 7,
		"draws": 10,
		"expect": {"min_share": {"learn": 1.0}}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Seed != 7 || len(f.Thoughts) != 1 {
		t.Fatalf("unexpected fixture %+v", f)
	}
	res, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Pass {
		t.Fatalf("single-thought fixture must pass, got %+v", res)
	}

	if _, err := LoadFixture(filepath.Join(dir, "absent.json")); err == nil {
		t.Fatal("missing file must error")
	}

	bad := filepath.Join(dir, "empty.json")
	os.WriteFile(bad, []byte(`{"thoughts": []}`), 0o644)
	if _, err := LoadFixture(bad); err == nil {
		t.Fatal("fixture without thoughts must error")
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/replay"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
	"github.com/kittleik/intrusive-thoughts/internal/thought"
	"github.com/kittleik/intrusive-thoughts/internal/trace"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("THOUGHTS_DB", ""), "path to decision trace database")
	dir := flag.String("dir", "", "optional project directory to include the live mood")
	action := flag.String("action", "", "export the most recent decision that chose this action id")
	outPath := flag.String("out", "", "output fixture JSON path")
	draws := flag.Int("draws", 1000, "draws for the exported fixture")
	flag.Parse()

	if *dbPath == "" || *outPath == "" || *action == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/decisions.db --action id --out fixture.json [--dir D] [--draws N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *dir, *action, *outPath, *draws); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run rebuilds a replay fixture from a recorded decision: the candidates'
// original weights become the thought catalog, and the recorded outcome
// becomes a minimum-share expectation.
func run(dbPath, dir, action, outPath string, draws int) error {
	store, err := trace.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rec, ok, err := store.FindByChosen(action)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no decision found for action %q", action)
	}

	var candidates []thought.Candidate
	if err := json.Unmarshal([]byte(rec.CandidatesJSON), &candidates); err != nil {
		return fmt.Errorf("parse candidates: %w", err)
	}

	thoughts := make([]thought.Thought, 0, len(candidates))
	for _, c := range candidates {
		thoughts = append(thoughts, thought.Thought{
			ID:     c.ID,
			Weight: c.OriginalWeight,
			Prompt: c.Prompt,
		})
	}

	fixture := replay.Fixture{
		Description: fmt.Sprintf("exported from decision %s", rec.DecisionID),
		Thoughts:    thoughts,
		Seed:        1,
		Draws:       draws,
		Expect: replay.Expectation{
			MinShare: map[string]float64{rec.ChosenID: 0.0},
		},
	}
	if dir != "" {
		if d, status := mood.LoadDisposition(statefile.NewDir(dir)); status == statefile.Found {
			fixture.Mood = &d
		}
	}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	fmt.Printf("exported %d candidates to %s\n", len(thoughts), outPath)
	return nil
}

// #endregion export

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kittleik/intrusive-thoughts/internal/thought"
	"github.com/kittleik/intrusive-thoughts/internal/trace"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("THOUGHTS_DB", ""), "path to decision trace database")
	last := flag.Int("last", 20, "show N most recent records")
	action := flag.String("action", "", "explain the most recent decision that chose this action id")
	moods := flag.Bool("moods", false, "show daily mood picks instead of tick decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/decisions.db [--last N] [--action id] [--moods] [--json]")
		os.Exit(2)
	}

	store, err := trace.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *action != "":
		err = runActionMode(store, *action, *jsonOut)
	case *moods:
		err = runMoodMode(store, *last, *jsonOut)
	default:
		err = runTickMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region tick-mode

func runTickMode(store *trace.Store, last int, jsonOut bool) error {
	ticks, err := store.RecentTicks(last)
	if err != nil {
		return err
	}
	if len(ticks) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions found")
		return nil
	}

	if jsonOut {
		out, err := json.MarshalIndent(ticks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%-36s  %-12s  %-20s  %8s  %5s  %s\n",
		"DECISION", "MOOD", "CHOSEN", "WEIGHT", "POOL", "WHEN")
	for _, t := range ticks {
		fmt.Printf("%-36s  %-12s  %-20s  %8.2f  %5d  %s\n",
			t.DecisionID, orDash(t.MoodID), t.ChosenID, t.FinalWeight, t.PoolSize,
			t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// #endregion tick-mode

// #region action-mode

func runActionMode(store *trace.Store, actionID string, jsonOut bool) error {
	rec, ok, err := store.FindByChosen(actionID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no decision found for action %q", actionID)
	}

	if jsonOut {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Decision %s\n", rec.DecisionID)
	fmt.Printf("  when:   %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  mood:   %s\n", orDash(rec.MoodID))
	fmt.Printf("  chosen: %s (weight %.2f, pool %d)\n", rec.ChosenID, rec.FinalWeight, rec.PoolSize)

	var candidates []thought.Candidate
	if rec.CandidatesJSON != "" {
		if err := json.Unmarshal([]byte(rec.CandidatesJSON), &candidates); err != nil {
			return fmt.Errorf("parse candidates: %w", err)
		}
	}
	for _, c := range candidates {
		marker := " "
		if c.ID == rec.ChosenID {
			marker = "*"
		}
		fmt.Printf("  %s %-20s %.2f -> %.2f\n", marker, c.ID, c.OriginalWeight, c.FinalWeight)
		for _, r := range c.BoostReasons {
			fmt.Printf("      + %s\n", r)
		}
		for _, r := range c.SkipReasons {
			fmt.Printf("      - %s\n", r)
		}
	}
	return nil
}

// #endregion action-mode

// #region mood-mode

func runMoodMode(store *trace.Store, last int, jsonOut bool) error {
	picks, err := store.RecentMoods(last)
	if err != nil {
		return err
	}
	if len(picks) == 0 {
		fmt.Fprintln(os.Stderr, "no mood picks found")
		return nil
	}

	if jsonOut {
		out, err := json.MarshalIndent(picks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, p := range picks {
		reason := p.Reason
		if len(reason) > 60 {
			reason = reason[:57] + "..."
		}
		fmt.Printf("%-12s  %-60s  %s\n", p.MoodID, reason, p.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// #endregion mood-mode

// #region helpers

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

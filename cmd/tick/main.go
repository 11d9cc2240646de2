package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/override"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
	"github.com/kittleik/intrusive-thoughts/internal/thought"
	"github.com/kittleik/intrusive-thoughts/internal/trace"
)

// #region main

func main() {
	dir := flag.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	dbPath := flag.String("db", envOr("THOUGHTS_DB", ""), "optional decision trace database")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	store := statefile.NewDir(*dir)

	thoughts, err := thought.LoadThoughts(store)
	if err != nil {
		log.Fatalf("thoughts catalog: %v", err)
	}

	// Lazily expire any stale override before reading the disposition.
	ctrl := override.NewController(store)
	ctrl.Active()

	var disp *mood.Disposition
	if d, status := mood.LoadDisposition(store); status == statefile.Found {
		disp = &d
	} else if status == statefile.Corrupt {
		log.Printf("today_mood.json %s, selecting without mood bias", status)
	}

	streakWeights, status := thought.LoadStreakWeights(store)
	if status == statefile.Corrupt {
		log.Printf("streak weights %s, continuing without them", status)
	}
	affect, status := thought.LoadAffect(store)
	if status == statefile.Corrupt {
		log.Printf("human mood %s, continuing without it", status)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sel, err := thought.Select(thoughts, disp, streakWeights, affect, rng)
	if err != nil {
		log.Fatalf("select thought: %v", err)
	}

	if *dbPath != "" {
		ts, err := trace.Open(*dbPath)
		if err != nil {
			log.Printf("trace db: %v", err)
		} else {
			defer ts.Close()
			moodID := ""
			if disp != nil {
				moodID = disp.ID
			}
			if _, err := ts.RecordTick(moodID, sel); err != nil {
				log.Printf("record tick: %v", err)
			}
		}
	}

	log.Printf("chose %s (weight %.2f, pool %d)", sel.Chosen.ID, sel.Chosen.FinalWeight, sel.PoolSize)
	for _, r := range sel.Chosen.BoostReasons {
		log.Printf("  + %s", r)
	}
	for _, s := range sel.SkippedThoughts {
		log.Printf("  - skipped %s (%.2f -> %.2f)", s.ID, s.OriginalWeight, s.FinalWeight)
	}

	out, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		log.Fatalf("marshal selection: %v", err)
	}
	fmt.Println(string(out))
	os.Exit(0)
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers

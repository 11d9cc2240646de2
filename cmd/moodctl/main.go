package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/night"
	"github.com/kittleik/intrusive-thoughts/internal/selector"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
	"github.com/kittleik/intrusive-thoughts/internal/trace"
)

// #region main

func main() {
	dir := flag.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	dbPath := flag.String("db", envOr("THOUGHTS_DB", ""), "optional decision trace database")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	location := flag.String("location", "unknown location", "location string for reason text")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: moodctl [--dir D] [--db path] [--seed N] [--location L] <weather>")
		os.Exit(2)
	}
	weather := flag.Arg(0)

	store := statefile.NewDir(*dir)

	cat, err := mood.LoadCatalog(store)
	if err != nil {
		log.Fatalf("mood catalog: %v", err)
	}

	history, status := mood.LoadHistory(store)
	if status == statefile.Corrupt {
		log.Printf("mood history %s, continuing without it", status)
	}
	streaks, status := selector.LoadStreaks(store)
	if status == statefile.Corrupt {
		log.Printf("streaks %s, continuing without them", status)
	}

	var nightSummary *night.Summary
	if s, status := night.LoadSummary(store); status == statefile.Found {
		nightSummary = &s
	}

	now := time.Now()
	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	disp, selTrace, err := selector.Select(cat, history.History, streaks, nightSummary, selector.Inputs{
		Weather:   weather,
		Headlines: readHeadlines(),
		Location:  *location,
		Now:       now,
		Rand:      rng,
	})
	if err != nil {
		log.Fatalf("select mood: %v", err)
	}

	if err := mood.SaveDisposition(store, disp); err != nil {
		log.Fatalf("save disposition: %v", err)
	}

	history.History = append(history.History, mood.HistoryEntry{
		Date:      disp.Date,
		MoodID:    disp.ID,
		Weather:   disp.Weather,
		NewsVibes: disp.NewsVibes,
	})
	if err := mood.SaveHistory(store, history); err != nil {
		log.Fatalf("save history: %v", err)
	}

	if *dbPath != "" {
		ts, err := trace.Open(*dbPath)
		if err != nil {
			log.Printf("trace db: %v", err)
		} else {
			defer ts.Close()
			if _, err := ts.RecordMood(disp.ID, disp.MoodReason, selTrace); err != nil {
				log.Printf("record mood pick: %v", err)
			}
		}
	}

	log.Printf("selected mood: %s %s", disp.Emoji, disp.Name)
	for _, note := range selTrace.Notes {
		log.Printf("  %s", note)
	}

	out, _ := json.MarshalIndent(disp, "", "  ")
	fmt.Println(string(out))
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

// #region stdin

// readHeadlines reads news headlines from stdin when it is piped.
func readHeadlines() []string {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	var headlines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			headlines = append(headlines, line)
		}
	}
	return headlines
}

// #endregion stdin

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/night"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region main

func main() {
	dir := flag.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	flag.Parse()

	targetDate := time.Now()
	if flag.NArg() > 0 {
		d, err := time.Parse("2006-01-02", flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q, use YYYY-MM-DD\n", flag.Arg(0))
			os.Exit(2)
		}
		targetDate = d
	}

	store := statefile.NewDir(*dir)
	history, status := night.LoadHistory(store)
	if status == statefile.Corrupt {
		log.Printf("history.json %s, summarizing empty history", status)
	}

	summary := night.Analyze(history, targetDate)
	if err := night.SaveSummary(store, summary); err != nil {
		log.Fatalf("save summary: %v", err)
	}

	log.Printf("night summary for %s:", summary.Date)
	log.Printf("  sessions: %d", summary.Sessions)
	log.Printf("  productive: %v", summary.Productive)
	log.Printf("  energy: %s", summary.EnergyAvg)
	log.Printf("  summary: %s", summary.Summary)
	if len(summary.Shipped) > 0 {
		log.Printf("  shipped: %s", strings.Join(summary.Shipped, ", "))
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
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

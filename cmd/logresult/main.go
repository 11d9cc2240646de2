package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/drift"
	"github.com/kittleik/intrusive-thoughts/internal/mood"
	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region main

func main() {
	dir := flag.String("dir", envOr("THOUGHTS_DIR", "."), "project directory")
	flag.Parse()

	if flag.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "usage: logresult [--dir D] <thought-id> <energy: high|neutral|low> <vibe: positive|neutral|negative>")
		os.Exit(2)
	}
	thoughtID := flag.Arg(0)
	energy := mood.EnergyLevel(flag.Arg(1))
	vibe := mood.VibeLevel(flag.Arg(2))

	if !validEnergy(energy) || !validVibe(vibe) {
		fmt.Fprintln(os.Stderr, "usage: logresult [--dir D] <thought-id> <energy: high|neutral|low> <vibe: positive|neutral|negative>")
		os.Exit(2)
	}

	store := statefile.NewDir(*dir)
	disp, status := mood.LoadDisposition(store)
	if status != statefile.Found {
		log.Fatalf("no disposition to update (today_mood.json %s)", status)
	}

	now := time.Now()
	disp.ActivityLog = append(disp.ActivityLog, mood.ActivityEvent{
		ThoughtID: thoughtID,
		Energy:    energy,
		Vibe:      vibe,
		Timestamp: now.UTC().Format(time.RFC3339),
	})
	drift.UpdateDisposition(&disp, now)

	if err := mood.SaveDisposition(store, disp); err != nil {
		log.Fatalf("save disposition: %v", err)
	}

	log.Printf("logged %s (%s/%s): energy=%d vibe=%d", thoughtID, energy, vibe, disp.EnergyScore, disp.VibeScore)
	if disp.DriftedTo != "" {
		log.Printf("mood drifting toward %s: %s", disp.DriftedTo, disp.DriftNote)
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

// #region validation

func validEnergy(e mood.EnergyLevel) bool {
	return e == mood.EnergyHigh || e == mood.EnergyNeutral || e == mood.EnergyLow
}

func validVibe(v mood.VibeLevel) bool {
	return v == mood.VibePositive || v == mood.VibeNeutral || v == mood.VibeNegative
}

// #endregion validation

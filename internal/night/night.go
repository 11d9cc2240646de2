// Package night summarizes the 03:00-07:00 work window from the agent's
// session history. The morning mood selector reads the summary to bias
// toward momentum moods after a productive night or recovery moods after a
// rough one.
package night

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region file-names

const (
	SummaryFile = "night_summary.json"
	HistoryFile = "history.json"
)

// #endregion file-names

// #region types

// SessionEntry is one raw session record from history.json.
type SessionEntry struct {
	Timestamp string `json:"timestamp"`
	Mood      string `json:"mood,omitempty"`
	ThoughtID string `json:"thought_id,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Energy    string `json:"energy,omitempty"`
	Vibe      string `json:"vibe,omitempty"`
}

// Session is one night session retained in the summary.
type Session struct {
	Time      string `json:"time"`
	Mood      string `json:"mood"`
	ThoughtID string `json:"thought_id"`
	Summary   string `json:"summary"`
	Energy    string `json:"energy"`
	Vibe      string `json:"vibe"`
}

// Summary is the analyzed night, written to night_summary.json.
type Summary struct {
	Date       string    `json:"date"`
	Sessions   int       `json:"sessions"`
	Productive bool      `json:"productive"`
	EnergyAvg  string    `json:"energy_avg"`
	Shipped    []string  `json:"shipped"`
	Summary    string    `json:"summary"`
	Raw        []Session `json:"raw_sessions,omitempty"`
}

// #endregion types

// #region parsing

var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, f := range timestampFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isNightHour reports whether the hour falls in the night work window.
func isNightHour(t time.Time) bool {
	return t.Hour() >= 3 && t.Hour() < 7
}

// #endregion parsing

// #region analyze

var issueRef = regexp.MustCompile(`#(\d+(?:-\d+)?)`)

var productivityKeywords = []string{
	"shipped", "built", "created", "fixed", "implemented",
	"completed", "finished", "released", "merged", "deployed",
}

// Analyze filters history to night sessions on the target date and derives
// the productivity summary.
func Analyze(history []SessionEntry, targetDate time.Time) Summary {
	dateStr := targetDate.Format("2006-01-02")

	var sessions []Session
	for _, entry := range history {
		t, ok := parseTimestamp(entry.Timestamp)
		if !ok {
			continue
		}
		if t.Format("2006-01-02") != dateStr || !isNightHour(t) {
			continue
		}
		energy := entry.Energy
		if energy == "" {
			energy = "medium"
		}
		vibe := entry.Vibe
		if vibe == "" {
			vibe = "neutral"
		}
		sessions = append(sessions, Session{
			Time:      t.Format("15:04"),
			Mood:      entry.Mood,
			ThoughtID: entry.ThoughtID,
			Summary:   entry.Summary,
			Energy:    energy,
			Vibe:      vibe,
		})
	}

	if len(sessions) == 0 {
		return Summary{
			Date:      dateStr,
			EnergyAvg: "none",
			Shipped:   []string{},
			Summary:   "No night sessions found",
		}
	}

	total := len(sessions)
	energyCounts := map[string]int{}
	for _, s := range sessions {
		energyCounts[s.Energy]++
	}
	energyAvg := "medium"
	if float64(energyCounts["high"]) >= float64(total)*0.6 {
		energyAvg = "high"
	} else if float64(energyCounts["low"]) >= float64(total)*0.6 {
		energyAvg = "low"
	}

	var shipped []string
	productiveSessions := 0
	for _, s := range sessions {
		for _, m := range issueRef.FindAllStringSubmatch(s.Summary, -1) {
			shipped = append(shipped, "#"+m[1])
		}
		lower := strings.ToLower(s.Summary)
		thoughtLower := strings.ToLower(s.ThoughtID)
		for _, kw := range productivityKeywords {
			if strings.Contains(lower, kw) || strings.Contains(thoughtLower, kw) {
				productiveSessions++
				break
			}
		}
	}

	productive := total >= 3 &&
		(float64(productiveSessions) >= float64(total)*0.5 || energyAvg == "high")

	shipped = uniqueCapped(shipped, 5)

	summaryLine := summaryText(total, energyAvg, productive)
	if len(shipped) > 0 {
		n := len(shipped)
		if n > 3 {
			n = 3
		}
		summaryLine += ", shipped " + strings.Join(shipped[:n], ", ")
	}

	return Summary{
		Date:       dateStr,
		Sessions:   total,
		Productive: productive,
		EnergyAvg:  energyAvg,
		Shipped:    shipped,
		Summary:    summaryLine,
		Raw:        sessions,
	}
}

func summaryText(total int, energyAvg string, productive bool) string {
	plural := ""
	if total > 1 {
		plural = "s"
	}
	switch {
	case total >= 4 && energyAvg == "high":
		return fmt.Sprintf("Very active night: %d sessions, high energy work", total)
	case productive:
		return fmt.Sprintf("Productive night: %d sessions, steady progress", total)
	case total >= 3:
		return fmt.Sprintf("Busy night: %d sessions, mixed outcomes", total)
	case energyAvg == "low":
		return fmt.Sprintf("Quiet night: %d session%s, low energy", total, plural)
	default:
		return fmt.Sprintf("Light night work: %d session%s", total, plural)
	}
}

func uniqueCapped(items []string, max int) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	sort.Strings(out)
	if len(out) > max {
		out = out[:max]
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// #endregion analyze

// #region files

// LoadSummary reads night_summary.json. Missing or corrupt content degrades
// to no summary.
func LoadSummary(store statefile.Store) (Summary, statefile.Status) {
	var s Summary
	status, _ := store.Load(SummaryFile, &s)
	if status != statefile.Found {
		return Summary{}, status
	}
	return s, status
}

// SaveSummary rewrites night_summary.json.
func SaveSummary(store statefile.Store, s Summary) error {
	return store.Save(SummaryFile, s)
}

// LoadHistory reads the raw session history. Missing or corrupt content
// degrades to empty.
func LoadHistory(store statefile.Store) ([]SessionEntry, statefile.Status) {
	var h []SessionEntry
	status, _ := store.Load(HistoryFile, &h)
	if status != statefile.Found {
		return nil, status
	}
	return h, status
}

// #endregion files

// Package reason generates the free-text explanation attached to a daily
// mood pick: mood-specific templates across four registers, lunar and
// calendar color, and occasional qualifiers.
package reason

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// #region moon-phase

// knownNewMoon anchors the phase calculation. The synodic month is
// approximately 29.53 days.
var knownNewMoon = time.Date(2023, time.January, 21, 0, 0, 0, 0, time.UTC)

const synodicMonth = 29.53

// MoonPhase returns the approximate lunar phase name for a date.
func MoonPhase(d time.Time) string {
	days := d.Sub(knownNewMoon).Hours() / 24
	phaseDay := days - synodicMonth*float64(int(days/synodicMonth))
	if phaseDay < 0 {
		phaseDay += synodicMonth
	}

	switch {
	case phaseDay < 2:
		return "new moon"
	case phaseDay < 7:
		return "waxing crescent"
	case phaseDay < 9:
		return "first quarter"
	case phaseDay < 14:
		return "waxing gibbous"
	case phaseDay < 16:
		return "full moon"
	case phaseDay < 21:
		return "waning gibbous"
	case phaseDay < 23:
		return "last quarter"
	default:
		return "waning crescent"
	}
}

// #endregion moon-phase

// #region prime-day

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// #endregion prime-day

// #region params

// Params carries everything the generator can weave into a reason.
type Params struct {
	Mood      string
	Weather   string
	DayOfWeek string
	Location  string
	Streaks   map[string]int
	Date      time.Time
	Rand      *rand.Rand
}

// #endregion params

// #region generate

// Generate produces a reason for the selected mood: 30% fully nonsensical,
// otherwise a 40/40/20 split across logical/whimsical/cosmic templates,
// sometimes suffixed with a calendar or streak qualifier.
func Generate(p Params) string {
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	moodTemplates, ok := templates[p.Mood]
	if !ok {
		moodTemplates = templates["curious"]
	}

	var pool []string
	if rng.Float64() < 0.3 {
		pool = moodTemplates["nonsensical"]
	} else {
		r := rng.Float64()
		switch {
		case r < 0.4:
			pool = moodTemplates["logical"]
		case r < 0.8:
			pool = moodTemplates["whimsical"]
		default:
			pool = moodTemplates["cosmic"]
		}
	}
	text := pool[rng.Intn(len(pool))]

	moonPhase := MoonPhase(p.Date)
	dayOfYear := p.Date.YearDay()

	weatherCondition := strings.ToLower(p.Weather)
	if weatherCondition == "" {
		weatherCondition = "mysterious atmospheric conditions"
	}

	text = strings.NewReplacer(
		"{day_of_week}", capitalize(p.DayOfWeek),
		"{weather_condition}", weatherCondition,
		"{location}", p.Location,
		"{moon_phase}", moonPhase,
		"{day_of_year}", fmt.Sprintf("%d", dayOfYear),
	).Replace(text)

	var qualifiers []string
	if isPrime(dayOfYear) {
		qualifiers = append(qualifiers, fmt.Sprintf("(Day %d is prime!)", dayOfYear))
	}
	if longest := longestStreak(p.Streaks); longest > 5 {
		qualifiers = append(qualifiers, fmt.Sprintf("(%d-day streak energy)", longest))
	}
	switch moonPhase {
	case "full moon":
		qualifiers = append(qualifiers, "(Full moon intensity)")
	case "new moon":
		qualifiers = append(qualifiers, "(New moon fresh start)")
	}

	if len(qualifiers) > 0 && rng.Float64() < 0.3 {
		text += " " + qualifiers[rng.Intn(len(qualifiers))]
	}

	return text
}

func longestStreak(streaks map[string]int) int {
	longest := 0
	for _, v := range streaks {
		if v > longest {
			longest = v
		}
	}
	return longest
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// #endregion generate

package override

import (
	"regexp"
	"sort"
	"strings"
)

// #region detect

// Detect scans text against configured patterns. Patterns are tried in
// sorted name order; within a pattern, keywords before regex. First match
// wins. An empty config never matches.
func Detect(text string, cfg Config) (Trigger, bool) {
	names := make([]string, 0, len(cfg.Patterns))
	for name := range cfg.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	lower := strings.ToLower(text)
	for _, name := range names {
		p := cfg.Patterns[name]

		for _, kw := range p.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return triggerFor(name, p, kw), true
			}
		}

		if p.Regex != "" {
			re, err := regexp.Compile("(?i)" + p.Regex)
			if err != nil {
				continue
			}
			if re.MatchString(text) {
				return triggerFor(name, p, "regex:"+p.Regex), true
			}
		}
	}
	return Trigger{}, false
}

func triggerFor(name string, p Pattern, trigger string) Trigger {
	level := p.Level
	if level == "" {
		level = defaultLevel
	}
	moodID := p.OverrideMood
	if moodID == "" {
		moodID = defaultOverrideMood
	}
	duration := p.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	return Trigger{
		Level:           level,
		Trigger:         trigger,
		Pattern:         name,
		OverrideMood:    moodID,
		DurationMinutes: duration,
	}
}

// #endregion detect

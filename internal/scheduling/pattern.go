package scheduling

import (
	"fmt"
	"strings"
)

// PatternKind distinguishes the two ways a provider's availability recurs.
type PatternKind string

const (
	// PatternPeriod is a named period with a fixed start and end,
	// e.g. "matin" 08:00-12:00. It yields one slot per date.
	PatternPeriod PatternKind = "period"
	// PatternInterval tiles a daily window with fixed-length slots,
	// e.g. every 30 minutes between 08:00 and 18:00.
	PatternInterval PatternKind = "interval"
)

// Pattern is a recurrence rule used to generate slots across many dates.
type Pattern struct {
	Kind PatternKind `json:"kind"`
	// Name labels a period pattern ("matin", "apres-midi"). Ignored for interval patterns.
	Name string `json:"name,omitempty"`
	// Start and End bound the period or the daily window, formatted HH:MM.
	Start string `json:"start"`
	End   string `json:"end"`
	// Interval is the slot length in minutes for interval patterns.
	// Zero means the caller's consultation duration applies.
	Interval int `json:"interval,omitempty"`
}

// ID returns the stable identifier derived from the pattern's parameters.
// Two patterns with the same parameters always share an ID, which is what
// makes bulk assignment idempotent.
func (p Pattern) ID() string {
	switch p.Kind {
	case PatternInterval:
		return fmt.Sprintf("interval:%d:%s-%s", p.Interval, p.Start, p.End)
	default:
		return fmt.Sprintf("period:%s:%s-%s", strings.ToLower(strings.TrimSpace(p.Name)), p.Start, p.End)
	}
}

// Validate reports whether the pattern is well-formed enough to persist.
// Generation itself is total and never needs this; it protects the write path.
func (p Pattern) Validate() error {
	if p.Kind != PatternPeriod && p.Kind != PatternInterval {
		return fmt.Errorf("unknown pattern kind %q", p.Kind)
	}
	if minuteOfDay(p.Start) < 0 {
		return fmt.Errorf("invalid pattern start %q, use HH:MM", p.Start)
	}
	if minuteOfDay(p.End) < 0 {
		return fmt.Errorf("invalid pattern end %q, use HH:MM", p.End)
	}
	if p.Kind == PatternPeriod && strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("period pattern requires a name")
	}
	if p.Kind == PatternInterval && p.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	return nil
}

// minuteOfDay parses an HH:MM clock string into minutes since midnight.
// Returns -1 for anything malformed.
func minuteOfDay(clock string) int {
	if len(clock) != 5 || clock[2] != ':' {
		return -1
	}
	h, m := 0, 0
	for i := 0; i < 2; i++ {
		c := clock[i]
		if c < '0' || c > '9' {
			return -1
		}
		h = h*10 + int(c-'0')
	}
	for i := 3; i < 5; i++ {
		c := clock[i]
		if c < '0' || c > '9' {
			return -1
		}
		m = m*10 + int(c-'0')
	}
	if h > 23 || m > 59 {
		return -1
	}
	return h*60 + m
}

// clockOf formats minutes since midnight back into HH:MM.
func clockOf(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes advances an HH:MM clock string, capping at 23:59.
// Used to compute a consultation end from its start and duration.
func AddMinutes(clock string, minutes int) string {
	start := minuteOfDay(clock)
	if start < 0 {
		return clock
	}
	end := start + minutes
	if end > 23*60+59 {
		end = 23*60 + 59
	}
	return clockOf(end)
}

// IsValidClock reports whether clock is a well-formed HH:MM string.
func IsValidClock(clock string) bool {
	return minuteOfDay(clock) >= 0
}

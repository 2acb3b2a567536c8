package resolve

import (
	"regexp"
	"strings"
	"time"
)

var (
	weekdayNamePattern = regexp.MustCompile(`(?i)\b(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	// A phrase that is nothing but a clock expression, like "3pm" or
	// "at 10:30", with the timezone mention already stripped.
	bareTimePattern = regexp.MustCompile(`(?i)^\s*(?:at\s+)?\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s*$`)
)

// adjustToFuture guarantees a resolved instant is never presented as already
// elapsed. The strategy depends on the phrase shape, checked in order:
// explicit "tomorrow" and "today" keywords win over lateness heuristics, a
// weekday name rolls a whole week, a bare time rolls a single day, and
// anything else steps forward day by day. Range ends are instead pushed past
// their start so ordering stays strict. The returned flag reports whether
// the instant moved.
func adjustToFuture(t time.Time, text string, isEnd bool, start *time.Time, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	if isEnd && start != nil {
		adjusted := false
		for !t.After(*start) {
			t = t.AddDate(0, 0, 1)
			adjusted = true
		}
		for t.Before(now) {
			t = t.AddDate(0, 0, 1)
			adjusted = true
		}
		return t, adjusted
	}

	if strings.Contains(lower, "tomorrow") {
		adjusted := onDate(t, now.In(t.Location()).AddDate(0, 0, 1))
		return adjusted, !adjusted.Equal(t)
	}

	if strings.Contains(lower, "today") {
		adjusted := onDate(t, now.In(t.Location()))
		if !adjusted.After(now) {
			adjusted = adjusted.AddDate(0, 0, 1)
		}
		return adjusted, !adjusted.Equal(t)
	}

	if !t.Before(now) {
		return t, false
	}

	if weekdayNamePattern.MatchString(lower) {
		return t.AddDate(0, 0, 7), true
	}

	if bareTimePattern.MatchString(lower) {
		adjusted := onDate(t, now.In(t.Location()))
		if adjusted.Before(now) {
			adjusted = adjusted.AddDate(0, 0, 1)
		}
		return adjusted, !adjusted.Equal(t)
	}

	adjusted := false
	for t.Before(now) {
		t = t.AddDate(0, 0, 1)
		adjusted = true
	}
	return t, adjusted
}

// onDate keeps t's clock time but moves it onto d's calendar date.
func onDate(t time.Time, d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

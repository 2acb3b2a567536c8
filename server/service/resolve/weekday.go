package resolve

import (
	"regexp"
	"strings"
	"time"

	"github.com/PBLBot/scheduling-api/server/timezone"
)

var (
	// "<weekday> ... to <weekday>" with any text in between, so shared
	// times and zone mentions do not break the span.
	weekdaySpanPattern = regexp.MustCompile(`(?i)\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b.*?\bto\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	twelveHourPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
)

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// expandWeekdaySpan recognizes recurring weekday-span phrasing like
// "monday 10pm to thursday 10pm" and produces one instant per weekday in the
// cyclic span, each anchored to that weekday's next occurrence. A span whose
// start weekday is today's rolls a full week ahead. Returns false when the
// text is not a weekday span or lacks a shared 12-hour time.
func (s *Service) expandWeekdaySpan(text string, spec timezone.Spec, now time.Time) ([]SeriesEntry, bool) {
	m := weekdaySpanPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	hour, minute, ok := firstTwelveHourTime(text)
	if !ok {
		return nil, false
	}

	start := weekdayIndex[strings.ToLower(m[1])]
	end := weekdayIndex[strings.ToLower(m[2])]
	loc := s.seriesLocation(spec, now)

	entries := make([]SeriesEntry, 0, 7)
	for day := start; ; day = (day + 1) % 7 {
		entries = append(entries, SeriesEntry{
			Weekday: day.String(),
			Instant: Instant{Time: nextWeekdayAt(now, day, hour, minute, loc)},
		})
		if day == end || len(entries) == 7 {
			break
		}
	}
	return entries, true
}

// nextWeekdayAt returns the next occurrence of the weekday strictly after
// today, at the given clock time, built directly in loc.
func nextWeekdayAt(now time.Time, target time.Weekday, hour, minute int, loc *time.Location) time.Time {
	daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	d := now.AddDate(0, 0, daysUntil)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
}

// firstTwelveHourTime extracts the first 12-hour clock token from the text,
// converted to 24-hour values.
func firstTwelveHourTime(text string) (hour, minute int, ok bool) {
	m := twelveHourPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	return convertTwelveHour(m[1], m[2], m[3])
}

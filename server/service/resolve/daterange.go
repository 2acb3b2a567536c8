package resolve

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PBLBot/scheduling-api/server/timezone"
)

// "<day> to <day> at <12-hour time>", both endpoints numeric calendar days.
var dateSpanPattern = regexp.MustCompile(`(?i)\b(?:from\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+to\s+(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)

// expandDateSpan recognizes numeric day-span phrasing like
// "15th to 20th at 10pm" and produces one instant per calendar day of the
// inclusive span, in the current month. When the span's first instant has
// already passed, the whole span moves to the next month; rolling days
// individually would interleave two months and break chronological order.
// Returns false when the text is not a day span or its bounds are invalid.
func (s *Service) expandDateSpan(text string, spec timezone.Spec, now time.Time) ([]SeriesEntry, bool) {
	m := dateSpanPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	startDay, _ := strconv.Atoi(m[1])
	endDay, _ := strconv.Atoi(m[2])
	if startDay < 1 || endDay > 31 || startDay > endDay {
		return nil, false
	}
	if endDay-startDay+1 > s.cfg.MaxSeriesEntries {
		return nil, false
	}
	hour, minute, ok := convertTwelveHour(m[3], m[4], m[5])
	if !ok {
		return nil, false
	}

	monthOffset := time.Month(0)
	adjusted := false
	first := time.Date(now.Year(), now.Month(), startDay, hour, minute, 0, 0, now.Location())
	if !first.After(now) {
		monthOffset = 1
		adjusted = true
	}

	loc := s.seriesLocation(spec, now)
	entries := make([]SeriesEntry, 0, endDay-startDay+1)
	for day := startDay; day <= endDay; day++ {
		t := time.Date(now.Year(), now.Month()+monthOffset, day, hour, minute, 0, 0, loc)
		entries = append(entries, SeriesEntry{
			Day:     day,
			Instant: Instant{Time: t, AdjustedToFuture: adjusted},
		})
	}
	return entries, true
}

// convertTwelveHour converts captured 12-hour time parts to 24-hour values.
func convertTwelveHour(hourStr, minuteStr, meridiem string) (hour, minute int, ok bool) {
	hour, _ = strconv.Atoi(hourStr)
	if hour < 1 || hour > 12 {
		return 0, 0, false
	}
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
		if minute > 59 {
			return 0, 0, false
		}
	}
	if strings.EqualFold(meridiem, "pm") && hour != 12 {
		hour += 12
	} else if strings.EqualFold(meridiem, "am") && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

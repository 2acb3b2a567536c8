package resolve

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/PBLBot/scheduling-api/plugin/nlp/dateparse"
	"github.com/PBLBot/scheduling-api/server/timezone"
)

// resolveGeneric delegates to the external date parser, then rebuilds each
// component in the detected zone and applies the future policy. A nil result
// with a nil error means the parser found no date.
func (s *Service) resolveGeneric(ctx context.Context, text, matchedZone string, spec timezone.Spec, now time.Time) (*RangeResult, error) {
	parseText := stripZoneMention(text, matchedZone)

	results, err := s.parser.Parse(ctx, parseText, now)
	if err != nil {
		return nil, errors.Wrap(err, "generic date parse")
	}
	if len(results) == 0 {
		return nil, nil
	}
	first := results[0]

	startTime := s.zonedComponent(first.Start, spec)
	startTime, startAdjusted := adjustToFuture(startTime, parseText, false, nil, now)
	result := &RangeResult{Start: Instant{Time: startTime, AdjustedToFuture: startAdjusted}}

	if first.End != nil {
		endTime := s.zonedComponent(first.End, spec)
		endTime, endAdjusted := adjustToFuture(endTime, parseText, true, &startTime, now)
		result.End = &Instant{Time: endTime, AdjustedToFuture: endAdjusted}
	}
	return result, nil
}

// zonedComponent rebuilds the component's calendar fields inside the
// detected zone, taking stated fields from the text and the rest from the
// parser's naive resolution. Without a detected zone, or when the zone fails
// to load, the naive time stands.
func (s *Service) zonedComponent(c dateparse.Component, spec timezone.Spec) time.Time {
	naive := c.Date()
	if spec.IsNone() {
		return naive
	}
	loc, err := spec.Location()
	if err != nil {
		slog.Warn("timezone conversion failed, keeping naive time",
			slog.String("timezone", spec.Label()),
			slog.String("error", err.Error()))
		return naive
	}
	return time.Date(
		fieldOr(c, dateparse.FieldYear, naive.Year()),
		time.Month(fieldOr(c, dateparse.FieldMonth, int(naive.Month()))),
		fieldOr(c, dateparse.FieldDay, naive.Day()),
		fieldOr(c, dateparse.FieldHour, naive.Hour()),
		fieldOr(c, dateparse.FieldMinute, naive.Minute()),
		fieldOr(c, dateparse.FieldSecond, naive.Second()),
		0, loc)
}

func fieldOr(c dateparse.Component, f dateparse.Field, fallback int) int {
	if v, ok := c.Get(f); ok {
		return v
	}
	return fallback
}

// stripZoneMention removes the detected timezone text so it cannot confuse
// the date parser, collapsing the whitespace left behind.
func stripZoneMention(text, matched string) string {
	if matched == "" {
		return text
	}
	idx := strings.Index(strings.ToLower(text), matched)
	if idx < 0 {
		return text
	}
	stripped := text[:idx] + text[idx+len(matched):]
	return strings.Join(strings.Fields(stripped), " ")
}

// Package resolve turns natural-language scheduling phrases into concrete
// future instants. The pipeline normalizes the text, gates on scheduling
// relevance, detects a timezone, then tries strategies in a fixed order:
// weekday-span expansion, numeric day-span expansion, and finally a generic
// date parse with a future-adjustment policy. The wall clock is sampled
// exactly once per resolution and threaded through every step.
package resolve

import (
	"context"
	"time"

	"github.com/PBLBot/scheduling-api/server/timezone"
)

// Outcome classifies what a resolution produced.
type Outcome int

const (
	// OutcomeNotRelevant means the text carries no time indication at all.
	OutcomeNotRelevant Outcome = iota
	// OutcomeSeries is a multi-instant result from a weekday or day span.
	OutcomeSeries
	// OutcomeRange is a start instant, with an optional end, from the
	// generic parser.
	OutcomeRange
	// OutcomeNoMatch means the text looked scheduling-relevant but no date
	// could be resolved from it.
	OutcomeNoMatch
)

// String returns the outcome label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeNotRelevant:
		return "not_relevant"
	case OutcomeSeries:
		return "series"
	case OutcomeRange:
		return "range"
	case OutcomeNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// Strategy labels for the resolution paths.
const (
	StrategyWeekdayRange = "weekday_range"
	StrategyDateRange    = "date_range"
	StrategyGeneric      = "generic"
)

// Instant is one resolved point in time.
type Instant struct {
	Time             time.Time
	AdjustedToFuture bool
}

// SeriesEntry is one instant of an expanded span. Weekday is set for weekday
// spans, Day for numeric day spans.
type SeriesEntry struct {
	Weekday string
	Day     int
	Instant Instant
}

// RangeResult is the generic resolver's product.
type RangeResult struct {
	Start Instant
	End   *Instant
}

// Duration returns end minus start, or zero when no end is present.
func (r *RangeResult) Duration() time.Duration {
	if r.End == nil {
		return 0
	}
	return r.End.Time.Sub(r.Start.Time)
}

// Resolution is the full product of resolving one phrase.
type Resolution struct {
	// Text is the trimmed input the pipeline worked on.
	Text string
	// Outcome tells which of the mutually exclusive shapes applies.
	Outcome Outcome
	// Strategy is the resolution path taken, empty for not-relevant text.
	Strategy string
	// Timezone is the detected timezone, possibly none.
	Timezone timezone.Spec
	// Series holds the expanded instants for OutcomeSeries.
	Series []SeriesEntry
	// Range holds the start/end instants for OutcomeRange.
	Range *RangeResult
}

// Resolver resolves scheduling phrases into timestamps.
type Resolver interface {
	Resolve(ctx context.Context, text string) (*Resolution, error)
}

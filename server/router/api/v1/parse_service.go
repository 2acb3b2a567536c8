package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/PBLBot/scheduling-api/server/internal/errors"
	"github.com/PBLBot/scheduling-api/server/internal/observability"
	"github.com/PBLBot/scheduling-api/server/service/resolve"
)

const (
	readableLayout      = "Monday, January 2, 2006 at 3:04 PM"
	readableZonedLayout = "Monday, January 2, 2006 at 3:04 PM MST"
	utcLayout           = "2006-01-02 15:04:05 MST"
)

// ErrorResponse reports a malformed request. Input-shape problems stay in the
// 200 JSON envelope so chat-bot clients never have to branch on status codes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Example string `json:"example"`
}

// NotRelevantResponse reports text carrying no time indication.
type NotRelevantResponse struct {
	OriginalText         string `json:"original_text"`
	FoundDates           bool   `json:"found_dates"`
	IsSchedulingRelevant bool   `json:"is_scheduling_relevant"`
	Message              string `json:"message"`
}

// NoMatchResponse reports scheduling-relevant text that resolved to nothing.
type NoMatchResponse struct {
	OriginalText         string `json:"original_text"`
	FoundDates           bool   `json:"found_dates"`
	IsSchedulingRelevant bool   `json:"is_scheduling_relevant"`
	Message              string `json:"message"`
}

// TimePayload renders one instant in every output format.
type TimePayload struct {
	UnixTimestamp       int64  `json:"unix_timestamp"`
	ReadableDate        string `json:"readable_date"`
	ISODate             string `json:"iso_date"`
	UTCTime             string `json:"utc_time"`
	WasAdjustedToFuture bool   `json:"was_adjusted_to_future"`
}

// SeriesTimePayload is one entry of an expanded span. Day holds the weekday
// name for weekday spans and the day-of-month number for date spans.
type SeriesTimePayload struct {
	Day           interface{} `json:"day"`
	UnixTimestamp int64       `json:"unix_timestamp"`
	ReadableDate  string      `json:"readable_date"`
	ISODate       string      `json:"iso_date"`
	UTCTime       string      `json:"utc_time"`
}

// SeriesResponse reports a multi-instant expansion. The first entry is
// embedded at the top level for clients that predate multiple_times.
type SeriesResponse struct {
	SeriesTimePayload
	OriginalText         string              `json:"original_text"`
	FoundDates           bool                `json:"found_dates"`
	IsSchedulingRelevant bool                `json:"is_scheduling_relevant"`
	IsMultipleTimes      bool                `json:"is_multiple_times"`
	Timezone             string              `json:"timezone,omitempty"`
	MultipleTimes        []SeriesTimePayload `json:"multiple_times"`
}

// DurationPayload is the start-to-end distance in several units.
type DurationPayload struct {
	Milliseconds int64   `json:"milliseconds"`
	Seconds      float64 `json:"seconds"`
	Minutes      float64 `json:"minutes"`
	Hours        float64 `json:"hours"`
}

// RangeResponse reports a generic single-instant or start/end match.
type RangeResponse struct {
	OriginalText         string           `json:"original_text"`
	FoundDates           bool             `json:"found_dates"`
	IsSchedulingRelevant bool             `json:"is_scheduling_relevant"`
	Timezone             string           `json:"timezone,omitempty"`
	StartTime            TimePayload      `json:"start_time"`
	EndTime              *TimePayload     `json:"end_time,omitempty"`
	Duration             *DurationPayload `json:"duration,omitempty"`
	LocalTimeInTimezone  string           `json:"local_time_in_timezone"`
}

// ParseText resolves the text query parameter into concrete future instants.
// GET /parse?text=... and GET /api/v1/parse?text=...
func (s *APIV1Service) ParseText(c echo.Context) error {
	text := c.QueryParam("text")
	if text == "" {
		return c.JSON(http.StatusOK, ErrorResponse{
			Error:   "missing 'text' query parameter",
			Example: "/parse?text=tomorrow at 3pm",
		})
	}

	start := time.Now()
	res, err := s.Resolver.Resolve(c.Request().Context(), text)
	if err != nil {
		s.Metrics.RecordFailure(resolve.StrategyGeneric)
		return apierrors.ParseFailed(err)
	}
	s.Metrics.RecordResolution(res.Outcome.String(), res.Strategy, res.Timezone.Kind.String(), time.Since(start))

	// The request logger middleware picks these up for its completion line.
	c.Set(observability.LogFieldOutcome, res.Outcome.String())
	if res.Strategy != "" {
		c.Set(observability.LogFieldStrategy, res.Strategy)
	}

	if reqCtx, ok := observability.FromContext(c.Request().Context()); ok {
		reqCtx.Debug("text resolved",
			slog.Int(observability.LogFieldTextLen, len(text)),
			slog.String(observability.LogFieldTimezone, res.Timezone.Label()),
			slog.Int(observability.LogFieldEntryCount, len(res.Series)))
	}

	switch res.Outcome {
	case resolve.OutcomeNotRelevant:
		return c.JSON(http.StatusOK, NotRelevantResponse{
			OriginalText:         res.Text,
			FoundDates:           false,
			IsSchedulingRelevant: false,
			Message:              "No time-related information found in the text.",
		})
	case resolve.OutcomeSeries:
		return c.JSON(http.StatusOK, seriesResponse(res))
	case resolve.OutcomeRange:
		return c.JSON(http.StatusOK, rangeResponse(res))
	default:
		return c.JSON(http.StatusOK, NoMatchResponse{
			OriginalText:         res.Text,
			FoundDates:           false,
			IsSchedulingRelevant: true,
			Message:              "No dates could be resolved from the text.",
		})
	}
}

func seriesResponse(res *resolve.Resolution) *SeriesResponse {
	entries := make([]SeriesTimePayload, 0, len(res.Series))
	for _, entry := range res.Series {
		entries = append(entries, seriesPayload(entry))
	}
	resp := &SeriesResponse{
		OriginalText:         res.Text,
		FoundDates:           true,
		IsSchedulingRelevant: true,
		IsMultipleTimes:      true,
		Timezone:             res.Timezone.Label(),
		MultipleTimes:        entries,
	}
	if len(entries) > 0 {
		resp.SeriesTimePayload = entries[0]
	}
	return resp
}

func rangeResponse(res *resolve.Resolution) *RangeResponse {
	resp := &RangeResponse{
		OriginalText:         res.Text,
		FoundDates:           true,
		IsSchedulingRelevant: true,
		Timezone:             res.Timezone.Label(),
		StartTime:            timePayload(res.Range.Start),
		LocalTimeInTimezone:  res.Range.Start.Time.Format(readableZonedLayout),
	}
	if res.Range.End != nil {
		end := timePayload(*res.Range.End)
		resp.EndTime = &end
		resp.Duration = durationPayload(res.Range.Duration())
	}
	return resp
}

func seriesPayload(entry resolve.SeriesEntry) SeriesTimePayload {
	var day interface{}
	if entry.Weekday != "" {
		day = entry.Weekday
	} else {
		day = entry.Day
	}
	t := entry.Instant.Time
	return SeriesTimePayload{
		Day:           day,
		UnixTimestamp: t.Unix(),
		ReadableDate:  t.Format(readableLayout),
		ISODate:       t.Format(time.RFC3339),
		UTCTime:       t.UTC().Format(utcLayout),
	}
}

func timePayload(in resolve.Instant) TimePayload {
	t := in.Time
	return TimePayload{
		UnixTimestamp:       t.Unix(),
		ReadableDate:        t.Format(readableLayout),
		ISODate:             t.Format(time.RFC3339),
		UTCTime:             t.UTC().Format(utcLayout),
		WasAdjustedToFuture: in.AdjustedToFuture,
	}
}

func durationPayload(d time.Duration) *DurationPayload {
	return &DurationPayload{
		Milliseconds: d.Milliseconds(),
		Seconds:      d.Seconds(),
		Minutes:      d.Minutes(),
		Hours:        d.Hours(),
	}
}

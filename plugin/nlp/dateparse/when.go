package dateparse

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/pkg/errors"
)

// Explicit-field detection. The rule engine resolves a complete time.Time;
// these patterns recover which fields the text itself stated so consumers can
// tell stated components apart from inferred ones.
var (
	meridiemTimePattern = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`)
	dottedTimePattern   = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*[ap]\.m\.`)
	clockTimePattern    = regexp.MustCompile(`\b(?:[01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?\b`)
	secondsPattern      = regexp.MustCompile(`\b\d{1,2}:\d{2}:\d{2}\b`)
	dayNumberPattern    = regexp.MustCompile(`(?i)\b(?:on\s+(?:the\s+)?)?\d{1,2}(?:st|nd|rd|th)\b`)
	monthNamePattern    = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b`)
	yearPattern         = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	rangeSplitPattern   = regexp.MustCompile(`(?i)\s+(?:to|until|till)\s+`)
)

// WhenParser is the production Parser, built on the olebedev/when rule
// engine with the English and common rule sets.
type WhenParser struct {
	w *when.Parser
}

// NewWhenParser constructs the production parser. The parser is stateless
// across calls and safe for concurrent use.
func NewWhenParser() *WhenParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenParser{w: w}
}

// Parse implements Parser. Expressions joined by "to", "until" or "till" are
// split and parsed per half; the end half resolves relative to the start's
// result so a bare end time inherits the start's date.
func (p *WhenParser) Parse(_ context.Context, text string, base time.Time) ([]Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	if loc := rangeSplitPattern.FindStringIndex(text); loc != nil {
		start, err := p.parseOne(text[:loc[0]], base)
		if err != nil {
			return nil, err
		}
		if start != nil {
			end, err := p.parseOne(text[loc[1]:], start.Date())
			if err != nil {
				return nil, err
			}
			if end != nil {
				return []Result{{Start: start, End: end}}, nil
			}
			return []Result{{Start: start}}, nil
		}
		// The left half alone carries no date; fall through and parse the
		// whole text as a single expression.
	}

	start, err := p.parseOne(text, base)
	if err != nil || start == nil {
		return nil, err
	}
	return []Result{{Start: start}}, nil
}

func (p *WhenParser) parseOne(text string, base time.Time) (Component, error) {
	r, err := p.w.Parse(text, base)
	if err != nil {
		return nil, errors.Wrap(err, "parse date expression")
	}
	if r == nil {
		return nil, nil
	}
	return NewComponent(r.Time, explicitFields(text, r.Time)), nil
}

// explicitFields maps each field the text states to its value on the
// resolved time.
func explicitFields(text string, resolved time.Time) map[Field]int {
	known := map[Field]int{}
	if meridiemTimePattern.MatchString(text) || dottedTimePattern.MatchString(text) || clockTimePattern.MatchString(text) {
		known[FieldHour] = resolved.Hour()
		known[FieldMinute] = resolved.Minute()
	}
	if secondsPattern.MatchString(text) {
		known[FieldSecond] = resolved.Second()
	}
	if dayNumberPattern.MatchString(text) {
		known[FieldDay] = resolved.Day()
	}
	if monthNamePattern.MatchString(text) {
		known[FieldMonth] = int(resolved.Month())
	}
	if yearPattern.MatchString(text) {
		known[FieldYear] = resolved.Year()
	}
	return known
}

var _ Parser = (*WhenParser)(nil)

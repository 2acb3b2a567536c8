package resolve

import (
	"regexp"
	"strconv"
	"time"
)

const (
	timeExpr   = `\d{1,2}(?::\d{2})?\s*(?:am|pm)`
	monthExpr  = `(?:january|february|march|april|may|june|july|august|september|october|november|december)`
	suffixExpr = `(st|nd|rd|th)`
)

// rewriteRule is one normalization step. Rules run in order over the whole
// text; each sees the previous rule's output, and every rule is a no-op on
// text it has already produced.
type rewriteRule struct {
	name string
	re   *regexp.Regexp
	fn   func(now time.Time, match string, groups []string) string
}

// The rules rewrite day/time adjacency into the canonical
// "<time> on <day><suffix> of <month>" form the generic parser understands.
// The month always comes from the reference clock, not from the text.
var rewriteRules = []rewriteRule{
	{
		name: "time-on-day",
		re:   regexp.MustCompile(`(?i)\b(` + timeExpr + `)\s+on\s+(\d{1,2})` + suffixExpr + `?\b(\s+of\s+` + monthExpr + `)?`),
		fn: func(now time.Time, match string, groups []string) string {
			return canonicalDayForm(now, match, groups[1], groups[2], groups[3], groups[4])
		},
	},
	{
		name: "day-then-time",
		re:   regexp.MustCompile(`(?i)\b(\d{1,2})` + suffixExpr + `?\s+(` + timeExpr + `)\b`),
		fn: func(now time.Time, match string, groups []string) string {
			return canonicalDayForm(now, match, groups[3], groups[1], groups[2], "")
		},
	},
	{
		name: "time-then-day",
		re:   regexp.MustCompile(`(?i)\b(` + timeExpr + `)\s+(\d{1,2})` + suffixExpr + `\b(\s+of\s+` + monthExpr + `)?`),
		fn: func(now time.Time, match string, groups []string) string {
			return canonicalDayForm(now, match, groups[1], groups[2], groups[3], groups[4])
		},
	},
	{
		name: "at-time-on-day",
		re:   regexp.MustCompile(`(?i)\b(at\s+` + timeExpr + `)\s+on\s+(\d{1,2})` + suffixExpr + `?\b(\s+of\s+` + monthExpr + `)?`),
		fn: func(now time.Time, match string, groups []string) string {
			return canonicalDayForm(now, match, groups[1], groups[2], groups[3], groups[4])
		},
	},
}

// canonicalDayForm assembles "<time> on <day><suffix> of <month>", filling a
// missing suffix from the day number and a missing month from now. Day
// numbers outside 1..31 leave the match untouched.
func canonicalDayForm(now time.Time, match, timePart, dayPart, suffix, monthTail string) string {
	day, err := strconv.Atoi(dayPart)
	if err != nil || day < 1 || day > 31 {
		return match
	}
	if suffix == "" {
		suffix = ordinalSuffix(day)
	}
	if monthTail == "" {
		monthTail = " of " + now.Month().String()
	}
	return timePart + " on " + dayPart + suffix + monthTail
}

// ordinalSuffix returns the English ordinal suffix for a day number.
// 11 through 13 take "th" regardless of their last digit.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// normalizeText applies the rewrite rules in order. Normalization is
// idempotent: canonical output passes through every rule unchanged.
func normalizeText(text string, now time.Time) string {
	for _, rule := range rewriteRules {
		text = rule.re.ReplaceAllStringFunc(text, func(match string) string {
			groups := rule.re.FindStringSubmatch(match)
			if groups == nil {
				return match
			}
			return rule.fn(now, match, groups)
		})
	}
	return text
}

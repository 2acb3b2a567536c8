package resolve

import "regexp"

// Scheduling-relevance indicators. Any hit marks the text relevant; no hit
// stops the pipeline before any parsing work.
var relevancePatterns = []*regexp.Regexp{
	// 12-hour clock: "3pm", "3:30 pm".
	regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`),
	// Dotted meridiem: "7 a.m.", "7p.m."
	regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*[ap]\.m\.`),
	// 24-hour clock: "15:30".
	regexp.MustCompile(`\b(?:[01]?\d|2[0-3]):[0-5]\d\b`),
	// Military time, optionally suffixed: "1500", "1500 hrs", "0930 utc".
	regexp.MustCompile(`(?i)\b(?:[01]\d|2[0-3])[0-5]\d(?:\s*(?:hours|hrs|h))?\b`),
	// Spoken time-of-day markers.
	regexp.MustCompile(`(?i)\b(?:noon|midnight|morning|afternoon|evening)\b`),
	// "at <hour>".
	regexp.MustCompile(`(?i)\bat\s+\d{1,2}\b`),
	// "<hour> o'clock".
	regexp.MustCompile(`(?i)\b\d{1,2}\s*o'?clock\b`),
}

// isSchedulingRelevant reports whether the text contains any time
// indication. Texts without one are answered without date resolution.
func isSchedulingRelevant(text string) bool {
	for _, re := range relevancePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

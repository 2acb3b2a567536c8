package timezone

import (
	"regexp"
	"strconv"
	"strings"
)

// offsetPattern is one entry of the ordered offset scan. Submatch layout is
// uniform: 1 = sign (may be empty), 2 = hours, 3 = minutes (may be absent).
type offsetPattern struct {
	name string
	re   *regexp.Regexp
}

// Offset forms per prefix, most explicit first. A missing sign means "+".
var offsetForms = []struct {
	name string
	expr string
}{
	{"space-colon", `\b%s\s+([+-]?)(\d{1,2}):(\d{2})\b`},
	{"space-hour", `\b%s\s+([+-]?)(\d{1,2})\b`},
	{"signed-space", `\b%s([+-])\s+(\d{1,2})(?::(\d{2}))?\b`},
	{"signed-direct", `\b%s([+-])(\d{1,2})(?::(\d{2}))?\b`},
}

var offsetPatterns = buildOffsetPatterns()

func buildOffsetPatterns() []offsetPattern {
	var patterns []offsetPattern
	for _, prefix := range []string{"utc", "gmt"} {
		for _, form := range offsetForms {
			patterns = append(patterns, offsetPattern{
				name: prefix + "-" + form.name,
				re:   regexp.MustCompile(strings.Replace(form.expr, "%s", prefix, 1)),
			})
		}
	}
	// Bare signed offsets like "+05:30" or "-7". The leading whitespace
	// requirement keeps day spans like "3-7" from matching.
	patterns = append(patterns, offsetPattern{
		name: "bare-signed",
		re:   regexp.MustCompile(`(?:^|\s)([+-])(\d{1,2})(?::(\d{2}))?\b`),
	})
	return patterns
}

// detectOffset scans for a manual UTC offset. Matches whose computed offset
// falls outside the valid range are skipped and the scan continues, so an
// invalid "utc+15" does not shadow a valid offset later in the text.
func detectOffset(text string) (Spec, string, bool) {
	for _, p := range offsetPatterns {
		for _, groups := range p.re.FindAllStringSubmatch(text, -1) {
			minutes, ok := offsetFromMatch(groups)
			if !ok {
				continue
			}
			return Offset(minutes), strings.TrimSpace(groups[0]), true
		}
	}
	return Spec{}, "", false
}

func offsetFromMatch(groups []string) (int, bool) {
	hours, err := strconv.Atoi(groups[2])
	if err != nil {
		return 0, false
	}
	minutes := 0
	if len(groups) > 3 && groups[3] != "" {
		minutes, err = strconv.Atoi(groups[3])
		if err != nil || minutes > 59 {
			return 0, false
		}
	}
	total := hours*60 + minutes
	if groups[1] == "-" {
		total = -total
	}
	if !ValidOffsetMinutes(total) {
		return 0, false
	}
	return total, true
}

type aliasPattern struct {
	alias Alias
	re    *regexp.Regexp
}

// Detector finds the timezone referenced by a phrase. Construct it once and
// share it; Detect is safe for concurrent use.
type Detector struct {
	aliases []aliasPattern
}

// NewDetector compiles an alias table into a detector. Aliases are matched
// as whole words, case-insensitively, in table order.
func NewDetector(aliases []Alias) *Detector {
	compiled := make([]aliasPattern, 0, len(aliases))
	for _, a := range aliases {
		compiled = append(compiled, aliasPattern{
			alias: a,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(a.Name)) + `\b`),
		})
	}
	return &Detector{aliases: compiled}
}

// Detect scans text for an explicit UTC/GMT offset, then for a named-zone
// alias. It returns the detected spec and the matched substring in lowercase
// (empty when nothing matched). Offsets always win over aliases.
func (d *Detector) Detect(text string) (Spec, string) {
	text = strings.ToLower(text)

	if spec, matched, ok := detectOffset(text); ok {
		return spec, matched
	}

	for _, ap := range d.aliases {
		if m := ap.re.FindString(text); m != "" {
			return Named(ap.alias.ZoneID), m
		}
	}
	return None, ""
}

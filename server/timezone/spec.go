package timezone

import (
	"fmt"
	"time"
)

// Kind discriminates the ways a phrase can specify a timezone.
type Kind int

const (
	// KindNone means no timezone was detected in the phrase.
	KindNone Kind = iota
	// KindOffset is a manual UTC offset such as "utc+5:30".
	KindOffset
	// KindNamed is a zone resolved from a place or abbreviation alias.
	KindNamed
)

// String returns the kind label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindOffset:
		return "offset"
	case KindNamed:
		return "named"
	default:
		return "none"
	}
}

// Manual offset bounds in minutes, covering UTC-12:00 through UTC+14:00.
const (
	MinOffsetMinutes = -12 * 60
	MaxOffsetMinutes = 14 * 60
)

// Spec is the detected timezone of a phrase: a manual UTC offset, a named
// IANA zone, or nothing. The zero value means no timezone.
type Spec struct {
	Kind          Kind
	OffsetMinutes int
	ZoneID        string
}

// None is the absent timezone spec.
var None = Spec{}

// Offset returns a manual-offset spec for minutes east of UTC.
func Offset(minutes int) Spec {
	return Spec{Kind: KindOffset, OffsetMinutes: minutes}
}

// Named returns a named-zone spec for an IANA zone identifier.
func Named(zoneID string) Spec {
	return Spec{Kind: KindNamed, ZoneID: zoneID}
}

// IsNone reports whether no timezone was detected.
func (s Spec) IsNone() bool {
	return s.Kind == KindNone
}

// Location resolves the spec to a *time.Location. Offsets become fixed zones
// named by their label; named zones load from the IANA database.
func (s Spec) Location() (*time.Location, error) {
	switch s.Kind {
	case KindOffset:
		if !ValidOffsetMinutes(s.OffsetMinutes) {
			return nil, fmt.Errorf("offset %d minutes out of range", s.OffsetMinutes)
		}
		return time.FixedZone(FormatOffset(s.OffsetMinutes), s.OffsetMinutes*60), nil
	case KindNamed:
		return ParseTimezone(s.ZoneID)
	default:
		return nil, fmt.Errorf("no timezone specified")
	}
}

// Label renders the spec for display: "UTC+05:30" for offsets, the zone
// identifier for named zones, and the empty string for none.
func (s Spec) Label() string {
	switch s.Kind {
	case KindOffset:
		return FormatOffset(s.OffsetMinutes)
	case KindNamed:
		return s.ZoneID
	default:
		return ""
	}
}

// ValidOffsetMinutes reports whether a manual offset lies within UTC-12:00
// through UTC+14:00 inclusive.
func ValidOffsetMinutes(minutes int) bool {
	return minutes >= MinOffsetMinutes && minutes <= MaxOffsetMinutes
}

// FormatOffset renders minutes east of UTC as a label like "UTC+05:30".
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}

// Package timezone resolves the timezone referenced by a scheduling phrase,
// either as a manual UTC offset ("utc+5:30", "gmt-7") or as a named zone
// looked up from a place/abbreviation alias table.
//
// Detection is two-phase: explicit offsets always win over named aliases.
// The result is a tagged Spec value carrying the offset minutes or the IANA
// zone identifier.
package timezone

import (
	"fmt"
	"sync"
	"time"
)

// UTC is the coordinated universal time location.
var UTC = time.UTC

var (
	locMu    sync.RWMutex
	locCache = map[string]*time.Location{}
)

// ParseTimezone parses an IANA timezone identifier (e.g., "Asia/Dhaka").
// Loaded locations are cached. If the timezone is invalid, returns UTC and
// an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return UTC, nil
	}

	locMu.RLock()
	loc, ok := locCache[tz]
	locMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	locMu.Lock()
	locCache[tz] = loc
	locMu.Unlock()
	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for identifiers that are known to be valid at compile time.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}

	_, err := time.LoadLocation(tz)
	return err == nil
}

// Common timezone constants referenced by the alias table.
const (
	// TimezoneUTC is the UTC timezone identifier
	TimezoneUTC = "UTC"

	// TimezoneAmericaNewYork is the Eastern Time timezone
	TimezoneAmericaNewYork = "America/New_York"

	// TimezoneAmericaChicago is the Central Time timezone
	TimezoneAmericaChicago = "America/Chicago"

	// TimezoneAmericaLosAngeles is the Pacific Time timezone
	TimezoneAmericaLosAngeles = "America/Los_Angeles"

	// TimezoneEuropeLondon is the GMT/BST timezone
	TimezoneEuropeLondon = "Europe/London"

	// TimezoneEuropeParis is the CET/CEST timezone
	TimezoneEuropeParis = "Europe/Paris"

	// TimezoneAsiaKolkata is the India Standard Time timezone
	TimezoneAsiaKolkata = "Asia/Kolkata"

	// TimezoneAsiaTokyo is the Japan Standard Time timezone
	TimezoneAsiaTokyo = "Asia/Tokyo"

	// TimezoneAustraliaSydney is the AEST/AEDT timezone
	TimezoneAustraliaSydney = "Australia/Sydney"
)

// Common timezone locations (pre-loaded into the cache at startup).
var (
	// LocationAmericaNewYork is the pre-loaded America/New_York location
	LocationAmericaNewYork = MustParseTimezone(TimezoneAmericaNewYork)

	// LocationAmericaLosAngeles is the pre-loaded America/Los_Angeles location
	LocationAmericaLosAngeles = MustParseTimezone(TimezoneAmericaLosAngeles)

	// LocationEuropeLondon is the pre-loaded Europe/London location
	LocationEuropeLondon = MustParseTimezone(TimezoneEuropeLondon)

	// LocationEuropeParis is the pre-loaded Europe/Paris location
	LocationEuropeParis = MustParseTimezone(TimezoneEuropeParis)

	// LocationAsiaTokyo is the pre-loaded Asia/Tokyo location
	LocationAsiaTokyo = MustParseTimezone(TimezoneAsiaTokyo)

	// LocationAustraliaSydney is the pre-loaded Australia/Sydney location
	LocationAustraliaSydney = MustParseTimezone(TimezoneAustraliaSydney)
)

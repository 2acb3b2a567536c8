package timezone

import (
	"testing"
)

func TestDetectOffset(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMinutes int
		wantMatch   string
		wantOK      bool
	}{
		{
			name:        "utc space colon",
			text:        "call at 9am utc 5:30",
			wantMinutes: 330,
			wantMatch:   "utc 5:30",
			wantOK:      true,
		},
		{
			name:        "utc space signed colon",
			text:        "call at 9am utc +5:30",
			wantMinutes: 330,
			wantMatch:   "utc +5:30",
			wantOK:      true,
		},
		{
			name:        "utc space hour only",
			text:        "meeting utc 5",
			wantMinutes: 300,
			wantMatch:   "utc 5",
			wantOK:      true,
		},
		{
			name:        "utc sign then space",
			text:        "meeting utc+ 5:30",
			wantMinutes: 330,
			wantMatch:   "utc+ 5:30",
			wantOK:      true,
		},
		{
			name:        "utc signed direct",
			text:        "meeting utc+5:30",
			wantMinutes: 330,
			wantMatch:   "utc+5:30",
			wantOK:      true,
		},
		{
			name:        "gmt negative",
			text:        "meeting at 9am gmt-7",
			wantMinutes: -420,
			wantMatch:   "gmt-7",
			wantOK:      true,
		},
		{
			name:        "bare signed with colon",
			text:        "standup 10am +05:30",
			wantMinutes: 330,
			wantMatch:   "+05:30",
			wantOK:      true,
		},
		{
			name:        "bare signed hour",
			text:        "standup 10am -7",
			wantMinutes: -420,
			wantMatch:   "-7",
			wantOK:      true,
		},
		{
			name:        "upper bound accepted",
			text:        "sync utc+14",
			wantMinutes: 840,
			wantMatch:   "utc+14",
			wantOK:      true,
		},
		{
			name:        "lower bound accepted",
			text:        "sync utc-12",
			wantMinutes: -720,
			wantMatch:   "utc-12",
			wantOK:      true,
		},
		{
			name:   "too far east rejected",
			text:   "sync utc+15",
			wantOK: false,
		},
		{
			name:   "too far west rejected",
			text:   "sync utc-13",
			wantOK: false,
		},
		{
			name:   "past upper bound with minutes rejected",
			text:   "sync utc+14:30",
			wantOK: false,
		},
		{
			name:   "past lower bound with minutes rejected",
			text:   "sync utc-12:30",
			wantOK: false,
		},
		{
			name:   "day span is not an offset",
			text:   "free 3-7 next week",
			wantOK: false,
		},
		{
			name:   "no offset",
			text:   "lunch at noon",
			wantOK: false,
		},
		{
			name:        "invalid match does not shadow later valid one",
			text:        "utc+15 or rather utc+2",
			wantMinutes: 120,
			wantMatch:   "utc+2",
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, matched, ok := detectOffset(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("detectOffset(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if spec.Kind != KindOffset {
				t.Errorf("detectOffset(%q) kind = %v, want KindOffset", tt.text, spec.Kind)
			}
			if spec.OffsetMinutes != tt.wantMinutes {
				t.Errorf("detectOffset(%q) minutes = %d, want %d", tt.text, spec.OffsetMinutes, tt.wantMinutes)
			}
			if matched != tt.wantMatch {
				t.Errorf("detectOffset(%q) matched = %q, want %q", tt.text, matched, tt.wantMatch)
			}
		})
	}
}

func TestDetectorNamedZones(t *testing.T) {
	d := NewDetector(DefaultAliases())

	tests := []struct {
		name       string
		text       string
		wantZoneID string
		wantMatch  string
	}{
		{
			name:       "country alias",
			text:       "conference 2pm australia time",
			wantZoneID: "Australia/Sydney",
			wantMatch:  "australia",
		},
		{
			name:       "country alias netherlands",
			text:       "available from 15th to 20th at 10pm netherlands",
			wantZoneID: "Europe/Amsterdam",
			wantMatch:  "netherlands",
		},
		{
			name:       "abbreviation est",
			text:       "monday 10pm to thursday 10pm est",
			wantZoneID: "America/New_York",
			wantMatch:  "est",
		},
		{
			name:       "city alias case insensitive",
			text:       "retro at 4pm in Tokyo",
			wantZoneID: "Asia/Tokyo",
			wantMatch:  "tokyo",
		},
		{
			name:       "multi-word before substring",
			text:       "kickoff 9am new york office",
			wantZoneID: "America/New_York",
			wantMatch:  "new york",
		},
		{
			name:       "bangladesh",
			text:       "tomorrow at 3pm bangladesh time",
			wantZoneID: "Asia/Dhaka",
			wantMatch:  "bangladesh",
		},
		{
			name:       "utc word itself",
			text:       "0930 utc briefing",
			wantZoneID: "UTC",
			wantMatch:  "utc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, matched := d.Detect(tt.text)
			if spec.Kind != KindNamed {
				t.Fatalf("Detect(%q) kind = %v, want KindNamed", tt.text, spec.Kind)
			}
			if spec.ZoneID != tt.wantZoneID {
				t.Errorf("Detect(%q) zone = %v, want %v", tt.text, spec.ZoneID, tt.wantZoneID)
			}
			if matched != tt.wantMatch {
				t.Errorf("Detect(%q) matched = %q, want %q", tt.text, matched, tt.wantMatch)
			}
		})
	}
}

func TestDetectorWholeWordOnly(t *testing.T) {
	d := NewDetector(DefaultAliases())

	tests := []string{
		"the best coffee at 3pm",       // "est" inside "best"
		"bangladeshi cuisine at 7pm",   // "bangladesh" inside "bangladeshi"
		"gisting the notes before 2pm", // "ist" inside "gisting"
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if spec, matched := d.Detect(text); !spec.IsNone() {
				t.Errorf("Detect(%q) = %v (matched %q), want none", text, spec.Label(), matched)
			}
		})
	}
}

func TestDetectorOffsetWinsOverAlias(t *testing.T) {
	d := NewDetector(DefaultAliases())

	spec, matched := d.Detect("call 3pm est utc+2")
	if spec.Kind != KindOffset {
		t.Fatalf("Detect() kind = %v, want KindOffset", spec.Kind)
	}
	if spec.OffsetMinutes != 120 {
		t.Errorf("Detect() minutes = %d, want 120", spec.OffsetMinutes)
	}
	if matched != "utc+2" {
		t.Errorf("Detect() matched = %q, want %q", matched, "utc+2")
	}
}

func TestDetectorInvalidOffsetFallsBackToAlias(t *testing.T) {
	d := NewDetector(DefaultAliases())

	// "utc+15" is out of range, so the scan falls through to the "utc"
	// alias itself.
	spec, matched := d.Detect("available at utc+15")
	if spec.Kind != KindNamed || spec.ZoneID != "UTC" {
		t.Fatalf("Detect() = %v, want named UTC", spec.Label())
	}
	if matched != "utc" {
		t.Errorf("Detect() matched = %q, want %q", matched, "utc")
	}
}

func TestDetectorNothingDetected(t *testing.T) {
	d := NewDetector(DefaultAliases())

	spec, matched := d.Detect("lunch with the team at 1pm")
	if !spec.IsNone() {
		t.Errorf("Detect() = %v, want none", spec.Label())
	}
	if matched != "" {
		t.Errorf("Detect() matched = %q, want empty", matched)
	}
}

func TestDefaultAliasesResolve(t *testing.T) {
	for _, alias := range DefaultAliases() {
		if !IsValidTimezone(alias.ZoneID) {
			t.Errorf("alias %q maps to invalid zone %q", alias.Name, alias.ZoneID)
		}
	}
}

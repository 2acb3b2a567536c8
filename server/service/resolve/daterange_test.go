package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PBLBot/scheduling-api/plugin/nlp/dateparse"
	"github.com/PBLBot/scheduling-api/server/timezone"
)

func TestExpandDateSpan(t *testing.T) {
	svc := newTestService(t, dateparse.NewMockParser())
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("future span in a named zone", func(t *testing.T) {
		amsterdam := timezone.MustParseTimezone("Europe/Amsterdam")
		entries, ok := svc.expandDateSpan(
			"available from 15th to 20th at 10pm netherlands",
			timezone.Named("Europe/Amsterdam"), now)
		require.True(t, ok)
		require.Len(t, entries, 6)

		for i, entry := range entries {
			day := 15 + i
			assert.Equal(t, day, entry.Day)
			expected := time.Date(2026, 6, day, 22, 0, 0, 0, amsterdam)
			assert.True(t, entry.Instant.Time.Equal(expected), "day %d: got %v, want %v", day, entry.Instant.Time, expected)
			assert.False(t, entry.Instant.AdjustedToFuture)
			assert.True(t, entry.Instant.Time.After(now))
		}
		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i].Instant.Time.After(entries[i-1].Instant.Time))
		}
	})

	t.Run("span starting today keeps the current month", func(t *testing.T) {
		entries, ok := svc.expandDateSpan("10th to 12th at 10pm", timezone.None, now)
		require.True(t, ok)
		require.Len(t, entries, 3)
		assert.Equal(t, time.June, entries[0].Instant.Time.Month())
		assert.False(t, entries[0].Instant.AdjustedToFuture)
	})

	t.Run("elapsed span rolls whole to next month", func(t *testing.T) {
		entries, ok := svc.expandDateSpan("1st to 5th at 10pm", timezone.None, now)
		require.True(t, ok)
		require.Len(t, entries, 5)
		for i, entry := range entries {
			assert.Equal(t, time.July, entry.Instant.Time.Month())
			assert.Equal(t, i+1, entry.Day)
			assert.True(t, entry.Instant.AdjustedToFuture)
			assert.True(t, entry.Instant.Time.After(now))
		}
	})

	t.Run("partially elapsed span rolls as a whole", func(t *testing.T) {
		midSpan := time.Date(2026, 6, 17, 23, 30, 0, 0, time.UTC)
		entries, ok := svc.expandDateSpan("15th to 20th at 10pm", timezone.None, midSpan)
		require.True(t, ok)
		require.Len(t, entries, 6)
		for _, entry := range entries {
			assert.Equal(t, time.July, entry.Instant.Time.Month())
			assert.True(t, entry.Instant.AdjustedToFuture)
		}
	})

	t.Run("minutes in the shared time", func(t *testing.T) {
		entries, ok := svc.expandDateSpan("15th to 16th at 9:30pm", timezone.None, now)
		require.True(t, ok)
		require.Len(t, entries, 2)
		assert.Equal(t, 21, entries[0].Instant.Time.Hour())
		assert.Equal(t, 30, entries[0].Instant.Time.Minute())
	})

	t.Run("descending span declines", func(t *testing.T) {
		_, ok := svc.expandDateSpan("20th to 15th at 10pm", timezone.None, now)
		assert.False(t, ok)
	})

	t.Run("day zero declines", func(t *testing.T) {
		_, ok := svc.expandDateSpan("0 to 5 at 3pm", timezone.None, now)
		assert.False(t, ok)
	})

	t.Run("day past thirty one declines", func(t *testing.T) {
		_, ok := svc.expandDateSpan("25th to 32nd at 10pm", timezone.None, now)
		assert.False(t, ok)
	})

	t.Run("not a day span", func(t *testing.T) {
		_, ok := svc.expandDateSpan("tomorrow at 3pm", timezone.None, now)
		assert.False(t, ok)
	})

	t.Run("span over the entry cap declines", func(t *testing.T) {
		capped, err := NewService(Config{MaxTextLength: 512, MaxSeriesEntries: 7},
			timezone.NewDetector(timezone.DefaultAliases()), dateparse.NewMockParser())
		require.NoError(t, err)
		_, ok := capped.expandDateSpan("1st to 20th at 10pm", timezone.None, now)
		assert.False(t, ok)
	})
}

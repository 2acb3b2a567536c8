package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdjustToFutureStartShapes(t *testing.T) {
	// Wednesday afternoon.
	now := time.Date(2026, 6, 10, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		t            time.Time
		text         string
		want         time.Time
		wantAdjusted bool
	}{
		{
			name:         "already future stays put",
			t:            time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
			text:         "june 15 at 10am",
			want:         time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
			wantAdjusted: false,
		},
		{
			name:         "tomorrow keyword forces tomorrow",
			t:            time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
			text:         "tomorrow at 3pm",
			want:         time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC),
			wantAdjusted: true,
		},
		{
			name:         "tomorrow keyword no-op when already tomorrow",
			t:            time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC),
			text:         "tomorrow at 3pm",
			want:         time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC),
			wantAdjusted: false,
		},
		{
			name:         "today keyword keeps a future time today",
			t:            time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC),
			text:         "today at 8pm",
			want:         time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC),
			wantAdjusted: false,
		},
		{
			name:         "today keyword rolls an elapsed time to tomorrow",
			t:            time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC),
			text:         "today at 9am",
			want:         time.Date(2026, 6, 11, 9, 0, 0, 0, time.UTC),
			wantAdjusted: true,
		},
		{
			name:         "weekday name rolls a full week",
			t:            time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC),
			text:         "monday at 10am",
			want:         time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
			wantAdjusted: true,
		},
		{
			name:         "bare time rolls to tomorrow when elapsed",
			t:            time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
			text:         "3pm",
			want:         time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC),
			wantAdjusted: true,
		},
		{
			name:         "bare time lands today when still ahead",
			t:            time.Date(2026, 6, 9, 17, 0, 0, 0, time.UTC),
			text:         "at 5pm",
			want:         time.Date(2026, 6, 10, 17, 0, 0, 0, time.UTC),
			wantAdjusted: true,
		},
		{
			name:         "fallback steps day by day until future",
			t:            time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
			text:         "on the 1st at 10am",
			want:         time.Date(2026, 6, 11, 10, 0, 0, 0, time.UTC),
			wantAdjusted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, adjusted := adjustToFuture(tt.t, tt.text, false, nil, now)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, tt.wantAdjusted, adjusted)
		})
	}
}

func TestAdjustToFutureEndShapes(t *testing.T) {
	now := time.Date(2026, 6, 10, 16, 0, 0, 0, time.UTC)

	t.Run("end after start untouched", func(t *testing.T) {
		start := time.Date(2026, 6, 12, 15, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 12, 17, 0, 0, 0, time.UTC)
		got, adjusted := adjustToFuture(end, "3pm to 5pm", true, &start, now)
		assert.True(t, got.Equal(end))
		assert.False(t, adjusted)
	})

	t.Run("end at or before start is pushed past it", func(t *testing.T) {
		start := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)
		got, adjusted := adjustToFuture(end, "10pm to 9am", true, &start, now)
		assert.True(t, got.Equal(time.Date(2026, 6, 13, 9, 0, 0, 0, time.UTC)))
		assert.True(t, adjusted)
	})

	t.Run("stale end steps past both start and now", func(t *testing.T) {
		start := time.Date(2026, 6, 11, 22, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 8, 23, 0, 0, 0, time.UTC)
		got, adjusted := adjustToFuture(end, "10pm to 11pm", true, &start, now)
		assert.True(t, got.Equal(time.Date(2026, 6, 11, 23, 0, 0, 0, time.UTC)), "got %v", got)
		assert.True(t, adjusted)
		assert.True(t, got.After(start))
		assert.False(t, got.Before(now))
	})

	t.Run("end keywords do not override range handling", func(t *testing.T) {
		start := time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 11, 17, 0, 0, 0, time.UTC)
		got, adjusted := adjustToFuture(end, "tomorrow 3pm to 5pm", true, &start, now)
		assert.True(t, got.Equal(end))
		assert.False(t, adjusted)
	})
}

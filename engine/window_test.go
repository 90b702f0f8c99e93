package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDayRespectsTimezone(t *testing.T) {
	// 23:30 and 00:30 straddle midnight in UTC but share a day in UTC-2.
	a := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	b := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC)

	assert.False(t, SameDay(a, b, time.UTC))
	assert.True(t, SameDay(a, b, time.FixedZone("UTC-2", -2*3600)))
}

func TestWithinLastDaysHalfOpen(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, WithinLastDays(now, now, 30), "now itself is inside the window")
	assert.True(t, WithinLastDays(now.Add(-29*24*time.Hour), now, 30))
	assert.False(t, WithinLastDays(now.Add(-30*24*time.Hour), now, 30), "exact boundary is excluded")
	assert.False(t, WithinLastDays(now.Add(time.Hour), now, 30), "future timestamps are excluded")
}

func TestWithinDaysRangeAdjacentWindows(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	t35 := now.Add(-35 * 24 * time.Hour)
	t30 := now.Add(-30 * 24 * time.Hour)

	// The two 30-day windows partition time with no overlap and no gap.
	assert.False(t, WithinLastDays(t30, now, 30))
	assert.True(t, WithinDaysRange(t30, now, 30, 60))
	assert.True(t, WithinDaysRange(t35, now, 30, 60))
	assert.False(t, WithinDaysRange(now.Add(-61*24*time.Hour), now, 30, 60))
}

func TestElapsedDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedDays(now, now))
	assert.Equal(t, 0, ElapsedDays(now.Add(-23*time.Hour), now))
	assert.Equal(t, 6, ElapsedDays(now.Add(-6*24*time.Hour), now))
	assert.Equal(t, 0, ElapsedDays(now.Add(time.Hour), now), "clock skew never goes negative")
}

func TestAccountAgeDaysMinimumOne(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, AccountAgeDays(now, now))
	assert.Equal(t, 1, AccountAgeDays(now.Add(time.Hour), now))
	assert.Equal(t, 31, AccountAgeDays(now.Add(-30*24*time.Hour), now))
}

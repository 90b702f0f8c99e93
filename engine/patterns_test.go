package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func at(daysAgo int, hour int) time.Time {
	return testNow.AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour)
}

func TestFrequencyTableStableOrder(t *testing.T) {
	table := FrequencyTable([]string{"stress", "boredom", "stress", "loneliness", "boredom", ""})

	require.Len(t, table, 3)
	assert.Equal(t, FrequencyEntry{Value: "stress", Count: 2}, table[0])
	// boredom ties with nothing here, but it appeared before loneliness and
	// must stay ahead of it despite equal insertion handling.
	assert.Equal(t, FrequencyEntry{Value: "boredom", Count: 2}, table[1])
	assert.Equal(t, FrequencyEntry{Value: "loneliness", Count: 1}, table[2])
}

func TestFrequencyTableEmpty(t *testing.T) {
	assert.Empty(t, FrequencyTable(nil))
	assert.Empty(t, FrequencyTable([]string{"", ""}))
}

func TestPeakHourTieBreak(t *testing.T) {
	times := []time.Time{at(1, 14), at(2, 9), at(3, 14), at(4, 9)}

	peak := PeakHour(times, time.UTC)

	require.NotNil(t, peak)
	assert.Equal(t, 9, *peak, "earlier hour wins the tie")
}

func TestPeakHourEmpty(t *testing.T) {
	assert.Nil(t, PeakHour(nil, time.UTC))
}

func TestRiskiestDayTieBreak(t *testing.T) {
	// Two sessions on a Monday and two on a Wednesday: Monday (earlier
	// weekday index) wins.
	monday := time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 6, 11, 20, 0, 0, 0, time.UTC)
	sessions := []UrgeSurf{
		{CreatedAt: wednesday},
		{CreatedAt: monday},
		{CreatedAt: wednesday.AddDate(0, 0, -7)},
		{CreatedAt: monday.AddDate(0, 0, -7)},
	}

	assert.Equal(t, "Monday", RiskiestDay(sessions, time.UTC))
	assert.Equal(t, "", RiskiestDay(nil, time.UTC))
}

func TestDayBucketsLocalTime(t *testing.T) {
	// 23:30 UTC on a Monday is already Tuesday in UTC+8.
	lateMonday := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)
	shanghai := time.FixedZone("UTC+8", 8*3600)

	utcBuckets := DayBuckets([]time.Time{lateMonday}, time.UTC)
	localBuckets := DayBuckets([]time.Time{lateMonday}, shanghai)

	assert.Equal(t, 1, utcBuckets[int(time.Monday)])
	assert.Equal(t, 1, localBuckets[int(time.Tuesday)])
}

func TestUrgeTrendBoundaries(t *testing.T) {
	build := func(last30, prior30 int) []UrgeSurf {
		var sessions []UrgeSurf
		for i := 0; i < last30; i++ {
			sessions = append(sessions, UrgeSurf{CreatedAt: at(5, 10)})
		}
		for i := 0; i < prior30; i++ {
			sessions = append(sessions, UrgeSurf{CreatedAt: at(45, 10)})
		}
		return sessions
	}

	// Ratio exactly 1.25 is NOT increasing; the comparison is strict.
	trend := UrgeTrend(build(10, 8), testNow)
	require.NotNil(t, trend)
	assert.Equal(t, TrendStable, *trend)

	trend = UrgeTrend(build(11, 8), testNow)
	require.NotNil(t, trend)
	assert.Equal(t, TrendIncreasing, *trend)

	// Ratio exactly 0.75 is NOT decreasing either.
	trend = UrgeTrend(build(6, 8), testNow)
	require.NotNil(t, trend)
	assert.Equal(t, TrendStable, *trend)

	trend = UrgeTrend(build(5, 8), testNow)
	require.NotNil(t, trend)
	assert.Equal(t, TrendDecreasing, *trend)
}

func TestUrgeTrendNeedsTwoSessions(t *testing.T) {
	assert.Nil(t, UrgeTrend(nil, testNow))
	assert.Nil(t, UrgeTrend([]UrgeSurf{{CreatedAt: at(1, 10)}}, testNow))
}

func TestCompletionRates(t *testing.T) {
	sessions := []UrgeSurf{
		{CompletedBreathing: true, ResumedExercise: true},
		{CompletedBreathing: true},
		{CompletedBreathing: true},
	}

	breathing, resumed := CompletionRates(sessions)
	assert.Equal(t, 100, breathing)
	assert.Equal(t, 33, resumed)

	breathing, resumed = CompletionRates(nil)
	assert.Equal(t, 0, breathing)
	assert.Equal(t, 0, resumed)
}

func TestCadence(t *testing.T) {
	entries := []Journal{
		{CreatedAt: at(2, 9)},
		{CreatedAt: at(10, 9)},
		{CreatedAt: at(40, 9)},
	}

	c := Cadence(entries, testNow, 70)

	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 2, c.Last30Days)
	assert.Equal(t, 0.3, c.PerWeek) // 3 entries / 10 weeks

	// Accounts younger than a week divide by one week, not zero.
	young := Cadence(entries[:1], testNow, 3)
	assert.Equal(t, 1.0, young.PerWeek)
}

func TestAnalyzePatternsComposite(t *testing.T) {
	journals := []Journal{
		{CreatedAt: at(3, 9), Mood: "anxious", Trigger: "stress"},
		{CreatedAt: at(4, 9), Mood: "calm", Trigger: "stress"},
	}
	sessions := []UrgeSurf{
		{CreatedAt: at(2, 21), CompletedBreathing: true},
		{CreatedAt: at(40, 21), CompletedBreathing: true, ResumedExercise: true},
	}

	report := AnalyzePatterns(journals, sessions, testNow, time.UTC, 60)

	require.Len(t, report.Triggers, 1)
	assert.Equal(t, 2, report.Triggers[0].Count)
	assert.Len(t, report.Moods, 2)
	require.NotNil(t, report.PeakHour)
	assert.Equal(t, 9, *report.PeakHour, "journal hour 9 ties urge hour 21 at 2 each; lower hour wins")
	require.NotNil(t, report.UrgeTrend)
	assert.Equal(t, TrendStable, *report.UrgeTrend)
	assert.Equal(t, 100, report.BreathingRate)
	assert.Equal(t, 50, report.ResumedRate)
	assert.NotEmpty(t, report.RiskiestDay)
	assert.Equal(t, 2, report.Cadence.Total)
}

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestRebuildStreaksEmptyLedger(t *testing.T) {
	s := RebuildStreaks(nil)

	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 0, s.Highest)
	assert.Equal(t, 0, s.TotalDaysWon)
	assert.Equal(t, 0, s.ResetCount)
	assert.Empty(t, s.History)
	assert.Equal(t, -1, s.LastCheckIn)
}

func TestRebuildStreaksResetSemantics(t *testing.T) {
	ledger := []CheckIn{
		{Date: day(0), StayedStrong: true, DaysAdded: 5},
		{Date: day(5), StayedStrong: false, DaysAdded: 0},
		{Date: day(6), StayedStrong: true, DaysAdded: 3},
	}

	s := RebuildStreaks(ledger)

	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 8, s.TotalDaysWon)
	assert.Equal(t, 5, s.Highest)
	assert.Equal(t, []int{5, 3}, s.History)
	assert.Equal(t, 1, s.ResetCount, "live run must not count as a reset")
}

func TestRebuildStreaksLiveRunExceedsHistory(t *testing.T) {
	ledger := []CheckIn{
		{Date: day(0), StayedStrong: true, DaysAdded: 2},
		{Date: day(2), StayedStrong: false},
		{Date: day(3), StayedStrong: true, DaysAdded: 7},
	}

	s := RebuildStreaks(ledger)

	assert.Equal(t, 7, s.Current)
	assert.Equal(t, 7, s.Highest, "highest must track the live run, not just closed history")
}

func TestRebuildStreaksConsecutiveResets(t *testing.T) {
	ledger := []CheckIn{
		{Date: day(0), StayedStrong: true, DaysAdded: 4},
		{Date: day(4), StayedStrong: false},
		{Date: day(5), StayedStrong: false},
		{Date: day(6), StayedStrong: false},
	}

	s := RebuildStreaks(ledger)

	assert.Equal(t, 0, s.Current)
	assert.Equal(t, []int{4}, s.History, "zero-length runs between resets are not recorded")
	assert.Equal(t, 1, s.ResetCount)
	assert.Equal(t, 4, s.TotalDaysWon)
}

func TestRebuildStreaksIdempotent(t *testing.T) {
	ledger := []CheckIn{
		{Date: day(0), StayedStrong: true, DaysAdded: 1},
		{Date: day(1), StayedStrong: true, DaysAdded: 1},
		{Date: day(2), StayedStrong: false},
		{Date: day(3), StayedStrong: true, DaysAdded: 1},
	}

	first := RebuildStreaks(ledger)
	second := RebuildStreaks(ledger)

	assert.Equal(t, first, second)
}

func TestRebuildStreaksMonotonicAppend(t *testing.T) {
	ledger := []CheckIn{
		{Date: day(0), StayedStrong: true, DaysAdded: 3},
		{Date: day(3), StayedStrong: false},
	}
	before := RebuildStreaks(ledger)

	ledger = append(ledger, CheckIn{Date: day(4), StayedStrong: true, DaysAdded: 1})
	after := RebuildStreaks(ledger)

	assert.GreaterOrEqual(t, after.TotalDaysWon, before.TotalDaysWon)
	assert.GreaterOrEqual(t, after.Current, before.Current)
	assert.GreaterOrEqual(t, after.Highest, before.Highest)
}

func TestSumDesensitizationPoints(t *testing.T) {
	sessions := []Desensitization{
		{CompletedAt: day(0), PointsEarned: 120},
		{CompletedAt: day(1), PointsEarned: 100},
		{CompletedAt: day(2), PointsEarned: 150},
	}

	assert.Equal(t, DesensitizationCap, SumDesensitizationPoints(sessions), "points cap at 300")
	assert.Equal(t, 0, SumDesensitizationPoints(nil))
}

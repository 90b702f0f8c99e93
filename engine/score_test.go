package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScoreEmptyAccount(t *testing.T) {
	res := ComputeScore(ScoreInput{DaysSinceStart: 1}, DefaultWeights())

	// Nothing logged means every sub-score is zero, resilience included.
	assert.Equal(t, 0.0, res.Consistency)
	assert.Equal(t, 0.0, res.Resilience)
	assert.Equal(t, 0.0, res.Engagement)
	assert.Equal(t, 0.0, res.Desensitization)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, BandBeginning, res.Band)
}

func TestComputeScoreFreshLedgerIsZero(t *testing.T) {
	summary := RebuildStreaks(nil)
	res := ComputeScore(ScoreInput{
		TotalDaysWon:   summary.TotalDaysWon,
		DaysSinceStart: 1,
		Resets:         summary.ResetCount,
	}, DefaultWeights())

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, BandBeginning, res.Band)
}

func TestComputeScoreResilienceNeedsDaysWon(t *testing.T) {
	// Resilience appears with the first day won, and a clean record earns
	// the full sub-score.
	res := ComputeScore(ScoreInput{TotalDaysWon: 1, DaysSinceStart: 1}, DefaultWeights())
	assert.Equal(t, 1.0, res.Resilience)
}

func TestComputeScoreBounds(t *testing.T) {
	cases := []ScoreInput{
		{},
		{TotalDaysWon: -5, DaysSinceStart: -1, Resets: -3},
		{TotalDaysWon: 10000, DaysSinceStart: 1, JournalCount: 1 << 20, UrgeSurfCount: 1 << 20, DesensitizationPoints: 9999},
		{TotalDaysWon: 1, DaysSinceStart: 365, Resets: 400},
	}
	for _, in := range cases {
		res := ComputeScore(in, DefaultWeights())
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
	}
}

func TestComputeScorePerfectInput(t *testing.T) {
	res := ComputeScore(ScoreInput{
		TotalDaysWon:          365,
		DaysSinceStart:        365,
		Resets:                0,
		JournalCount:          40,
		UrgeSurfCount:         20,
		DesensitizationPoints: 300,
	}, DefaultWeights())

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, BandExceptional, res.Band)
}

func TestComputeScoreMoreDaysWonNeverDecreases(t *testing.T) {
	base := ScoreInput{DaysSinceStart: 100, Resets: 2, JournalCount: 5, UrgeSurfCount: 3, DesensitizationPoints: 50}

	prev := -1
	for won := 0; won <= 100; won += 5 {
		in := base
		in.TotalDaysWon = won
		score := ComputeScore(in, DefaultWeights()).Score
		assert.GreaterOrEqual(t, score, prev, "totalDaysWon=%d", won)
		prev = score
	}
}

func TestComputeScoreMoreResetsNeverIncreases(t *testing.T) {
	base := ScoreInput{TotalDaysWon: 60, DaysSinceStart: 100, JournalCount: 5, UrgeSurfCount: 3}

	prev := 101
	for resets := 0; resets <= 30; resets++ {
		in := base
		in.Resets = resets
		score := ComputeScore(in, DefaultWeights()).Score
		assert.LessOrEqual(t, score, prev, "resets=%d", resets)
		prev = score
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	in := ScoreInput{TotalDaysWon: 42, DaysSinceStart: 90, Resets: 3, JournalCount: 12, UrgeSurfCount: 7, DesensitizationPoints: 80}

	assert.Equal(t, ComputeScore(in, DefaultWeights()), ComputeScore(in, DefaultWeights()))
}

func TestComputeScoreMisconfiguredWeights(t *testing.T) {
	in := ScoreInput{TotalDaysWon: 50, DaysSinceStart: 50, JournalCount: 10}

	// Weights summing to 4 must be normalized, never overflow the range.
	res := ComputeScore(in, Weights{Consistency: 1, Resilience: 1, Engagement: 1, Desensitization: 1})
	assert.LessOrEqual(t, res.Score, 100)

	// Zero weights fall back to defaults.
	zero := ComputeScore(in, Weights{})
	def := ComputeScore(in, DefaultWeights())
	assert.Equal(t, def.Score, zero.Score)
}

func TestScoreBandCutPoints(t *testing.T) {
	cases := []struct {
		score int
		band  string
	}{
		{0, BandBeginning},
		{25, BandBeginning},
		{26, BandBuilding},
		{50, BandBuilding},
		{51, BandStrong},
		{75, BandStrong},
		{76, BandExceptional},
		{100, BandExceptional},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.band, ScoreBand(tc.score), "score=%d", tc.score)
	}
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntimacyDueCurrentBlock(t *testing.T) {
	day, due := IntimacyDue(47, nil)
	assert.True(t, due)
	assert.Equal(t, 40, day)

	day, due = IntimacyDue(47, []int{40})
	assert.False(t, due)
	assert.Equal(t, 40, day)
}

func TestIntimacyNotDueBeforeFirstBlock(t *testing.T) {
	_, due := IntimacyDue(9, nil)
	assert.False(t, due)

	day, due := IntimacyDue(10, nil)
	assert.True(t, due)
	assert.Equal(t, 10, day)
}

func TestIntimacySkippedBlocksDoNotReopen(t *testing.T) {
	// User recorded day 20 then jumped to day 52: only block 50 is open,
	// blocks 30 and 40 never re-open.
	day, due := IntimacyDue(52, []int{10, 20})
	assert.True(t, due)
	assert.Equal(t, 50, day)
}

func TestNextAssessmentBaselineFirst(t *testing.T) {
	m := NextAssessment(0, nil)
	require.NotNil(t, m)
	assert.Equal(t, MilestoneBaseline, *m)

	// Baseline is due regardless of how many days have accrued.
	m = NextAssessment(200, map[AssessmentMilestone]bool{})
	require.NotNil(t, m)
	assert.Equal(t, MilestoneBaseline, *m)
}

func TestNextAssessmentAscendingOrder(t *testing.T) {
	taken := map[AssessmentMilestone]bool{MilestoneBaseline: true}

	// Jumped from day 20 to day 95: day30 is offered before day90.
	m := NextAssessment(95, taken)
	require.NotNil(t, m)
	assert.Equal(t, MilestoneDay30, *m)

	taken[MilestoneDay30] = true
	m = NextAssessment(95, taken)
	require.NotNil(t, m)
	assert.Equal(t, MilestoneDay90, *m)

	taken[MilestoneDay90] = true
	assert.Nil(t, NextAssessment(95, taken))
}

func TestNextAssessmentThresholdNotReached(t *testing.T) {
	taken := map[AssessmentMilestone]bool{MilestoneBaseline: true}
	assert.Nil(t, NextAssessment(20, taken))
}

func TestAssessmentScheduleLookups(t *testing.T) {
	threshold, ok := AssessmentThreshold(MilestoneDay180)
	require.True(t, ok)
	assert.Equal(t, 180, threshold)

	_, ok = AssessmentThreshold(AssessmentMilestone("day9000"))
	assert.False(t, ok)

	assert.True(t, ValidAssessmentMilestone("day365"))
	assert.False(t, ValidAssessmentMilestone("weekly"))
}

package engine

// AssessmentMilestone names one checkpoint of the recurring assessment
// schedule.
type AssessmentMilestone string

const (
	MilestoneBaseline AssessmentMilestone = "baseline"
	MilestoneDay30    AssessmentMilestone = "day30"
	MilestoneDay90    AssessmentMilestone = "day90"
	MilestoneDay180   AssessmentMilestone = "day180"
	MilestoneDay365   AssessmentMilestone = "day365"
)

// IntimacyBlockDays is the size of the intimacy check-in cadence: each
// 10-day block of total days won opens exactly one check-in opportunity.
const IntimacyBlockDays = 10

// assessmentSchedule is the single ordered (threshold, milestone) table shared
// by the due check and milestone resolution, so the two can never drift apart.
var assessmentSchedule = []struct {
	Threshold int
	Milestone AssessmentMilestone
}{
	{0, MilestoneBaseline},
	{30, MilestoneDay30},
	{90, MilestoneDay90},
	{180, MilestoneDay180},
	{365, MilestoneDay365},
}

// ValidAssessmentMilestone reports whether name is a known milestone.
func ValidAssessmentMilestone(name string) bool {
	for _, row := range assessmentSchedule {
		if string(row.Milestone) == name {
			return true
		}
	}
	return false
}

// AssessmentThreshold returns the day threshold for a milestone.
func AssessmentThreshold(m AssessmentMilestone) (int, bool) {
	for _, row := range assessmentSchedule {
		if row.Milestone == m {
			return row.Threshold, true
		}
	}
	return 0, false
}

// NextAssessment returns the first milestone, scanning thresholds in
// ascending order, whose threshold has been reached and which has not been
// taken yet. Baseline is due whenever no assessment exists at all, so a user
// who jumps from day 20 to day 95 is offered day30 before day90. Returns nil
// when nothing is due.
func NextAssessment(totalDaysWon int, taken map[AssessmentMilestone]bool) *AssessmentMilestone {
	if len(taken) == 0 {
		m := MilestoneBaseline
		return &m
	}
	for _, row := range assessmentSchedule {
		if row.Threshold > totalDaysWon {
			break
		}
		if !taken[row.Milestone] {
			m := row.Milestone
			return &m
		}
	}
	return nil
}

// IntimacyBlock returns the currently open 10-day block for the given total,
// or 0 when fewer than IntimacyBlockDays days have been won. Past blocks that
// were skipped do not re-open; only the current block counts.
func IntimacyBlock(totalDaysWon int) int {
	if totalDaysWon < IntimacyBlockDays {
		return 0
	}
	return totalDaysWon / IntimacyBlockDays * IntimacyBlockDays
}

// IntimacyDue reports whether an intimacy check-in is currently due and for
// which day number. recorded holds the dayNumber values already submitted.
func IntimacyDue(totalDaysWon int, recorded []int) (int, bool) {
	block := IntimacyBlock(totalDaysWon)
	if block == 0 {
		return 0, false
	}
	for _, day := range recorded {
		if day == block {
			return block, false
		}
	}
	return block, true
}

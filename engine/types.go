// Package engine derives all user-facing progress values from the per-user
// event ledgers: streaks, the recovery score, behavioral insights, milestone
// due-dates, and the completion lifecycle state. Every function here is pure
// over an explicit snapshot of records plus "now"; the package performs no I/O
// and keeps no state between calls, so callers may recompute freely and cache
// results at their own risk.
package engine

import "time"

// CheckIn is one entry of the append-only check-in ledger.
// A stayed-strong day credits DaysAdded; a relapse carries zero.
type CheckIn struct {
	Date         time.Time
	StayedStrong bool
	DaysAdded    int
}

// Journal is a journal entry with optional mood/trigger tags.
// Empty strings mean the tag was not provided.
type Journal struct {
	CreatedAt time.Time
	Mood      string
	Trigger   string
}

// UrgeSurf is one urge-surfing session.
type UrgeSurf struct {
	CreatedAt          time.Time
	CompletedBreathing bool
	ResumedExercise    bool
}

// Desensitization is one completed desensitization session.
type Desensitization struct {
	CompletedAt  time.Time
	PointsEarned int
}

// DesensitizationCap is the maximum number of desensitization points that
// count toward the recovery score.
const DesensitizationCap = 300

// SumDesensitizationPoints totals session points, capped at DesensitizationCap.
func SumDesensitizationPoints(sessions []Desensitization) int {
	total := 0
	for _, s := range sessions {
		if s.PointsEarned > 0 {
			total += s.PointsEarned
		}
	}
	if total > DesensitizationCap {
		total = DesensitizationCap
	}
	return total
}

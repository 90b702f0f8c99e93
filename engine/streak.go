package engine

// StreakSummary is the full output of replaying a check-in ledger.
//
// History holds every positive contiguous run in chronological order. The
// trailing in-progress run, if any, is included in History so score math can
// treat it like a completed streak, but ResetCount excludes it: only runs
// terminated by an actual relapse count as resets.
type StreakSummary struct {
	Current      int
	Highest      int
	TotalDaysWon int
	ResetCount   int
	History      []int
	LastCheckIn  int // index of the last record, -1 when the ledger is empty
}

// RebuildStreaks replays a chronologically ordered check-in ledger and
// reconstructs every streak aggregate from scratch. The replay is the single
// source of truth: any cached copy of these values that disagrees with it is
// stale, not the other way around.
//
// Replaying the same ledger always yields the same summary, and appending a
// record only extends the tail of the computation.
func RebuildStreaks(ledger []CheckIn) StreakSummary {
	s := StreakSummary{History: []int{}, LastCheckIn: len(ledger) - 1}

	running := 0
	for _, rec := range ledger {
		if rec.StayedStrong {
			if rec.DaysAdded > 0 {
				running += rec.DaysAdded
				s.TotalDaysWon += rec.DaysAdded
			}
			if running > s.Highest {
				s.Highest = running
			}
			continue
		}
		// Relapse: close out the run. Back-to-back relapses contribute
		// nothing, only positive runs are recorded.
		if running > 0 {
			s.History = append(s.History, running)
			s.ResetCount++
			running = 0
		}
	}

	if running > 0 {
		s.History = append(s.History, running)
	}
	s.Current = running
	return s
}

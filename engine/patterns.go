package engine

import (
	"math"
	"sort"
	"time"
)

// Urge trend classifications over adjacent 30-day windows.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Day names indexed Sunday-first, matching time.Weekday.
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// FrequencyEntry is one row of a value/count table.
type FrequencyEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FrequencyTable counts non-empty values and returns them sorted by count
// descending. Ties keep first-occurrence order of the input (stable sort).
func FrequencyTable(values []string) []FrequencyEntry {
	counts := map[string]int{}
	order := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	table := make([]FrequencyEntry, 0, len(order))
	for _, v := range order {
		table = append(table, FrequencyEntry{Value: v, Count: counts[v]})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}

// DayBuckets counts timestamps per local day of week, Sunday first.
func DayBuckets(times []time.Time, loc *time.Location) [7]int {
	if loc == nil {
		loc = time.Local
	}
	var buckets [7]int
	for _, t := range times {
		buckets[int(t.In(loc).Weekday())]++
	}
	return buckets
}

// RiskiestDay returns the local day name with the most urge-surf sessions.
// Ties go to the earliest day index (Sunday first); empty input yields "".
func RiskiestDay(sessions []UrgeSurf, loc *time.Location) string {
	if len(sessions) == 0 {
		return ""
	}
	times := make([]time.Time, len(sessions))
	for i, s := range sessions {
		times[i] = s.CreatedAt
	}
	buckets := DayBuckets(times, loc)

	best := 0
	for i := 1; i < 7; i++ {
		if buckets[i] > buckets[best] {
			best = i
		}
	}
	return dayNames[best]
}

// PeakHour returns the local hour of day (0-23) with the most timestamps.
// Ties go to the lowest hour; nil when the input is empty.
func PeakHour(times []time.Time, loc *time.Location) *int {
	if len(times) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	var buckets [24]int
	for _, t := range times {
		buckets[t.In(loc).Hour()]++
	}
	peak := 0
	for h := 1; h < 24; h++ {
		if buckets[h] > buckets[peak] {
			peak = h
		}
	}
	return &peak
}

// UrgeTrend compares session counts in the last 30 days against the prior
// 30-day window. Returns nil when fewer than 2 sessions exist in total; the
// classification thresholds are strict (a ratio of exactly 1.25 is stable).
func UrgeTrend(sessions []UrgeSurf, now time.Time) *string {
	if len(sessions) < 2 {
		return nil
	}

	last30, prior30 := 0, 0
	for _, s := range sessions {
		switch {
		case WithinLastDays(s.CreatedAt, now, 30):
			last30++
		case WithinDaysRange(s.CreatedAt, now, 30, 60):
			prior30++
		}
	}

	trend := TrendStable
	switch {
	case float64(last30) > float64(prior30)*1.25:
		trend = TrendIncreasing
	case float64(last30) < float64(prior30)*0.75:
		trend = TrendDecreasing
	}
	return &trend
}

// CompletionRates returns how often breathing exercises were completed and
// how often the user resumed the exercise after the urge passed, as whole
// percentages of all sessions. Both are 0 when no sessions exist.
func CompletionRates(sessions []UrgeSurf) (breathingPct, resumedPct int) {
	if len(sessions) == 0 {
		return 0, 0
	}
	breathing, resumed := 0, 0
	for _, s := range sessions {
		if s.CompletedBreathing {
			breathing++
		}
		if s.ResumedExercise {
			resumed++
		}
	}
	total := float64(len(sessions))
	breathingPct = int(math.Round(100 * float64(breathing) / total))
	resumedPct = int(math.Round(100 * float64(resumed) / total))
	return breathingPct, resumedPct
}

// JournalCadence summarizes journaling frequency.
type JournalCadence struct {
	Total      int     `json:"total"`
	Last30Days int     `json:"last_30_days"`
	PerWeek    float64 `json:"per_week"`
}

// Cadence computes journaling totals and the average entries per week over
// the account's lifetime, rounded to one decimal place.
func Cadence(entries []Journal, now time.Time, daysSinceStart int) JournalCadence {
	c := JournalCadence{Total: len(entries)}
	for _, e := range entries {
		if WithinLastDays(e.CreatedAt, now, 30) {
			c.Last30Days++
		}
	}

	weeks := float64(daysSinceStart) / 7
	if weeks < 1 {
		weeks = 1
	}
	c.PerWeek = math.Round(10*float64(c.Total)/weeks) / 10
	return c
}

// PatternReport bundles every behavioral insight for one user.
type PatternReport struct {
	Triggers          []FrequencyEntry `json:"triggers"`
	Moods             []FrequencyEntry `json:"moods"`
	JournalDayBuckets [7]int           `json:"journal_day_buckets"`
	UrgeDayBuckets    [7]int           `json:"urge_day_buckets"`
	RiskiestDay       string           `json:"riskiest_day,omitempty"`
	PeakHour          *int             `json:"peak_hour"`
	UrgeTrend         *string          `json:"urge_trend"`
	BreathingRate     int              `json:"breathing_rate"`
	ResumedRate       int              `json:"resumed_rate"`
	Cadence           JournalCadence   `json:"journal_cadence"`
}

// AnalyzePatterns recomputes the full behavioral report from scratch over the
// journal and urge-surf ledgers. Windows are measured from now, so callers
// caching the result need their own staleness policy.
func AnalyzePatterns(journals []Journal, sessions []UrgeSurf, now time.Time, loc *time.Location, daysSinceStart int) PatternReport {
	triggers := make([]string, 0, len(journals))
	moods := make([]string, 0, len(journals))
	journalTimes := make([]time.Time, 0, len(journals))
	for _, j := range journals {
		triggers = append(triggers, j.Trigger)
		moods = append(moods, j.Mood)
		journalTimes = append(journalTimes, j.CreatedAt)
	}

	urgeTimes := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		urgeTimes = append(urgeTimes, s.CreatedAt)
	}

	breathing, resumed := CompletionRates(sessions)

	// Peak hour considers journal and urge activity together: both mark
	// moments the user reached for the app.
	allTimes := append(append([]time.Time{}, journalTimes...), urgeTimes...)

	return PatternReport{
		Triggers:          FrequencyTable(triggers),
		Moods:             FrequencyTable(moods),
		JournalDayBuckets: DayBuckets(journalTimes, loc),
		UrgeDayBuckets:    DayBuckets(urgeTimes, loc),
		RiskiestDay:       RiskiestDay(sessions, loc),
		PeakHour:          PeakHour(allTimes, loc),
		UrgeTrend:         UrgeTrend(sessions, now),
		BreathingRate:     breathing,
		ResumedRate:       resumed,
		Cadence:           Cadence(journals, now, daysSinceStart),
	}
}

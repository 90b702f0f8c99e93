package engine

import "time"

// Rolling-window and local-day arithmetic used by the trend classifier, the
// journal cadence figures, and the grace-period check. Centralized so every
// call site computes the 30/60-day and grace boundaries identically.

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayStart(a, loc).Equal(DayStart(b, loc))
}

// WithinLastDays reports whether t falls in the half-open window
// (now-days*24h, now]. Rolling windows are fixed-length, not calendar-aligned.
func WithinLastDays(t, now time.Time, days int) bool {
	start := now.Add(-time.Duration(days) * 24 * time.Hour)
	return t.After(start) && !t.After(now)
}

// WithinDaysRange reports whether t falls in (now-to*24h, now-from*24h],
// i.e. between "to" days ago (exclusive) and "from" days ago (inclusive).
// WithinDaysRange(t, now, 30, 60) selects the prior 30-day window.
func WithinDaysRange(t, now time.Time, from, to int) bool {
	upper := now.Add(-time.Duration(from) * 24 * time.Hour)
	lower := now.Add(-time.Duration(to) * 24 * time.Hour)
	return t.After(lower) && !t.After(upper)
}

// ElapsedDays returns the number of whole 24-hour periods between from and
// now. Negative spans count as zero.
func ElapsedDays(from, now time.Time) int {
	d := now.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// AccountAgeDays returns the account age in days, minimum 1, so that
// ratios over it are always well defined.
func AccountAgeDays(createdAt, now time.Time) int {
	days := ElapsedDays(createdAt, now) + 1
	if days < 1 {
		return 1
	}
	return days
}

package engine

import "time"

// Subscription lifecycle states. A user is active until the completion target
// is reached, then enters a grace window during which lifetime access can be
// claimed before the subscription auto-cancels.
const (
	StatusActive   = "active"
	StatusGrace    = "grace"
	StatusLifetime = "lifetime"
	StatusCanceled = "canceled"
)

// Lifetime claim sources. Referral-earned lifetime is not bound to the grace
// window; payment-claimed lifetime is.
const (
	LifetimeViaPayment  = "payment"
	LifetimeViaReferral = "referral"
)

// DefaultGraceDays is the post-completion window for claiming lifetime access.
const DefaultGraceDays = 7

// DefaultCompletionTarget is the streak length, in days, that completes the
// program and opens the grace window.
const DefaultCompletionTarget = 365

// LifecycleInput is the persisted lifecycle context for one user.
// CompletedAt is set exactly once, when the current streak first reaches the
// completion target.
type LifecycleInput struct {
	CompletedAt *time.Time
	LifetimeAt  *time.Time
	CanceledAt  *time.Time
	GraceDays   int
}

// LifecycleState is the lazily evaluated view of the state machine.
// ExpiredNow is set when this evaluation itself discovered that the grace
// window has lapsed: the caller must persist the cancellation and signal the
// billing collaborator exactly once.
type LifecycleState struct {
	Status         string     `json:"status"`
	GraceDaysLeft  int        `json:"grace_days_left"`
	GraceExpiresAt *time.Time `json:"grace_expires_at,omitempty"`
	ExpiredNow     bool       `json:"-"`
}

// EvaluateLifecycle computes the lifecycle state at now. There is no
// background timer; the grace expiry check happens on every read. Lifetime
// and canceled are terminal: later streak resets never revert them.
func EvaluateLifecycle(in LifecycleInput, now time.Time) LifecycleState {
	if in.LifetimeAt != nil {
		return LifecycleState{Status: StatusLifetime}
	}
	if in.CanceledAt != nil {
		return LifecycleState{Status: StatusCanceled}
	}
	if in.CompletedAt == nil {
		return LifecycleState{Status: StatusActive}
	}

	graceDays := in.GraceDays
	if graceDays < 1 {
		graceDays = DefaultGraceDays
	}
	expiresAt := in.CompletedAt.Add(time.Duration(graceDays) * 24 * time.Hour)
	if now.After(expiresAt) {
		return LifecycleState{Status: StatusCanceled, ExpiredNow: true}
	}

	left := graceDays - ElapsedDays(*in.CompletedAt, now)
	if left < 0 {
		left = 0
	}
	return LifecycleState{Status: StatusGrace, GraceDaysLeft: left, GraceExpiresAt: &expiresAt}
}

// CompletionReached reports whether appending today's check-in pushed the
// current streak to the completion target for the first time. The transition
// into grace fires exactly once because CompletedAt is never cleared.
func CompletionReached(currentStreak, target int, completedAt *time.Time) bool {
	if target < 1 {
		target = DefaultCompletionTarget
	}
	return completedAt == nil && currentStreak >= target
}

// CanClaimLifetime reports whether a lifetime claim from the given source is
// allowed at now. Payment claims require an open grace window. Referral claims
// are valid from active, grace, and even after a lapsed grace cancellation,
// provided the referral threshold has been met.
func CanClaimLifetime(in LifecycleInput, source string, referralCount, threshold int, now time.Time) bool {
	state := EvaluateLifecycle(in, now)
	if state.Status == StatusLifetime {
		return false
	}

	switch source {
	case LifetimeViaPayment:
		return state.Status == StatusGrace
	case LifetimeViaReferral:
		if threshold < 1 {
			return false
		}
		return referralCount >= threshold
	default:
		return false
	}
}

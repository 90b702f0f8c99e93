package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestLifecycleActiveByDefault(t *testing.T) {
	state := EvaluateLifecycle(LifecycleInput{}, testNow)
	assert.Equal(t, StatusActive, state.Status)
	assert.False(t, state.ExpiredNow)
}

func TestLifecycleGraceCountdown(t *testing.T) {
	in := LifecycleInput{CompletedAt: ptr(testNow.Add(-6 * 24 * time.Hour)), GraceDays: 7}

	state := EvaluateLifecycle(in, testNow)

	assert.Equal(t, StatusGrace, state.Status)
	assert.Equal(t, 1, state.GraceDaysLeft)
	assert.NotNil(t, state.GraceExpiresAt)
}

func TestLifecycleGraceExpiry(t *testing.T) {
	in := LifecycleInput{CompletedAt: ptr(testNow.Add(-8 * 24 * time.Hour)), GraceDays: 7}

	state := EvaluateLifecycle(in, testNow)

	assert.Equal(t, StatusCanceled, state.Status)
	assert.True(t, state.ExpiredNow, "first evaluation past expiry must flag the billing signal")
}

func TestLifecycleExactBoundaryStillGrace(t *testing.T) {
	// Expiry is strict: exactly 7 days in is the last moment of grace.
	in := LifecycleInput{CompletedAt: ptr(testNow.Add(-7 * 24 * time.Hour)), GraceDays: 7}

	state := EvaluateLifecycle(in, testNow)

	assert.Equal(t, StatusGrace, state.Status)
	assert.Equal(t, 0, state.GraceDaysLeft)
}

func TestLifecycleTerminalStates(t *testing.T) {
	lifetime := EvaluateLifecycle(LifecycleInput{
		CompletedAt: ptr(testNow.Add(-30 * 24 * time.Hour)),
		LifetimeAt:  ptr(testNow.Add(-20 * 24 * time.Hour)),
	}, testNow)
	assert.Equal(t, StatusLifetime, lifetime.Status)

	canceled := EvaluateLifecycle(LifecycleInput{
		CompletedAt: ptr(testNow.Add(-30 * 24 * time.Hour)),
		CanceledAt:  ptr(testNow.Add(-20 * 24 * time.Hour)),
	}, testNow)
	assert.Equal(t, StatusCanceled, canceled.Status)
	assert.False(t, canceled.ExpiredNow, "already-persisted cancellation must not re-signal billing")
}

func TestCompletionReachedFiresOnce(t *testing.T) {
	assert.True(t, CompletionReached(365, 365, nil))
	assert.False(t, CompletionReached(364, 365, nil))
	assert.False(t, CompletionReached(400, 365, ptr(testNow)), "completedAt already set")
}

func TestCanClaimLifetimePayment(t *testing.T) {
	grace := LifecycleInput{CompletedAt: ptr(testNow.Add(-2 * 24 * time.Hour)), GraceDays: 7}
	assert.True(t, CanClaimLifetime(grace, LifetimeViaPayment, 0, 5, testNow))

	expired := LifecycleInput{CompletedAt: ptr(testNow.Add(-9 * 24 * time.Hour)), GraceDays: 7}
	assert.False(t, CanClaimLifetime(expired, LifetimeViaPayment, 0, 5, testNow))

	active := LifecycleInput{}
	assert.False(t, CanClaimLifetime(active, LifetimeViaPayment, 0, 5, testNow))
}

func TestCanClaimLifetimeReferralNotTimeBoxed(t *testing.T) {
	expired := LifecycleInput{CompletedAt: ptr(testNow.Add(-30 * 24 * time.Hour)), GraceDays: 7}

	assert.True(t, CanClaimLifetime(expired, LifetimeViaReferral, 5, 5, testNow))
	assert.False(t, CanClaimLifetime(expired, LifetimeViaReferral, 4, 5, testNow))

	// Referral lifetime is claimable even before completion.
	assert.True(t, CanClaimLifetime(LifecycleInput{}, LifetimeViaReferral, 6, 5, testNow))

	// But never twice.
	done := LifecycleInput{LifetimeAt: ptr(testNow)}
	assert.False(t, CanClaimLifetime(done, LifetimeViaReferral, 6, 5, testNow))
}

package controllers

import (
	"time"

	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/billing"
	"github.com/steadfastapp/steadfast/config"
	"github.com/steadfastapp/steadfast/engine"
	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// resolveLifecycle evaluates the completion state machine at now and, when
// this read is the one that discovers a lapsed grace window, persists the
// cancellation and signals billing. The guarded UPDATE makes the signal fire
// exactly once even under concurrent reads.
func resolveLifecycle(db *gorm.DB, notifier billing.Notifier, user *models.User, now time.Time) engine.LifecycleState {
	state := engine.EvaluateLifecycle(engine.LifecycleInput{
		CompletedAt: user.CompletedAt,
		LifetimeAt:  user.LifetimeAt,
		CanceledAt:  user.CanceledAt,
		GraceDays:   config.Get().GraceDays,
	}, now)

	if !state.ExpiredNow {
		return state
	}

	canceledAt := now
	res := db.Model(&models.User{}).
		Where("id = ? AND canceled_at IS NULL AND lifetime_at IS NULL", user.ID).
		Update("canceled_at", canceledAt)
	if res.Error != nil {
		utils.Sugar.Errorw("failed to persist grace expiry", "user_id", user.ID, "err", res.Error)
		return state
	}
	if res.RowsAffected > 0 {
		user.CanceledAt = &canceledAt
		notifier.CancelSubscription(user.ID, "grace period expired")
		utils.CacheDelete(utils.ProgressCacheKey(user.ID))
	}
	return state
}

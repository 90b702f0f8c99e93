package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/billing"
	"github.com/steadfastapp/steadfast/config"
	"github.com/steadfastapp/steadfast/engine"
	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// SubscriptionController exposes the subscription lifecycle state and the
// lifetime upgrade paths.
type SubscriptionController struct {
	db       *gorm.DB
	notifier billing.Notifier
}

// NewSubscriptionController creates a new controller instance.
func NewSubscriptionController(db *gorm.DB, notifier billing.Notifier) *SubscriptionController {
	return &SubscriptionController{db: db, notifier: notifier}
}

// GetSubscription returns the current lifecycle state plus referral progress.
func (s *SubscriptionController) GetSubscription(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50110, "failed to load user")
		return
	}

	cfg := config.Get()
	state := resolveLifecycle(s.db, s.notifier, &user, time.Now())

	utils.Success(ctx, gin.H{
		"lifecycle":    state,
		"lifetime_via": user.LifetimeVia,
		"referral": gin.H{
			"code":      user.ReferralCode,
			"count":     user.ReferralCount,
			"threshold": cfg.ReferralLifetimeThreshold,
		},
	})
}

// ClaimLifetime upgrades the account to lifetime access, either through a
// completed payment during the grace window or by hitting the referral
// threshold. The guarded UPDATE keeps the upgrade idempotent under races.
func (s *SubscriptionController) ClaimLifetime(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Source string `json:"source" binding:"required,oneof=payment referral"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40090, "invalid request payload")
		return
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50111, "failed to load user")
		return
	}

	cfg := config.Get()
	now := time.Now()

	// Run the lapse check first so a claim after an expired grace window sees
	// the canceled state it is actually in.
	resolveLifecycle(s.db, s.notifier, &user, now)

	in := engine.LifecycleInput{
		CompletedAt: user.CompletedAt,
		LifetimeAt:  user.LifetimeAt,
		CanceledAt:  user.CanceledAt,
		GraceDays:   cfg.GraceDays,
	}
	if !engine.CanClaimLifetime(in, req.Source, user.ReferralCount, cfg.ReferralLifetimeThreshold, now) {
		utils.Error(ctx, http.StatusConflict, 40906, "lifetime access not claimable")
		return
	}

	res := s.db.Model(&models.User{}).
		Where("id = ? AND lifetime_at IS NULL", userID).
		Updates(map[string]interface{}{
			"lifetime_at":  now,
			"lifetime_via": req.Source,
		})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50112, "failed to grant lifetime access")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusConflict, 40907, "lifetime access already granted")
		return
	}

	s.notifier.MarkLifetime(userID, req.Source)
	utils.CacheDelete(utils.ProgressCacheKey(userID))

	user.LifetimeAt = &now
	user.LifetimeVia = req.Source
	utils.Success(ctx, gin.H{
		"lifecycle":    engine.EvaluateLifecycle(engine.LifecycleInput{CompletedAt: user.CompletedAt, LifetimeAt: user.LifetimeAt, CanceledAt: user.CanceledAt, GraceDays: cfg.GraceDays}, now),
		"lifetime_via": req.Source,
	})
}

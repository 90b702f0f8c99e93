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

// ProgressController serves the derived progress snapshot: streaks, the
// recovery score, milestone due-dates, and the lifecycle state. Everything is
// recomputed from the ledgers on read; the redis copy is a short-lived
// memoization dropped on every ledger append.
type ProgressController struct {
	db       *gorm.DB
	notifier billing.Notifier
}

// NewProgressController creates a new controller instance.
func NewProgressController(db *gorm.DB, notifier billing.Notifier) *ProgressController {
	return &ProgressController{db: db, notifier: notifier}
}

// GetProgress returns the full progress snapshot for the authenticated user.
func (p *ProgressController) GetProgress(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	cacheKey := utils.ProgressCacheKey(userID)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to load user")
		return
	}

	ledger, err := loadCheckIns(p.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to load check-ins")
		return
	}

	now := time.Now()
	summary := engine.RebuildStreaks(ledger)

	// The replay wins over the cached aggregates; repair silently but loudly
	// enough to find the write path that drifted.
	if summary.Current != user.CurrentStreak || summary.TotalDaysWon != user.TotalDaysWon || summary.Highest != user.HighestStreak {
		utils.Sugar.Warnw("streak cache diverged from ledger replay, repairing",
			"user_id", userID,
			"cached_streak", user.CurrentStreak, "replayed_streak", summary.Current,
			"cached_total", user.TotalDaysWon, "replayed_total", summary.TotalDaysWon)
		p.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"current_streak": summary.Current,
			"highest_streak": summary.Highest,
			"total_days_won": summary.TotalDaysWon,
		})
	}

	var journalCount, urgeCount int64
	p.db.Model(&models.JournalEntry{}).Where("user_id = ?", userID).Count(&journalCount)
	p.db.Model(&models.UrgeSurfSession{}).Where("user_id = ?", userID).Count(&urgeCount)

	desens, err := loadDesensitizations(p.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50082, "failed to load desensitization sessions")
		return
	}

	cfg := config.Get()
	daysSinceStart := engine.AccountAgeDays(user.CreatedAt, now)

	score := engine.ComputeScore(engine.ScoreInput{
		TotalDaysWon:          summary.TotalDaysWon,
		DaysSinceStart:        daysSinceStart,
		Resets:                summary.ResetCount,
		JournalCount:          int(journalCount),
		UrgeSurfCount:         int(urgeCount),
		DesensitizationPoints: engine.SumDesensitizationPoints(desens),
		EngagementCap:         cfg.EngagementCap,
	}, scoreWeights(cfg))

	intimacyDays, err := loadIntimacyDays(p.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50083, "failed to load intimacy check-ins")
		return
	}
	assessments, err := loadAssessmentsTaken(p.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50084, "failed to load assessments")
		return
	}

	intimacyDay, intimacyDue := engine.IntimacyDue(summary.TotalDaysWon, intimacyDays)
	nextAssessment := engine.NextAssessment(summary.TotalDaysWon, assessments)

	lifecycle := resolveLifecycle(p.db, p.notifier, &user, now)

	payload := gin.H{
		"current_streak":   summary.Current,
		"highest_streak":   summary.Highest,
		"total_days_won":   summary.TotalDaysWon,
		"streak_history":   summary.History,
		"last_check_in_at": user.LastCheckInAt,
		"days_since_start": daysSinceStart,
		"score":            score,
		"milestones": gin.H{
			"intimacy_due":      intimacyDue,
			"intimacy_day":      intimacyDay,
			"assessment_due":    nextAssessment,
			"completion_target": cfg.CompletionTargetDays,
		},
		"lifecycle": lifecycle,
	}

	// Cache the wrapped envelope so cache hits and misses look identical.
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(cacheKey, wrapper, 5*time.Minute)

	utils.Success(ctx, payload)
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/steadfastapp/steadfast/config"
	"github.com/steadfastapp/steadfast/engine"
	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// CheckInController handles the daily check-in ledger.
type CheckInController struct {
	db *gorm.DB
}

var errAlreadyCheckedIn = errors.New("already checked in today")

// NewCheckInController creates a new controller instance.
func NewCheckInController(db *gorm.DB) *CheckInController {
	return &CheckInController{db: db}
}

// DailyCheckIn appends today's check-in and refreshes the streak memoization
// from a full ledger replay. The user row is locked for the duration of the
// transaction so two concurrent submissions for the same day cannot both
// succeed and double-count days.
func (c *CheckInController) DailyCheckIn(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		StayedStrong *bool `json:"stayed_strong" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}
	stayedStrong := *req.StayedStrong

	cfg := config.Get()
	now := time.Now()

	var summary engine.StreakSummary
	var completedNow bool

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}
		loc := user.Location()

		var last models.CheckIn
		err := tx.Where("user_id = ?", userID).Order("date DESC").First(&last).Error
		if err == nil && engine.SameDay(last.Date, now, loc) {
			return errAlreadyCheckedIn
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		daysAdded := 0
		if stayedStrong {
			daysAdded = 1
		}
		record := models.CheckIn{
			UserID:       userID,
			Date:         now,
			StayedStrong: stayedStrong,
			DaysAdded:    daysAdded,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		// Replay the whole ledger rather than bumping counters: the replay
		// is authoritative and self-corrects any drift in the cached fields.
		ledger, err := loadCheckIns(tx, userID)
		if err != nil {
			return err
		}
		summary = engine.RebuildStreaks(ledger)

		user.CurrentStreak = summary.Current
		user.HighestStreak = summary.Highest
		user.TotalDaysWon = summary.TotalDaysWon
		user.LastCheckInAt = &record.Date

		if engine.CompletionReached(summary.Current, cfg.CompletionTargetDays, user.CompletedAt) {
			completedAt := now
			user.CompletedAt = &completedAt
			completedNow = true
		}

		return tx.Save(&user).Error
	})

	if err != nil {
		if errors.Is(err, errAlreadyCheckedIn) {
			utils.Error(ctx, http.StatusBadRequest, 40031, err.Error())
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to record check-in")
		return
	}

	utils.CacheDelete(utils.ProgressCacheKey(userID))

	if completedNow {
		utils.Sugar.Infow("completion target reached, grace window opened",
			"user_id", userID, "streak", summary.Current)
	}

	utils.Success(ctx, gin.H{
		"stayed_strong":  stayedStrong,
		"current_streak": summary.Current,
		"highest_streak": summary.Highest,
		"total_days_won": summary.TotalDaysWon,
		"completed_now":  completedNow,
		"streak_history": summary.History,
	})
}

// ListCheckIns returns the check-in history, newest first.
func (c *CheckInController) ListCheckIns(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	page, pageSize := pageParams(ctx)

	var total int64
	if err := c.db.Model(&models.CheckIn{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to count check-ins")
		return
	}

	var records []models.CheckIn
	if err := c.db.Where("user_id = ?", userID).Order("date DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&records).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to list check-ins")
		return
	}

	utils.Success(ctx, gin.H{
		"items": records,
		"pagination": gin.H{
			"page":      page,
			"page_size": pageSize,
			"total":     total,
		},
	})
}

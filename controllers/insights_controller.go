package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/engine"
	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// InsightsController serves behavioral pattern analytics over the journal
// and urge-surf ledgers. Results are recomputed on every call; day and hour
// buckets use the user's local timezone.
type InsightsController struct {
	db *gorm.DB
}

// NewInsightsController creates a new controller instance.
func NewInsightsController(db *gorm.DB) *InsightsController {
	return &InsightsController{db: db}
}

// GetInsights returns the full pattern report for the authenticated user.
func (i *InsightsController) GetInsights(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var user models.User
	if err := i.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50090, "failed to load user")
		return
	}

	journals, err := loadJournals(i.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50091, "failed to load journal entries")
		return
	}
	sessions, err := loadUrgeSurfs(i.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50092, "failed to load urge-surf sessions")
		return
	}

	now := time.Now()
	report := engine.AnalyzePatterns(journals, sessions, now, user.Location(), engine.AccountAgeDays(user.CreatedAt, now))

	utils.Success(ctx, report)
}

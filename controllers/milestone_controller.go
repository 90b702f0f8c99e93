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

// MilestoneController handles the intimacy check-in and assessment schedules.
type MilestoneController struct {
	db *gorm.DB
}

// NewMilestoneController creates a new controller instance.
func NewMilestoneController(db *gorm.DB) *MilestoneController {
	return &MilestoneController{db: db}
}

// GetMilestones reports which milestone surveys are currently due.
func (m *MilestoneController) GetMilestones(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	totalDaysWon, err := m.totalDaysWon(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50100, "failed to load check-ins")
		return
	}

	intimacyDays, err := loadIntimacyDays(m.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50101, "failed to load intimacy check-ins")
		return
	}
	taken, err := loadAssessmentsTaken(m.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50102, "failed to load assessments")
		return
	}

	intimacyDay, intimacyDue := engine.IntimacyDue(totalDaysWon, intimacyDays)

	utils.Success(ctx, gin.H{
		"total_days_won": totalDaysWon,
		"intimacy": gin.H{
			"due":           intimacyDue,
			"day_number":    intimacyDay,
			"recorded_days": intimacyDays,
		},
		"assessment": gin.H{
			"due": engine.NextAssessment(totalDaysWon, taken),
		},
	})
}

// SubmitIntimacy records the survey for the currently open 10-day block.
func (m *MilestoneController) SubmitIntimacy(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Confidence          int `json:"confidence" binding:"required,min=1,max=10"`
		RealAttraction      int `json:"real_attraction" binding:"required,min=1,max=10"`
		EmotionalConnection int `json:"emotional_connection" binding:"required,min=1,max=10"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40080, "invalid request payload")
		return
	}

	totalDaysWon, err := m.totalDaysWon(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50103, "failed to load check-ins")
		return
	}
	recorded, err := loadIntimacyDays(m.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50104, "failed to load intimacy check-ins")
		return
	}

	dayNumber, due := engine.IntimacyDue(totalDaysWon, recorded)
	if !due {
		utils.Error(ctx, http.StatusConflict, 40902, "no intimacy check-in due")
		return
	}

	record := models.IntimacyCheckIn{
		UserID:              userID,
		DayNumber:           dayNumber,
		Confidence:          req.Confidence,
		RealAttraction:      req.RealAttraction,
		EmotionalConnection: req.EmotionalConnection,
	}
	if err := m.db.Create(&record).Error; err != nil {
		// The unique index backstops concurrent double submissions.
		utils.Error(ctx, http.StatusConflict, 40903, "intimacy check-in already recorded for this block")
		return
	}

	utils.Success(ctx, record)
}

// SubmitAssessment records the score for the next due milestone.
func (m *MilestoneController) SubmitAssessment(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Milestone  string `json:"milestone" binding:"required"`
		TotalScore int    `json:"total_score" binding:"min=0"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40081, "invalid request payload")
		return
	}
	if !engine.ValidAssessmentMilestone(req.Milestone) {
		utils.Error(ctx, http.StatusBadRequest, 40082, "unknown milestone")
		return
	}

	totalDaysWon, err := m.totalDaysWon(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50105, "failed to load check-ins")
		return
	}
	taken, err := loadAssessmentsTaken(m.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50106, "failed to load assessments")
		return
	}

	next := engine.NextAssessment(totalDaysWon, taken)
	if next == nil || string(*next) != req.Milestone {
		utils.Error(ctx, http.StatusConflict, 40904, "milestone not currently due")
		return
	}

	record := models.AssessmentScore{
		UserID:     userID,
		Milestone:  req.Milestone,
		TotalScore: req.TotalScore,
		TakenAt:    time.Now(),
	}
	if err := m.db.Create(&record).Error; err != nil {
		utils.Error(ctx, http.StatusConflict, 40905, "assessment already recorded for this milestone")
		return
	}

	utils.Success(ctx, record)
}

// totalDaysWon replays the check-in ledger; milestone gating always uses the
// replay, never the cached aggregate.
func (m *MilestoneController) totalDaysWon(userID uint) (int, error) {
	ledger, err := loadCheckIns(m.db, userID)
	if err != nil {
		return 0, err
	}
	return engine.RebuildStreaks(ledger).TotalDaysWon, nil
}

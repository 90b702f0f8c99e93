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

// DesensitizationController handles desensitization session records.
type DesensitizationController struct {
	db *gorm.DB
}

// NewDesensitizationController creates a new controller instance.
func NewDesensitizationController(db *gorm.DB) *DesensitizationController {
	return &DesensitizationController{db: db}
}

// CreateSession records a completed desensitization session.
func (d *DesensitizationController) CreateSession(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		PointsEarned int `json:"points_earned" binding:"min=0,max=300"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, "invalid request payload")
		return
	}

	session := models.DesensitizationSession{
		UserID:       userID,
		PointsEarned: req.PointsEarned,
		CompletedAt:  time.Now(),
	}
	if err := d.db.Create(&session).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to record session")
		return
	}

	utils.Success(ctx, session)
}

// ListSessions returns desensitization sessions, newest first, with the
// capped lifetime point total.
func (d *DesensitizationController) ListSessions(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var rows []models.DesensitizationSession
	if err := d.db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to list sessions")
		return
	}

	sessions := make([]engine.Desensitization, len(rows))
	for i, r := range rows {
		sessions[i] = engine.Desensitization{CompletedAt: r.CompletedAt, PointsEarned: r.PointsEarned}
	}

	utils.Success(ctx, gin.H{
		"items":        rows,
		"total_points": engine.SumDesensitizationPoints(sessions),
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// UrgeSurfController handles urge-surfing session records.
type UrgeSurfController struct {
	db *gorm.DB
}

// NewUrgeSurfController creates a new controller instance.
func NewUrgeSurfController(db *gorm.DB) *UrgeSurfController {
	return &UrgeSurfController{db: db}
}

// CreateSession records one urge-surfing session.
func (u *UrgeSurfController) CreateSession(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		CompletedBreathing bool `json:"completed_breathing"`
		ResumedExercise    bool `json:"resumed_exercise"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	session := models.UrgeSurfSession{
		UserID:             userID,
		CompletedBreathing: req.CompletedBreathing,
		ResumedExercise:    req.ResumedExercise,
	}
	if err := u.db.Create(&session).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to record session")
		return
	}

	utils.Success(ctx, session)
}

// ListSessions returns urge-surf sessions, newest first.
func (u *UrgeSurfController) ListSessions(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	page, pageSize := pageParams(ctx)

	var total int64
	if err := u.db.Model(&models.UrgeSurfSession{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to count sessions")
		return
	}

	var sessions []models.UrgeSurfSession
	if err := u.db.Where("user_id = ?", userID).Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&sessions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to list sessions")
		return
	}

	utils.Success(ctx, gin.H{
		"items": sessions,
		"pagination": gin.H{
			"page":      page,
			"page_size": pageSize,
			"total":     total,
		},
	})
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// JournalController handles journal entries.
type JournalController struct {
	db *gorm.DB
}

// NewJournalController creates a new controller instance.
func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{db: db}
}

// CreateEntry appends a journal entry. Mood and trigger are optional tags;
// the free-text note is sanitized before storage.
func (j *JournalController) CreateEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Mood    string `json:"mood"`
		Trigger string `json:"trigger"`
		Note    string `json:"note" binding:"max=4000"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request payload")
		return
	}

	req.Mood = strings.TrimSpace(req.Mood)
	req.Trigger = strings.TrimSpace(req.Trigger)
	if !models.ValidJournalMood(req.Mood) {
		utils.Error(ctx, http.StatusBadRequest, 40051, "unknown mood")
		return
	}
	if !models.ValidJournalTrigger(req.Trigger) {
		utils.Error(ctx, http.StatusBadRequest, 40052, "unknown trigger")
		return
	}

	entry := models.JournalEntry{
		UserID:  userID,
		Mood:    req.Mood,
		Trigger: req.Trigger,
		Note:    utils.SanitizeNote(req.Note),
	}
	if err := j.db.Create(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to create journal entry")
		return
	}

	utils.Success(ctx, entry)
}

// ListEntries returns journal entries, newest first.
func (j *JournalController) ListEntries(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	page, pageSize := pageParams(ctx)

	var total int64
	if err := j.db.Model(&models.JournalEntry{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to count journal entries")
		return
	}

	var entries []models.JournalEntry
	if err := j.db.Where("user_id = ?", userID).Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to list journal entries")
		return
	}

	utils.Success(ctx, gin.H{
		"items": entries,
		"pagination": gin.H{
			"page":      page,
			"page_size": pageSize,
			"total":     total,
		},
	})
}

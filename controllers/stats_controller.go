package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/models"
	"github.com/steadfastapp/steadfast/utils"
)

// StatsController serves public aggregate counters for the landing page.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new controller instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns community-wide counters. Per-user numbers never leak here.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	s.db.Model(&models.User{}).Count(&userCount)

	// A community-wide counter has no single user timezone to anchor a local
	// midnight, so it reports a rolling 24-hour window.
	var checkInsLast24h int64
	s.db.Model(&models.CheckIn{}).Where("date > ?", time.Now().Add(-24*time.Hour)).Count(&checkInsLast24h)

	var totalDaysWon int64
	s.db.Model(&models.User{}).Select("COALESCE(SUM(total_days_won), 0)").Scan(&totalDaysWon)

	var lifetimeMembers int64
	s.db.Model(&models.User{}).Where("lifetime_at IS NOT NULL").Count(&lifetimeMembers)

	utils.Success(ctx, gin.H{
		"users":            userCount,
		"check_ins_24h":    checkInsLast24h,
		"total_days_won":   totalDaysWon,
		"lifetime_members": lifetimeMembers,
	})
}

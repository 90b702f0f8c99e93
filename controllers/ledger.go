package controllers

import (
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/engine"
	"github.com/steadfastapp/steadfast/models"
)

// Read-only views over the per-user event ledgers, mapped onto the engine's
// plain record types. Each loader returns records in chronological order so
// replays and window math see a consistent snapshot.

func loadCheckIns(db *gorm.DB, userID uint) ([]engine.CheckIn, error) {
	var rows []models.CheckIn
	if err := db.Where("user_id = ?", userID).Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	ledger := make([]engine.CheckIn, len(rows))
	for i, r := range rows {
		ledger[i] = engine.CheckIn{Date: r.Date, StayedStrong: r.StayedStrong, DaysAdded: r.DaysAdded}
	}
	return ledger, nil
}

func loadJournals(db *gorm.DB, userID uint) ([]engine.Journal, error) {
	var rows []models.JournalEntry
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]engine.Journal, len(rows))
	for i, r := range rows {
		entries[i] = engine.Journal{CreatedAt: r.CreatedAt, Mood: r.Mood, Trigger: r.Trigger}
	}
	return entries, nil
}

func loadUrgeSurfs(db *gorm.DB, userID uint) ([]engine.UrgeSurf, error) {
	var rows []models.UrgeSurfSession
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	sessions := make([]engine.UrgeSurf, len(rows))
	for i, r := range rows {
		sessions[i] = engine.UrgeSurf{
			CreatedAt:          r.CreatedAt,
			CompletedBreathing: r.CompletedBreathing,
			ResumedExercise:    r.ResumedExercise,
		}
	}
	return sessions, nil
}

func loadDesensitizations(db *gorm.DB, userID uint) ([]engine.Desensitization, error) {
	var rows []models.DesensitizationSession
	if err := db.Where("user_id = ?", userID).Order("completed_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	sessions := make([]engine.Desensitization, len(rows))
	for i, r := range rows {
		sessions[i] = engine.Desensitization{CompletedAt: r.CompletedAt, PointsEarned: r.PointsEarned}
	}
	return sessions, nil
}

func loadIntimacyDays(db *gorm.DB, userID uint) ([]int, error) {
	var days []int
	if err := db.Model(&models.IntimacyCheckIn{}).Where("user_id = ?", userID).
		Order("day_number ASC").Pluck("day_number", &days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func loadAssessmentsTaken(db *gorm.DB, userID uint) (map[engine.AssessmentMilestone]bool, error) {
	var names []string
	if err := db.Model(&models.AssessmentScore{}).Where("user_id = ?", userID).
		Pluck("milestone", &names).Error; err != nil {
		return nil, err
	}
	taken := make(map[engine.AssessmentMilestone]bool, len(names))
	for _, n := range names {
		taken[engine.AssessmentMilestone(n)] = true
	}
	return taken, nil
}

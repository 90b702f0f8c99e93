package models

import "time"

// AssessmentScore stores the result of one milestone assessment
// (baseline/day30/day90/day180/day365), unique per (user, milestone).
type AssessmentScore struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_assessment_user_milestone;not null" json:"user_id"`
	Milestone  string    `gorm:"size:16;uniqueIndex:idx_assessment_user_milestone;not null" json:"milestone"`
	TotalScore int       `gorm:"not null" json:"total_score"`
	TakenAt    time.Time `gorm:"not null" json:"taken_at"`
	CreatedAt  time.Time `json:"created_at"`
}

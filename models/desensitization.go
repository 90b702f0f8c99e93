package models

import "time"

// DesensitizationSession records one completed desensitization session and
// the points it earned. Lifetime points are capped at the score engine's
// maximum when aggregated, not at write time.
type DesensitizationSession struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	PointsEarned int       `gorm:"not null;default:0" json:"points_earned"`
	CompletedAt  time.Time `gorm:"not null" json:"completed_at"`
	CreatedAt    time.Time `json:"created_at"`
}

package models

import "time"

// UrgeSurfSession records one use of the urge-surfing tool: whether the
// breathing exercise was completed and whether the user resumed their
// activity after the urge passed.
type UrgeSurfSession struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"index;not null" json:"user_id"`
	CompletedBreathing bool      `json:"completed_breathing"`
	ResumedExercise    bool      `json:"resumed_exercise"`
	CreatedAt          time.Time `json:"created_at"`
}

package models

import "time"

// IntimacyCheckIn is the survey answered once per 10-day block of total days
// won. DayNumber is the block that was open when the survey was taken; the
// unique index enforces one submission per block per user.
type IntimacyCheckIn struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex:idx_intimacy_user_day;not null" json:"user_id"`
	DayNumber           int       `gorm:"uniqueIndex:idx_intimacy_user_day;not null" json:"day_number"`
	Confidence          int       `gorm:"not null" json:"confidence"`
	RealAttraction      int       `gorm:"not null" json:"real_attraction"`
	EmotionalConnection int       `gorm:"not null" json:"emotional_connection"`
	CreatedAt           time.Time `json:"created_at"`
}

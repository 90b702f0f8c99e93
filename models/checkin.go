package models

import "time"

// CheckIn is one entry of the append-only daily check-in ledger. Records are
// immutable once created and unique per (user, local calendar day); the write
// path enforces both inside a transaction. A relapse (StayedStrong=false)
// always carries DaysAdded=0.
type CheckIn struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index:idx_checkins_user_date;not null" json:"user_id"`
	Date         time.Time `gorm:"index:idx_checkins_user_date;not null" json:"date"`
	StayedStrong bool      `gorm:"not null" json:"stayed_strong"`
	DaysAdded    int       `gorm:"not null;default:0" json:"days_added"`
	CreatedAt    time.Time `json:"created_at"`
}

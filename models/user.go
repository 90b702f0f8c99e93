package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account. Passwords are stored as bcrypt hashes only.
//
// CurrentStreak/HighestStreak/TotalDaysWon are a memoization of the check-in
// ledger replay, refreshed on every check-in append. The ledger is the source
// of truth; read paths that find a divergence repair these fields from the
// replay.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Timezone     string `gorm:"size:64;default:UTC" json:"timezone"`

	// Cached streak aggregates (see note above).
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	HighestStreak int        `gorm:"default:0" json:"highest_streak"`
	TotalDaysWon  int        `gorm:"default:0" json:"total_days_won"`
	LastCheckInAt *time.Time `json:"last_check_in_at"`

	// Completion lifecycle. CompletedAt is set once, when the streak first
	// reaches the completion target; it is never cleared.
	CompletedAt *time.Time `json:"completed_at"`
	LifetimeAt  *time.Time `json:"lifetime_at"`
	LifetimeVia string     `gorm:"size:16" json:"lifetime_via"`
	CanceledAt  *time.Time `json:"canceled_at"`

	// Referral program.
	ReferralCode  string `gorm:"size:36;uniqueIndex" json:"referral_code"`
	ReferredBy    string `gorm:"size:36" json:"-"`
	ReferralCount int    `gorm:"default:0" json:"referral_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// Location resolves the user's IANA timezone, falling back to UTC when the
// stored name is missing or invalid.
func (u *User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

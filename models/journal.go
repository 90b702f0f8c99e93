package models

import "time"

// Journal mood and trigger tags. Both are optional on an entry.
var (
	JournalMoods    = []string{"calm", "hopeful", "anxious", "ashamed", "frustrated", "numb"}
	JournalTriggers = []string{"stress", "boredom", "loneliness", "fatigue", "social_media", "conflict"}
)

// JournalEntry stores one journal record. Note is free text and is sanitized
// before storage.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Mood      string    `gorm:"size:32" json:"mood"`
	Trigger   string    `gorm:"size:32" json:"trigger"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidJournalMood reports whether mood is empty or one of the known tags.
func ValidJournalMood(mood string) bool {
	return mood == "" || containsTag(JournalMoods, mood)
}

// ValidJournalTrigger reports whether trigger is empty or one of the known tags.
func ValidJournalTrigger(trigger string) bool {
	return trigger == "" || containsTag(JournalTriggers, trigger)
}

func containsTag(tags []string, v string) bool {
	for _, t := range tags {
		if t == v {
			return true
		}
	}
	return false
}

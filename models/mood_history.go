package models

import "time"

// MoodHistory 情绪历史
type MoodHistory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Date           string    `gorm:"type:text;not null" json:"date"`
	Mood           string    `gorm:"type:text;not null" json:"mood"`
	Score          float64   `gorm:"not null" json:"score"`
	JournalEntryID *uint     `json:"journalEntryId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (MoodHistory) TableName() string {
	return "mood_history"
}

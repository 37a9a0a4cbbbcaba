package models

import (
	"time"

	"gorm.io/datatypes"
)

// JournalEntry 日记记录，情绪分析或想法梳理成功后创建
type JournalEntry struct {
	ID        uint                         `gorm:"primaryKey" json:"id"`
	UserID    uint                         `gorm:"index;not null" json:"userId"`
	Text      string                       `gorm:"type:text;not null" json:"text"`
	Date      string                       `gorm:"type:text;not null" json:"date"`
	Mood      string                       `gorm:"type:text" json:"mood,omitempty"`
	MoodScore *float64                     `json:"moodScore,omitempty"`
	Emotions  datatypes.JSONSlice[Emotion] `json:"emotions,omitempty"`
	Language  string                       `gorm:"type:text" json:"language"`
	CreatedAt time.Time                    `json:"createdAt"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// DailyTip 每日建议
type DailyTip struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	UserID      uint                        `gorm:"index;not null" json:"userId"`
	Date        string                      `gorm:"type:text;not null" json:"date"`
	Affirmation string                      `gorm:"type:text;not null" json:"affirmation"`
	Meditation  string                      `gorm:"type:text" json:"meditation,omitempty"`
	SelfCare    datatypes.JSONSlice[string] `gorm:"not null" json:"selfCare"`
	Mood        string                      `gorm:"type:text" json:"mood,omitempty"`
	Language    string                      `gorm:"type:text" json:"language"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

func (DailyTip) TableName() string {
	return "daily_tips"
}

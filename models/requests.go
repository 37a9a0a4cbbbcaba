package models

import (
	"errors"
	"strings"
)

var (
	ErrTextOrMoodRequired = errors.New("text or mood selection is required")
	ErrTextRequired       = errors.New("text is required")
)

// MoodAnalysisRequest 情绪分析请求，text 与 selectedMood 至少提供一个
type MoodAnalysisRequest struct {
	Text              string   `json:"text"`
	SelectedMood      Mood     `json:"selectedMood" binding:"omitempty,oneof=very-sad sad neutral happy very-happy"`
	SelectedMoodScore *float64 `json:"selectedMoodScore" binding:"omitempty,gte=0,lte=1"`
	Language          string   `json:"language"`
}

func (r *MoodAnalysisRequest) Validate() error {
	if r.Text == "" && r.SelectedMood == "" {
		return ErrTextOrMoodRequired
	}
	return nil
}

// TextAnalysisRequest 想法梳理、关系分析、社交媒体分析共用的请求
type TextAnalysisRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (r *TextAnalysisRequest) Validate() error {
	if r.Text == "" {
		return ErrTextRequired
	}
	return nil
}

// DailyTipsRequest 每日建议请求，所有字段可选
type DailyTipsRequest struct {
	Mood      string   `json:"mood"`
	MoodScore *float64 `json:"moodScore"`
	Language  string   `json:"language"`
}

// SyncRequest 本地数据同步请求
type SyncRequest struct {
	Journal     []JournalEntry `json:"journal"`
	MoodHistory []MoodHistory  `json:"moodHistory"`
	DailyTips   []DailyTip     `json:"dailyTips"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"max=100"`
	Language string `json:"language" binding:"omitempty,max=10"`
}

// Normalize 去掉用户名首尾空白并统一小写
func (r *RegisterRequest) Normalize() {
	r.Username = normalizeUsername(r.Username)
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = normalizeUsername(r.Username)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

package controllers

import (
	"context"
	"net/http"

	"MindMirrorGo/config"
	"MindMirrorGo/middleware"
	"MindMirrorGo/models"
	"MindMirrorGo/services"
	"MindMirrorGo/storage"

	"github.com/gin-gonic/gin"
)

// AnalysisController 情绪分析、想法梳理、关系分析、每日建议、社交媒体分析
type AnalysisController struct {
	service *services.AnalysisService
	store   storage.Storage
}

func NewAnalysisController(service *services.AnalysisService, store storage.Storage) *AnalysisController {
	return &AnalysisController{service: service, store: store}
}

// AnalyzeMood 登录用户会保存日记和情绪历史
func (ac *AnalysisController) AnalyzeMood(c *gin.Context) {
	var req models.MoodAnalysisRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	analysis, err := ac.service.AnalyzeMood(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, models.TaskMood, err)
		return
	}

	if uid, ok := middleware.CurrentUserID(c); ok {
		if err := ac.saveMood(c.Request.Context(), uid, req, analysis); err != nil {
			config.Logger.Errorw("保存情绪分析失败", "userID", uid, "error", err)
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to save mood analysis"})
			return
		}
	}

	c.JSON(http.StatusOK, analysis)
}

func (ac *AnalysisController) saveMood(ctx context.Context, uid uint, req models.MoodAnalysisRequest, analysis models.MoodAnalysis) error {
	date := today()
	score := analysis.Score
	return ac.store.Transaction(ctx, func(tx storage.Storage) error {
		entry := &models.JournalEntry{
			UserID:    uid,
			Text:      req.Text,
			Date:      date,
			Mood:      string(analysis.Mood),
			MoodScore: &score,
			Emotions:  analysis.Emotions,
			Language:  languageOrDefault(req.Language),
		}
		if err := tx.CreateJournalEntry(ctx, entry); err != nil {
			return err
		}
		return tx.CreateMoodHistory(ctx, &models.MoodHistory{
			UserID:         uid,
			Date:           date,
			Mood:           string(analysis.Mood),
			Score:          analysis.Score,
			JournalEntryID: &entry.ID,
		})
	})
}

// ClarifyThoughts 登录用户会保存日记
func (ac *AnalysisController) ClarifyThoughts(c *gin.Context) {
	var req models.TextAnalysisRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := ac.service.ClarifyThoughts(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, models.TaskThoughts, err)
		return
	}

	if uid, ok := middleware.CurrentUserID(c); ok {
		entry := &models.JournalEntry{
			UserID:   uid,
			Text:     req.Text,
			Date:     today(),
			Language: languageOrDefault(req.Language),
		}
		if err := ac.store.CreateJournalEntry(c.Request.Context(), entry); err != nil {
			config.Logger.Errorw("保存日记失败", "userID", uid, "error", err)
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to save journal entry"})
			return
		}
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AnalysisController) AnalyzeRelationship(c *gin.Context) {
	var req models.TextAnalysisRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := ac.service.AnalyzeRelationship(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, models.TaskRelationship, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateDailyTips 所有参数可选，登录用户会保存建议
func (ac *AnalysisController) GenerateDailyTips(c *gin.Context) {
	var req models.DailyTipsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}

	tips, err := ac.service.GenerateDailyTips(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, models.TaskDailyTips, err)
		return
	}

	if uid, ok := middleware.CurrentUserID(c); ok {
		tip := &models.DailyTip{
			UserID:      uid,
			Date:        today(),
			Affirmation: tips.Affirmation,
			Meditation:  tips.Meditation,
			SelfCare:    tips.SelfCare,
			Mood:        req.Mood,
			Language:    languageOrDefault(req.Language),
		}
		if err := ac.store.CreateDailyTip(c.Request.Context(), tip); err != nil {
			config.Logger.Errorw("保存每日建议失败", "userID", uid, "error", err)
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to save daily tips"})
			return
		}
	}

	c.JSON(http.StatusOK, tips)
}

func (ac *AnalysisController) AnalyzeSocialMedia(c *gin.Context) {
	var req models.TextAnalysisRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := ac.service.AnalyzeSocialMedia(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, models.TaskSocialMedia, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

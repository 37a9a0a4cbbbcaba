package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"MindMirrorGo/models"
	"MindMirrorGo/services"

	"github.com/gin-gonic/gin"
)

// 生成失败时各任务的提示
var failureMessages = map[models.TaskKind]string{
	models.TaskMood:         "Failed to analyze mood. Please try again later.",
	models.TaskThoughts:     "Failed to clarify thoughts. Please try again later.",
	models.TaskRelationship: "Failed to analyze relationship. Please try again later.",
	models.TaskDailyTips:    "Failed to generate daily tips. Please try again later.",
	models.TaskSocialMedia:  "Failed to analyze social media content. Please try again later.",
}

// respondGenerationError 把生成错误映射为状态码和 {error, message}
func respondGenerationError(c *gin.Context, task models.TaskKind, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, services.ErrAPIKeyMissing):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "api_key_missing",
			Message: "The Gemini API key is missing. Please provide a valid API key.",
		})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "api_key_invalid",
			Message: "Invalid API key provided. Please check your Gemini API key.",
		})
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limit_exceeded",
			Message: "Gemini API rate limit exceeded. Please try again later.",
		})
	case errors.Is(err, services.ErrModelNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "model_not_found",
			Message: "The requested Gemini model was not found. Please check the model configuration.",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "api_error",
			Message: failureMessages[task],
		})
	}
}

// 请求校验错误对外展示的文案
var validationMessages = map[error]string{
	models.ErrTextOrMoodRequired: "Either text or mood selection is required",
	models.ErrTextRequired:       "Text is required",
}

func respondBadRequest(c *gin.Context, err error) {
	for sentinel, message := range validationMessages {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: message})
			return
		}
	}
	c.JSON(http.StatusBadRequest, models.MessageResponse{Message: err.Error()})
}

// bindOptionalJSON 允许空请求体
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// today 按 UTC 取日期
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func languageOrDefault(language string) string {
	if language == "" {
		return "en"
	}
	return language
}

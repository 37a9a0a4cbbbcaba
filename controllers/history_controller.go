package controllers

import (
	"net/http"

	"MindMirrorGo/config"
	"MindMirrorGo/middleware"
	"MindMirrorGo/models"
	"MindMirrorGo/storage"

	"github.com/gin-gonic/gin"
)

// HistoryController 查询登录用户的记录，路由上需要 RequireSession
type HistoryController struct {
	store storage.Storage
}

func NewHistoryController(store storage.Storage) *HistoryController {
	return &HistoryController{store: store}
}

func (hc *HistoryController) GetMoodHistory(c *gin.Context) {
	uid, _ := middleware.CurrentUserID(c)
	history, err := hc.store.GetMoodHistoryByUserID(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取情绪历史失败", "userID", uid, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to fetch mood history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (hc *HistoryController) GetJournalEntries(c *gin.Context) {
	uid, _ := middleware.CurrentUserID(c)
	entries, err := hc.store.GetJournalEntriesByUserID(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取日记失败", "userID", uid, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to fetch journal entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (hc *HistoryController) GetDailyTips(c *gin.Context) {
	uid, _ := middleware.CurrentUserID(c)
	tips, err := hc.store.GetDailyTipsByUserID(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取每日建议失败", "userID", uid, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to fetch daily tips"})
		return
	}
	c.JSON(http.StatusOK, tips)
}

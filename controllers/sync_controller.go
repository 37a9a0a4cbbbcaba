package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"MindMirrorGo/config"
	"MindMirrorGo/middleware"
	"MindMirrorGo/models"
	"MindMirrorGo/storage"

	"github.com/gin-gonic/gin"
)

// SyncController 把客户端本地保存的记录上传到服务端
type SyncController struct {
	store storage.Storage
}

func NewSyncController(store storage.Storage) *SyncController {
	return &SyncController{store: store}
}

// Sync 记录归属当前用户，ID 与创建时间由服务端重新生成。
// 情绪历史引用的本地日记ID会映射到新ID，映射不到的置空。
func (sc *SyncController) Sync(c *gin.Context) {
	uid, _ := middleware.CurrentUserID(c)

	var req models.SyncRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := validateSync(req); err != nil {
		respondBadRequest(c, err)
		return
	}

	err := sc.store.Transaction(c.Request.Context(), func(tx storage.Storage) error {
		return importRecords(c.Request.Context(), tx, uid, req)
	})
	if err != nil {
		config.Logger.Errorw("同步数据失败", "userID", uid, "error", err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to sync data"})
		return
	}

	config.Logger.Infow("同步数据完成",
		"userID", uid,
		"journal", len(req.Journal),
		"moodHistory", len(req.MoodHistory),
		"dailyTips", len(req.DailyTips),
	)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func validateSync(req models.SyncRequest) error {
	for i, e := range req.Journal {
		if e.Date == "" {
			return fmt.Errorf("journal[%d]: date is required", i)
		}
	}
	for i, h := range req.MoodHistory {
		if h.Date == "" || h.Mood == "" {
			return fmt.Errorf("moodHistory[%d]: date and mood are required", i)
		}
	}
	for i, t := range req.DailyTips {
		if t.Date == "" || t.Affirmation == "" {
			return fmt.Errorf("dailyTips[%d]: date and affirmation are required", i)
		}
	}
	return nil
}

func importRecords(ctx context.Context, tx storage.Storage, uid uint, req models.SyncRequest) error {
	journalIDs := make(map[uint]uint, len(req.Journal))
	for _, entry := range req.Journal {
		localID := entry.ID
		entry.ID = 0
		entry.UserID = uid
		entry.CreatedAt = time.Time{}
		entry.Language = languageOrDefault(entry.Language)
		if err := tx.CreateJournalEntry(ctx, &entry); err != nil {
			return err
		}
		if localID != 0 {
			journalIDs[localID] = entry.ID
		}
	}

	for _, history := range req.MoodHistory {
		history.ID = 0
		history.UserID = uid
		history.CreatedAt = time.Time{}
		if history.JournalEntryID != nil {
			if id, ok := journalIDs[*history.JournalEntryID]; ok {
				history.JournalEntryID = &id
			} else {
				history.JournalEntryID = nil
			}
		}
		if err := tx.CreateMoodHistory(ctx, &history); err != nil {
			return err
		}
	}

	for _, tip := range req.DailyTips {
		tip.ID = 0
		tip.UserID = uid
		tip.CreatedAt = time.Time{}
		tip.Language = languageOrDefault(tip.Language)
		if err := tx.CreateDailyTip(ctx, &tip); err != nil {
			return err
		}
	}
	return nil
}

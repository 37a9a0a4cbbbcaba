package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MindMirrorGo/config"
	"MindMirrorGo/models"

	"gorm.io/gorm"
)

// GormStorage 关系型数据库存储，支持 MySQL、PostgreSQL、SQLite
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// --- UserRepository ---
func (s *GormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		config.Logger.Errorw("创建用户失败", "username", user.Username, "error", err)
		return translate(err)
	}
	return nil
}

// --- JournalRepository ---
func (s *GormStorage) GetJournalEntry(ctx context.Context, id uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

func (s *GormStorage) GetJournalEntriesByUserID(ctx context.Context, userID uint) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		config.Logger.Errorw("查询日记失败", "userID", userID, "error", err)
		return nil, err
	}
	return entries, nil
}

func (s *GormStorage) CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		config.Logger.Errorw("创建日记失败", "userID", entry.UserID, "error", err)
		return translate(err)
	}
	return nil
}

// --- MoodHistoryRepository ---
func (s *GormStorage) GetMoodHistory(ctx context.Context, id uint) (*models.MoodHistory, error) {
	var history models.MoodHistory
	if err := s.db.WithContext(ctx).First(&history, id).Error; err != nil {
		return nil, translate(err)
	}
	return &history, nil
}

func (s *GormStorage) GetMoodHistoryByUserID(ctx context.Context, userID uint) ([]models.MoodHistory, error) {
	histories := []models.MoodHistory{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&histories).Error; err != nil {
		config.Logger.Errorw("查询情绪历史失败", "userID", userID, "error", err)
		return nil, err
	}
	return histories, nil
}

func (s *GormStorage) CreateMoodHistory(ctx context.Context, history *models.MoodHistory) error {
	if err := s.db.WithContext(ctx).Create(history).Error; err != nil {
		config.Logger.Errorw("创建情绪历史失败", "userID", history.UserID, "error", err)
		return translate(err)
	}
	return nil
}

// --- DailyTipRepository ---
func (s *GormStorage) GetDailyTip(ctx context.Context, id uint) (*models.DailyTip, error) {
	var tip models.DailyTip
	if err := s.db.WithContext(ctx).First(&tip, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tip, nil
}

func (s *GormStorage) GetDailyTipsByUserID(ctx context.Context, userID uint) ([]models.DailyTip, error) {
	tips := []models.DailyTip{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tips).Error; err != nil {
		config.Logger.Errorw("查询每日建议失败", "userID", userID, "error", err)
		return nil, err
	}
	return tips, nil
}

func (s *GormStorage) CreateDailyTip(ctx context.Context, tip *models.DailyTip) error {
	if err := s.db.WithContext(ctx).Create(tip).Error; err != nil {
		config.Logger.Errorw("创建每日建议失败", "userID", tip.UserID, "error", err)
		return translate(err)
	}
	return nil
}

func (s *GormStorage) Transaction(ctx context.Context, fn func(tx Storage) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStorage{db: tx})
	})
}

func (s *GormStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

// isUniqueViolation 驱动未翻译错误时按错误文本判断
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

var _ Storage = (*GormStorage)(nil)

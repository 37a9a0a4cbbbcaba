package storage

import (
	"context"
	"errors"

	"MindMirrorGo/models"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("storage: record not found")
	// ErrDuplicate 唯一约束冲突，目前只有用户名
	ErrDuplicate = errors.New("storage: duplicate record")
)

type UserRepository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

type JournalRepository interface {
	GetJournalEntry(ctx context.Context, id uint) (*models.JournalEntry, error)
	GetJournalEntriesByUserID(ctx context.Context, userID uint) ([]models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error
}

type MoodHistoryRepository interface {
	GetMoodHistory(ctx context.Context, id uint) (*models.MoodHistory, error)
	GetMoodHistoryByUserID(ctx context.Context, userID uint) ([]models.MoodHistory, error)
	CreateMoodHistory(ctx context.Context, history *models.MoodHistory) error
}

type DailyTipRepository interface {
	GetDailyTip(ctx context.Context, id uint) (*models.DailyTip, error)
	GetDailyTipsByUserID(ctx context.Context, userID uint) ([]models.DailyTip, error)
	CreateDailyTip(ctx context.Context, tip *models.DailyTip) error
}

// Storage 四类记录的存储。Create 方法会回填 ID 和 CreatedAt。
type Storage interface {
	UserRepository
	JournalRepository
	MoodHistoryRepository
	DailyTipRepository

	// Transaction 在同一事务中执行 fn；内存实现不支持回滚
	Transaction(ctx context.Context, fn func(tx Storage) error) error
	Close() error
}

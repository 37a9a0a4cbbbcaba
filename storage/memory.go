package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"MindMirrorGo/models"
)

// MemoryStorage 内存存储，进程重启后数据丢失
type MemoryStorage struct {
	mu sync.RWMutex

	users          map[uint]*models.User
	journalEntries map[uint]*models.JournalEntry
	moodHistories  map[uint]*models.MoodHistory
	dailyTips      map[uint]*models.DailyTip

	userIDCounter        uint
	journalIDCounter     uint
	moodHistoryIDCounter uint
	dailyTipIDCounter    uint

	now func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:          make(map[uint]*models.User),
		journalEntries: make(map[uint]*models.JournalEntry),
		moodHistories:  make(map[uint]*models.MoodHistory),
		dailyTips:      make(map[uint]*models.DailyTip),
		now:            time.Now,
	}
}

// --- UserRepository ---
func (s *MemoryStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	s.userIDCounter++
	user.ID = s.userIDCounter
	user.CreatedAt = s.now()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// --- JournalRepository ---
func (s *MemoryStorage) GetJournalEntry(ctx context.Context, id uint) (*models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.journalEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *MemoryStorage) GetJournalEntriesByUserID(ctx context.Context, userID uint) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := []models.JournalEntry{}
	for _, id := range sortedIDs(s.journalEntries) {
		if e := s.journalEntries[id]; e.UserID == userID {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (s *MemoryStorage) CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journalIDCounter++
	entry.ID = s.journalIDCounter
	entry.CreatedAt = s.now()
	cp := *entry
	s.journalEntries[entry.ID] = &cp
	return nil
}

// --- MoodHistoryRepository ---
func (s *MemoryStorage) GetMoodHistory(ctx context.Context, id uint) (*models.MoodHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.moodHistories[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *MemoryStorage) GetMoodHistoryByUserID(ctx context.Context, userID uint) ([]models.MoodHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	histories := []models.MoodHistory{}
	for _, id := range sortedIDs(s.moodHistories) {
		if h := s.moodHistories[id]; h.UserID == userID {
			histories = append(histories, *h)
		}
	}
	return histories, nil
}

func (s *MemoryStorage) CreateMoodHistory(ctx context.Context, history *models.MoodHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moodHistoryIDCounter++
	history.ID = s.moodHistoryIDCounter
	history.CreatedAt = s.now()
	cp := *history
	s.moodHistories[history.ID] = &cp
	return nil
}

// --- DailyTipRepository ---
func (s *MemoryStorage) GetDailyTip(ctx context.Context, id uint) (*models.DailyTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.dailyTips[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *MemoryStorage) GetDailyTipsByUserID(ctx context.Context, userID uint) ([]models.DailyTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tips := []models.DailyTip{}
	for _, id := range sortedIDs(s.dailyTips) {
		if t := s.dailyTips[id]; t.UserID == userID {
			tips = append(tips, *t)
		}
	}
	return tips, nil
}

func (s *MemoryStorage) CreateDailyTip(ctx context.Context, tip *models.DailyTip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyTipIDCounter++
	tip.ID = s.dailyTipIDCounter
	tip.CreatedAt = s.now()
	cp := *tip
	s.dailyTips[tip.ID] = &cp
	return nil
}

func (s *MemoryStorage) Transaction(ctx context.Context, fn func(tx Storage) error) error {
	return fn(s)
}

func (s *MemoryStorage) Close() error {
	return nil
}

// sortedIDs 按插入顺序（即 ID 递增）返回键
func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// --- Compile-time assertions ---
var _ Storage = (*MemoryStorage)(nil)

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"MindMirrorGo/config"
	"MindMirrorGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorage(t *testing.T) Storage {
	t.Helper()
	cfg := config.Config{
		Environment:    "production",
		StorageBackend: "database",
		DBDriver:       "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "test.db"),
		DBAutoMigrate:  true,
	}
	s, err := NewStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// eachBackend 对两种存储跑同一组用例
func eachBackend(t *testing.T, fn func(t *testing.T, s Storage)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStorage()) })
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteStorage(t)) })
}

func TestCreateAndListJournalEntries(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		score := 0.7
		entry := &models.JournalEntry{
			UserID:    1,
			Text:      "Had a good walk",
			Date:      "2024-05-01",
			Mood:      "happy",
			MoodScore: &score,
			Emotions:  []models.Emotion{{Name: "Joy", Percentage: 80}},
			Language:  "en",
		}
		require.NoError(t, s.CreateJournalEntry(ctx, entry))
		assert.NotZero(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())

		entries, err := s.GetJournalEntriesByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.ID, entries[0].ID)
		assert.Equal(t, "Had a good walk", entries[0].Text)
		assert.Equal(t, "happy", entries[0].Mood)
		require.NotNil(t, entries[0].MoodScore)
		assert.InDelta(t, 0.7, *entries[0].MoodScore, 1e-9)
		require.Len(t, entries[0].Emotions, 1)
		assert.Equal(t, "Joy", entries[0].Emotions[0].Name)

		got, err := s.GetJournalEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.Text, got.Text)

		others, err := s.GetJournalEntriesByUserID(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, others)
	})
}

func TestSequentialCreatesHaveIncreasingIDs(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		first := &models.MoodHistory{UserID: 1, Date: "2024-05-01", Mood: "sad", Score: 0.3}
		second := &models.MoodHistory{UserID: 1, Date: "2024-05-02", Mood: "happy", Score: 0.7}
		require.NoError(t, s.CreateMoodHistory(ctx, first))
		require.NoError(t, s.CreateMoodHistory(ctx, second))
		assert.Greater(t, second.ID, first.ID)

		histories, err := s.GetMoodHistoryByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, histories, 2)
		assert.Equal(t, "sad", histories[0].Mood)
		assert.Equal(t, "happy", histories[1].Mood)
	})
}

func TestDailyTipRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		tip := &models.DailyTip{
			UserID:      3,
			Date:        "2024-05-01",
			Affirmation: "I am enough",
			Meditation:  "Breathe",
			SelfCare:    []string{"Drink water", "Stretch"},
			Language:    "en",
		}
		require.NoError(t, s.CreateDailyTip(ctx, tip))

		got, err := s.GetDailyTip(ctx, tip.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Drink water", "Stretch"}, []string(got.SelfCare))

		tips, err := s.GetDailyTipsByUserID(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, tips, 1)
	})
}

func TestMissingRecordReturnsErrNotFound(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		_, err := s.GetUser(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetJournalEntry(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetMoodHistory(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetDailyTip(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUsers(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		user := &models.User{Username: "alice", Password: "hash", Language: "en"}
		require.NoError(t, s.CreateUser(ctx, user))
		assert.NotZero(t, user.ID)

		got, err := s.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		err = s.CreateUser(ctx, &models.User{Username: "alice", Password: "other"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestTransactionCommits(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Storage) {
		ctx := context.Background()
		err := s.Transaction(ctx, func(tx Storage) error {
			entry := &models.JournalEntry{UserID: 5, Text: "synced", Date: "2024-05-01"}
			if err := tx.CreateJournalEntry(ctx, entry); err != nil {
				return err
			}
			return tx.CreateMoodHistory(ctx, &models.MoodHistory{
				UserID: 5, Date: "2024-05-01", Mood: "neutral", Score: 0.5, JournalEntryID: &entry.ID,
			})
		})
		require.NoError(t, err)

		histories, err := s.GetMoodHistoryByUserID(ctx, 5)
		require.NoError(t, err)
		require.Len(t, histories, 1)
		require.NotNil(t, histories[0].JournalEntryID)
	})
}

func TestGormTransactionRollsBack(t *testing.T) {
	s := newSQLiteStorage(t)
	ctx := context.Background()
	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx Storage) error {
		if err := tx.CreateJournalEntry(ctx, &models.JournalEntry{UserID: 9, Text: "x", Date: "2024-05-01"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	entries, err := s.GetJournalEntriesByUserID(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryConcurrentCreates(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.CreateJournalEntry(ctx, &models.JournalEntry{UserID: 1, Text: "t", Date: "2024-05-01"})
		}()
	}
	wg.Wait()

	entries, err := s.GetJournalEntriesByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	seen := map[uint]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestNewStorageRejectsUnknownBackend(t *testing.T) {
	_, err := NewStorage(config.Config{StorageBackend: "cassandra"})
	assert.Error(t, err)
}

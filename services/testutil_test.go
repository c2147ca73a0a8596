package services

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"questionnaire/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection to :memory: would see an empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Statistics{},
		&models.Group{},
		&models.Permission{},
	))
	return db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestQuestion(t *testing.T, db *gorm.DB, title string, endTime time.Time) *models.Question {
	t.Helper()
	question := models.Question{Title: title, EndTime: endTime}
	require.NoError(t, db.Create(&question).Error)
	return &question
}

// syncStats runs recalculations inline so tests observe completed state.
type syncStats struct {
	service *StatsService
	calls   int
}

func (s *syncStats) Enqueue(userID uint) {
	s.calls++
	if s.service != nil {
		_, _ = s.service.Recalculate(context.Background(), userID)
	}
}

// memorySessionStore is a map-backed SessionStore for tests.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]uint
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]uint)}
}

func (s *memorySessionStore) Save(_ context.Context, sessionID string, userID uint, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = userID
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[sessionID]
	return userID, ok, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

package testutil

import (
	"time"

	"wordbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, firstName string) domain.User {
	return domain.User{
		UserID:    userID,
		FirstName: firstName,
		CreatedAt: time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id int64, english, russian string) *domain.Word {
	return &domain.Word{
		ID:        id,
		English:   english,
		Russian:   russian,
		CreatedAt: time.Now(),
	}
}

// FirstIndex is a deterministic pick for quiz tests
func FirstIndex(int) int {
	return 0
}

// NoShuffle keeps option order for quiz tests
func NoShuffle(int, func(i, j int)) {}

package testutil

import (
	"time"

	"wordbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) FindWordByEnglish(english string) (*domain.Word, error) {
	args := m.Called(english)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordByID(wordID int64) (*domain.Word, error) {
	args := m.Called(wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) CreateWord(english, russian string) (int64, error) {
	args := m.Called(english, russian)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) LinkUserWord(userID, wordID int64) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) UnlinkUserWord(userID, wordID int64) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) ListUserWordIDs(userID int64) ([]int64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWordRepository) CountUserWords(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) ListDistractors(translation string, limit int) ([]domain.Word, error) {
	args := m.Called(translation, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordOutcome(userID, wordID int64, outcome domain.Outcome) error {
	args := m.Called(userID, wordID, outcome)
	return args.Error(0)
}

func (m *MockStatsRepository) GetTotals(userID int64) (domain.Stats, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func (m *MockStatsRepository) ListIdleLearners(idleSince time.Time) ([]int64, error) {
	args := m.Called(idleSince)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

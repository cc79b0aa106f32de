package repository

import (
	"time"

	"wordbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(user domain.User) error
}

// WordRepository defines shared dictionary and study list operations
type WordRepository interface {
	FindWordByEnglish(english string) (*domain.Word, error)
	GetWordByID(wordID int64) (*domain.Word, error)
	CreateWord(english, russian string) (int64, error)
	LinkUserWord(userID, wordID int64) error
	UnlinkUserWord(userID, wordID int64) error
	ListUserWordIDs(userID int64) ([]int64, error)
	CountUserWords(userID int64) (int, error)
	ListDistractors(translation string, limit int) ([]domain.Word, error)
}

// StatsRepository defines answer counter operations
type StatsRepository interface {
	RecordOutcome(userID, wordID int64, outcome domain.Outcome) error
	GetTotals(userID int64) (domain.Stats, error)
	ListIdleLearners(idleSince time.Time) ([]int64, error)
}

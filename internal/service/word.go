package service

import (
	"fmt"

	"wordbot/internal/domain"
	"wordbot/internal/repository"
)

// WordService handles study list business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// AddWord puts a pair into the user's study list, creating the shared word
// when needed. It returns the stored word and the new list size.
// An english word already in the dictionary keeps its stored translation.
func (s *WordService) AddWord(userID int64, english, russian string) (*domain.Word, int, error) {
	pair, err := domain.NewWordPair(english, russian)
	if err != nil {
		return nil, 0, err
	}

	word, err := s.wordRepo.FindWordByEnglish(pair.English)
	if err != nil {
		return nil, 0, fmt.Errorf("find word: %w", err)
	}
	if word == nil {
		wordID, err := s.wordRepo.CreateWord(pair.English, pair.Russian)
		if err != nil {
			return nil, 0, err
		}
		word = &domain.Word{ID: wordID, English: pair.English, Russian: pair.Russian}
	}

	if err := s.wordRepo.LinkUserWord(userID, word.ID); err != nil {
		return word, 0, err
	}

	count, err := s.wordRepo.CountUserWords(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	return word, count, nil
}

// DeleteWord removes a word from the user's study list.
// The shared word itself is kept.
func (s *WordService) DeleteWord(userID int64, english string) error {
	english = domain.NormalizeWord(english)
	if english == "" {
		return fmt.Errorf("%w: empty", domain.ErrInvalidWord)
	}

	word, err := s.wordRepo.FindWordByEnglish(english)
	if err != nil {
		return fmt.Errorf("find word: %w", err)
	}
	if word == nil {
		return domain.ErrWordNotFound
	}

	return s.wordRepo.UnlinkUserWord(userID, word.ID)
}

// CountWords returns the size of the user's study list
func (s *WordService) CountWords(userID int64) (int, error) {
	return s.wordRepo.CountUserWords(userID)
}

package service

import (
	"errors"
	"fmt"
	"math/rand"

	"wordbot/internal/domain"
	"wordbot/internal/repository"

	"go.uber.org/zap"
)

// DistractorCount is the number of wrong options requested per question
const DistractorCount = 3

// QuizService builds multiple-choice questions and scores answers
type QuizService struct {
	wordRepo  repository.WordRepository
	statsRepo repository.StatsRepository
	logger    *zap.Logger

	intn    func(n int) int
	shuffle func(n int, swap func(i, j int))
}

// NewQuizService creates a new quiz service
func NewQuizService(
	wordRepo repository.WordRepository,
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		wordRepo:  wordRepo,
		statsRepo: statsRepo,
		logger:    logger,
		intn:      rand.Intn,
		shuffle:   rand.Shuffle,
	}
}

// GenerateQuestion picks a random word from the user's study list and
// surrounds its translation with random distractors from the shared dictionary.
// Returns domain.ErrNoWords when the list is empty.
func (s *QuizService) GenerateQuestion(userID int64) (*domain.Question, error) {
	ids, err := s.wordRepo.ListUserWordIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("list study words: %w", err)
	}
	if len(ids) == 0 {
		return nil, domain.ErrNoWords
	}

	wordID := ids[s.intn(len(ids))]
	word, err := s.wordRepo.GetWordByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("get word %d: %w", wordID, err)
	}
	if word == nil {
		return nil, fmt.Errorf("word %d is linked but missing", wordID)
	}

	distractors, err := s.wordRepo.ListDistractors(word.Russian, DistractorCount)
	if err != nil {
		return nil, fmt.Errorf("list distractors: %w", err)
	}

	options := []domain.Option{newOption(word, word)}
	if !options[0].Token.Fits() {
		return nil, fmt.Errorf("word %d: %w", word.ID, domain.ErrInvalidWord)
	}
	seen := map[string]bool{word.Russian: true}

	for i := range distractors {
		d := &distractors[i]
		if d.Russian == "" || seen[d.Russian] {
			continue
		}
		opt := newOption(word, d)
		if !opt.Token.Fits() {
			s.logger.Warn("Distractor id does not fit into callback data",
				zap.Int64("word_id", word.ID),
				zap.Int64("distractor_id", d.ID),
			)
			continue
		}
		seen[d.Russian] = true
		options = append(options, opt)
	}

	s.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.Question{Word: *word, Options: options}, nil
}

// ScoreAnswer records the outcome of an answer and prepares the next question.
// Repeated delivery of the same answer is counted again.
func (s *QuizService) ScoreAnswer(userID int64, token domain.AnswerToken) (*domain.AnswerResult, error) {
	outcome := token.Outcome()

	if err := s.statsRepo.RecordOutcome(userID, token.WordID, outcome); err != nil {
		return nil, err
	}

	s.logger.Debug("Answer recorded",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", token.WordID),
		zap.String("outcome", string(outcome)),
	)

	result := &domain.AnswerResult{
		Outcome: outcome,
		Correct: token.Correct,
	}

	next, err := s.GenerateQuestion(userID)
	switch {
	case errors.Is(err, domain.ErrNoWords):
		return result, nil
	case err != nil:
		return nil, err
	}

	result.Next = next
	return result, nil
}

func newOption(word, candidate *domain.Word) domain.Option {
	return domain.Option{
		Text: candidate.Russian,
		Token: domain.AnswerToken{
			WordID:   word.ID,
			Correct:  word.Russian,
			ChosenID: candidate.ID,
		},
	}
}

package service

import (
	"time"

	"wordbot/internal/domain"
	"wordbot/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles answer statistics
type StatsService struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// GetStats returns the user's answer totals
func (s *StatsService) GetStats(userID int64) (domain.Stats, error) {
	return s.statsRepo.GetTotals(userID)
}

// IdleLearners returns users with words who have not answered for idleFor
func (s *StatsService) IdleLearners(idleFor time.Duration) ([]int64, error) {
	since := s.now().Add(-idleFor)

	ids, err := s.statsRepo.ListIdleLearners(since)
	if err != nil {
		s.logger.Error("Failed to list idle learners", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Idle learners found",
		zap.Int("count", len(ids)),
		zap.Duration("idle_for", idleFor),
	)
	return ids, nil
}

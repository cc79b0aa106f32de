package scheduler

import (
	"fmt"
	"time"

	"wordbot/internal/service"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Notifier delivers a practice question to a user
type Notifier interface {
	SendQuestion(userID int64) error
}

// Reminder periodically nudges learners who stopped answering
type Reminder struct {
	scheduler    *gocron.Scheduler
	statsService *service.StatsService
	notifier     Notifier
	logger       *zap.Logger

	interval time.Duration
	idleFor  time.Duration
}

// NewReminder creates a reminder that runs every interval and targets
// learners idle for at least idleFor
func NewReminder(
	statsService *service.StatsService,
	notifier Notifier,
	interval, idleFor time.Duration,
	logger *zap.Logger,
) *Reminder {
	return &Reminder{
		scheduler:    gocron.NewScheduler(time.UTC),
		statsService: statsService,
		notifier:     notifier,
		logger:       logger,
		interval:     interval,
		idleFor:      idleFor,
	}
}

// Start schedules the reminder job without blocking
func (r *Reminder) Start() error {
	if r.interval <= 0 {
		return fmt.Errorf("reminder interval must be positive, got %s", r.interval)
	}

	_, err := r.scheduler.Every(r.interval).
		SingletonMode().
		WaitForSchedule().
		Do(r.Run)
	if err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}

	r.scheduler.StartAsync()

	r.logger.Info("Practice reminders scheduled",
		zap.Duration("interval", r.interval),
		zap.Duration("idle_for", r.idleFor),
	)
	return nil
}

// Stop terminates the scheduler
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

// Run sends one question to every idle learner.
// Returns the number of reminders delivered.
func (r *Reminder) Run() int {
	userIDs, err := r.statsService.IdleLearners(r.idleFor)
	if err != nil {
		return 0
	}

	sent := 0
	for _, userID := range userIDs {
		if err := r.notifier.SendQuestion(userID); err != nil {
			r.logger.Warn("Failed to send reminder",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			continue
		}
		sent++
	}

	if len(userIDs) > 0 {
		r.logger.Info("Practice reminders sent",
			zap.Int("sent", sent),
			zap.Int("idle", len(userIDs)),
		)
	}
	return sent
}

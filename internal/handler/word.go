package handler

import (
	"errors"
	"fmt"

	"wordbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdd handles /add <english> <russian>
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	args := c.Args()
	if len(args) != 2 {
		return c.Send(msgAddUsage)
	}
	english := domain.NormalizeWord(args[0])
	russian := domain.NormalizeWord(args[1])

	word, count, err := h.wordService.AddWord(userID, english, russian)
	switch {
	case errors.Is(err, domain.ErrInvalidWord):
		return c.Send(msgInvalidWord)
	case errors.Is(err, domain.ErrAlreadyLinked):
		return c.Send(fmt.Sprintf(msgAlreadyPresent, english))
	case err != nil:
		h.logger.Error("Failed to add word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("english", english),
		)
		return c.Send(msgAddError)
	}

	h.logger.Info("Word added",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", word.ID),
		zap.String("english", word.English),
		zap.Int("total", count),
	)

	text := fmt.Sprintf(msgAdded, english, count)
	if word.Russian != russian {
		text += fmt.Sprintf(msgAddedOtherRu, word.Russian)
	}
	return c.Send(text)
}

// handleDelete handles /delete <english>
func (h *Handler) handleDelete(c tele.Context) error {
	userID := c.Sender().ID

	args := c.Args()
	if len(args) != 1 {
		return c.Send(msgDeleteUsage)
	}
	english := domain.NormalizeWord(args[0])

	err := h.wordService.DeleteWord(userID, english)
	switch {
	case errors.Is(err, domain.ErrWordNotFound):
		return c.Send(fmt.Sprintf(msgWordNotFound, english))
	case errors.Is(err, domain.ErrNotInList):
		return c.Send(fmt.Sprintf(msgWordNotInList, english))
	case err != nil:
		h.logger.Error("Failed to delete word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("english", english),
		)
		return c.Send(msgDeleteError)
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.String("english", english),
	)
	return c.Send(fmt.Sprintf(msgDeleted, english))
}

// handleStats handles /stats command
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	stats, err := h.statsService.GetStats(userID)
	if err != nil {
		h.logger.Error("Failed to get stats",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgStatsError)
	}

	if stats.Empty() {
		return c.Send(msgNoStats)
	}
	return c.Send(fmt.Sprintf(msgStats, stats.Correct, stats.Incorrect))
}

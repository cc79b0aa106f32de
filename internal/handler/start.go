package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart greets the user and issues the first question.
// The user row itself is created by the registration middleware.
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	user := domain.User{
		UserID:    sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	}
	if err := c.Send(fmt.Sprintf(msgWelcome, user.DisplayName())); err != nil {
		return err
	}

	return h.sendQuestion(c)
}

// handleQuiz handles /quiz command
func (h *Handler) handleQuiz(c tele.Context) error {
	return h.sendQuestion(c)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(msgHelp)
}

// handleText answers plain text and unknown commands with a hint
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return nil
	}
	return c.Send(msgUnknown)
}

// sendQuestion sends a new question or prompts to add words
func (h *Handler) sendQuestion(c tele.Context) error {
	userID := c.Sender().ID

	q, err := h.quizService.GenerateQuestion(userID)
	if errors.Is(err, domain.ErrNoWords) {
		return c.Send(msgNoWords)
	}
	if err != nil {
		h.logger.Error("Failed to generate question",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgDBError)
	}

	return c.Send(questionText(q), questionMarkup(q), tele.ModeHTML)
}

// SendQuestion pushes a question to the user outside of an update,
// used by practice reminders. Users without words are skipped.
func (h *Handler) SendQuestion(userID int64) error {
	q, err := h.quizService.GenerateQuestion(userID)
	if errors.Is(err, domain.ErrNoWords) {
		return nil
	}
	if err != nil {
		return err
	}

	text := msgReminder + "\n\n" + questionText(q)
	_, err = h.bot.Send(&tele.User{ID: userID}, text, questionMarkup(q), tele.ModeHTML)
	return err
}

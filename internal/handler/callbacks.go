package handler

import (
	"fmt"
	"html"
	"strings"
	"unicode"

	"wordbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// questionText renders the prompt of a question
func questionText(q *domain.Question) string {
	return fmt.Sprintf(msgQuestion, html.EscapeString(q.Word.English))
}

// questionMarkup renders one answer button per option
func questionMarkup(q *domain.Question) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(q.Options))

	for _, opt := range q.Options {
		btn := markup.Data(opt.Text, btnAnswer.Unique, opt.Token.Encode())
		rows = append(rows, markup.Row(btn))
	}

	markup.Inline(rows...)
	return markup
}

// outcomeText renders the toast shown after an answer
func outcomeText(result *domain.AnswerResult) string {
	if result.Outcome == domain.OutcomeCorrect {
		return msgCorrect
	}
	return fmt.Sprintf(msgIncorrect, result.Correct)
}

// isNotModified reports whether Telegram refused an edit because the
// message already has this content
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// editOrSend edits the callback message and falls back to a new message.
// The callback must already be answered.
func (h *Handler) editOrSend(c tele.Context, what interface{}, opts ...interface{}) error {
	err := c.Edit(what, opts...)
	if err == nil {
		return nil
	}

	userID := c.Sender().ID
	if isNotModified(err) {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("user_id", userID),
		)
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	return c.Send(what, opts...)
}

// handleAnswer scores a pressed answer button and chains the next question
func (h *Handler) handleAnswer(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleAnswer: callback is nil")
		return nil
	}
	userID := c.Sender().ID

	unlock := h.lockUser(userID)
	defer unlock()

	data := cleanCallbackData(callback.Data)
	token, err := domain.DecodeAnswerToken(data)
	if err != nil {
		h.logger.Warn("Failed to decode answer",
			zap.Error(err),
			zap.String("data", data),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgAnswerExpired})
	}

	result, err := h.quizService.ScoreAnswer(userID, token)
	if err != nil {
		h.logger.Error("Failed to score answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("word_id", token.WordID),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgAnswerError})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: outcomeText(result)}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	if result.Next == nil {
		return h.editOrSend(c, msgNoWords)
	}
	return h.editOrSend(c, questionText(result.Next), questionMarkup(result.Next), tele.ModeHTML)
}

// handleCallback handles callback queries no button handler claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Buttons whose unique prefix did not survive are routed by data
	data := cleanCallbackData(callback.Data)
	if callback.Unique == btnAnswer.Unique || strings.HasPrefix(data, btnAnswer.Unique+"|") {
		if callback.Unique == "" {
			callback.Data = strings.TrimPrefix(data, btnAnswer.Unique+"|")
		}
		return h.handleAnswer(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond(&tele.CallbackResponse{Text: msgUnknownCallback})
}

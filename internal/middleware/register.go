package middleware

import (
	"wordbot/internal/domain"
	"wordbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgRegisterError = "Произошла ошибка. Попробуйте позже."

// RegisterMiddleware creates the user record on first contact,
// so every handler can rely on it
func RegisterMiddleware(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			user := domain.User{
				UserID:    sender.ID,
				Username:  sender.Username,
				FirstName: sender.FirstName,
				LastName:  sender.LastName,
			}

			if err := userService.EnsureUserExists(user); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: msgRegisterError})
				}
				return c.Send(msgRegisterError)
			}

			return next(c)
		}
	}
}

package handler

import (
	"sync"

	"wordbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	wordService  *service.WordService
	quizService  *service.QuizService
	statsService *service.StatsService
	logger       *zap.Logger

	// Per-user locks so double taps on answer buttons are scored one by one.
	// An entry lives only while someone holds or waits for it.
	answerLocks map[int64]*answerLock
	answerMux   sync.Mutex
}

type answerLock struct {
	mu   sync.Mutex
	refs int
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		wordService:  wordService,
		quizService:  quizService,
		statsService: statsService,
		logger:       logger,
		answerLocks:  make(map[int64]*answerLock),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/quiz", h.handleQuiz)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/delete", h.handleDelete)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/help", h.handleHelp)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Answer buttons
	h.bot.Handle(&btnAnswer, h.handleAnswer)

	// Anything else that carries callback data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Commands are shown in the Telegram command menu
var Commands = []tele.Command{
	{Text: "start", Description: "Начать работу с ботом"},
	{Text: "quiz", Description: "Следующее слово"},
	{Text: "add", Description: "Добавить слово: /add english russian"},
	{Text: "delete", Description: "Удалить слово: /delete english"},
	{Text: "stats", Description: "Статистика обучения"},
	{Text: "help", Description: "Список команд"},
}

// lockUser blocks until the user's answer lock is held and returns its release
func (h *Handler) lockUser(userID int64) (unlock func()) {
	h.answerMux.Lock()
	lock, exists := h.answerLocks[userID]
	if !exists {
		lock = &answerLock{}
		h.answerLocks[userID] = lock
	}
	lock.refs++
	h.answerMux.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		h.answerMux.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(h.answerLocks, userID)
		}
		h.answerMux.Unlock()
	}
}

// Inline keyboard buttons
var (
	// btnAnswer carries an encoded domain.AnswerToken as data
	btnAnswer = tele.Btn{Unique: "ans"}
)

package handler

import (
	"fmt"
	"testing"

	"wordbot/internal/domain"
	"wordbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleAdd_TwiceReportsAlreadyPresent(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	wordRepo.On("FindWordByEnglish", "cat").Return(nil, nil).Once()
	wordRepo.On("CreateWord", "cat", "кот").Return(int64(1), nil).Once()
	wordRepo.On("FindWordByEnglish", "cat").Return(testutil.NewTestWord(1, "cat", "кот"), nil).Once()
	wordRepo.On("LinkUserWord", int64(123), int64(1)).Return(nil).Once()
	wordRepo.On("LinkUserWord", int64(123), int64(1)).Return(domain.ErrAlreadyLinked).Once()
	wordRepo.On("CountUserWords", int64(123)).Return(1, nil).Once()

	h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))

	first := testutil.NewFakeCommand(123, "/add cat кот")
	assert.NoError(t, h.handleAdd(first))
	assert.Equal(t, "Слово 'cat' успешно добавлено! Всего слов: 1", first.LastText())

	second := testutil.NewFakeCommand(123, "/add cat кот")
	assert.NoError(t, h.handleAdd(second))
	assert.Equal(t, "Слово 'cat' уже есть в вашем списке!", second.LastText())

	wordRepo.AssertExpectations(t)
	wordRepo.AssertNumberOfCalls(t, "CountUserWords", 1)
}

func TestHandleAdd_ExistingWordKeepsTranslation(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	wordRepo.On("FindWordByEnglish", "cat").Return(testutil.NewTestWord(1, "cat", "кот"), nil)
	wordRepo.On("LinkUserWord", int64(123), int64(1)).Return(nil)
	wordRepo.On("CountUserWords", int64(123)).Return(4, nil)

	h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
	c := testutil.NewFakeCommand(123, "/add Cat кошка")

	assert.NoError(t, h.handleAdd(c))
	assert.Equal(t, "Слово 'cat' успешно добавлено! Всего слов: 4\nВ общем словаре у него перевод 'кот'.", c.LastText())
	wordRepo.AssertNotCalled(t, "CreateWord", mock.Anything, mock.Anything)
}

func TestHandleAdd_Usage(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no arguments", text: "/add"},
		{name: "one argument", text: "/add cat"},
		{name: "three arguments", text: "/add cat кот кошка"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
			c := testutil.NewFakeCommand(123, tt.text)

			assert.NoError(t, h.handleAdd(c))
			assert.Equal(t, msgAddUsage, c.LastText())
			wordRepo.AssertNotCalled(t, "FindWordByEnglish", mock.Anything)
		})
	}
}

func TestHandleAdd_InvalidWord(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
	c := testutil.NewFakeCommand(123, "/add a|b кот")

	assert.NoError(t, h.handleAdd(c))
	assert.Equal(t, msgInvalidWord, c.LastText())
	wordRepo.AssertNotCalled(t, "FindWordByEnglish", mock.Anything)
}

func TestInvalidWordMessage_StatesLimitInLetters(t *testing.T) {
	assert.Contains(t, msgInvalidWord, fmt.Sprintf("%d русских", domain.MaxWordBytes/2))
	assert.Contains(t, msgInvalidWord, fmt.Sprintf("%d латинских", domain.MaxWordBytes))
	assert.NotContains(t, msgInvalidWord, "байт")
}

func TestHandleAdd_StoreError(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	wordRepo.On("FindWordByEnglish", "cat").Return(nil, fmt.Errorf("db error"))

	h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
	c := testutil.NewFakeCommand(123, "/add cat кот")

	assert.NoError(t, h.handleAdd(c))
	assert.Equal(t, msgAddError, c.LastText())
}

func TestHandleDelete(t *testing.T) {
	t.Run("unknown word", func(t *testing.T) {
		wordRepo := new(testutil.MockWordRepository)
		wordRepo.On("FindWordByEnglish", "fox").Return(nil, nil)

		h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
		c := testutil.NewFakeCommand(123, "/delete fox")

		assert.NoError(t, h.handleDelete(c))
		assert.Equal(t, "Слово 'fox' не найдено в базе!", c.LastText())
		wordRepo.AssertNotCalled(t, "UnlinkUserWord", mock.Anything, mock.Anything)
	})

	t.Run("not in list", func(t *testing.T) {
		wordRepo := new(testutil.MockWordRepository)
		wordRepo.On("FindWordByEnglish", "cat").Return(testutil.NewTestWord(1, "cat", "кот"), nil)
		wordRepo.On("UnlinkUserWord", int64(123), int64(1)).Return(domain.ErrNotInList)

		h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
		c := testutil.NewFakeCommand(123, "/delete cat")

		assert.NoError(t, h.handleDelete(c))
		assert.Equal(t, "Слова 'cat' нет в вашем списке!", c.LastText())
	})

	t.Run("deleted", func(t *testing.T) {
		wordRepo := new(testutil.MockWordRepository)
		wordRepo.On("FindWordByEnglish", "cat").Return(testutil.NewTestWord(1, "cat", "кот"), nil)
		wordRepo.On("UnlinkUserWord", int64(123), int64(1)).Return(nil)

		h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
		c := testutil.NewFakeCommand(123, "/delete CAT")

		assert.NoError(t, h.handleDelete(c))
		assert.Equal(t, "Слово 'cat' успешно удалено!", c.LastText())
		wordRepo.AssertExpectations(t)
	})

	t.Run("usage", func(t *testing.T) {
		wordRepo := new(testutil.MockWordRepository)
		h := newTestHandler(wordRepo, new(testutil.MockStatsRepository))
		c := testutil.NewFakeCommand(123, "/delete")

		assert.NoError(t, h.handleDelete(c))
		assert.Equal(t, msgDeleteUsage, c.LastText())
		wordRepo.AssertNotCalled(t, "FindWordByEnglish", mock.Anything)
	})
}

func TestHandleStats(t *testing.T) {
	t.Run("fresh user", func(t *testing.T) {
		statsRepo := new(testutil.MockStatsRepository)
		statsRepo.On("GetTotals", int64(123)).Return(domain.Stats{}, nil)

		h := newTestHandler(new(testutil.MockWordRepository), statsRepo)
		c := testutil.NewFakeCommand(123, "/stats")

		assert.NoError(t, h.handleStats(c))
		assert.Equal(t, msgNoStats, c.LastText())
	})

	t.Run("with answers", func(t *testing.T) {
		statsRepo := new(testutil.MockStatsRepository)
		statsRepo.On("GetTotals", int64(123)).Return(domain.Stats{Correct: 5, Incorrect: 2}, nil)

		h := newTestHandler(new(testutil.MockWordRepository), statsRepo)
		c := testutil.NewFakeCommand(123, "/stats")

		assert.NoError(t, h.handleStats(c))
		assert.Equal(t, "Ваша статистика обучения:\nПравильных ответов: 5\nНеправильных ответов: 2", c.LastText())
	})

	t.Run("store error", func(t *testing.T) {
		statsRepo := new(testutil.MockStatsRepository)
		statsRepo.On("GetTotals", int64(123)).Return(domain.Stats{}, fmt.Errorf("db error"))

		h := newTestHandler(new(testutil.MockWordRepository), statsRepo)
		c := testutil.NewFakeCommand(123, "/stats")

		assert.NoError(t, h.handleStats(c))
		assert.Equal(t, msgStatsError, c.LastText())
	})
}

package handler

const (
	msgWelcome = "Привет, %s! 👋\n" +
		"Добро пожаловать в бота для изучения английских слов.\n" +
		"Используй команду /add чтобы добавить новые слова, или начни тренировку прямо сейчас!"

	msgNoWords = "К сожалению, в вашей базе пока нет слов. " +
		"Добавьте новые слова для начала обучения, используя команду /add!"

	msgHelp = "/start - Начать работу с ботом\n" +
		"/quiz - Следующее слово для тренировки\n" +
		"/add <english> <russian> - Добавить слово в ваш список\n" +
		"/delete <english> - Удалить слово из вашего списка\n" +
		"/stats - Показать статистику обучения\n" +
		"/help - Показать список команд"

	msgUnknown = "Не понимаю 🤔 Список команд: /help"

	msgQuestion = "Переведите слово: <b>%s</b>"
	msgReminder = "⏰ Пора повторить слова!"

	msgCorrect   = "Правильно! 👍"
	msgIncorrect = "Неправильно! Правильный ответ: %s"

	msgAddUsage    = "Пожалуйста, используйте формат: /add english russian_word"
	msgDeleteUsage = "Пожалуйста, используйте формат: /delete english"
	msgInvalidWord = "Слово должно быть одним словом без пробелов и символов | и =, не длиннее 20 русских или 40 латинских букв."

	msgAdded           = "Слово '%s' успешно добавлено! Всего слов: %d"
	msgAddedOtherRu    = "\nВ общем словаре у него перевод '%s'."
	msgAlreadyPresent  = "Слово '%s' уже есть в вашем списке!"
	msgDeleted         = "Слово '%s' успешно удалено!"
	msgWordNotFound    = "Слово '%s' не найдено в базе!"
	msgWordNotInList   = "Слова '%s' нет в вашем списке!"
	msgStats           = "Ваша статистика обучения:\nПравильных ответов: %d\nНеправильных ответов: %d"
	msgNoStats         = "У вас пока нет статистики обучения."
	msgAnswerExpired   = "Этот вопрос устарел, попробуйте /quiz"
	msgUnknownCallback = "Неизвестная кнопка"

	msgDBError     = "Произошла ошибка при подключении к базе данных. Попробуйте позже."
	msgAddError    = "Произошла ошибка при добавлении слова. Попробуйте позже."
	msgDeleteError = "Произошла ошибка при удалении слова. Попробуйте позже."
	msgStatsError  = "Произошла ошибка при получении статистики. Попробуйте позже."
	msgAnswerError = "Произошла ошибка при обработке ответа. Попробуйте позже."
)

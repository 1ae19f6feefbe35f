package handlers

import (
	"telegram-fitness-bot/internal/fitness"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "Добро пожаловать! Я помогу следить за водой, калориями и тренировками.\n" +
		"Введите /help для списка команд."
	msgHelp = "Доступные команды:\n" +
		"/set_profile — заполнить анкету\n" +
		"/log_water — записать выпитую воду\n" +
		"/log_food — записать съеденное\n" +
		"/log_workout — записать тренировку\n" +
		"/check_progress — прогресс за день"
	msgHint = "Не понял. Введите /help для списка команд."

	promptGender         = "Выберите пол:"
	promptWeight         = "Введите ваш вес (в кг):"
	promptHeight         = "Введите ваш рост (в см):"
	promptAge            = "Введите ваш возраст:"
	promptActivity       = "Сколько часов активности у вас в неделю?"
	promptCity           = "В каком городе вы находитесь?"
	promptWater          = "Сколько воды вы выпили (в мл)?"
	promptFoodName       = "Что вы съели? Напишите название продукта."
	promptWorkoutType    = "Выберите тип тренировки:"
	promptWorkoutMinutes = "Сколько минут длилась тренировка?"

	errNotNumber    = "Нужно положительное число. Попробуйте ещё раз."
	errChooseButton = "Выберите вариант кнопкой ниже."

	msgWeatherFail = "Не получилось узнать погоду для этого города. " +
		"Анкета не сохранена — начните заново: /set_profile"
	msgFoodFail = "Не нашёл такой продукт. Попробуйте назвать его иначе."
	msgStepFail = "Что-то пошло не так. Попробуйте ещё раз."

	msgReminder = "Напоминание! Ваш прогресс за сегодня:"

	btnMale   = "Мужской"
	btnFemale = "Женский"
)

const (
	cbGenderMale   = "gender:male"
	cbGenderFemale = "gender:female"
	cbActivity     = "activity:" // + корзина, например "activity:5-6"
	cbWorkout      = "workout:"  // + тип, например "workout:бег"
)

var genderKB = tgbotapi.NewInlineKeyboardMarkup(
	tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnMale, cbGenderMale),
		tgbotapi.NewInlineKeyboardButtonData(btnFemale, cbGenderFemale),
	),
)

func activityKB() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, b := range fitness.ActivityBuckets() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b+" ч/нед", cbActivity+b),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func workoutKB() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, w := range fitness.WorkoutTypes() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(w, cbWorkout+w))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

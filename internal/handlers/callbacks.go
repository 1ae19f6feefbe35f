package handlers

import (
	"strings"

	"telegram-fitness-bot/internal/fitness"
	"telegram-fitness-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleCallback обрабатывает нажатия инлайн-кнопок: пол, активность,
// тип тренировки. Кнопка из чужого шага (или от уже сброшенного диалога)
// игнорируется — отвечаем на callback и всё.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	// always answer callback to remove 'loading...'
	_, _ = h.Bot.Request(tgbotapi.NewCallback(cq.ID, ""))

	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	data := cq.Data

	d := h.draft(chatID)
	if d == nil {
		return
	}

	switch {
	case data == cbGenderMale || data == cbGenderFemale:
		if d.State != models.StateAwaitGender {
			return
		}
		if data == cbGenderMale {
			d.Gender = models.GenderMale
		} else {
			d.Gender = models.GenderFemale
		}
		d.State = models.StateAwaitWeight
		h.send(chatID, promptWeight)

	case strings.HasPrefix(data, cbActivity):
		if d.State != models.StateAwaitActivity {
			return
		}
		bucket := strings.TrimPrefix(data, cbActivity)
		if fitness.ActivityFactor(bucket) == 0 {
			h.send(chatID, errChooseButton)
			return
		}
		d.Activity = bucket
		d.State = models.StateAwaitCity
		h.send(chatID, promptCity)

	case strings.HasPrefix(data, cbWorkout):
		if d.State != models.StateAwaitWorkoutType {
			return
		}
		wt := strings.TrimPrefix(data, cbWorkout)
		if !knownWorkout(wt) {
			h.send(chatID, errChooseButton)
			return
		}
		d.WorkoutType = wt
		d.State = models.StateAwaitWorkoutMinutes
		h.send(chatID, promptWorkoutMinutes)
	}
}

func knownWorkout(wt string) bool {
	for _, w := range fitness.WorkoutTypes() {
		if w == wt {
			return true
		}
	}
	return false
}

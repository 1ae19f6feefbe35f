package handlers

import "telegram-fitness-bot/internal/models"

// HandleCommand запускает команду верхнего уровня. Любая команда сбрасывает
// активный диалог: недособранный черновик пропадает молча.
func (h *Handler) HandleCommand(chatID int64, cmd string) {
	h.clearDraft(chatID)

	switch cmd {
	case "start":
		h.send(chatID, msgWelcome)
	case "help":
		h.send(chatID, msgHelp)
	case "set_profile":
		h.startDraft(chatID, models.StateAwaitGender)
		h.sendKB(chatID, promptGender, genderKB)
	case "log_water":
		h.startDraft(chatID, models.StateAwaitWaterAmount)
		h.send(chatID, promptWater)
	case "log_food":
		h.startDraft(chatID, models.StateAwaitFoodName)
		h.send(chatID, promptFoodName)
	case "log_workout":
		h.startDraft(chatID, models.StateAwaitWorkoutType)
		h.sendKB(chatID, promptWorkoutType, workoutKB())
	case "check_progress":
		h.SendProgress(chatID)
	default:
		h.send(chatID, msgHint)
	}
}

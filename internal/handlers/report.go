package handlers

import (
	"fmt"
	"log"

	"telegram-fitness-bot/internal/fitness"
	"telegram-fitness-bot/internal/models"
)

// SendProgress отправляет сводку за день. Работает и без анкеты —
// тогда против целей по умолчанию.
func (h *Handler) SendProgress(chatID int64) {
	p, err := h.Store.GetOrCreate(chatID)
	if err != nil {
		log.Println("чтение профиля:", err)
		h.send(chatID, msgStepFail)
		return
	}
	h.send(chatID, progressText(p))
}

// RemindProgress — то же самое, но с префиксом-напоминанием; дергает шедулер.
func (h *Handler) RemindProgress(p *models.Profile) {
	h.send(p.ChatID, msgReminder+"\n\n"+progressText(p))
}

func progressText(p *models.Profile) string {
	pr := fitness.BuildProgress(p)
	return fmt.Sprintf(
		"Прогресс за сегодня:\n\n"+
			"💧 Вода: выпито %.0f мл из %.0f мл, осталось %.0f мл\n"+
			"🍎 Калории: съедено %.1f ккал из %.1f ккал\n"+
			"🔥 Сожжено: %.1f ккал\n"+
			"Баланс: %.1f ккал",
		pr.WaterDrunkML, pr.WaterGoalML, pr.WaterRemainingML,
		pr.CaloriesConsumed, pr.CalorieGoal,
		pr.CaloriesBurned, pr.CalorieBalance,
	)
}

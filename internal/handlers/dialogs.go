package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"telegram-fitness-bot/internal/fitness"
	"telegram-fitness-bot/internal/models"
	"telegram-fitness-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Вес для расчёта тренировки, если анкеты ещё нет.
const defaultWeightKg = 70.0

// HandleText продвигает активный диалог на один шаг. Невалидный ввод не
// двигает состояние: переспрашиваем, собранные поля остаются на месте.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	d := h.draft(chatID)
	if d == nil {
		h.send(chatID, msgHint)
		return
	}
	text := strings.TrimSpace(msg.Text)

	switch d.State {
	case models.StateAwaitGender, models.StateAwaitActivity, models.StateAwaitWorkoutType:
		// шаги с фиксированным выбором принимают только кнопки
		h.send(chatID, errChooseButton)

	case models.StateAwaitWeight:
		v, ok := parsePositiveFloat(text)
		if !ok {
			h.send(chatID, errNotNumber)
			return
		}
		d.WeightKg = v
		d.State = models.StateAwaitHeight
		h.send(chatID, promptHeight)

	case models.StateAwaitHeight:
		v, ok := parsePositiveFloat(text)
		if !ok {
			h.send(chatID, errNotNumber)
			return
		}
		d.HeightCm = v
		d.State = models.StateAwaitAge
		h.send(chatID, promptAge)

	case models.StateAwaitAge:
		v, ok := parsePositiveInt(text)
		if !ok {
			h.send(chatID, errNotNumber)
			return
		}
		d.AgeYears = v
		d.State = models.StateAwaitActivity
		h.sendKB(chatID, promptActivity, activityKB())

	case models.StateAwaitCity:
		h.finishOnboarding(chatID, d, text)

	case models.StateAwaitWaterAmount:
		h.logWater(chatID, text)

	case models.StateAwaitFoodName:
		h.lookupFood(chatID, d, text)

	case models.StateAwaitFoodGrams:
		h.logFood(chatID, d, text)

	case models.StateAwaitWorkoutMinutes:
		h.logWorkout(chatID, d, text)
	}
}

// ---------------- онбординг --------------------

// finishOnboarding — терминальный шаг анкеты: погода, нормы, коммит.
// Неудачный запрос погоды отменяет анкету целиком.
func (h *Handler) finishOnboarding(chatID int64, d *models.Draft, city string) {
	ctx := context.Background()

	lookupCity := city
	if h.TranslateCity {
		translated, err := h.Translate.Translate(ctx, city, "ru", "en")
		if err != nil {
			log.Println("перевод города:", err)
			h.clearDraft(chatID)
			h.send(chatID, msgWeatherFail)
			return
		}
		lookupCity = translated
	}

	temp, err := h.Weather.CurrentTempC(ctx, lookupCity)
	if err != nil {
		log.Println("погода:", err)
		h.clearDraft(chatID)
		h.send(chatID, msgWeatherFail)
		return
	}

	waterGoal, err := fitness.HydrationGoal(d.WeightKg, temp)
	if err != nil {
		log.Println("норма воды:", err)
		h.clearDraft(chatID)
		h.send(chatID, msgStepFail)
		return
	}
	calorieGoal, err := fitness.CalorieGoal(d.WeightKg, d.HeightCm, d.AgeYears, d.Gender, d.Activity)
	if err != nil {
		log.Println("норма калорий:", err)
		h.clearDraft(chatID)
		h.send(chatID, msgStepFail)
		return
	}

	err = h.Store.CommitOnboarding(&models.Profile{
		ChatID:      chatID,
		Gender:      d.Gender,
		WeightKg:    d.WeightKg,
		HeightCm:    d.HeightCm,
		AgeYears:    d.AgeYears,
		Activity:    d.Activity,
		City:        city,
		WaterGoalML: waterGoal,
		CalorieGoal: calorieGoal,
	})
	if err != nil {
		log.Println("сохранение анкеты:", err)
		h.clearDraft(chatID)
		h.send(chatID, msgStepFail)
		return
	}

	h.clearDraft(chatID)
	h.send(chatID, fmt.Sprintf(
		"Анкета сохранена!\n"+
			"Вес — %s кг\n"+
			"Рост — %s см\n"+
			"Возраст — %d лет\n"+
			"Активность — %s ч/нед\n"+
			"Город — %s (сейчас %.1f °C)\n\n"+
			"Норма воды — %.0f мл\n"+
			"Норма калорий — %.1f ккал",
		trimFloat(d.WeightKg), trimFloat(d.HeightCm), d.AgeYears,
		d.Activity, city, temp, waterGoal, calorieGoal,
	))
}

// ---------------- вода --------------------

func (h *Handler) logWater(chatID int64, text string) {
	ml, ok := parsePositiveFloat(text)
	if !ok {
		h.send(chatID, errNotNumber)
		return
	}

	p, err := h.Store.ApplyDelta(chatID, storage.FieldLoggedWater, ml)
	if err != nil {
		log.Println("запись воды:", err)
		h.send(chatID, msgStepFail)
		return
	}

	h.clearDraft(chatID)
	pr := fitness.BuildProgress(p)
	h.send(chatID, fmt.Sprintf(
		"Записал %.0f мл. Выпито %.0f мл из %.0f мл, осталось %.0f мл.",
		ml, pr.WaterDrunkML, pr.WaterGoalML, pr.WaterRemainingML,
	))
}

// ---------------- еда --------------------

// lookupFood — первый шаг /log_food: перевод названия и поиск калорийности.
// Любая неудача оставляет диалог на этом же шаге.
func (h *Handler) lookupFood(chatID int64, d *models.Draft, name string) {
	ctx := context.Background()

	translated, err := h.Translate.Translate(ctx, name, "ru", "en")
	if err != nil {
		log.Println("перевод продукта:", err)
		h.send(chatID, msgFoodFail)
		return
	}
	kcal, err := h.Nutrition.KcalPer100g(ctx, translated)
	if err != nil {
		log.Println("калорийность:", err)
		h.send(chatID, msgFoodFail)
		return
	}

	d.FoodName = name
	d.FoodKcalPer100g = kcal
	d.State = models.StateAwaitFoodGrams
	h.send(chatID, fmt.Sprintf(
		"%s — %.1f ккал на 100 г. Сколько грамм вы съели?", name, kcal,
	))
}

func (h *Handler) logFood(chatID int64, d *models.Draft, text string) {
	grams, ok := parsePositiveFloat(text)
	if !ok {
		h.send(chatID, errNotNumber)
		return
	}

	kcal := d.FoodKcalPer100g * grams / 100
	p, err := h.Store.ApplyDelta(chatID, storage.FieldLoggedCalories, kcal)
	if err != nil {
		log.Println("запись еды:", err)
		h.send(chatID, msgStepFail)
		return
	}

	h.clearDraft(chatID)
	pr := fitness.BuildProgress(p)
	h.send(chatID, fmt.Sprintf(
		"Записано: %.1f ккал. Всего съедено %.1f ккал из %.1f ккал.",
		kcal, pr.CaloriesConsumed, pr.CalorieGoal,
	))
}

// ---------------- тренировка --------------------

func (h *Handler) logWorkout(chatID int64, d *models.Draft, text string) {
	minutes, ok := parsePositiveInt(text)
	if !ok {
		h.send(chatID, errNotNumber)
		return
	}

	p, err := h.Store.GetOrCreate(chatID)
	if err != nil {
		log.Println("чтение профиля:", err)
		h.send(chatID, msgStepFail)
		return
	}
	weight := p.WeightKg
	if weight <= 0 {
		weight = defaultWeightKg
	}

	burned, err := fitness.WorkoutBurn(weight, d.WorkoutType, minutes)
	if err != nil || burned <= 0 {
		// ноль — неизвестный тип тренировки, сюда попадать не должны
		log.Printf("расчёт тренировки %q: burned=%.1f err=%v", d.WorkoutType, burned, err)
		h.clearDraft(chatID)
		h.send(chatID, msgStepFail)
		return
	}
	extraWater, err := fitness.WorkoutExtraWaterML(minutes)
	if err != nil {
		log.Println("доп. вода:", err)
		h.clearDraft(chatID)
		h.send(chatID, msgStepFail)
		return
	}

	if _, err := h.Store.ApplyDelta(chatID, storage.FieldBurnedCalories, burned); err != nil {
		log.Println("запись тренировки:", err)
		h.send(chatID, msgStepFail)
		return
	}
	p, err = h.Store.ApplyDelta(chatID, storage.FieldWaterGoal, extraWater)
	if err != nil {
		log.Println("увеличение нормы воды:", err)
		h.send(chatID, msgStepFail)
		return
	}

	h.clearDraft(chatID)
	h.send(chatID, fmt.Sprintf(
		"Тренировка записана: %s, %d мин — %.1f ккал.\n"+
			"Норма воды увеличена на %.0f мл (теперь %.0f мл).",
		d.WorkoutType, minutes, burned, extraWater, p.WaterGoalML,
	))
}

// ---------------- разбор чисел --------------------

func parsePositiveFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil && v > 0
}

func parsePositiveInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil && v > 0
}

// trimFloat — «70» вместо «70.000000», но «70.5» остаётся «70.5».
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

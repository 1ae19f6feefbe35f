// Package fitness содержит чистую арифметику бота: формулы норм и прогресс.
package fitness

import (
	"errors"

	"telegram-fitness-bot/internal/models"
)

// ErrInvalidArgument — аргумент вне области определения формулы. Если он
// всплыл, значит валидация ввода пропустила мусор: это сигнал о баге, а не
// пользовательская ошибка.
var ErrInvalidArgument = errors.New("fitness: argument out of domain")

// activityFactors: часы активности в неделю → множитель к базовому обмену.
var activityFactors = map[string]float64{
	"1-2":  1.2,
	"3-4":  1.375,
	"5-6":  1.55,
	"7-8":  1.725,
	"9-10": 1.9,
}

var activityOrder = []string{"1-2", "3-4", "5-6", "7-8", "9-10"}

// workoutFactors: ккал на кг веса за минуту.
var workoutFactors = map[string]float64{
	"бег":       0.167,
	"ходьба":    0.058,
	"плавание":  0.133,
	"велосипед": 0.125,
	"силовая":   0.1,
	"йога":      0.05,
	"танцы":     0.092,
	"футбол":    0.133,
}

var workoutOrder = []string{
	"бег", "ходьба", "плавание", "велосипед",
	"силовая", "йога", "танцы", "футбол",
}

// ActivityBuckets returns the buckets in keyboard order.
func ActivityBuckets() []string { return activityOrder }

// WorkoutTypes returns the workout labels in keyboard order.
func WorkoutTypes() []string { return workoutOrder }

// ActivityFactor looks up the multiplier for a bucket. Unknown bucket yields 0:
// ноль множителя даёт нулевую цель, и вызывающий обязан отнестись к нему как к
// испорченным данным, а не как к норме.
func ActivityFactor(bucket string) float64 {
	return activityFactors[bucket]
}

// BMR — базовый обмен по Миффлину—Сан Жеору.
func BMR(weightKg, heightCm float64, ageYears int, gender models.Gender) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, ErrInvalidArgument
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch gender {
	case models.GenderMale:
		return base + 5, nil
	case models.GenderFemale:
		return base - 161, nil
	}
	return 0, ErrInvalidArgument
}

// CalorieGoal = BMR × множитель активности.
func CalorieGoal(weightKg, heightCm float64, ageYears int, gender models.Gender, bucket string) (float64, error) {
	bmr, err := BMR(weightKg, heightCm, ageYears, gender)
	if err != nil {
		return 0, err
	}
	return bmr * ActivityFactor(bucket), nil
}

// HydrationGoal — дневная норма воды в мл по весу и температуре в городе.
// Пороги проверяются сверху вниз: ровно 30° попадает в жаркую ступень,
// ровно 25° — в тёплую.
func HydrationGoal(weightKg, temperatureC float64) (float64, error) {
	if weightKg <= 0 {
		return 0, ErrInvalidArgument
	}
	base := weightKg * 30
	switch {
	case temperatureC >= 30:
		return base + 1000, nil
	case temperatureC >= 25:
		return base + 500, nil
	}
	return base, nil
}

// WorkoutBurn — сожжённые калории: коэффициент типа × вес × минуты.
// Неизвестный тип даёт 0 (та же политика нулевого сигнала, что и у корзин).
func WorkoutBurn(weightKg float64, workoutType string, minutes int) (float64, error) {
	if weightKg <= 0 || minutes <= 0 {
		return 0, ErrInvalidArgument
	}
	return workoutFactors[workoutType] * weightKg * float64(minutes), nil
}

// WorkoutExtraWaterML — дополнительная вода за тренировку, мл.
func WorkoutExtraWaterML(minutes int) (float64, error) {
	if minutes <= 0 {
		return 0, ErrInvalidArgument
	}
	return 6.67 * float64(minutes), nil
}

package fitness

import "telegram-fitness-bot/internal/models"

// Progress is a read-only projection of a profile's daily counters.
type Progress struct {
	WaterGoalML      float64
	WaterDrunkML     float64
	WaterRemainingML float64

	CalorieGoal      float64
	CaloriesConsumed float64
	CaloriesBurned   float64
	CalorieBalance   float64
}

// BuildProgress never fails: профиль без анкеты считается против целей по
// умолчанию (2000 мл / 2000 ккал).
func BuildProgress(p *models.Profile) Progress {
	waterGoal := p.WaterGoalML
	if waterGoal <= 0 {
		waterGoal = models.DefaultWaterGoalML
	}
	calGoal := p.CalorieGoal
	if calGoal <= 0 {
		calGoal = models.DefaultCalorieGoal
	}

	remaining := waterGoal - p.LoggedWaterML
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		WaterGoalML:      waterGoal,
		WaterDrunkML:     p.LoggedWaterML,
		WaterRemainingML: remaining,
		CalorieGoal:      calGoal,
		CaloriesConsumed: p.LoggedCalories,
		CaloriesBurned:   p.BurnedCalories,
		CalorieBalance:   p.LoggedCalories - p.BurnedCalories,
	}
}

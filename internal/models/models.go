package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Цели по умолчанию, когда пользователь ещё не заполнял анкету.
const (
	DefaultWaterGoalML = 2000.0
	DefaultCalorieGoal = 2000.0
)

// Profile represents fitness settings and daily counters for a telegram user.
type Profile struct {
	ChatID         int64   `db:"chat_id"`
	Gender         Gender  `db:"gender"`
	WeightKg       float64 `db:"weight_kg"`
	HeightCm       float64 `db:"height_cm"`
	AgeYears       int     `db:"age_years"`
	Activity       string  `db:"activity"` // "1-2" … "9-10"
	City           string  `db:"city"`
	WaterGoalML    float64 `db:"water_goal_ml"`
	CalorieGoal    float64 `db:"calorie_goal"`
	LoggedWaterML  float64 `db:"logged_water_ml"`
	LoggedCalories float64 `db:"logged_calories"`
	BurnedCalories float64 `db:"burned_calories"`
	CreatedAt      int64   `db:"created_at"`
}

// Onboarded reports whether the profile ever passed /set_profile.
// Незаполненный профиль — не ошибка: логирование работает с целями по умолчанию.
func (p *Profile) Onboarded() bool {
	return p.Gender != "" && p.WeightKg > 0 && p.HeightCm > 0 && p.AgeYears > 0
}

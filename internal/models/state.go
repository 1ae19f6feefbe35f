package models

// State enumerates dialogue steps. Шаг «ждём ввода X» — отдельное значение,
// никаких строковых маркеров.
type State int

const (
	StateIdle State = iota

	// анкета /set_profile
	StateAwaitGender
	StateAwaitWeight
	StateAwaitHeight
	StateAwaitAge
	StateAwaitActivity
	StateAwaitCity

	// /log_water
	StateAwaitWaterAmount

	// /log_food
	StateAwaitFoodName
	StateAwaitFoodGrams

	// /log_workout
	StateAwaitWorkoutType
	StateAwaitWorkoutMinutes
)

// Draft is transient scratch state of one active dialogue. It is merged into
// the Profile only at the final step; until then the Profile stays untouched.
type Draft struct {
	State State

	// анкета
	Gender   Gender
	WeightKg float64
	HeightCm float64
	AgeYears int
	Activity string

	// еда: имя и калорийность, найденные на первом шаге
	FoodName        string
	FoodKcalPer100g float64

	// тренировка
	WorkoutType string
}

package storage

import (
	"sync"
	"time"

	"telegram-fitness-bot/internal/models"
)

// Memory — хранилище профилей в памяти процесса. Один мьютекс на всю карту:
// конкуренция низкая (один апдейт на чат за раз), этого достаточно.
type Memory struct {
	mu       sync.Mutex
	profiles map[int64]*models.Profile
}

func NewMemory() *Memory {
	return &Memory{profiles: make(map[int64]*models.Profile)}
}

func (m *Memory) GetOrCreate(chatID int64) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *m.getOrCreateLocked(chatID) // наружу только копия
	return &cp, nil
}

func (m *Memory) getOrCreateLocked(chatID int64) *models.Profile {
	if p, ok := m.profiles[chatID]; ok {
		return p
	}
	p := &models.Profile{
		ChatID:      chatID,
		WaterGoalML: models.DefaultWaterGoalML,
		CalorieGoal: models.DefaultCalorieGoal,
		CreatedAt:   time.Now().Unix(),
	}
	m.profiles[chatID] = p
	return p
}

func (m *Memory) CommitOnboarding(p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.getOrCreateLocked(p.ChatID)
	cur.Gender = p.Gender
	cur.WeightKg = p.WeightKg
	cur.HeightCm = p.HeightCm
	cur.AgeYears = p.AgeYears
	cur.Activity = p.Activity
	cur.City = p.City
	cur.WaterGoalML = p.WaterGoalML
	cur.CalorieGoal = p.CalorieGoal
	cur.LoggedWaterML = 0
	cur.LoggedCalories = 0
	cur.BurnedCalories = 0
	return nil
}

func (m *Memory) ApplyDelta(chatID int64, f Field, delta float64) (*models.Profile, error) {
	if delta <= 0 {
		return nil, ErrNonPositiveDelta
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.getOrCreateLocked(chatID)
	switch f {
	case FieldLoggedWater:
		p.LoggedWaterML += delta
	case FieldLoggedCalories:
		p.LoggedCalories += delta
	case FieldBurnedCalories:
		p.BurnedCalories += delta
	case FieldWaterGoal:
		p.WaterGoalML += delta
	default:
		_, err := column(f)
		return nil, err
	}

	cp := *p
	return &cp, nil
}

func (m *Memory) ListProfiles() ([]models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make([]models.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		res = append(res, *p)
	}
	return res, nil
}

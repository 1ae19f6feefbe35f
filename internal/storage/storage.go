package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"telegram-fitness-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// Field — счётчик профиля, к которому применяется положительная дельта.
type Field int

const (
	FieldLoggedWater Field = iota
	FieldLoggedCalories
	FieldBurnedCalories
	FieldWaterGoal
)

var ErrNonPositiveDelta = errors.New("storage: delta must be positive")

// Store is the only way handlers touch profiles. Обе реализации (sqlite и
// память) дают per-key атомарность: мутации одного пользователя видимы всем
// последующим чтениям из любой горутины.
type Store interface {
	// GetOrCreate возвращает профиль, создавая пустой с целями по умолчанию.
	GetOrCreate(chatID int64) (*models.Profile, error)
	// CommitOnboarding перезаписывает анкетные поля и цели и обнуляет все
	// три дневных счётчика.
	CommitOnboarding(p *models.Profile) error
	// ApplyDelta прибавляет строго положительную дельту к одному счётчику
	// и возвращает профиль после мутации.
	ApplyDelta(chatID int64, f Field, delta float64) (*models.Profile, error)
	ListProfiles() ([]models.Profile, error)
}

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

func column(f Field) (string, error) {
	switch f {
	case FieldLoggedWater:
		return "logged_water_ml", nil
	case FieldLoggedCalories:
		return "logged_calories", nil
	case FieldBurnedCalories:
		return "burned_calories", nil
	case FieldWaterGoal:
		return "water_goal_ml", nil
	}
	return "", fmt.Errorf("storage: unknown field %d", f)
}

// ---------- profiles --------------------------------------------------------

func (d *DB) GetOrCreate(chatID int64) (*models.Profile, error) {
	p, err := d.getProfile(chatID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	_, err = d.Exec(`
        INSERT INTO profiles (chat_id, water_goal_ml, calorie_goal, created_at)
        VALUES (?,?,?,?)
        ON CONFLICT(chat_id) DO NOTHING
    `, chatID, models.DefaultWaterGoalML, models.DefaultCalorieGoal, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	return d.getProfile(chatID)
}

func (d *DB) getProfile(chatID int64) (*models.Profile, error) {
	var p models.Profile
	err := d.QueryRow(`
        SELECT chat_id, gender, weight_kg, height_cm, age_years, activity, city,
               water_goal_ml, calorie_goal,
               logged_water_ml, logged_calories, burned_calories, created_at
        FROM profiles WHERE chat_id=?`, chatID,
	).Scan(&p.ChatID, &p.Gender, &p.WeightKg, &p.HeightCm, &p.AgeYears,
		&p.Activity, &p.City, &p.WaterGoalML, &p.CalorieGoal,
		&p.LoggedWaterML, &p.LoggedCalories, &p.BurnedCalories, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DB) CommitOnboarding(p *models.Profile) error {
	_, err := d.Exec(`
        INSERT INTO profiles (chat_id, gender, weight_kg, height_cm, age_years,
                              activity, city, water_goal_ml, calorie_goal,
                              logged_water_ml, logged_calories, burned_calories,
                              created_at)
        VALUES (?,?,?,?,?,?,?,?,?,0,0,0,?)
        ON CONFLICT(chat_id) DO UPDATE SET
            gender=excluded.gender,
            weight_kg=excluded.weight_kg,
            height_cm=excluded.height_cm,
            age_years=excluded.age_years,
            activity=excluded.activity,
            city=excluded.city,
            water_goal_ml=excluded.water_goal_ml,
            calorie_goal=excluded.calorie_goal,
            logged_water_ml=0,
            logged_calories=0,
            burned_calories=0
    `, p.ChatID, p.Gender, p.WeightKg, p.HeightCm, p.AgeYears,
		p.Activity, p.City, p.WaterGoalML, p.CalorieGoal, time.Now().Unix())
	return err
}

func (d *DB) ApplyDelta(chatID int64, f Field, delta float64) (*models.Profile, error) {
	if delta <= 0 {
		return nil, ErrNonPositiveDelta
	}
	col, err := column(f)
	if err != nil {
		return nil, err
	}
	if _, err := d.GetOrCreate(chatID); err != nil {
		return nil, err
	}
	_, err = d.Exec(
		fmt.Sprintf("UPDATE profiles SET %s = %s + ? WHERE chat_id = ?", col, col),
		delta, chatID,
	)
	if err != nil {
		return nil, err
	}
	return d.getProfile(chatID)
}

func (d *DB) ListProfiles() ([]models.Profile, error) {
	rows, err := d.Query(`
        SELECT chat_id, gender, weight_kg, height_cm, age_years, activity, city,
               water_goal_ml, calorie_goal,
               logged_water_ml, logged_calories, burned_calories, created_at
        FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ChatID, &p.Gender, &p.WeightKg, &p.HeightCm,
			&p.AgeYears, &p.Activity, &p.City, &p.WaterGoalML, &p.CalorieGoal,
			&p.LoggedWaterML, &p.LoggedCalories, &p.BurnedCalories,
			&p.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

package config

import (
	"log"
	"os"
	"strings"
	"time"
)

type Config struct {
	TelegramToken string
	WeatherToken  string
	WeatherURL    string
	TranslateURL  string
	NutritionURL  string
	TranslateCity bool   // переводить ли город перед запросом погоды
	DBPath        string // пусто — профили живут только в памяти процесса
	ReminderAt    string // "HH:MM", пусто — напоминания выключены
	LookupTimeout time.Duration
}

func Load() Config {
	return Config{
		TelegramToken: getBotToken(),
		WeatherToken:  strings.TrimSpace(os.Getenv("OWM_TOKEN")),
		WeatherURL:    envOr("WEATHER_URL", weatherURL),
		TranslateURL:  envOr("TRANSLATE_URL", translateURL),
		NutritionURL:  envOr("NUTRITION_URL", nutritionURL),
		TranslateCity: os.Getenv("TRANSLATE_CITY") == "1",
		DBPath:        dbPath(),
		ReminderAt:    strings.TrimSpace(os.Getenv("REMINDER_AT")),
		LookupTimeout: lookupTimeout(),
	}
}

func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		token := strings.TrimSpace(string(data))
		if token != "" {
			return token
		}
	}
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token != "" {
		return token
	}
	log.Fatal("❌ Токен не найден: отсутствует и Docker Secret, и переменная окружения")
	return ""
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// DB_PATH="" выключает sqlite целиком (хранилище в памяти).
func dbPath() string {
	if v, ok := os.LookupEnv("DB_PATH"); ok {
		return strings.TrimSpace(v)
	}
	return "bot.db"
}

func lookupTimeout() time.Duration {
	if v := os.Getenv("LOOKUP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 10 * time.Second
}

const (
	weatherURL   = "https://api.openweathermap.org/data/2.5/weather"
	translateURL = "https://api.mymemory.translated.net/get"
	nutritionURL = "https://world.openfoodfacts.org/cgi/search.pl"
)

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

	cfg := Load()

	if cfg.TelegramToken != "test-token" {
		t.Errorf("TelegramToken = %q", cfg.TelegramToken)
	}
	if cfg.WeatherURL != weatherURL {
		t.Errorf("WeatherURL = %q, want default", cfg.WeatherURL)
	}
	if cfg.DBPath != "bot.db" {
		t.Errorf("DBPath = %q, want bot.db", cfg.DBPath)
	}
	if cfg.TranslateCity {
		t.Error("TranslateCity on by default")
	}
	if cfg.LookupTimeout != 10*time.Second {
		t.Errorf("LookupTimeout = %v, want 10s", cfg.LookupTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("DB_PATH", "") // пустой путь выключает sqlite
	t.Setenv("TRANSLATE_CITY", "1")
	t.Setenv("LOOKUP_TIMEOUT", "3s")
	t.Setenv("REMINDER_AT", "20:00")

	cfg := Load()

	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if !cfg.TranslateCity {
		t.Error("TranslateCity not enabled")
	}
	if cfg.LookupTimeout != 3*time.Second {
		t.Errorf("LookupTimeout = %v, want 3s", cfg.LookupTimeout)
	}
	if cfg.ReminderAt != "20:00" {
		t.Errorf("ReminderAt = %q, want 20:00", cfg.ReminderAt)
	}
}

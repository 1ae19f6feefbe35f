package main

import (
	"telegram-fitness-bot/internal/clients"
	"telegram-fitness-bot/internal/config"
	"telegram-fitness-bot/internal/handlers"
	"telegram-fitness-bot/internal/scheduler"
	"telegram-fitness-bot/internal/storage"
	"telegram-fitness-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN, OWM_TOKEN etc.

	cfg := config.Load()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)

	var store storage.Store
	if cfg.DBPath != "" {
		db, err := storage.New(cfg.DBPath)
		utils.Must(err)
		store = db
	} else {
		store = storage.NewMemory()
	}

	h := handlers.New(
		bot,
		store,
		clients.NewWeather(cfg.WeatherURL, cfg.WeatherToken, cfg.LookupTimeout),
		clients.NewTranslate(cfg.TranslateURL, cfg.LookupTimeout),
		clients.NewNutrition(cfg.NutritionURL, cfg.LookupTimeout),
		cfg.TranslateCity,
	)

	_, err = scheduler.Start(h, store, cfg.ReminderAt)
	utils.Must(err)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := bot.GetUpdatesChan(updateConfig)

	for upd := range updates {
		if upd.Message != nil {
			h.HandleMessage(upd.Message)
		}
		if upd.CallbackQuery != nil {
			h.HandleCallback(upd.CallbackQuery)
		}
	}
}

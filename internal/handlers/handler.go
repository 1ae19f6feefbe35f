package handlers

import (
	"context"
	"sync"

	"telegram-fitness-bot/internal/models"
	"telegram-fitness-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender — то, что нам нужно от tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type WeatherClient interface {
	CurrentTempC(ctx context.Context, city string) (float64, error)
}

type TranslateClient interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

type NutritionClient interface {
	KcalPer100g(ctx context.Context, product string) (float64, error)
}

type Handler struct {
	Bot       Sender
	Store     storage.Store
	Weather   WeatherClient
	Translate TranslateClient
	Nutrition NutritionClient

	// переводить ли название города перед запросом погоды
	TranslateCity bool

	// черновики активных диалогов; живут только в памяти —
	// недописанная анкета не переживает рестарт, и это нормально
	mu     sync.Mutex
	drafts map[int64]*models.Draft
}

func New(bot Sender, store storage.Store, w WeatherClient, t TranslateClient, n NutritionClient, translateCity bool) *Handler {
	return &Handler{
		Bot:           bot,
		Store:         store,
		Weather:       w,
		Translate:     t,
		Nutrition:     n,
		TranslateCity: translateCity,
		drafts:        make(map[int64]*models.Draft),
	}
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.HandleCommand(msg.Chat.ID, msg.Command())
		return
	}
	h.HandleText(msg)
}

// ---------------- drafts --------------------

func (h *Handler) draft(chatID int64) *models.Draft {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drafts[chatID]
}

func (h *Handler) startDraft(chatID int64, st models.State) *models.Draft {
	h.mu.Lock()
	defer h.mu.Unlock()
	d := &models.Draft{State: st}
	h.drafts[chatID] = d
	return d
}

func (h *Handler) clearDraft(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.drafts, chatID)
}

// ---------------- send helpers --------------------

func (h *Handler) send(chatID int64, text string) {
	_, _ = h.Bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) sendKB(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	_, _ = h.Bot.Send(msg)
}

package scheduler

import (
	"log"
	"time"

	"telegram-fitness-bot/internal/handlers"
	"telegram-fitness-bot/internal/storage"

	"github.com/go-co-op/gocron/v2"
)

// Start запускает ежеминутную задачу: когда локальное время совпадает с
// remindAt ("HH:MM"), каждый сохранённый профиль получает сводку прогресса.
// Пустое remindAt выключает напоминания.
func Start(h *handlers.Handler, store storage.Store, remindAt string) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	if remindAt == "" {
		s.Start()
		return s, nil
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			if time.Now().Format("15:04") != remindAt {
				return
			}

			profiles, err := store.ListProfiles()
			if err != nil {
				log.Println("Ошибка чтения профилей:", err)
				return
			}

			for i := range profiles {
				h.RemindProgress(&profiles[i])
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}

// Package clients содержит HTTP-клиентов внешних справочников: погода,
// перевод, калорийность. Все три — простые GET с query-параметрами.
package clients

import "fmt"

// LookupError — внешний сервис ответил неуспехом (или не ответил вовсе).
// Для пользователя это всегда «попробуйте ещё раз», не падение бота.
type LookupError struct {
	Service string
	Status  int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: status %d", e.Service, e.Status)
}

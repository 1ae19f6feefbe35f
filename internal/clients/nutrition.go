package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Nutrition ищет продукт в OpenFoodFacts и достаёт калорийность на 100 г.
type Nutrition struct {
	baseURL string
	hc      *http.Client
}

func NewNutrition(baseURL string, timeout time.Duration) *Nutrition {
	return &Nutrition{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// KcalPer100g возвращает калорийность первого найденного продукта с ненулевой
// энергией. Пустая выдача — тоже LookupFailure: пользователю предложат
// назвать продукт иначе.
func (n *Nutrition) KcalPer100g(ctx context.Context, product string) (float64, error) {
	q := url.Values{}
	q.Set("search_terms", product)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page_size", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := n.hc.Do(req)
	if err != nil {
		return 0, &LookupError{Service: "nutrition", Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &LookupError{Service: "nutrition", Status: resp.StatusCode}
	}

	var body struct {
		Products []struct {
			Nutriments struct {
				EnergyKcal100g float64 `json:"energy-kcal_100g"`
			} `json:"nutriments"`
		} `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, &LookupError{Service: "nutrition", Status: resp.StatusCode}
	}

	for _, p := range body.Products {
		if p.Nutriments.EnergyKcal100g > 0 {
			return p.Nutriments.EnergyKcal100g, nil
		}
	}
	return 0, &LookupError{Service: "nutrition", Status: http.StatusNotFound}
}

package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Weather ходит в OpenWeatherMap за текущей температурой города.
type Weather struct {
	baseURL string
	token   string
	hc      *http.Client
}

func NewWeather(baseURL, token string, timeout time.Duration) *Weather {
	return &Weather{
		baseURL: baseURL,
		token:   token,
		hc:      &http.Client{Timeout: timeout},
	}
}

// CurrentTempC returns the current temperature in °C for a city name.
func (w *Weather) CurrentTempC(ctx context.Context, city string) (float64, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", w.token)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := w.hc.Do(req)
	if err != nil {
		return 0, &LookupError{Service: "weather", Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &LookupError{Service: "weather", Status: resp.StatusCode}
	}

	var body struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, &LookupError{Service: "weather", Status: resp.StatusCode}
	}
	return body.Main.Temp, nil
}

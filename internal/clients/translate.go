package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Translate нормализует русские названия (город, продукт) в английские
// через MyMemory. Код статуса сервис кладёт в тело ответа.
type Translate struct {
	baseURL string
	hc      *http.Client
}

func NewTranslate(baseURL string, timeout time.Duration) *Translate {
	return &Translate{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (t *Translate) Translate(ctx context.Context, text, from, to string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", from+"|"+to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := t.hc.Do(req)
	if err != nil {
		return "", &LookupError{Service: "translate", Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &LookupError{Service: "translate", Status: resp.StatusCode}
	}

	var body struct {
		ResponseStatus int `json:"responseStatus"`
		ResponseData   struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &LookupError{Service: "translate", Status: resp.StatusCode}
	}
	if body.ResponseStatus != http.StatusOK || body.ResponseData.TranslatedText == "" {
		return "", &LookupError{Service: "translate", Status: body.ResponseStatus}
	}
	return body.ResponseData.TranslatedText, nil
}

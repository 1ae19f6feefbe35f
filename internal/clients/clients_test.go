package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWeatherCurrentTempC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Moscow" {
			t.Errorf("q = %q, want Moscow", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("units = %q, want metric", got)
		}
		w.Write([]byte(`{"main":{"temp":32.5}}`))
	}))
	defer srv.Close()

	w := NewWeather(srv.URL, "token", time.Second)
	temp, err := w.CurrentTempC(context.Background(), "Moscow")
	if err != nil {
		t.Fatalf("CurrentTempC: %v", err)
	}
	if temp != 32.5 {
		t.Errorf("temp = %v, want 32.5", temp)
	}
}

func TestWeatherNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer srv.Close()

	w := NewWeather(srv.URL, "token", time.Second)
	_, err := w.CurrentTempC(context.Background(), "Нетакогогорода")

	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LookupError", err)
	}
	if le.Service != "weather" || le.Status != http.StatusNotFound {
		t.Errorf("LookupError = %+v, want weather/404", le)
	}
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("langpair"); got != "ru|en" {
			t.Errorf("langpair = %q, want ru|en", got)
		}
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"apple"}}`))
	}))
	defer srv.Close()

	tr := NewTranslate(srv.URL, time.Second)
	got, err := tr.Translate(context.Background(), "яблоко", "ru", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "apple" {
		t.Errorf("translated = %q, want apple", got)
	}
}

func TestTranslateEmbeddedStatus(t *testing.T) {
	// MyMemory кладёт код ошибки в тело при HTTP 200
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseStatus":403,"responseData":{"translatedText":""}}`))
	}))
	defer srv.Close()

	tr := NewTranslate(srv.URL, time.Second)
	_, err := tr.Translate(context.Background(), "яблоко", "ru", "en")

	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LookupError", err)
	}
	if le.Status != 403 {
		t.Errorf("Status = %d, want 403", le.Status)
	}
}

func TestNutritionPicksFirstWithCalories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// первый продукт без калорийности должен быть пропущен
		w.Write([]byte(`{"products":[
			{"nutriments":{}},
			{"nutriments":{"energy-kcal_100g":52}},
			{"nutriments":{"energy-kcal_100g":89}}
		]}`))
	}))
	defer srv.Close()

	n := NewNutrition(srv.URL, time.Second)
	kcal, err := n.KcalPer100g(context.Background(), "apple")
	if err != nil {
		t.Fatalf("KcalPer100g: %v", err)
	}
	if kcal != 52 {
		t.Errorf("kcal = %v, want 52", kcal)
	}
}

func TestNutritionEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[]}`))
	}))
	defer srv.Close()

	n := NewNutrition(srv.URL, time.Second)
	_, err := n.KcalPer100g(context.Background(), "unobtainium")

	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LookupError", err)
	}
	if le.Service != "nutrition" {
		t.Errorf("Service = %q, want nutrition", le.Service)
	}
}

func TestLookupTimeoutIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"main":{"temp":20}}`))
	}))
	defer srv.Close()

	w := NewWeather(srv.URL, "token", 20*time.Millisecond)
	_, err := w.CurrentTempC(context.Background(), "Moscow")

	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LookupError", err)
	}
}

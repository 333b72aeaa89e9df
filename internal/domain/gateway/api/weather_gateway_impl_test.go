package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkghttp "classy-weather/pkg/http"
)

func TestSearchLocations_SendsNameAndDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("expected path /v1/search, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "Berlin" {
			t.Errorf("expected name=Berlin, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":2950159,"name":"Berlin","latitude":52.52437,"longitude":13.41053,"timezone":"Europe/Berlin","country_code":"DE"},
			{"id":5083330,"name":"Berlin","latitude":44.46867,"longitude":-71.18508,"timezone":"America/New_York","country_code":"US"}
		]}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, pkghttp.ClientOptions{})

	results, err := gateway.SearchLocations(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0]
	if first.Name != "Berlin" || first.CountryCode != "DE" || first.Timezone != "Europe/Berlin" {
		t.Errorf("unexpected first result %+v", first)
	}
	if first.Latitude == nil || *first.Latitude != 52.52437 {
		t.Errorf("unexpected latitude %v", first.Latitude)
	}
}

func TestSearchLocations_NoResultsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, pkghttp.ClientOptions{})

	results, err := gateway.SearchLocations(context.Background(), "Xyzzyx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestGetDailyForecast_RequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("expected path /v1/forecast, got %s", r.URL.Path)
		}
		if q.Get("latitude") != "52.52437" || q.Get("longitude") != "13.41053" {
			t.Errorf("unexpected coordinates %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("timezone") != "Europe/Berlin" {
			t.Errorf("expected timezone Europe/Berlin, got %q", q.Get("timezone"))
		}
		if q.Get("daily") != DailyVariables {
			t.Errorf("expected daily=%s, got %q", DailyVariables, q.Get("daily"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":52.52,"longitude":13.41,"timezone":"Europe/Berlin","daily":{
			"time":["2026-10-19","2026-10-20"],
			"weathercode":[3,61],
			"temperature_2m_max":[14.2,12.9],
			"temperature_2m_min":[6.1,5.4],
			"wind_speed_10m_max":[18.4,22.0]
		}}`))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, pkghttp.ClientOptions{})

	resp, err := gateway.GetDailyForecast(context.Background(), 52.52437, 13.41053, "Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Daily == nil {
		t.Fatal("expected daily block")
	}
	if len(resp.Daily.Time) != 2 || *resp.Daily.WeatherCode[1] != 61 || *resp.Daily.WindSpeed10mMax[0] != 18.4 {
		t.Errorf("unexpected daily block %+v", resp.Daily)
	}
}

func TestGetDailyForecast_NullValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"daily":{
			"time":["2026-10-19","2026-10-20"],
			"weathercode":[3,null],
			"temperature_2m_max":[10,null],
			"temperature_2m_min":[1,2],
			"wind_speed_10m_max":[5,6]
		}}`))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, pkghttp.ClientOptions{})

	resp, err := gateway.GetDailyForecast(context.Background(), 52.52437, 13.41053, "Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Daily.WeatherCode[1] != nil || resp.Daily.Temperature2mMax[1] != nil {
		t.Errorf("expected nulls to stay nil, got %v / %v", resp.Daily.WeatherCode[1], resp.Daily.Temperature2mMax[1])
	}
	if *resp.Daily.WeatherCode[0] != 3 {
		t.Errorf("expected first code 3, got %d", *resp.Daily.WeatherCode[0])
	}
}

func TestGetDailyForecast_ErrorReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, pkghttp.ClientOptions{})

	_, err := gateway.GetDailyForecast(context.Background(), 200, 0, "GMT")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "Latitude must be in range") {
		t.Errorf("expected reason in error, got %v", err)
	}
}

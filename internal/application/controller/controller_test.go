package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"classy-weather/internal/application/view"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
	"classy-weather/internal/domain/usecase/lookup"
	"classy-weather/internal/domain/usecase/search"

	"github.com/labstack/echo/v4"
)

type stubLookup struct {
	results map[string]*model.LookupResult
	err     error
}

func (s *stubLookup) ResolveWeather(ctx context.Context, query string) (*model.LookupResult, error) {
	if len([]rune(query)) < lookup.DefaultMinQueryLength {
		return &model.LookupResult{TooShort: true}, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	result, ok := s.results[query]
	if !ok {
		return nil, &lookup.LookupError{Kind: lookup.KindLocationNotFound, Query: query}
	}
	return result, nil
}

func (s *stubLookup) ResolveLocation(ctx context.Context, query string) (*entity.ResolvedLocation, error) {
	result, err := s.ResolveWeather(ctx, query)
	if err != nil {
		return nil, err
	}
	return &result.Location, nil
}

func (s *stubLookup) MinQueryLength() int {
	return lookup.DefaultMinQueryLength
}

type stubHealth struct {
	response model.HealthResponse
}

func (s stubHealth) CheckHealth(ctx context.Context) model.HealthResponse {
	return s.response
}

func berlinLookup() *stubLookup {
	return &stubLookup{results: map[string]*model.LookupResult{
		"Berlin": {
			DisplayLocation: "Berlin \U0001F1E9\U0001F1EA",
			Location:        entity.ResolvedLocation{Name: "Berlin", CountryCode: "DE", Latitude: 52.52, Longitude: 13.41, Timezone: "Europe/Berlin"},
			Forecast: entity.DailyForecast{
				Time:         []string{"2026-10-19", "2026-10-20"},
				WeatherCode:  []int{0, 61},
				TempMax:      []float64{14.2, 12.9},
				TempMin:      []float64{6.1, 5.4},
				WindSpeedMax: []float64{18.4, 22.0},
			},
		},
	}}
}

func newTestServer(lookupUseCase lookup.UseCase, searchUseCase search.UseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("/classy-weather")
	NewWeatherController(api, lookupUseCase).InitWeatherRoutes()
	NewSearchController(api, searchUseCase).InitSearchRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestFindWeather(t *testing.T) {
	tests := []struct {
		name        string
		lookup      *stubLookup
		location    string
		wantDisplay string
		wantCards   int
		wantCountry string
	}{
		{name: "resolved location", lookup: berlinLookup(), location: "Berlin", wantDisplay: "Berlin \U0001F1E9\U0001F1EA", wantCards: 2, wantCountry: "Germany"},
		{name: "short query", lookup: berlinLookup(), location: "B"},
		{name: "unknown location", lookup: berlinLookup(), location: "Xyzzyx"},
		{name: "network failure", lookup: &stubLookup{err: &lookup.LookupError{Kind: lookup.KindNetwork, Query: "Berlin"}}, location: "Berlin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(tt.lookup, search.NewSearchUseCase(tt.lookup, search.Options{}))

			rec := serve(e, http.MethodGet, "/classy-weather/weather?location="+tt.location, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}

			resp := decode[model.WeatherResponse](t, rec)
			if resp.Query != tt.location {
				t.Errorf("Query = %q, want %q", resp.Query, tt.location)
			}
			if resp.DisplayLocation != tt.wantDisplay {
				t.Errorf("DisplayLocation = %q, want %q", resp.DisplayLocation, tt.wantDisplay)
			}
			if len(resp.Cards) != tt.wantCards {
				t.Errorf("expected %d cards, got %d", tt.wantCards, len(resp.Cards))
			}
			if resp.Country != tt.wantCountry {
				t.Errorf("Country = %q, want %q", resp.Country, tt.wantCountry)
			}
		})
	}
}

func TestFindWeather_Cards(t *testing.T) {
	lookups := berlinLookup()
	e := newTestServer(lookups, search.NewSearchUseCase(lookups, search.Options{}))

	resp := decode[model.WeatherResponse](t, serve(e, http.MethodGet, "/classy-weather/weather?location=Berlin", ""))

	today := resp.Cards[0]
	if today.Label != "Today" || !today.IsToday || today.Icon != view.WeatherIcon(0) || today.Min != 6 || today.Max != 15 {
		t.Errorf("unexpected first card %+v", today)
	}
	if next := resp.Cards[1]; next.Label != "Tue" || next.IsToday || next.WindSpeed != 22.0 {
		t.Errorf("unexpected second card %+v", next)
	}
}

func TestSearchSessionLifecycle(t *testing.T) {
	lookups := berlinLookup()
	searches := search.NewSearchUseCase(lookups, search.Options{CancelSuperseded: true})
	defer searches.CloseAll()
	e := newTestServer(lookups, searches)

	rec := serve(e, http.MethodPost, "/classy-weather/search", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	session := decode[model.SearchSessionDTO](t, rec)
	if session.ID == "" {
		t.Fatal("expected a session id")
	}
	path := "/classy-weather/search/" + session.ID

	rec = serve(e, http.MethodPut, path, `{"query":"Berlin"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", rec.Code)
	}
	accepted := decode[model.SearchStateResponse](t, rec)
	if accepted.Query != "Berlin" || accepted.ID != session.ID {
		t.Errorf("unexpected accepted state %+v", accepted)
	}

	controller, ok := searches.FindSession(session.ID)
	if !ok {
		t.Fatal("expected session to be registered")
	}
	controller.Wait()

	rec = serve(e, http.MethodGet, path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	state := decode[model.SearchStateResponse](t, rec)
	if state.IsLoading || state.DisplayLocation != "Berlin \U0001F1E9\U0001F1EA" || len(state.Cards) != 2 {
		t.Errorf("unexpected loaded state %+v", state)
	}

	rec = serve(e, http.MethodPut, path, `{"query":"B"}`)
	cleared := decode[model.SearchStateResponse](t, rec)
	if len(cleared.Cards) != 0 || cleared.Query != "B" {
		t.Errorf("expected cleared cards for short query, got %+v", cleared)
	}

	if rec = serve(e, http.MethodDelete, path, ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
	if rec = serve(e, http.MethodGet, path, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 after close, got %d", rec.Code)
	}
}

func TestSearchSessionErrors(t *testing.T) {
	lookups := berlinLookup()
	searches := search.NewSearchUseCase(lookups, search.Options{})
	defer searches.CloseAll()
	e := newTestServer(lookups, searches)

	session := decode[model.SearchSessionDTO](t, serve(e, http.MethodPost, "/classy-weather/search", ""))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "get unknown", method: http.MethodGet, path: "/classy-weather/search/missing", want: http.StatusNotFound},
		{name: "put unknown", method: http.MethodPut, path: "/classy-weather/search/missing", body: `{"query":"Berlin"}`, want: http.StatusNotFound},
		{name: "delete unknown", method: http.MethodDelete, path: "/classy-weather/search/missing", want: http.StatusNotFound},
		{name: "malformed body", method: http.MethodPut, path: "/classy-weather/search/" + session.ID, body: `{"query":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
			if body := decode[map[string]string](t, rec); body["error"] == "" {
				t.Errorf("expected error message, got %v", body)
			}
		})
	}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		status model.HealthStatus
		want   int
	}{
		{name: "up", status: model.StatusUp, want: http.StatusOK},
		{name: "down", status: model.StatusDown, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			api := e.Group("/classy-weather")
			NewHealthController(api, stubHealth{response: model.HealthResponse{Status: tt.status, Application: "classy-weather"}}).InitHealthRoutes()

			rec := serve(e, http.MethodGet, "/classy-weather/health", "")
			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
			if resp := decode[model.HealthResponse](t, rec); resp.Status != tt.status {
				t.Errorf("Status = %s, want %s", resp.Status, tt.status)
			}
		})
	}
}

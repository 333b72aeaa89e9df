package model

import "classy-weather/internal/domain/entity"

// LookupResult is the combined output of a geocode-then-forecast lookup.
// TooShort marks a query that was skipped by the length gate.
type LookupResult struct {
	DisplayLocation string                  `json:"displayLocation"`
	Location        entity.ResolvedLocation `json:"location"`
	Forecast        entity.DailyForecast    `json:"forecast"`
	TooShort        bool                    `json:"tooShort"`
}

// DayCard is a single rendered forecast day
type DayCard struct {
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Icon      string  `json:"icon"`
	Min       int     `json:"min"`
	Max       int     `json:"max"`
	WindSpeed float64 `json:"windSpeed"`
	IsToday   bool    `json:"isToday"`
}

// WeatherResponse is the payload of the one-shot weather endpoint
type WeatherResponse struct {
	Query           string                   `json:"query"`
	DisplayLocation string                   `json:"displayLocation"`
	Country         string                   `json:"country,omitempty"`
	Location        *entity.ResolvedLocation `json:"location,omitempty"`
	Cards           []DayCard                `json:"cards"`
}

// SearchQueryDTO carries a query change for a search session
type SearchQueryDTO struct {
	Query string `json:"query"`
}

// SearchSessionDTO identifies a search session
type SearchSessionDTO struct {
	ID string `json:"id"`
}

// SearchStateResponse is a search session snapshot ready for rendering
type SearchStateResponse struct {
	ID              string    `json:"id"`
	Query           string    `json:"query"`
	IsLoading       bool      `json:"isLoading"`
	DisplayLocation string    `json:"displayLocation"`
	Cards           []DayCard `json:"cards"`
}

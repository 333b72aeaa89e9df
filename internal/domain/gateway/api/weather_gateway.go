package api

import (
	"context"

	"classy-weather/internal/domain/model/external"
)

// DailyVariables is the list of daily series requested from the forecast API
const DailyVariables = "weathercode,temperature_2m_max,temperature_2m_min,wind_speed_10m_max"

// GeocodingGateway resolves free-text place names
type GeocodingGateway interface {
	// SearchLocations searches locations by name and returns every candidate, best match first
	SearchLocations(ctx context.Context, name string) ([]external.GeocodingResultDTO, error)
}

// ForecastGateway fetches daily forecasts for coordinates
type ForecastGateway interface {
	// GetDailyForecast gets the daily forecast for a coordinate in the given timezone
	GetDailyForecast(ctx context.Context, latitude float64, longitude float64, timezone string) (*external.ForecastResponse, error)
}

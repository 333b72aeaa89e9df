package lookup

import (
	"context"
	"unicode/utf8"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/gateway/api"
	"classy-weather/internal/domain/gateway/cache"
	"classy-weather/internal/domain/model"
	"classy-weather/internal/domain/model/external"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"
	"classy-weather/pkg/util/flagutils"
)

// DefaultMinQueryLength is the shortest query that triggers a lookup
const DefaultMinQueryLength = 2

type lookupUseCase struct {
	minQueryLength   int
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
	locationCache    cache.LocationCache
}

func NewLookupUseCase(minQueryLength int, geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway, locationCache cache.LocationCache) UseCase {
	if minQueryLength <= 0 {
		minQueryLength = DefaultMinQueryLength
	}
	if locationCache == nil {
		locationCache = cache.NewNoopLocationCache()
	}
	return &lookupUseCase{
		minQueryLength:   minQueryLength,
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
		locationCache:    locationCache,
	}
}

func (uc *lookupUseCase) MinQueryLength() int {
	return uc.minQueryLength
}

// ResolveWeather runs geocoding then forecast, strictly in sequence
func (uc *lookupUseCase) ResolveWeather(ctx context.Context, query string) (*model.LookupResult, error) {
	if utf8.RuneCountInString(query) < uc.minQueryLength {
		log.Debug(msg.GetMessage("lookup.too-short", query, uc.minQueryLength))
		return &model.LookupResult{TooShort: true}, nil
	}

	location, err := uc.ResolveLocation(ctx, query)
	if err != nil {
		return nil, err
	}

	displayLocation := flagutils.DisplayLabel(location.Name, location.CountryCode)

	log.Info(msg.GetMessage("lookup.forecast", displayLocation, location.Latitude, location.Longitude))
	forecastResponse, err := uc.forecastGateway.GetDailyForecast(ctx, location.Latitude, location.Longitude, location.Timezone)
	if err != nil {
		return nil, classify(query, "forecast", err)
	}

	forecast, err := convertForecastResponse(query, forecastResponse)
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("lookup.done", query, forecast.Days()))
	return &model.LookupResult{
		DisplayLocation: displayLocation,
		Location:        *location,
		Forecast:        *forecast,
	}, nil
}

// ResolveLocation returns the first geocoding candidate for query, consulting the cache first
func (uc *lookupUseCase) ResolveLocation(ctx context.Context, query string) (*entity.ResolvedLocation, error) {
	cached, ok, err := uc.locationCache.Get(ctx, query)
	if err != nil {
		log.Warn(msg.GetMessage("lookup.cache-error", query, err))
	} else if ok {
		log.Debug(msg.GetMessage("lookup.cache-hit", query))
		return cached, nil
	}

	log.Info(msg.GetMessage("lookup.geocoding", query))
	results, err := uc.geocodingGateway.SearchLocations(ctx, query)
	if err != nil {
		return nil, classify(query, "geocoding", err)
	}

	if len(results) == 0 {
		return nil, &LookupError{Kind: KindLocationNotFound, Query: query}
	}

	// Only the best match is used; there is no disambiguation between candidates.
	location, err := convertGeocodingResult(query, results[0])
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("lookup.resolved", query, location.Name, location.Latitude, location.Longitude, location.Timezone))

	if err := uc.locationCache.Set(ctx, query, *location); err != nil {
		log.Warn(msg.GetMessage("lookup.cache-error", query, err))
	}

	return location, nil
}

// convertGeocodingResult converts a geocoding candidate into a resolved location
func convertGeocodingResult(query string, result external.GeocodingResultDTO) (*entity.ResolvedLocation, error) {
	if result.Latitude == nil || result.Longitude == nil {
		return nil, malformed(query, "geocoding result %q has no coordinates", result.Name)
	}
	if result.Name == "" {
		return nil, malformed(query, "geocoding result has no name")
	}
	if result.Timezone == "" {
		return nil, malformed(query, "geocoding result %q has no timezone", result.Name)
	}
	if result.CountryCode == "" {
		return nil, malformed(query, "geocoding result %q has no country code", result.Name)
	}

	return &entity.ResolvedLocation{
		Name:        result.Name,
		CountryCode: result.CountryCode,
		Latitude:    *result.Latitude,
		Longitude:   *result.Longitude,
		Timezone:    result.Timezone,
	}, nil
}

// convertForecastResponse converts the forecast API response into a validated daily forecast
func convertForecastResponse(query string, response *external.ForecastResponse) (*entity.DailyForecast, error) {
	if response == nil || response.Daily == nil {
		return nil, malformed(query, "forecast response has no daily block")
	}

	daily := response.Daily

	codes := make([]int, len(daily.WeatherCode))
	for i, code := range daily.WeatherCode {
		codes[i] = entity.MissingWeatherCode
		if code != nil {
			codes[i] = *code
		}
	}

	tempMax, err := requireSeries(query, "temperature_2m_max", daily.Temperature2mMax)
	if err != nil {
		return nil, err
	}
	tempMin, err := requireSeries(query, "temperature_2m_min", daily.Temperature2mMin)
	if err != nil {
		return nil, err
	}
	windSpeedMax, err := requireSeries(query, "wind_speed_10m_max", daily.WindSpeed10mMax)
	if err != nil {
		return nil, err
	}

	forecast := &entity.DailyForecast{
		Time:         daily.Time,
		WeatherCode:  codes,
		TempMax:      tempMax,
		TempMin:      tempMin,
		WindSpeedMax: windSpeedMax,
	}

	if err := forecast.Validate(); err != nil {
		return nil, malformed(query, "invalid daily forecast: %w", err)
	}

	return forecast, nil
}

// requireSeries dereferences a numeric daily series; a null value makes the response malformed
func requireSeries(query string, name string, values []*float64) ([]float64, error) {
	converted := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			return nil, malformed(query, "daily series %s has no value for day %d", name, i)
		}
		converted[i] = *v
	}
	return converted, nil
}

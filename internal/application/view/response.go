package view

import "classy-weather/internal/domain/model"

// BuildWeatherResponse renders a lookup result for the weather endpoint and the
// lookup command. A nil or skipped result yields no cards.
func BuildWeatherResponse(query string, result *model.LookupResult) model.WeatherResponse {
	response := model.WeatherResponse{Query: query, Cards: []model.DayCard{}}
	if result == nil || result.TooShort {
		return response
	}

	location := result.Location
	response.DisplayLocation = result.DisplayLocation
	response.Country = CountryName(location.CountryCode)
	response.Location = &location
	response.Cards = BuildCards(&result.Forecast)
	return response
}

package entity

// SearchState is what the widget renders. A nil Forecast means nothing to show.
type SearchState struct {
	Query           string         `json:"query"`
	IsLoading       bool           `json:"isLoading"`
	DisplayLocation string         `json:"displayLocation"`
	Forecast        *DailyForecast `json:"forecast,omitempty"`
}

// HasForecast reports whether cards should be rendered.
func (s SearchState) HasForecast() bool {
	return s.Forecast != nil && len(s.Forecast.WeatherCode) > 0
}

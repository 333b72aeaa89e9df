package external

// GeocodingResponse represents the response from the Open-Meteo geocoding search API.
// Results is absent when nothing matches.
type GeocodingResponse struct {
	Results          []GeocodingResultDTO `json:"results"`
	GenerationTimeMs float64              `json:"generationtime_ms"`
}

// GeocodingResultDTO represents a single geocoding candidate
type GeocodingResultDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	Timezone    string   `json:"timezone"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Admin1      string   `json:"admin1"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Timezone   string            `json:"timezone"`
	DailyUnits map[string]string `json:"daily_units"`
	Daily      *DailyDTO         `json:"daily"`
}

// DailyDTO holds the requested daily series. Open-Meteo sends null for
// values it has no data for, hence the pointer elements.
type DailyDTO struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weathercode"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	WindSpeed10mMax  []*float64 `json:"wind_speed_10m_max"`
}

// APIErrorResponse represents error responses from Open-Meteo
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

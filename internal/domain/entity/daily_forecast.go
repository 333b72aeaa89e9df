package entity

import "fmt"

// MissingWeatherCode marks a day the forecast API sent no weather code for.
// It matches no icon.
const MissingWeatherCode = -1

// DailyForecast holds parallel daily series; index 0 is today.
type DailyForecast struct {
	Time         []string  `json:"time"`
	WeatherCode  []int     `json:"weathercode"`
	TempMax      []float64 `json:"temperature_2m_max"`
	TempMin      []float64 `json:"temperature_2m_min"`
	WindSpeedMax []float64 `json:"wind_speed_10m_max"`
}

// Days returns the number of forecast days.
func (f DailyForecast) Days() int {
	return len(f.Time)
}

// Validate checks that every series has the same length as Time.
func (f DailyForecast) Validate() error {
	n := len(f.Time)
	if n == 0 {
		return fmt.Errorf("daily forecast has no days")
	}
	lengths := map[string]int{
		"weathercode":        len(f.WeatherCode),
		"temperature_2m_max": len(f.TempMax),
		"temperature_2m_min": len(f.TempMin),
		"wind_speed_10m_max": len(f.WindSpeedMax),
	}
	for name, l := range lengths {
		if l != n {
			return fmt.Errorf("daily series %s has %d values, expected %d", name, l, n)
		}
	}
	return nil
}

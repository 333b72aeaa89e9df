package view

import (
	"math"
	"time"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
)

const (
	isoDate    = "2006-01-02"
	todayLabel = "Today"
)

// FormatDay turns an ISO date into a short weekday ("Mon"). The calendar date is
// used as is, with no timezone shift. Unparsable input is returned unchanged.
func FormatDay(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("Mon")
}

// BuildCards renders one card per forecast day; the first one is today
func BuildCards(forecast *entity.DailyForecast) []model.DayCard {
	if forecast == nil {
		return []model.DayCard{}
	}

	days := forecast.Days()
	cards := make([]model.DayCard, 0, days)
	for i := 0; i < days; i++ {
		if i >= len(forecast.WeatherCode) || i >= len(forecast.TempMin) || i >= len(forecast.TempMax) || i >= len(forecast.WindSpeedMax) {
			break
		}

		isToday := i == 0
		label := FormatDay(forecast.Time[i])
		if isToday {
			label = todayLabel
		}

		cards = append(cards, model.DayCard{
			Date:      forecast.Time[i],
			Label:     label,
			Icon:      WeatherIcon(forecast.WeatherCode[i]),
			Min:       int(math.Floor(forecast.TempMin[i])),
			Max:       int(math.Ceil(forecast.TempMax[i])),
			WindSpeed: forecast.WindSpeedMax[i],
			IsToday:   isToday,
		})
	}
	return cards
}

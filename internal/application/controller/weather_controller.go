package controller

import (
	"net/http"

	"classy-weather/internal/application/view"
	"classy-weather/internal/domain/usecase/lookup"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WeatherController struct {
	api     *echo.Group
	useCase lookup.UseCase
}

func NewWeatherController(api *echo.Group, useCase lookup.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FindWeather)
}

// FindWeather godoc
// @Summary Get the daily forecast of a location
// @Description Geocode the location, take the first match and return its daily forecast cards.
// @Description Queries shorter than two characters and failed lookups return no cards.
// @Tags weather
// @Produce json
// @Param location query string true "Free-text location name"
// @Success 200 {object} model.WeatherResponse "Forecast cards, possibly empty"
// @Router /weather [get]
func (controller *WeatherController) FindWeather(c echo.Context) error {
	query := c.QueryParam("location")

	result, err := controller.useCase.ResolveWeather(c.Request().Context(), query)
	if err != nil {
		log.Error(msg.GetMessage("lookup.failed", query, err), zap.Error(err))
		return c.JSON(http.StatusOK, view.BuildWeatherResponse(query, nil))
	}
	return c.JSON(http.StatusOK, view.BuildWeatherResponse(query, result))
}

package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"classy-weather/internal/domain/model/external"
	"classy-weather/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface against Open-Meteo
type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// SearchLocations searches locations by name
func (g *geocodingGatewayImpl) SearchLocations(ctx context.Context, name string) ([]external.GeocodingResultDTO, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(map[string]string{"name": name}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.GeocodingResponse)
		return response.Results, nil
	}

	return nil, apiError(errResp, err)
}

// forecastGatewayImpl implements the ForecastGateway interface against Open-Meteo
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetDailyForecast gets the daily forecast for a coordinate
func (f *forecastGatewayImpl) GetDailyForecast(ctx context.Context, latitude float64, longitude float64, timezone string) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
			"timezone":  timezone,
			"daily":     DailyVariables,
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	return nil, apiError(errResp, err)
}

// apiError prefers the reason reported by Open-Meteo over the bare status error
func apiError(errResp any, err error) error {
	if errResp != nil {
		if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse.Reason != "" {
			return fmt.Errorf("%w: %s", err, errorResponse.Reason)
		}
	}
	if err == nil {
		return errors.New("unexpected empty response")
	}
	return err
}

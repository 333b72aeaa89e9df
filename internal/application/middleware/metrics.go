package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"classy-weather/internal/infra/metrics"
)

// SetupRequestMetrics counts every request by route template, method and status
func SetupRequestMetrics(e *echo.Echo) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				}
			}
			metrics.RequestCounter.WithLabelValues(c.Path(), c.Request().Method, strconv.Itoa(status)).Inc()
			return err
		}
	})
}

package api

import (
	"time"

	"classy-weather/pkg/log"

	"go.uber.org/zap"
)

// ZapHTTPLogger writes outgoing Open-Meteo calls to the application log
type ZapHTTPLogger struct {
	Gateway string
}

func (l ZapHTTPLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("Outgoing request",
		zap.String("gateway", l.Gateway),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, latency int64) {
	log.Info("Outgoing request finished",
		zap.String("gateway", l.Gateway),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", time.Duration(latency)*time.Millisecond))
}

func (l ZapHTTPLogger) LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error("Outgoing request failed",
		zap.String("gateway", l.Gateway),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Duration("latency", time.Duration(latency)*time.Millisecond),
		zap.Error(err))
}

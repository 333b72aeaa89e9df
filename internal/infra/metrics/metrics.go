package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
	"classy-weather/internal/domain/usecase/lookup"
)

const (
	OutcomeOK       = "ok"
	OutcomeTooShort = "too_short"
	OutcomeNetwork  = "network"
	OutcomeMalform  = "malformed"
	OutcomeNotFound = "not_found"
	OutcomeUnknown  = "unknown"
)

var (
	LookupCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classy_weather_lookups_total",
			Help: "Weather lookups by outcome.",
		},
		[]string{"outcome"},
	)

	LookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classy_weather_lookup_duration_seconds",
			Help:    "Duration of geocode-then-forecast lookups that reached the network.",
			Buckets: prometheus.DefBuckets,
		},
	)

	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classy_weather_requests_total",
			Help: "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(LookupCounter, LookupDuration, RequestCounter)
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}

// Outcome maps a lookup result to its counter label
func Outcome(result *model.LookupResult, err error) string {
	switch {
	case err == nil && result != nil && result.TooShort:
		return OutcomeTooShort
	case err == nil:
		return OutcomeOK
	case errors.Is(err, lookup.ErrNetwork):
		return OutcomeNetwork
	case errors.Is(err, lookup.ErrMalformed):
		return OutcomeMalform
	case errors.Is(err, lookup.ErrLocationNotFound):
		return OutcomeNotFound
	default:
		return OutcomeUnknown
	}
}

type instrumentedLookup struct {
	next lookup.UseCase
}

// InstrumentLookup counts every ResolveWeather call by outcome and times the
// ones that pass the length gate
func InstrumentLookup(next lookup.UseCase) lookup.UseCase {
	return &instrumentedLookup{next: next}
}

func (i *instrumentedLookup) ResolveWeather(ctx context.Context, query string) (*model.LookupResult, error) {
	start := time.Now()
	result, err := i.next.ResolveWeather(ctx, query)

	outcome := Outcome(result, err)
	LookupCounter.WithLabelValues(outcome).Inc()
	if outcome != OutcomeTooShort {
		LookupDuration.Observe(time.Since(start).Seconds())
	}
	return result, err
}

func (i *instrumentedLookup) ResolveLocation(ctx context.Context, query string) (*entity.ResolvedLocation, error) {
	return i.next.ResolveLocation(ctx, query)
}

func (i *instrumentedLookup) MinQueryLength() int {
	return i.next.MinQueryLength()
}

package main

import (
	"classy-weather/internal/domain/gateway/api"
	"classy-weather/internal/domain/gateway/cache"
	"classy-weather/internal/domain/usecase/lookup"
	"classy-weather/internal/domain/usecase/search"
	"classy-weather/internal/infra/metrics"
	"classy-weather/pkg/http"
	"classy-weather/pkg/log"
	"classy-weather/pkg/redis"
	"classy-weather/pkg/resource"
)

// application holds the shared lookup pipeline and the optional redis cache
type application struct {
	lookupUseCase lookup.UseCase
	locationCache cache.LocationCache
	redisClient   *redis.Client
}

func newApplication() (*application, error) {
	app := &application{locationCache: cache.NewNoopLocationCache()}

	if resource.GetBool("app.cache.enabled") {
		config := redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")).
			WithCacheTTL(cache.LocationCacheName, resource.GetDuration("app.cache.ttl"))

		client, err := redis.NewClient(config)
		if err != nil {
			return nil, err
		}
		app.redisClient = client
		app.locationCache = cache.NewRedisLocationCache(client)
		log.Infof("Geocoding cache enabled on %s", config.Addr())
	}

	geocodingGateway := api.NewGeocodingGateway(resource.GetString("app.open-meteo.geocoding-url"), clientOptions("geocoding"))
	forecastGateway := api.NewForecastGateway(resource.GetString("app.open-meteo.forecast-url"), clientOptions("forecast"))

	app.lookupUseCase = metrics.InstrumentLookup(lookup.NewLookupUseCase(
		resource.GetInt("app.search.min-query-length"),
		geocodingGateway,
		forecastGateway,
		app.locationCache,
	))
	return app, nil
}

func (app *application) Close() {
	if app.redisClient == nil {
		return
	}
	if err := app.redisClient.Close(); err != nil {
		log.Warnf("Fail to close redis client: %v", err)
	}
}

func clientOptions(gateway string) http.ClientOptions {
	return http.ClientOptions{
		FollowRedirect:    true,
		ReadTimeout:       resource.GetDuration("app.http.read-timeout"),
		ConnectionTimeout: resource.GetDuration("app.http.connection-timeout"),
		Logger:            api.ZapHTTPLogger{Gateway: gateway},
	}
}

func searchOptions() search.Options {
	return search.Options{CancelSuperseded: resource.GetBool("app.search.cancel-superseded")}
}

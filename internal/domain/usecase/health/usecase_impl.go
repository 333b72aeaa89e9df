package health

import (
	"context"

	"classy-weather/internal/domain/gateway/cache"
	"classy-weather/internal/domain/model"
)

type healthUseCase struct {
	applicationName string
	locationCache   cache.LocationCache
}

func NewHealthUseCase(applicationName string, locationCache cache.LocationCache) UseCase {
	return &healthUseCase{
		applicationName: applicationName,
		locationCache:   locationCache,
	}
}

// CheckHealth reports DOWN only when an enabled cache is unreachable
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.locationCache.Health(ctx)

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Application: useCase.applicationName,
		Cache:       cacheHealth,
	}
}

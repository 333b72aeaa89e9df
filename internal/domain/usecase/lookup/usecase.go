package lookup

import (
	"context"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
)

type UseCase interface {
	// ResolveWeather geocodes query and fetches the daily forecast of the first match.
	// Queries below the minimum length return a TooShort result without any network call.
	ResolveWeather(ctx context.Context, query string) (*model.LookupResult, error)

	// ResolveLocation geocodes query and returns the first match
	ResolveLocation(ctx context.Context, query string) (*entity.ResolvedLocation, error)

	// MinQueryLength is the length gate applied to queries, in characters
	MinQueryLength() int
}

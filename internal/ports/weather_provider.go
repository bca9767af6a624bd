package ports

import (
	"context"

	"farmwatch.app/internal/core/farm"
)

// WeatherProvider defines the contract for the public forecast service
type WeatherProvider interface {
	FetchWeather(ctx context.Context, coords farm.Coordinates) (*farm.WeatherSnapshot, error)
	GetProviderName() string
}

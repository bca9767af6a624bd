package ports

import (
	"context"
	"net/http"

	"farmwatch.app/internal/core/farm"
)

// FarmClient is the single point of contact with the farm backend and the
// weather provider. Failures are *errors.AppError values classified as
// network, auth, validation or server errors. Logout never fails.
type FarmClient interface {
	Login(ctx context.Context, email, password string) (*farm.Session, error)
	Register(ctx context.Context, registration farm.Registration) (*farm.RegistrationResult, error)
	Logout(ctx context.Context) farm.LogoutResult
	GetCurrentUser(ctx context.Context) (*farm.Session, error)
	FetchWeatherData(ctx context.Context, latitude, longitude float64) (*farm.WeatherSnapshot, error)
	FetchSoilData(ctx context.Context) (*farm.SoilReading, error)
	FetchCropData(ctx context.Context) (*farm.CropRecord, error)
	FetchSensorData(ctx context.Context, page, size int) (*farm.SensorPage, error)
}

// FarmClientFactory builds a client bound to a cookie jar, so several
// sessions can talk to the backend side by side
type FarmClientFactory interface {
	NewClient(jar http.CookieJar) FarmClient
	BackendURL() string
}

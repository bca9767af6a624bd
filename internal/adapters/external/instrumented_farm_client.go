package external

import (
	"context"
	"time"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
)

// Call outcomes used as the metrics label
const (
	OutcomeSuccess        = "success"
	OutcomeUnacknowledged = "unacknowledged"
	OutcomeNetwork        = "network_error"
	OutcomeAuth           = "auth_error"
	OutcomeValidation     = "validation_error"
	OutcomeServer         = "server_error"
	OutcomeOther          = "error"
)

// Outcome returns the metrics label for a call that ended with err
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch errors.TypeOf(err) {
	case errors.NetworkError:
		return OutcomeNetwork
	case errors.AuthError:
		return OutcomeAuth
	case errors.ValidationError:
		return OutcomeValidation
	case errors.ServerError:
		return OutcomeServer
	default:
		return OutcomeOther
	}
}

// InstrumentedFarmClient records a metric for every farm client call
type InstrumentedFarmClient struct {
	client  ports.FarmClient
	metrics ports.MetricsCollector
}

// NewInstrumentedFarmClient wraps client with call metrics
func NewInstrumentedFarmClient(client ports.FarmClient, metrics ports.MetricsCollector) ports.FarmClient {
	return &InstrumentedFarmClient{client: client, metrics: metrics}
}

func (c *InstrumentedFarmClient) Login(ctx context.Context, email, password string) (*farm.Session, error) {
	done := c.track(ctx, "login")
	session, err := c.client.Login(ctx, email, password)
	return session, done(err)
}

func (c *InstrumentedFarmClient) Register(ctx context.Context, registration farm.Registration) (*farm.RegistrationResult, error) {
	done := c.track(ctx, "register")
	result, err := c.client.Register(ctx, registration)
	return result, done(err)
}

func (c *InstrumentedFarmClient) Logout(ctx context.Context) farm.LogoutResult {
	start := time.Now()
	result := c.client.Logout(ctx)
	outcome := OutcomeSuccess
	if !result.Acknowledged {
		outcome = OutcomeUnacknowledged
	}
	c.metrics.RecordClientCall(ctx, "logout", outcome, time.Since(start))
	return result
}

func (c *InstrumentedFarmClient) GetCurrentUser(ctx context.Context) (*farm.Session, error) {
	done := c.track(ctx, "current_user")
	session, err := c.client.GetCurrentUser(ctx)
	return session, done(err)
}

func (c *InstrumentedFarmClient) FetchWeatherData(ctx context.Context, latitude, longitude float64) (*farm.WeatherSnapshot, error) {
	done := c.track(ctx, "weather")
	snapshot, err := c.client.FetchWeatherData(ctx, latitude, longitude)
	return snapshot, done(err)
}

func (c *InstrumentedFarmClient) FetchSoilData(ctx context.Context) (*farm.SoilReading, error) {
	done := c.track(ctx, "soil")
	reading, err := c.client.FetchSoilData(ctx)
	return reading, done(err)
}

func (c *InstrumentedFarmClient) FetchCropData(ctx context.Context) (*farm.CropRecord, error) {
	done := c.track(ctx, "crop")
	record, err := c.client.FetchCropData(ctx)
	return record, done(err)
}

func (c *InstrumentedFarmClient) FetchSensorData(ctx context.Context, page, size int) (*farm.SensorPage, error) {
	done := c.track(ctx, "sensors")
	sensors, err := c.client.FetchSensorData(ctx, page, size)
	return sensors, done(err)
}

func (c *InstrumentedFarmClient) track(ctx context.Context, operation string) func(error) error {
	start := time.Now()
	return func(err error) error {
		c.metrics.RecordClientCall(ctx, operation, Outcome(err), time.Since(start))
		return err
	}
}

package external

import (
	"context"
	"time"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
)

// FarmClientLoggingDecorator decorates a farm client with structured logging
type FarmClientLoggingDecorator struct {
	client ports.FarmClient
	logger ports.Logger
}

// NewFarmClientLoggingDecorator creates a new logging decorator for farm clients
func NewFarmClientLoggingDecorator(client ports.FarmClient, logger ports.Logger) ports.FarmClient {
	return &FarmClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// Login logs the attempt without the password
func (d *FarmClientLoggingDecorator) Login(ctx context.Context, email, password string) (*farm.Session, error) {
	done := d.start("login", ports.F("email", email), ports.F("password", maskedPassword))
	session, err := d.client.Login(ctx, email, password)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("user_id", session.ID.String()), ports.F("role", session.Role))
	return session, nil
}

func (d *FarmClientLoggingDecorator) Register(ctx context.Context, registration farm.Registration) (*farm.RegistrationResult, error) {
	done := d.start("register",
		ports.F("email", registration.Email),
		ports.F("username", registration.Username),
		ports.F("password", maskedPassword))
	result, err := d.client.Register(ctx, registration)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("server_message", result.ServerMessage))
	return result, nil
}

func (d *FarmClientLoggingDecorator) Logout(ctx context.Context) farm.LogoutResult {
	done := d.start("logout")
	result := d.client.Logout(ctx)
	done(nil, ports.F("acknowledged", result.Acknowledged))
	return result
}

func (d *FarmClientLoggingDecorator) GetCurrentUser(ctx context.Context) (*farm.Session, error) {
	done := d.start("current_user")
	session, err := d.client.GetCurrentUser(ctx)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("user_id", session.ID.String()))
	return session, nil
}

func (d *FarmClientLoggingDecorator) FetchWeatherData(ctx context.Context, latitude, longitude float64) (*farm.WeatherSnapshot, error) {
	done := d.start("weather", ports.F("latitude", latitude), ports.F("longitude", longitude))
	snapshot, err := d.client.FetchWeatherData(ctx, latitude, longitude)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil,
		ports.F("temperature", snapshot.Temperature),
		ports.F("condition", snapshot.Condition),
		ports.F("forecast_days", len(snapshot.Forecast)))
	return snapshot, nil
}

func (d *FarmClientLoggingDecorator) FetchSoilData(ctx context.Context) (*farm.SoilReading, error) {
	done := d.start("soil")
	reading, err := d.client.FetchSoilData(ctx)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("moisture", reading.Moisture), ports.F("ph", reading.PH))
	return reading, nil
}

func (d *FarmClientLoggingDecorator) FetchCropData(ctx context.Context) (*farm.CropRecord, error) {
	done := d.start("crop")
	record, err := d.client.FetchCropData(ctx)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("crop", record.CurrentCrop), ports.F("health", record.HealthStatus))
	return record, nil
}

func (d *FarmClientLoggingDecorator) FetchSensorData(ctx context.Context, page, size int) (*farm.SensorPage, error) {
	done := d.start("sensors", ports.F("page", page), ports.F("size", size))
	sensors, err := d.client.FetchSensorData(ctx, page, size)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("count", len(sensors.Content)), ports.F("total", sensors.TotalElements))
	return sensors, nil
}

// start logs the request and returns a func that logs its outcome
func (d *FarmClientLoggingDecorator) start(operation string, fields ...ports.Field) func(err error, result ...ports.Field) {
	d.logger.Info("Farm API request started",
		append([]ports.Field{ports.F("operation", operation), ports.F("event", "request")}, fields...)...)

	startTime := time.Now()

	return func(err error, result ...ports.Field) {
		duration := time.Since(startTime)
		if err != nil {
			d.logger.Error("Farm API request failed",
				ports.F("operation", operation),
				ports.F("event", "error"),
				ports.F("duration_ms", duration.Milliseconds()),
				ports.F("error_kind", errors.TypeOf(err).String()),
				ports.F("action", errors.ActionFor(err).String()),
				ports.F("error", err.Error()))
			return
		}

		d.logger.Info("Farm API request completed",
			append([]ports.Field{
				ports.F("operation", operation),
				ports.F("event", "response"),
				ports.F("duration_ms", duration.Milliseconds()),
			}, result...)...)
	}
}

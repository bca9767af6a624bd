package dashboard

import (
	"context"
	"time"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type UseCase struct {
	client   ports.FarmClient
	logger   ports.Logger
	defaults farm.Coordinates
}

type UseCaseDependencies struct {
	Client             ports.FarmClient
	Logger             ports.Logger
	DefaultCoordinates *farm.Coordinates
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("farm client is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	defaults := farm.DefaultCoordinates
	if deps.DefaultCoordinates != nil {
		defaults = *deps.DefaultCoordinates
	}

	return &UseCase{
		client:   deps.Client,
		logger:   deps.Logger,
		defaults: defaults,
	}, nil
}

// Load fetches the current user and then every section concurrently.
// Only a failure to identify the user fails the load; section failures are
// recorded on the section they belong to.
func (uc *UseCase) Load(ctx context.Context) (*Dashboard, error) {
	start := time.Now()

	user, err := uc.client.GetCurrentUser(ctx)
	if err != nil {
		uc.logger.Warn("Dashboard load aborted",
			ports.F("error_kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return nil, err
	}

	dash := &Dashboard{
		User:        user,
		Coordinates: user.CoordinatesOr(uc.defaults),
	}

	// Fetches never return their error to the group, so one failure does
	// not cancel the rest.
	var g errgroup.Group
	g.Go(func() error {
		dash.Weather = uc.weather(ctx, dash.Coordinates)
		return nil
	})
	g.Go(func() error {
		dash.Soil = uc.soil(ctx)
		return nil
	})
	g.Go(func() error {
		dash.Crop = uc.crop(ctx)
		return nil
	})
	g.Go(func() error {
		dash.Sensors = uc.sensors(ctx)
		return nil
	})
	_ = g.Wait()

	failed := dash.Errors()
	uc.logger.Info("Dashboard loaded",
		ports.F("user_id", user.ID.String()),
		ports.F("failed_sections", len(failed)),
		ports.F("duration_ms", time.Since(start).Milliseconds()))
	return dash, nil
}

// Refresh refetches a single section for coords. The returned dashboard
// carries only that section; the error is the section's own error.
func (uc *UseCase) Refresh(ctx context.Context, name SectionName, coords farm.Coordinates) (*Dashboard, error) {
	dash := &Dashboard{Coordinates: coords}

	var err error
	switch name {
	case SectionWeather:
		dash.Weather = uc.weather(ctx, coords)
		err = dash.Weather.Err
	case SectionSoil:
		dash.Soil = uc.soil(ctx)
		err = dash.Soil.Err
	case SectionCrop:
		dash.Crop = uc.crop(ctx)
		err = dash.Crop.Err
	case SectionSensors:
		dash.Sensors = uc.sensors(ctx)
		err = dash.Sensors.Err
	default:
		return nil, errors.NewValidationError("unknown dashboard section: " + string(name))
	}

	return dash, err
}

// Sensors returns one page of the sensor list
func (uc *UseCase) Sensors(ctx context.Context, page, size int) (*farm.SensorPage, error) {
	page, size = farm.NormalizePaging(page, size)
	result, err := uc.client.FetchSensorData(ctx, page, size)
	if err != nil {
		uc.sectionFailed(SectionSensors, err)
		return nil, err
	}
	return result, nil
}

func (uc *UseCase) weather(ctx context.Context, coords farm.Coordinates) Section[farm.WeatherSnapshot] {
	data, err := uc.client.FetchWeatherData(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		uc.sectionFailed(SectionWeather, err)
	}
	return newSection(data, err)
}

func (uc *UseCase) soil(ctx context.Context) Section[farm.SoilReading] {
	data, err := uc.client.FetchSoilData(ctx)
	if err != nil {
		uc.sectionFailed(SectionSoil, err)
	}
	return newSection(data, err)
}

func (uc *UseCase) crop(ctx context.Context) Section[farm.CropRecord] {
	data, err := uc.client.FetchCropData(ctx)
	if err != nil {
		uc.sectionFailed(SectionCrop, err)
	}
	return newSection(data, err)
}

func (uc *UseCase) sensors(ctx context.Context) Section[farm.SensorPage] {
	data, err := uc.client.FetchSensorData(ctx, farm.DefaultSensorPage, farm.DefaultSensorSize)
	if err != nil {
		uc.sectionFailed(SectionSensors, err)
	}
	return newSection(data, err)
}

func (uc *UseCase) sectionFailed(name SectionName, err error) {
	uc.logger.Warn("Dashboard section failed",
		ports.F("section", string(name)),
		ports.F("error_kind", errors.TypeOf(err).String()),
		ports.F("error", err.Error()))
}

package dashboard

import (
	"strings"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
)

// SectionName identifies one independently loaded part of the dashboard
type SectionName string

const (
	SectionWeather SectionName = "weather"
	SectionSoil    SectionName = "soil"
	SectionCrop    SectionName = "crop"
	SectionSensors SectionName = "sensors"
)

// Sections lists every section in display order
var Sections = []SectionName{SectionWeather, SectionSoil, SectionCrop, SectionSensors}

// ParseSection converts a path segment to a SectionName
func ParseSection(s string) (SectionName, error) {
	name := SectionName(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Sections {
		if name == known {
			return name, nil
		}
	}
	return "", errors.NewValidationError("unknown dashboard section: " + s)
}

// Operation returns the client operation a section's errors are reported under
func (n SectionName) Operation() errors.Operation {
	switch n {
	case SectionWeather:
		return errors.OpWeather
	case SectionSoil:
		return errors.OpSoil
	case SectionCrop:
		return errors.OpCrop
	default:
		return errors.OpSensors
	}
}

// Section holds either the data of one dashboard part or the classified
// error that prevented loading it
type Section[T any] struct {
	Data *T
	Err  error
}

// OK reports whether the section loaded
func (s Section[T]) OK() bool {
	return s.Err == nil && s.Data != nil
}

func newSection[T any](data *T, err error) Section[T] {
	if err != nil {
		return Section[T]{Err: err}
	}
	return Section[T]{Data: data}
}

// Dashboard is everything the main screen shows for one user
type Dashboard struct {
	User        *farm.Session
	Coordinates farm.Coordinates
	Weather     Section[farm.WeatherSnapshot]
	Soil        Section[farm.SoilReading]
	Crop        Section[farm.CropRecord]
	Sensors     Section[farm.SensorPage]
}

// Errors returns the failed sections keyed by name
func (d *Dashboard) Errors() map[SectionName]error {
	failed := make(map[SectionName]error)
	for name, err := range map[SectionName]error{
		SectionWeather: d.Weather.Err,
		SectionSoil:    d.Soil.Err,
		SectionCrop:    d.Crop.Err,
		SectionSensors: d.Sensors.Err,
	} {
		if err != nil {
			failed[name] = err
		}
	}
	return failed
}

// SessionRejected reports whether the backend refused the session while
// loading any section
func (d *Dashboard) SessionRejected() bool {
	for _, err := range d.Errors() {
		if errors.IsAuthError(err) {
			return true
		}
	}
	return false
}

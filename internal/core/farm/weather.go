package farm

import (
	"math"
	"time"
)

// Condition is the simplified sky condition shown on the dashboard
type Condition string

const (
	ConditionSunny        Condition = "Sunny"
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionCloudy       Condition = "Cloudy"
	ConditionRainy        Condition = "Rainy"
	ConditionSnowy        Condition = "Snowy"
	ConditionStormy       Condition = "Stormy"
)

// ForecastDays is how many days after today the forecast keeps
const ForecastDays = 3

// ConditionForCode maps a WMO weather code to a Condition.
// Unknown codes map to Sunny; IsKnownWeatherCode tells them apart.
func ConditionForCode(code int) Condition {
	switch code {
	case 0:
		return ConditionSunny
	case 1, 2:
		return ConditionPartlyCloudy
	case 3, 45, 48:
		return ConditionCloudy
	case 51, 53, 55, 61, 63, 65:
		return ConditionRainy
	case 71, 73, 75, 77:
		return ConditionSnowy
	case 80, 81, 82, 95, 96, 99:
		return ConditionStormy
	default:
		return ConditionSunny
	}
}

// IsKnownWeatherCode reports whether code is in the mapping table
func IsKnownWeatherCode(code int) bool {
	switch code {
	case 0, 1, 2, 3, 45, 48, 51, 53, 55, 61, 63, 65, 71, 73, 75, 77, 80, 81, 82, 95, 96, 99:
		return true
	}
	return false
}

// WeatherSnapshot is the current weather plus a short forecast
type WeatherSnapshot struct {
	Temperature   float64       `json:"temperature"`
	Humidity      float64       `json:"humidity"`
	Precipitation float64       `json:"precipitation"`
	WindSpeed     float64       `json:"windSpeed"`
	Code          int           `json:"weatherCode"`
	Condition     Condition     `json:"condition"`
	Forecast      []ForecastDay `json:"forecast"`
}

// ForecastDay is one day of the forward forecast
type ForecastDay struct {
	Day            string    `json:"day"`
	Date           string    `json:"date"`
	MaxTemperature int       `json:"temp"`
	Condition      Condition `json:"condition"`
}

// DailySeries is the provider's per-day forecast, one index per day
type DailySeries struct {
	Time           []string
	TemperatureMax []float64
	WeatherCode    []int
}

// ForecastFromDaily drops today (index 0) and keeps the next ForecastDays
// entries in order. Days missing a temperature or code are not produced.
func ForecastFromDaily(daily DailySeries) []ForecastDay {
	n := len(daily.Time)
	if len(daily.TemperatureMax) < n {
		n = len(daily.TemperatureMax)
	}
	if len(daily.WeatherCode) < n {
		n = len(daily.WeatherCode)
	}

	forecast := make([]ForecastDay, 0, ForecastDays)
	for i := 1; i < n && len(forecast) < ForecastDays; i++ {
		forecast = append(forecast, ForecastDay{
			Day:            dayLabel(daily.Time[i]),
			Date:           daily.Time[i],
			MaxTemperature: RoundHalfUp(daily.TemperatureMax[i]),
			Condition:      ConditionForCode(daily.WeatherCode[i]),
		})
	}
	return forecast
}

// RoundHalfUp rounds to the nearest integer with halves going up,
// so -2.5 becomes -2 and 2.5 becomes 3
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func dayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Weekday().String()[:3]
}

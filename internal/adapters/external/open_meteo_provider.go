package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"farmwatch.app/internal/adapters/infrastructure"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
)

const (
	defaultOpenMeteoURL = "https://api.open-meteo.com"
	defaultTimezone     = "Africa/Nairobi"

	openMeteoCurrentFields = "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m"
	openMeteoDailyFields   = "temperature_2m_max,weather_code"
)

// OpenMeteoProviderAdapter implements WeatherProvider port for Open-Meteo
type OpenMeteoProviderAdapter struct {
	baseURL   string
	timezone  string
	transport *jsonTransport
	logger    ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating the Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL    string
	Timezone   string
	HTTPClient HTTPClient
	Logger     ports.Logger
}

// OpenMeteoResponse represents the response from the forecast endpoint
type OpenMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time           []string  `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		WeatherCode    []int     `json:"weather_code"`
	} `json:"daily"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenMeteoURL
	}
	timezone := params.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	if params.Logger == nil {
		params.Logger = infrastructure.NewSlogLoggerAdapter(nil)
	}

	return &OpenMeteoProviderAdapter{
		baseURL:  baseURL,
		timezone: timezone,
		transport: &jsonTransport{
			client: client,
			logger: params.Logger,
			target: "open-meteo",
		},
		logger: params.Logger,
	}
}

// FetchWeather retrieves current conditions and the next days' forecast
func (p *OpenMeteoProviderAdapter) FetchWeather(ctx context.Context, coords farm.Coordinates) (*farm.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("current", openMeteoCurrentFields)
	query.Set("daily", openMeteoDailyFields)
	query.Set("timezone", p.timezone)

	endpoint, err := resolve(p.baseURL, "v1/forecast", query)
	if err != nil {
		return nil, err
	}

	resp, err := p.transport.send(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var apiResp OpenMeteoResponse
	if err := resp.decode(&apiResp); err != nil {
		return nil, err
	}

	p.warnUnknownCodes(coords, apiResp)

	return &farm.WeatherSnapshot{
		Temperature:   apiResp.Current.Temperature,
		Humidity:      apiResp.Current.Humidity,
		Precipitation: apiResp.Current.Precipitation,
		WindSpeed:     apiResp.Current.WindSpeed,
		Code:          apiResp.Current.WeatherCode,
		Condition:     farm.ConditionForCode(apiResp.Current.WeatherCode),
		Forecast: farm.ForecastFromDaily(farm.DailySeries{
			Time:           apiResp.Daily.Time,
			TemperatureMax: apiResp.Daily.TemperatureMax,
			WeatherCode:    apiResp.Daily.WeatherCode,
		}),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return "open-meteo"
}

// unknown codes still render as Sunny, but they are worth seeing in the logs
func (p *OpenMeteoProviderAdapter) warnUnknownCodes(coords farm.Coordinates, apiResp OpenMeteoResponse) {
	codes := append([]int{apiResp.Current.WeatherCode}, apiResp.Daily.WeatherCode...)
	for _, code := range codes {
		if !farm.IsKnownWeatherCode(code) {
			p.logger.Warn("Unknown weather code mapped to default condition",
				ports.F("code", code),
				ports.F("condition", farm.ConditionForCode(code)),
				ports.F("latitude", coords.Latitude),
				ports.F("longitude", coords.Longitude))
		}
	}
}

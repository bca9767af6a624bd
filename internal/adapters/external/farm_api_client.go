package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"farmwatch.app/internal/adapters/infrastructure"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
)

const (
	loginPath    = "api/auth/login"
	registerPath = "api/auth/register"
	logoutPath   = "api/auth/logout"
	mePath       = "api/auth/me"
	soilPath     = "api/soil"
	cropPath     = "api/crop"
	sensorsPath  = "api/sensor/all"

	maskedPassword = "****"
)

// FarmAPIClientParams holds parameters for creating the farm API client
type FarmAPIClientParams struct {
	BackendURL string
	WeatherURL string
	Timezone   string
	Timeout    time.Duration
	// Jar carries the backend session cookie. A fresh jar is created when nil.
	Jar http.CookieJar
	// HTTPClient replaces the default client; Jar and Timeout are then ignored.
	HTTPClient HTTPClient
	Logger     ports.Logger
}

// FarmAPIClient implements the FarmClient port over the backend REST API
// and the Open-Meteo forecast endpoint. It keeps no state of its own; the
// session lives in the cookie jar.
type FarmAPIClient struct {
	backendURL string
	backend    *jsonTransport
	weather    ports.WeatherProvider
	logger     ports.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	farm.Registration
	Role string `json:"role"`
}

// NewFarmAPIClient creates a new farm API client
func NewFarmAPIClient(params FarmAPIClientParams) *FarmAPIClient {
	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		jar := params.Jar
		if jar == nil {
			jar = NewCookieJar()
		}
		client = &http.Client{Timeout: timeout, Jar: jar}
	}

	if params.Logger == nil {
		params.Logger = infrastructure.NewSlogLoggerAdapter(nil)
	}

	return &FarmAPIClient{
		backendURL: params.BackendURL,
		backend: &jsonTransport{
			client: client,
			logger: params.Logger,
			target: "farm backend",
		},
		weather: NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
			BaseURL:    params.WeatherURL,
			Timezone:   params.Timezone,
			HTTPClient: client,
			Logger:     params.Logger,
		}),
		logger: params.Logger,
	}
}

// Login authenticates with email and password and returns the normalized user
func (c *FarmAPIClient) Login(ctx context.Context, email, password string) (*farm.Session, error) {
	c.logger.Debug("Sending login request",
		ports.F("email", email),
		ports.F("password", maskedPassword))

	resp, err := c.call(ctx, http.MethodPost, loginPath, nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return c.sessionFrom(resp)
}

// Register creates a CUSTOMER account
func (c *FarmAPIClient) Register(ctx context.Context, registration farm.Registration) (*farm.RegistrationResult, error) {
	c.logger.Debug("Sending registration request",
		ports.F("email", registration.Email),
		ports.F("username", registration.Username),
		ports.F("password", maskedPassword))

	resp, err := c.call(ctx, http.MethodPost, registerPath, nil, registerRequest{
		Registration: registration,
		Role:         farm.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}

	result := &farm.RegistrationResult{Message: farm.RegistrationSuccessMessage}
	if resp.empty() {
		return result, nil
	}

	session, err := c.sessionFrom(resp)
	if err != nil {
		return nil, err
	}
	result.Session = *session
	result.ServerMessage = responseMessage(resp.Body)
	return result, nil
}

// Logout asks the backend to end the session. It never fails: a rejected
// or unreachable logout is reported as not acknowledged.
func (c *FarmAPIClient) Logout(ctx context.Context) farm.LogoutResult {
	if _, err := c.call(ctx, http.MethodPost, logoutPath, nil, nil); err != nil {
		c.logger.Warn("Logout was not acknowledged by the backend",
			ports.F("error_kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return farm.LogoutResult{Acknowledged: false, Message: "Logged out locally"}
	}
	return farm.LogoutResult{Acknowledged: true, Message: "Logged out"}
}

// GetCurrentUser returns the user owning the current session
func (c *FarmAPIClient) GetCurrentUser(ctx context.Context) (*farm.Session, error) {
	resp, err := c.call(ctx, http.MethodGet, mePath, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.sessionFrom(resp)
}

// FetchWeatherData returns current conditions and a short forecast
func (c *FarmAPIClient) FetchWeatherData(ctx context.Context, latitude, longitude float64) (*farm.WeatherSnapshot, error) {
	return c.weather.FetchWeather(ctx, farm.Coordinates{Latitude: latitude, Longitude: longitude})
}

// FetchSoilData returns the latest soil snapshot
func (c *FarmAPIClient) FetchSoilData(ctx context.Context) (*farm.SoilReading, error) {
	resp, err := c.call(ctx, http.MethodGet, soilPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var reading farm.SoilReading
	if err := resp.decode(&reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// FetchCropData returns the current crop record
func (c *FarmAPIClient) FetchCropData(ctx context.Context) (*farm.CropRecord, error) {
	resp, err := c.call(ctx, http.MethodGet, cropPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var record farm.CropRecord
	if err := resp.decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FetchSensorData returns one page of sensors. A negative page becomes 0
// and a non-positive size becomes 10.
func (c *FarmAPIClient) FetchSensorData(ctx context.Context, page, size int) (*farm.SensorPage, error) {
	page, size = farm.NormalizePaging(page, size)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	resp, err := c.call(ctx, http.MethodGet, sensorsPath, query, nil)
	if err != nil {
		return nil, err
	}

	var sensors farm.SensorPage
	if err := resp.decode(&sensors); err != nil {
		return nil, err
	}
	if sensors.Content == nil {
		sensors.Content = []farm.SensorRecord{}
	}
	return &sensors, nil
}

// BackendURL returns the base address the client talks to
func (c *FarmAPIClient) BackendURL() string {
	return c.backendURL
}

func (c *FarmAPIClient) call(ctx context.Context, method, path string, query url.Values, payload interface{}) (*apiResponse, error) {
	endpoint, err := resolve(c.backendURL, path, query)
	if err != nil {
		return nil, err
	}
	return c.backend.send(ctx, method, endpoint, payload)
}

func (c *FarmAPIClient) sessionFrom(resp *apiResponse) (*farm.Session, error) {
	session, err := farm.NormalizeUser(resp.Body)
	if err != nil {
		return nil, errors.NewServerError("unexpected user payload", resp.StatusCode, err)
	}
	return session, nil
}

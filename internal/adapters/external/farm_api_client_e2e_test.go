package external

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"farmwatch.app/internal/adapters/mockbackend"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// MockBackendSuite drives the real client against the in-memory backend
type MockBackendSuite struct {
	suite.Suite
	backend *mockbackend.Server
	server  *httptest.Server
	client  *FarmAPIClient
}

func (s *MockBackendSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.backend = mockbackend.NewServer(mockbackend.Options{
		Today:     func() time.Time { return time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC) },
		SlowDelay: 3 * time.Second,
	})
	s.server = httptest.NewServer(s.backend.Router())
	s.client = NewFarmAPIClient(FarmAPIClientParams{
		BackendURL: s.server.URL,
		WeatherURL: s.server.URL,
		Timeout:    time.Second,
		Logger:     setupLoggerMock(s.T()),
	})
}

func (s *MockBackendSuite) TearDownTest() {
	s.server.Close()
}

func (s *MockBackendSuite) login() *farm.Session {
	session, err := s.client.Login(context.Background(), "farmer@farm.test", "secret1")
	s.Require().NoError(err)
	return session
}

func (s *MockBackendSuite) TestLoginNeverExposesPassword() {
	session := s.login()

	s.Equal(farm.NumberID(1), session.ID)
	s.Equal("Amina Okello", session.FullName())

	encoded, err := json.Marshal(session)
	s.Require().NoError(err)
	s.NotContains(string(encoded), "secret1")
}

func (s *MockBackendSuite) TestWrongPasswordIsAuthError() {
	_, err := s.client.Login(context.Background(), "farmer@farm.test", "wrong-password")

	s.True(errors.IsAuthError(err))
	s.Equal("Invalid email or password.", errors.UserMessage(errors.OpLogin, err))
}

func (s *MockBackendSuite) TestServerFailureOnLogin() {
	_, err := s.client.Login(context.Background(), mockbackend.ServerErrorEmail, "secret1")

	s.True(errors.IsServerError(err))
	s.Equal("Failed to login. Please try again.", errors.UserMessage(errors.OpLogin, err))
}

func (s *MockBackendSuite) TestTimeoutIsNetworkError() {
	_, err := s.client.Login(context.Background(), mockbackend.SlowEmail, "secret1")

	s.True(errors.IsNetworkError(err))
}

func (s *MockBackendSuite) TestSessionCookieCarriesAcrossCalls() {
	s.login()

	user, err := s.client.GetCurrentUser(context.Background())
	s.Require().NoError(err)
	s.Equal("amina", user.Username)

	soil, err := s.client.FetchSoilData(context.Background())
	s.Require().NoError(err)
	s.Equal(72, farm.Percent(soil.Moisture))

	crop, err := s.client.FetchCropData(context.Background())
	s.Require().NoError(err)
	s.Equal("April 15, 2023", farm.LongDate(crop.PlantingDate))

	page, err := s.client.FetchSensorData(context.Background(), -1, 0)
	s.Require().NoError(err)
	s.Len(page.Content, 10)
	s.Equal(int64(23), page.TotalElements)
}

func (s *MockBackendSuite) TestLogoutEndsBackendSession() {
	s.login()

	result := s.client.Logout(context.Background())
	s.True(result.Acknowledged)
	s.Equal(0, s.backend.SessionCount())

	_, err := s.client.GetCurrentUser(context.Background())
	s.True(errors.IsAuthError(err))
}

func (s *MockBackendSuite) TestExpiredBackendSession() {
	s.login()
	s.backend.ExpireSessions()

	_, err := s.client.FetchSoilData(context.Background())

	s.True(errors.IsAuthError(err))
	s.Equal(errors.ActionRedirectToLogin, errors.ActionFor(err))
}

func (s *MockBackendSuite) TestRegister() {
	result, err := s.client.Register(context.Background(), farm.Registration{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jane",
		Email:     "jane@farm.test",
		Phone:     "0700000000",
		Password:  "secret1",
	})
	s.Require().NoError(err)
	s.Equal(farm.RegistrationSuccessMessage, result.Message)
	s.Equal(farm.RoleCustomer, result.Session.Role)

	_, err = s.client.Register(context.Background(), farm.Registration{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jane2",
		Email:     "jane@farm.test",
		Phone:     "0700000000",
		Password:  "secret1",
	})
	s.True(errors.IsValidationError(err))
	s.Equal("Email already in use", errors.UserMessage(errors.OpRegister, err))
}

func (s *MockBackendSuite) TestWeatherForecastWindow() {
	weather, err := s.client.FetchWeatherData(context.Background(), 0.375, 32.625)
	s.Require().NoError(err)

	s.Require().Len(weather.Forecast, farm.ForecastDays)
	s.Equal("Tue", weather.Forecast[0].Day)
	s.Equal("Thu", weather.Forecast[2].Day)
	s.NotEmpty(weather.Condition)
}

func (s *MockBackendSuite) TestWeatherRejectsBadCoordinates() {
	_, err := s.client.FetchWeatherData(context.Background(), 95, 0)

	s.True(errors.IsValidationError(err))
}

func TestMockBackendSuite(t *testing.T) {
	suite.Run(t, new(MockBackendSuite))
}

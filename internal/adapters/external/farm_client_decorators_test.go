package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/mocks"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFarmClientLoggingDecorator_NeverLogsPassword(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockLogger := mocks.NewLogger(t)

	var logged []ports.Field
	capture := func(msg string, fields ...ports.Field) { logged = append(logged, fields...) }
	for n := 0; n <= 8; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Info(mock.Anything, fields...).Run(capture).Maybe()
	}

	ctx := context.Background()
	mockClient.EXPECT().Login(ctx, "a@b.co", "secret1").Return(&farm.Session{ID: farm.NumberID(7), Role: "CUSTOMER"}, nil).Once()

	decorated := NewFarmClientLoggingDecorator(mockClient, mockLogger)
	session, err := decorated.Login(ctx, "a@b.co", "secret1")

	require.NoError(t, err)
	assert.Equal(t, farm.NumberID(7), session.ID)
	for _, field := range logged {
		assert.NotEqual(t, "secret1", field.Value, "field %s leaked the password", field.Key)
	}
	assert.Contains(t, logged, ports.F("password", "****"))
}

func TestFarmClientLoggingDecorator_LogsErrorKind(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockLogger := mocks.NewLogger(t)

	ctx := context.Background()
	mockClient.EXPECT().FetchSoilData(ctx).Return(nil, errors.NewAuthError("expired")).Once()
	mockLogger.EXPECT().Info("Farm API request started", mock.Anything, mock.Anything).Once()
	mockLogger.EXPECT().Error("Farm API request failed",
		ports.F("operation", "soil"),
		ports.F("event", "error"),
		mock.Anything,
		ports.F("error_kind", "AUTH_ERROR"),
		ports.F("action", "redirect_login"),
		mock.Anything).Once()

	reading, err := NewFarmClientLoggingDecorator(mockClient, mockLogger).FetchSoilData(ctx)

	assert.Nil(t, reading)
	assert.True(t, errors.IsAuthError(err))
}

func TestInstrumentedFarmClient_RecordsOutcomes(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockMetrics := mocks.NewMetricsCollector(t)
	ctx := context.Background()

	mockClient.EXPECT().FetchCropData(ctx).Return(&farm.CropRecord{CurrentCrop: "Maize"}, nil).Once()
	mockClient.EXPECT().FetchSensorData(ctx, 0, 10).Return(nil, errors.NewNetworkError("down", nil)).Once()
	mockClient.EXPECT().Logout(ctx).Return(farm.LogoutResult{Acknowledged: false}).Once()

	mockMetrics.EXPECT().RecordClientCall(ctx, "crop", OutcomeSuccess, mock.Anything).Once()
	mockMetrics.EXPECT().RecordClientCall(ctx, "sensors", OutcomeNetwork, mock.Anything).Once()
	mockMetrics.EXPECT().RecordClientCall(ctx, "logout", OutcomeUnacknowledged, mock.Anything).Once()

	client := NewInstrumentedFarmClient(mockClient, mockMetrics)

	crop, err := client.FetchCropData(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maize", crop.CurrentCrop)

	_, err = client.FetchSensorData(ctx, 0, 10)
	assert.True(t, errors.IsNetworkError(err))

	assert.False(t, client.Logout(ctx).Acknowledged)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeNetwork, Outcome(errors.NewNetworkError("x", nil)))
	assert.Equal(t, OutcomeAuth, Outcome(errors.NewAuthError("x")))
	assert.Equal(t, OutcomeValidation, Outcome(errors.NewValidationError("x")))
	assert.Equal(t, OutcomeServer, Outcome(errors.NewServerError("x", 500, nil)))
	assert.Equal(t, OutcomeOther, Outcome(assert.AnError))
}

func TestFarmAPIClientFactory_ClientsShareNothingButConfig(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc", Path: "/"})
			writeJSON(t, w, http.StatusOK, `{"user":{"id":1}}`)
			return
		}
		if _, err := r.Cookie("JSESSIONID"); err != nil {
			writeJSON(t, w, http.StatusUnauthorized, `{}`)
			return
		}
		writeJSON(t, w, http.StatusOK, `{"user":{"id":1}}`)
	}))
	defer backend.Close()

	mockMetrics := mocks.NewMetricsCollector(t)
	mockMetrics.EXPECT().RecordClientCall(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	factory := NewFarmAPIClientFactory(FarmAPIClientParams{
		BackendURL: backend.URL,
		Logger:     setupLoggerMock(t),
	}, WithLogging(setupLoggerMock(t)), WithMetrics(mockMetrics))
	assert.Equal(t, backend.URL, factory.BackendURL())

	ctx := context.Background()
	loggedInJar := NewCookieJar()
	_, err := factory.NewClient(loggedInJar).Login(ctx, "a@b.co", "secret1")
	require.NoError(t, err)

	backendURL, err := url.Parse(backend.URL)
	require.NoError(t, err)
	require.Len(t, loggedInJar.Cookies(backendURL), 1)

	_, err = factory.NewClient(loggedInJar).GetCurrentUser(ctx)
	assert.NoError(t, err)

	_, err = factory.NewClient(NewCookieJar()).GetCurrentUser(ctx)
	assert.True(t, errors.IsAuthError(err))

	_, isInstrumented := factory.NewClient(nil).(*InstrumentedFarmClient)
	assert.True(t, isInstrumented)
}

package auth

import (
	"context"
	"testing"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/mocks"
	"farmwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	for n := 0; n <= 3; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
	}
	return mockLogger
}

func newUseCase(t *testing.T, client *mocks.FarmClient) *UseCase {
	uc, err := NewUseCase(UseCaseDependencies{Client: client, Logger: setupLoggerMock(t)})
	require.NoError(t, err)
	return uc
}

func validRegistration() farm.Registration {
	return farm.Registration{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jane",
		Email:     "jane@farm.io",
		Phone:     "0700000000",
		Password:  "secret1",
	}
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: mocks.NewLogger(t)})
	assert.ErrorContains(t, err, "farm client is required")

	_, err = NewUseCase(UseCaseDependencies{Client: mocks.NewFarmClient(t)})
	assert.ErrorContains(t, err, "logger is required")
}

func TestUseCase_Login_Success(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockClient.EXPECT().Login(mock.Anything, "a@b.co", "secret1").
		Return(&farm.Session{ID: farm.NumberID(7), Email: "a@b.co", Role: "CUSTOMER"}, nil).Once()

	session, err := newUseCase(t, mockClient).Login(context.Background(), Credentials{Email: "  a@b.co ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, farm.NumberID(7), session.ID)
}

func TestUseCase_Login_InvalidFormSendsNothing(t *testing.T) {
	tests := []struct {
		name        string
		credentials Credentials
		message     string
	}{
		{"MissingEmail", Credentials{Password: "secret1"}, "Email is required"},
		{"MalformedEmail", Credentials{Email: "not-an-email", Password: "secret1"}, "Invalid email"},
		{"MissingPassword", Credentials{Email: "a@b.co"}, "Password is required"},
		{"ShortPassword", Credentials{Email: "a@b.co", Password: "12345"}, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := mocks.NewFarmClient(t)

			session, err := newUseCase(t, mockClient).Login(context.Background(), tt.credentials)

			assert.Nil(t, session)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, tt.message, errors.UserMessage(errors.OpLogin, err))
			mockClient.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Login_PropagatesClassifiedErrors(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockClient.EXPECT().Login(mock.Anything, "a@b.co", "wrong-password").
		Return(nil, errors.NewAuthError("Bad credentials")).Once()

	_, err := newUseCase(t, mockClient).Login(context.Background(), Credentials{Email: "a@b.co", Password: "wrong-password"})

	assert.True(t, errors.IsAuthError(err))
	assert.Equal(t, "Invalid email or password.", errors.UserMessage(errors.OpLogin, err))
}

func TestUseCase_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := mocks.NewFarmClient(t)
		registration := validRegistration()
		mockClient.EXPECT().Register(mock.Anything, registration).
			Return(&farm.RegistrationResult{Message: farm.RegistrationSuccessMessage}, nil).Once()

		input := registration
		input.FirstName = " Jane "
		result, err := newUseCase(t, mockClient).Register(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "Registration successful", result.Message)
	})

	t.Run("MissingPhone", func(t *testing.T) {
		mockClient := mocks.NewFarmClient(t)
		registration := validRegistration()
		registration.Phone = "   "

		_, err := newUseCase(t, mockClient).Register(context.Background(), registration)

		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, "Phone number is required", errors.UserMessage(errors.OpRegister, err))
	})

	t.Run("BackendRejectsWithoutMessage", func(t *testing.T) {
		mockClient := mocks.NewFarmClient(t)
		mockClient.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.FromResponse(400, "")).Once()

		_, err := newUseCase(t, mockClient).Register(context.Background(), validRegistration())

		assert.True(t, errors.IsServerError(err))
		assert.Equal(t, "Invalid input. Please check your details.", errors.UserMessage(errors.OpRegister, err))
	})
}

func TestUseCase_Logout_AlwaysCompletes(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockClient.EXPECT().Logout(mock.Anything).Return(farm.LogoutResult{Acknowledged: false, Message: "Logged out locally"}).Once()

	result := newUseCase(t, mockClient).Logout(context.Background())

	assert.False(t, result.Acknowledged)
}

func TestUseCase_CurrentUser(t *testing.T) {
	mockClient := mocks.NewFarmClient(t)
	mockClient.EXPECT().GetCurrentUser(mock.Anything).Return(nil, errors.NewAuthError("expired")).Once()

	_, err := newUseCase(t, mockClient).CurrentUser(context.Background())

	assert.Equal(t, errors.ActionRedirectToLogin, errors.ActionFor(err))
}

func TestUseCase_CoordinatesFor(t *testing.T) {
	latitude := 1.5
	zero := 0.0

	uc := newUseCase(t, mocks.NewFarmClient(t))
	assert.Equal(t, farm.Coordinates{Latitude: 0.375, Longitude: 32.625}, uc.CoordinatesFor(nil))
	assert.Equal(t, farm.Coordinates{Latitude: 1.5, Longitude: 32.625}, uc.CoordinatesFor(&farm.Session{Latitude: &latitude}))
	assert.Equal(t, farm.Coordinates{Latitude: 0.375, Longitude: 32.625}, uc.CoordinatesFor(&farm.Session{Latitude: &zero, Longitude: &zero}))

	custom := farm.Coordinates{Latitude: -1.29, Longitude: 36.82}
	withDefaults, err := NewUseCase(UseCaseDependencies{Client: mocks.NewFarmClient(t), Logger: setupLoggerMock(t), DefaultCoordinates: &custom})
	require.NoError(t, err)
	assert.Equal(t, custom, withDefaults.CoordinatesFor(&farm.Session{}))
}

package auth

import (
	"context"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"farmwatch.app/pkg/validation"
)

// UseCase validates form input and drives the session operations of one
// FarmClient
type UseCase struct {
	client   ports.FarmClient
	logger   ports.Logger
	defaults farm.Coordinates
}

type UseCaseDependencies struct {
	Client ports.FarmClient
	Logger ports.Logger
	// DefaultCoordinates overrides farm.DefaultCoordinates when set
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

// Login checks the form and signs in. Invalid input never reaches the backend.
func (uc *UseCase) Login(ctx context.Context, credentials Credentials) (*farm.Session, error) {
	credentials.Normalize()
	if err := validation.Struct(credentials); err != nil {
		uc.logger.Debug("Login form rejected", ports.F("error", err.Error()))
		return nil, err
	}

	session, err := uc.client.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User logged in",
		ports.F("user_id", session.ID.String()),
		ports.F("role", session.Role))
	return session, nil
}

// Register checks the form and creates the account
func (uc *UseCase) Register(ctx context.Context, registration farm.Registration) (*farm.RegistrationResult, error) {
	registration = normalizeRegistration(registration)
	if err := validation.Struct(registration); err != nil {
		uc.logger.Debug("Registration form rejected", ports.F("error", err.Error()))
		return nil, err
	}

	result, err := uc.client.Register(ctx, registration)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", ports.F("username", registration.Username))
	return result, nil
}

// Logout always completes. The caller drops its local session whatever
// the backend answered.
func (uc *UseCase) Logout(ctx context.Context) farm.LogoutResult {
	result := uc.client.Logout(ctx)
	if !result.Acknowledged {
		uc.logger.Warn("Logout completed locally only")
	}
	return result
}

// CurrentUser returns the user behind the current session
func (uc *UseCase) CurrentUser(ctx context.Context) (*farm.Session, error) {
	return uc.client.GetCurrentUser(ctx)
}

// CoordinatesFor returns where to look up the weather for session
func (uc *UseCase) CoordinatesFor(session *farm.Session) farm.Coordinates {
	return session.CoordinatesOr(uc.defaults)
}

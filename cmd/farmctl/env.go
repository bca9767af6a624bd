package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"farmwatch.app/internal/adapters/external"
	"farmwatch.app/internal/adapters/infrastructure"
	"farmwatch.app/internal/config"
	"farmwatch.app/internal/core/auth"
	"farmwatch.app/internal/core/dashboard"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"farmwatch.app/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var globalFlags struct {
	sessionFile string
	logLevel    string
	json        bool
}

// environment is what every command needs once flags and config are read
type environment struct {
	cfg      *config.Config
	logger   ports.Logger
	factory  *external.FarmAPIClientFactory
	sessions *sessionFile
	out      io.Writer
}

var env *environment

func setupEnvironment(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := globalFlags.logLevel
	if level == "" {
		if fromEnv, ok := os.LookupEnv("LOG_LEVEL"); ok {
			level = fromEnv
		} else {
			level = "warn"
		}
	}
	log := infrastructure.NewSlogLoggerAdapter(logger.NewWithWriter(os.Stderr, logger.ParseLevel(level)).Logger)

	path := globalFlags.sessionFile
	if path == "" {
		path, err = defaultSessionPath()
		if err != nil {
			return err
		}
	}

	env = &environment{
		cfg:    cfg,
		logger: log,
		factory: external.NewFarmAPIClientFactory(external.FarmAPIClientParams{
			BackendURL: cfg.Backend.BaseURL,
			WeatherURL: cfg.Weather.BaseURL,
			Timezone:   cfg.Weather.Timezone,
			Timeout:    cfg.Backend.Timeout(),
			Logger:     log,
		}, external.WithLogging(log)),
		sessions: &sessionFile{path: path},
		out:      cmd.OutOrStdout(),
	}
	return nil
}

func (e *environment) defaultCoordinates() farm.Coordinates {
	return farm.Coordinates{
		Latitude:  e.cfg.Weather.DefaultLatitude,
		Longitude: e.cfg.Weather.DefaultLongitude,
	}
}

// client returns a farm client whose cookies start from saved
func (e *environment) client(saved *savedSession) (ports.FarmClient, *external.SessionJar) {
	var cookies []ports.StoredCookie
	if saved != nil {
		cookies = saved.Cookies
	}
	jar := external.NewSessionJar(e.cfg.Backend.BaseURL, cookies)
	return e.factory.NewClient(jar), jar
}

func (e *environment) authUseCase(client ports.FarmClient) (*auth.UseCase, error) {
	coords := e.defaultCoordinates()
	return auth.NewUseCase(auth.UseCaseDependencies{
		Client:             client,
		Logger:             e.logger,
		DefaultCoordinates: &coords,
	})
}

func (e *environment) dashboardUseCase(client ports.FarmClient) (*dashboard.UseCase, error) {
	coords := e.defaultCoordinates()
	return dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Client:             client,
		Logger:             e.logger,
		DefaultCoordinates: &coords,
	})
}

// requireSession loads the saved session for the configured backend
func (e *environment) requireSession() (*savedSession, error) {
	saved, err := e.sessions.Load()
	if err != nil {
		return nil, err
	}
	if saved == nil || saved.BackendURL != e.cfg.Backend.BaseURL {
		return nil, errors.NewAuthError("not logged in, run 'farmctl login' first")
	}
	return saved, nil
}

// keepSession writes back cookies the backend rotated during the command
func (e *environment) keepSession(saved *savedSession, jar *external.SessionJar) {
	current := jar.Stored()
	if external.SameCookies(saved.Cookies, current) {
		return
	}
	saved.Cookies = current
	if err := e.sessions.Save(saved); err != nil {
		e.logger.Warn("Failed to update session file", ports.F("path", e.sessions.path), ports.F("error", err.Error()))
	}
}

// fail turns err into the message a user should see. An auth failure on a
// saved session also forgets that session.
func (e *environment) fail(op errors.Operation, err error) error {
	e.logger.Debug("Command failed",
		ports.F("operation", string(op)),
		ports.F("error_kind", errors.TypeOf(err).String()),
		ports.F("error", err.Error()))

	if errors.TypeOf(err) == errors.AuthError && op != errors.OpLogin {
		e.forget()
	}
	return fmt.Errorf("%s", errors.UserMessage(op, err))
}

// forget removes the saved session after the backend rejected it
func (e *environment) forget() {
	if err := e.sessions.Remove(); err != nil {
		e.logger.Warn("Failed to remove session file", ports.F("error", err.Error()))
	}
}

func (e *environment) printJSON(v interface{}) error {
	encoder := json.NewEncoder(e.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (e *environment) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}

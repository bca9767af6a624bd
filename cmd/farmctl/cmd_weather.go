package main

import (
	"fmt"

	"farmwatch.app/internal/core/dashboard"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
	"github.com/spf13/cobra"
)

var weatherFlags struct {
	latitude  float64
	longitude float64
}

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current weather and the short forecast",
	Long: `Show current conditions and the next days' forecast. Without --lat and
--lon the location comes from the logged-in profile, then from
DEFAULT_LATITUDE and DEFAULT_LONGITUDE. No login is needed when both flags
are given.`,
	RunE: runWeather,
}

func init() {
	weatherCmd.Flags().Float64Var(&weatherFlags.latitude, "lat", 0, "latitude")
	weatherCmd.Flags().Float64Var(&weatherFlags.longitude, "lon", 0, "longitude")
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, args []string) error {
	coords, err := weatherCoordinates(cmd)
	if err != nil {
		return err
	}

	client, _ := env.client(nil)
	dashboardUseCase, err := env.dashboardUseCase(client)
	if err != nil {
		return err
	}

	dash, err := dashboardUseCase.Refresh(cmd.Context(), dashboard.SectionWeather, coords)
	if err != nil {
		return env.fail(errors.OpWeather, err)
	}

	if globalFlags.json {
		return env.printJSON(dash.Weather.Data)
	}
	printWeather(coords, dash.Weather.Data)
	return nil
}

// weatherCoordinates prefers flags, then the saved profile, then config
func weatherCoordinates(cmd *cobra.Command) (farm.Coordinates, error) {
	latSet := cmd.Flags().Changed("lat")
	lonSet := cmd.Flags().Changed("lon")
	if latSet && lonSet {
		return farm.Coordinates{Latitude: weatherFlags.latitude, Longitude: weatherFlags.longitude}, nil
	}

	var user *farm.Session
	saved, err := env.sessions.Load()
	if err != nil {
		return farm.Coordinates{}, err
	}
	if saved != nil && saved.BackendURL == env.cfg.Backend.BaseURL {
		user = &saved.User
	}

	coords := user.CoordinatesOr(env.defaultCoordinates())
	if latSet {
		coords.Latitude = weatherFlags.latitude
	}
	if lonSet {
		coords.Longitude = weatherFlags.longitude
	}
	return coords, nil
}

func printWeather(coords farm.Coordinates, weather *farm.WeatherSnapshot) {
	env.printf("Weather at %.3f, %.3f\n", coords.Latitude, coords.Longitude)
	env.printf("  Now:    %d°C %s\n", farm.RoundHalfUp(weather.Temperature), weather.Condition)
	env.printf("  Humidity %d%%, wind %s km/h, precipitation %s mm\n",
		farm.RoundHalfUp(weather.Humidity), trimFloat(weather.WindSpeed), trimFloat(weather.Precipitation))
	for _, day := range weather.Forecast {
		env.printf("  %-7s %d°C %s\n", day.Day+":", day.MaxTemperature, day.Condition)
	}
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

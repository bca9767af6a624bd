package main

import (
	"strings"

	"farmwatch.app/internal/adapters/external"
	"farmwatch.app/internal/core/dashboard"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show weather, soil, crop and sensors at once",
	Long: `Load every dashboard section for the logged-in user. Sections load
independently: a failed section is reported in place and the others are
still shown.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardOutput is the --json rendering of a dashboard
type dashboardOutput struct {
	User        *farm.Session         `json:"user"`
	Coordinates farm.Coordinates      `json:"coordinates"`
	Weather     *farm.WeatherSnapshot `json:"weather,omitempty"`
	Soil        *farm.SoilReading     `json:"soil,omitempty"`
	Crop        *farm.CropRecord      `json:"crop,omitempty"`
	Sensors     *farm.SensorPage      `json:"sensors,omitempty"`
	Errors      map[string]string     `json:"errors,omitempty"`
}

func runDashboard(cmd *cobra.Command, args []string) error {
	saved, err := env.requireSession()
	if err != nil {
		return env.fail(errors.OpDashboard, err)
	}

	client, jar := env.client(saved)
	dashboardUseCase, err := env.dashboardUseCase(client)
	if err != nil {
		return err
	}

	dash, err := dashboardUseCase.Load(cmd.Context())
	if err != nil {
		return env.fail(errors.OpDashboard, err)
	}
	env.settleDashboard(saved, jar, dash)

	failed := make(map[string]string)
	for name, sectionErr := range dash.Errors() {
		failed[string(name)] = errors.UserMessage(name.Operation(), sectionErr)
	}

	if globalFlags.json {
		return env.printJSON(dashboardOutput{
			User:        dash.User,
			Coordinates: dash.Coordinates,
			Weather:     dash.Weather.Data,
			Soil:        dash.Soil.Data,
			Crop:        dash.Crop.Data,
			Sensors:     dash.Sensors.Data,
			Errors:      failed,
		})
	}

	env.printf("Hello, %s\n\n", displayName(dash.User.FullName(), dash.User.Username))

	if dash.Weather.OK() {
		printWeather(dash.Coordinates, dash.Weather.Data)
	} else {
		printFailed(dashboard.SectionWeather, failed)
	}
	env.printf("\n")

	if dash.Soil.OK() {
		printSoil(dash.Soil.Data)
	} else {
		printFailed(dashboard.SectionSoil, failed)
	}
	env.printf("\n")

	if dash.Crop.OK() {
		printCrop(dash.Crop.Data)
	} else {
		printFailed(dashboard.SectionCrop, failed)
	}
	env.printf("\n")

	if dash.Sensors.OK() {
		env.printf("Sensors\n")
		return printSensors(env.out, dash.Sensors.Data)
	}
	printFailed(dashboard.SectionSensors, failed)
	return nil
}

// settleDashboard keeps the refreshed profile and cookies, or forgets the
// session when any section was refused by the backend
func (e *environment) settleDashboard(saved *savedSession, jar *external.SessionJar, dash *dashboard.Dashboard) {
	if dash.SessionRejected() {
		e.forget()
		return
	}
	saved.User = *dash.User
	e.keepSession(saved, jar)
}

func printSoil(soil *farm.SoilReading) {
	env.printf("Soil\n")
	env.printf("  Moisture    %d%%\n", farm.Percent(soil.Moisture))
	env.printf("  pH          %g\n", soil.PH)
	env.printf("  Nitrogen    %d%%\n", farm.Percent(soil.Nutrients.Nitrogen))
	env.printf("  Phosphorus  %d%%\n", farm.Percent(soil.Nutrients.Phosphorus))
	env.printf("  Potassium   %d%%\n", farm.Percent(soil.Nutrients.Potassium))
	env.printf("  Resistance  %s\n", soil.Band())
}

func printCrop(crop *farm.CropRecord) {
	env.printf("Crop\n")
	env.printf("  Current     %s\n", crop.CurrentCrop)
	env.printf("  Planted     %s\n", farm.LongDate(crop.PlantingDate))
	env.printf("  Harvest     %s\n", farm.LongDate(crop.HarvestEstimate))
	env.printf("  Stage       %s\n", crop.GrowthStage)
	env.printf("  Health      %s\n", crop.HealthStatus)
}

func printFailed(name dashboard.SectionName, failed map[string]string) {
	label := string(name)
	env.printf("%s%s: %s\n", strings.ToUpper(label[:1]), label[1:], failed[label])
}

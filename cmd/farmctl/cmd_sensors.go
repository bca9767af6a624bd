package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
	"github.com/spf13/cobra"
)

var sensorsFlags struct {
	page int
	size int
}

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List field sensors",
	Long:  `List one page of the farm's sensors. Pages start at 0.`,
	RunE:  runSensors,
}

func init() {
	sensorsCmd.Flags().IntVar(&sensorsFlags.page, "page", farm.DefaultSensorPage, "page number, starting at 0")
	sensorsCmd.Flags().IntVar(&sensorsFlags.size, "size", farm.DefaultSensorSize, "sensors per page")
	rootCmd.AddCommand(sensorsCmd)
}

func runSensors(cmd *cobra.Command, args []string) error {
	saved, err := env.requireSession()
	if err != nil {
		return env.fail(errors.OpSensors, err)
	}

	client, jar := env.client(saved)
	dashboardUseCase, err := env.dashboardUseCase(client)
	if err != nil {
		return err
	}

	page, err := dashboardUseCase.Sensors(cmd.Context(), sensorsFlags.page, sensorsFlags.size)
	if err != nil {
		return env.fail(errors.OpSensors, err)
	}
	env.keepSession(saved, jar)

	if globalFlags.json {
		return env.printJSON(page)
	}
	return printSensors(env.out, page)
}

func printSensors(out io.Writer, page *farm.SensorPage) error {
	if len(page.Content) == 0 {
		fmt.Fprintln(out, "No sensors found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tSTATUS")
	for _, sensor := range page.Content {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sensor.ID, sensor.Name, sensor.Location, sensor.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Page %d of %d (%d sensors)\n", page.Number+1, page.TotalPages, page.TotalElements)
	return nil
}

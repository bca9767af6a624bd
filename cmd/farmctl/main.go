package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "farmctl",
	Short: "farmctl - command line client for the farm monitoring backend",
	Long: `farmctl talks to the farm monitoring backend and the public forecast
service. Log in once; the backend session is kept in a local file and
reused by the other commands until you log out or it expires.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupEnvironment,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.sessionFile, "session-file", "", "where the backend session is kept (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.logLevel, "log-level", "", "debug, info, warn or error (default: LOG_LEVEL or warn)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.json, "json", false, "print results as JSON")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

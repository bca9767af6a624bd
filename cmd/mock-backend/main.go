package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"farmwatch.app/internal/adapters/mockbackend"
	"farmwatch.app/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const defaultPort = 8081

var port int

var rootCmd = &cobra.Command{
	Use:   "mock-backend",
	Short: "Run an in-memory farm backend for local development",
	Long: `Serves the farm backend REST surface and the forecast endpoint from memory.
Point BACKEND_BASE_URL and WEATHER_BASE_URL at it. The demo account is
printed on startup.`,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().IntVar(&port, "port", portFromEnv(), "port to listen on (env MOCK_BACKEND_PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	logger.New().SetDefault()
	gin.SetMode(gin.ReleaseMode)

	server := mockbackend.NewServer(mockbackend.Options{})
	demo := mockbackend.DemoUser()

	addr := fmt.Sprintf(":%d", port)
	slog.Info("Mock farm backend starting",
		"addr", addr,
		"demo_email", demo.Email,
		"demo_password", demo.Password)

	if err := server.Router().Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func portFromEnv() int {
	if value, ok := os.LookupEnv("MOCK_BACKEND_PORT"); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultPort
}

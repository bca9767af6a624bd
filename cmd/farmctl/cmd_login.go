package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"farmwatch.app/internal/core/auth"
	"farmwatch.app/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginFlags struct {
	email string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the farm backend",
	Long:  `Log in with email and password. The password is always read from the terminal.`,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the backend session",
	Long:  `Ask the backend to end the session and forget it locally. The local session is removed even when the backend does not answer.`,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "account email (prompted when empty)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())

	email := loginFlags.email
	if email == "" {
		var err error
		if email, err = prompt(reader, "Email: "); err != nil {
			return err
		}
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	client, jar := env.client(nil)
	authUseCase, err := env.authUseCase(client)
	if err != nil {
		return err
	}

	user, err := authUseCase.Login(cmd.Context(), auth.Credentials{Email: email, Password: password})
	if err != nil {
		return env.fail(errors.OpLogin, err)
	}

	if err := env.sessions.Save(&savedSession{
		BackendURL: env.cfg.Backend.BaseURL,
		User:       *user,
		Cookies:    jar.Stored(),
		SavedAt:    time.Now(),
	}); err != nil {
		return err
	}

	if globalFlags.json {
		return env.printJSON(user)
	}
	env.printf("Logged in as %s (%s)\n", displayName(user.FullName(), user.Username), user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	saved, err := env.sessions.Load()
	if err != nil {
		return err
	}
	if saved == nil {
		env.printf("Not logged in\n")
		return nil
	}

	client, _ := env.client(saved)
	authUseCase, err := env.authUseCase(client)
	if err != nil {
		return err
	}

	result := authUseCase.Logout(cmd.Context())
	if err := env.sessions.Remove(); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	if globalFlags.json {
		return env.printJSON(result)
	}
	env.printf("%s\n", result.Message)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	saved, err := env.requireSession()
	if err != nil {
		return env.fail(errors.OpCurrentUser, err)
	}

	client, jar := env.client(saved)
	authUseCase, err := env.authUseCase(client)
	if err != nil {
		return err
	}

	user, err := authUseCase.CurrentUser(cmd.Context())
	if err != nil {
		return env.fail(errors.OpCurrentUser, err)
	}
	saved.User = *user
	env.keepSession(saved, jar)

	if globalFlags.json {
		return env.printJSON(user)
	}

	coords := authUseCase.CoordinatesFor(user)
	env.printf("Name:     %s\n", displayName(user.FullName(), user.Username))
	env.printf("Username: %s\n", user.Username)
	env.printf("Email:    %s\n", user.Email)
	env.printf("Phone:    %s\n", user.Phone)
	env.printf("Location: %.3f, %.3f\n", coords.Latitude, coords.Longitude)
	return nil
}

// prompt reads one trimmed line after writing label to stderr
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(value), nil
}

func readPassword(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(passwordBytes), nil
}

func displayName(fullName, username string) string {
	if fullName != "" {
		return fullName
	}
	if username != "" {
		return username
	}
	return "farmer"
}

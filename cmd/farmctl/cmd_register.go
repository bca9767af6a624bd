package main

import (
	"bufio"
	"fmt"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
	"github.com/spf13/cobra"
)

var registerFlags farm.Registration

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a farmer account",
	Long: `Create a customer account on the farm backend. Fields not given as flags
are prompted for; the password is always read from the terminal and must be
confirmed. Registering does not log you in.`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerFlags.FirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerFlags.LastName, "last-name", "", "last name")
	registerCmd.Flags().StringVar(&registerFlags.Username, "username", "", "username")
	registerCmd.Flags().StringVar(&registerFlags.Email, "email", "", "email")
	registerCmd.Flags().StringVar(&registerFlags.Phone, "phone", "", "phone number")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	registration := registerFlags

	fields := []struct {
		label string
		value *string
	}{
		{"First name: ", &registration.FirstName},
		{"Last name: ", &registration.LastName},
		{"Username: ", &registration.Username},
		{"Email: ", &registration.Email},
		{"Phone: ", &registration.Phone},
	}
	for _, field := range fields {
		if *field.value != "" {
			continue
		}
		value, err := prompt(reader, field.label)
		if err != nil {
			return err
		}
		*field.value = value
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	registration.Password = password

	client, _ := env.client(nil)
	authUseCase, err := env.authUseCase(client)
	if err != nil {
		return err
	}

	result, err := authUseCase.Register(cmd.Context(), registration)
	if err != nil {
		return env.fail(errors.OpRegister, err)
	}

	if globalFlags.json {
		return env.printJSON(result)
	}
	env.printf("%s\n", result.Message)
	if result.ServerMessage != "" && result.ServerMessage != result.Message {
		env.printf("Backend says: %s\n", result.ServerMessage)
	}
	env.printf("Run 'farmctl login --email %s' to sign in\n", registration.Email)
	return nil
}

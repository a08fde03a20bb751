// Package main is the entry point for the rsa-demo-cli application.
// It initializes the root command and registers the key generation and
// cipher sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_demo_service/cmd/rsa-demo-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-demo-cli",
		Short: "Textbook RSA demonstration CLI",
		Long: `rsa-demo-cli is a command-line tool demonstrating textbook RSA.
Supports key pair generation from explicit primes or random primes of a
requested bit length, and encryption/decryption of short messages.

This is an educational tool: there is no padding scheme and no protection
against timing attacks. Do not use it to protect real data.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeygenCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize keygen commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
